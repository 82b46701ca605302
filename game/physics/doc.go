// This file is part of Oledout.
//
// Oledout is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Oledout is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Oledout.  If not, see <https://www.gnu.org/licenses/>.

// Package physics advances the game by one frame. The Step() function moves
// the ball and resolves collisions in this order:
//
//  1. the side and top walls
//  2. the paddle
//  3. the bricks
//  4. the bottom of the screen
//
// There is no position correction after a bounce. The ball may overlap a wall
// by up to one velocity step.
//
// A collision with the paddle only reverses a ball that is travelling
// downwards. Without that condition a ball that is still inside the paddle's
// band on the frame after a bounce would be reversed a second time and could
// become trapped against the paddle, because the ball's velocity is
// fractional and does not always carry it clear of the band in a single frame.
//
// Every brick that overlaps the ball is destroyed in the same frame and each
// one reverses the vertical direction of the ball. Two bricks hit in the same
// frame therefore leave the vertical direction unchanged.
package physics
