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

// Package session holds the state of one game: the ball, the paddle, the
// score, the number of lives remaining, the brick field and the current
// GameState. A Session is owned by the game controller and is passed by
// reference to the physics engine and to the presentation layer. Neither of
// those keep a copy.
//
// Reset() reinitialises every field in one step.
package session
