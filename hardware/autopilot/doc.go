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

// Package autopilot is a pins implementation that plays the game. The paddle
// follows the ball and the start button is pressed whenever the game is
// waiting to start.
//
// The autopilot watches the game by reading the session directly. It is used
// by the headless modes of the oledout command and by tests that need a game
// to run for a long time without losing.
package autopilot
