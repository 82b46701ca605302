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

// Package game is the game state machine. The Controller owns the session
// and moves it between the NotStarted, Playing, Paused, Won and Lost states
// in response to the buttons and to the physics engine.
//
// The controller is driven by calling Tick() repeatedly. Each tick samples
// the input, updates the session, draws the screen and returns how long the
// caller should wait before the next tick. Run() is a loop that does exactly
// that, pacing itself with a limiter.Limiter.
//
// When a game is won or lost the banner for that state is drawn and a melody
// starts. How the melody is played depends on the board profile. In the
// cooperative mode the melody is advanced by each tick and the tick returns
// the time until the next note event. In the blocking mode the tick that ends
// the game does not return until the melody has finished. In both modes the
// buttons are ignored while the melody plays and at the end of the melody the
// session is reset to the NotStarted state.
package game
