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

// Package limiter paces the game loop and measures the rate at which frames
// are being produced.
//
// Unlike a fixed rate limiter, the wait period is supplied for every frame.
// The game controller decides how long it wants to wait after each tick: a
// full frame period while the game is being played, nothing at all while
// waiting for the start button, or the time until the next note of a melody.
//
// Waits are measured from the end of the previous wait, so the time taken to
// produce a frame is subtracted from the wait. If the loop falls behind then
// the schedule is reset rather than allowing the loop to race to catch up.
package limiter
