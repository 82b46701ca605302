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

// Package virtual implements a board with no physical presence. The clock is
// advanced only by calls to Sleep() or Advance(), the pins are set directly
// and the buzzer records what it is asked to play.
//
// The virtual board is used by the headless modes, where the game runs as
// fast as possible, and by tests.
package virtual
