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

// Package melody contains the fixed note sequences played by the buzzer and
// the Player type that sequences them.
//
// Each note sounds for its length, which is one second divided by the note's
// divisor (4 for a quarter note, 8 for an eighth note). The buzzer is
// silenced at 130% of the note length and the next note starts after a
// further pause of 100ms.
//
// The Player is a cursor into a melody. It is advanced with the current time
// and reports how long until the next note event. This allows a melody to be
// played by a cooperative loop that continues to run while the melody plays.
// The Play() function is the blocking alternative. It sleeps between events
// and returns only when the melody has finished.
package melody
