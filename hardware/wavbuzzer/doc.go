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

// Package wavbuzzer is a tone generator that records the buzzer to a WAV
// file. The buzzer output is a square wave and is buffered in memory in its
// entirety, to be written to disk when the buzzer is closed. It is therefore
// only suitable for short headless runs and for testing.
//
// Time is taken from a hardware.Clock so that a run driven by a virtual clock
// produces a recording of the correct length however fast the run was.
package wavbuzzer
