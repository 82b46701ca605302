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

// Package termboard is a board that runs in a terminal. The display is drawn
// with half-block characters, two pixels to a character cell, and the
// buttons and joystick are driven from the keyboard:
//
//	s          start/reset
//	p          pause/resume
//	a or left  joystick left
//	d or right joystick right
//	q          switch off
//
// The terminal is put into cbreak mode for the lifetime of the board. The
// buzzer sounds the terminal bell, if the bell has been enabled.
package termboard
