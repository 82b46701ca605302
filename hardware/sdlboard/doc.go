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

// Package sdlboard is a desktop simulation of the board using SDL. The
// display is drawn in a window, scaled up by an integer amount, with the two
// LEDs drawn underneath. The buzzer is an SDL audio device playing a square
// wave.
//
// Controls are:
//
//	Enter or S         start/reset
//	Space or P         pause/resume
//	Left/Right arrows  joystick
//	Mouse              joystick (horizontal position in the window)
//	Escape             switch off
//
// If a physical joystick is requested, the first joystick found by SDL is
// used. Axis 0 is the joystick and buttons 0 and 1 are start/reset and
// pause/resume.
package sdlboard
