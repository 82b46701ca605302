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

// Package hardware defines the collaborators that the game drives: the
// display, the buzzer, the digital and analog pins, and the clock. The game
// treats all of them as sinks or simple samplers. Implementations for real
// and simulated boards live in the sub-packages.
//
// The capabilities of the Display interface mirror those of a small
// Adafruit-GFX style colour OLED. Colours are 16 bit RGB565 values.
//
// Buttons are active-low, as they are when wired with an internal pull-up
// resistor. A pressed button reads as Low.
package hardware
