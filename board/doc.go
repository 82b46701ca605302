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

// Package board describes the physical board the game runs on: which pins
// the buttons, joystick, buzzer and LEDs are connected to, the size of the
// display and the timing of the game loop.
//
// Default() returns the profile of the reference board, an Arduino Uno with
// an SSD1331 OLED. Other boards are described by a TOML file loaded with
// Load(). Only the values that differ from the default need to be specified.
// For example:
//
//	name = "breadboard"
//	debounce = "150ms"
//	melody = "blocking"
//
//	[pins]
//	start_reset = 2
//	joystick_x = "A1"
//
// Unknown keys in the file are an error.
package board
