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

// Package pico is the board for a Raspberry Pi Pico with an SSD1331 OLED
// display, a piezo buzzer driven by PWM, an analog joystick and two LEDs. It
// is only built by TinyGo for the pico target.
//
// Pin numbers in the board profile are GPIO numbers. The joystick must be on
// one of the ADC capable pins (GPIO26 to GPIO28).
package pico
