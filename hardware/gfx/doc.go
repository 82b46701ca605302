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

// Package gfx adapts any tinygo drivers.Displayer to the hardware.Display
// interface. The same Canvas is used for the in-memory framebuffer of the
// simulators and for the SSD1331 driver on the microcontroller.
//
// Rectangles and triangles are drawn with tinydraw. Text is drawn with
// tinyfont using the TomThumb font, scaled by the text size. The cursor is
// the top-left corner of the next character and is advanced by Print().
//
// All drawing is clipped to the device. Devices that can fill rectangles or
// the entire screen themselves are used to do so.
package gfx
