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

// Package framebuffer is an in-memory RGB565 display. It implements the
// drivers.Displayer interface so that it can be drawn to with a gfx.Canvas,
// exactly as the SSD1331 driver is on the real board.
//
// The simulators read the pixels after each frame has been presented. A
// front-end can register a function with OnDisplay() to be told when that
// happens.
package framebuffer
