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

package hardware

import "image/color"

// Colour is a 16 bit RGB565 colour value.
type Colour uint16

// List of colours used by the game.
const (
	Black   Colour = 0x0000
	White   Colour = 0xffff
	Red     Colour = 0xf800
	Green   Colour = 0x07e0
	Blue    Colour = 0x001f
	Cyan    Colour = 0x07ff
	Magenta Colour = 0xf81f
	Yellow  Colour = 0xffe0
	Orange  Colour = 0xfd20
)

// RGB expands the colour to 8 bits per channel. The low bits are filled
// from the high bits so that full intensity maps to 0xff.
func (c Colour) RGB() (r, g, b uint8) {
	r5 := uint8((c >> 11) & 0x1f)
	g6 := uint8((c >> 5) & 0x3f)
	b5 := uint8(c & 0x1f)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// RGBA implements the color.Color interface.
func (c Colour) RGBA() (r, g, b, a uint32) {
	return c.ColorRGBA().RGBA()
}

// ColorRGBA converts the colour to the image/color RGBA type.
func (c Colour) ColorRGBA() color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// FromRGBA converts an image/color RGBA value to the nearest RGB565 colour.
func FromRGBA(c color.RGBA) Colour {
	return Colour(uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3))
}
