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

package gfx

import (
	"image/color"
	"math"

	"github.com/oledout/oledout/hardware"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
)

// the distance from the top of a TomThumb capital to the baseline
const fontAscent = 5

// implemented by devices that can fill the entire screen quickly
type screenFiller interface {
	FillScreen(c color.RGBA)
}

// implemented by devices that can fill a rectangle quickly
type rectangleFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Canvas implements the hardware.Display interface on top of a
// drivers.Displayer.
type Canvas struct {
	dev           drivers.Displayer
	width, height int

	font tinyfont.Fonter

	cursorX, cursorY int
	textColour       hardware.Colour
	textSize         int
}

// NewCanvas is the preferred method of initialisation for the Canvas type.
func NewCanvas(dev drivers.Displayer) *Canvas {
	w, h := dev.Size()
	return &Canvas{
		dev:        dev,
		width:      int(w),
		height:     int(h),
		font:       &tinyfont.TomThumb,
		textColour: hardware.White,
		textSize:   1,
	}
}

// Size implements the drivers.Displayer interface.
func (c *Canvas) Size() (int16, int16) {
	return int16(c.width), int16(c.height)
}

// SetPixel implements the drivers.Displayer interface. Pixels outside of the
// device are ignored.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if x < 0 || y < 0 || int(x) >= c.width || int(y) >= c.height {
		return
	}
	c.dev.SetPixel(x, y, col)
}

// Display implements the drivers.Displayer interface.
func (c *Canvas) Display() error {
	return c.dev.Display()
}

// Present implements the hardware.Presenter interface.
func (c *Canvas) Present() error {
	return c.dev.Display()
}

// Width implements the hardware.Display interface.
func (c *Canvas) Width() int {
	return c.width
}

// Height implements the hardware.Display interface.
func (c *Canvas) Height() int {
	return c.height
}

// Clear implements the hardware.Display interface.
func (c *Canvas) Clear(col hardware.Colour) {
	if f, ok := c.dev.(screenFiller); ok {
		f.FillScreen(col.ColorRGBA())
		return
	}
	c.FillRect(0, 0, c.width, c.height, col)
}

// FillRect implements the hardware.Display interface.
func (c *Canvas) FillRect(x, y, w, h int, col hardware.Colour) {
	// clip
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	w = min(w, c.width-x)
	h = min(h, c.height-y)
	if w <= 0 || h <= 0 {
		return
	}

	if f, ok := c.dev.(rectangleFiller); ok {
		if f.FillRectangle(int16(x), int16(y), int16(w), int16(h), col.ColorRGBA()) == nil {
			return
		}
	}
	// only fails for an empty rectangle, which the clipping has ruled out
	_ = tinydraw.FilledRectangle(c, int16(x), int16(y), int16(w), int16(h), col.ColorRGBA())
}

// FillTriangle implements the hardware.Display interface.
func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int, col hardware.Colour) {
	tinydraw.FilledTriangle(c, int16(x0), int16(y0), int16(x1), int16(y1), int16(x2), int16(y2), col.ColorRGBA())
}

// SetCursor implements the hardware.Display interface.
func (c *Canvas) SetCursor(x, y int) {
	c.cursorX = x
	c.cursorY = y
}

// SetTextColour implements the hardware.Display interface.
func (c *Canvas) SetTextColour(col hardware.Colour) {
	c.textColour = col
}

// SetTextSize implements the hardware.Display interface. Sizes less than one
// are treated as one.
func (c *Canvas) SetTextSize(n int) {
	c.textSize = max(1, n)
}

// Print implements the hardware.Display interface.
func (c *Canvas) Print(s string) {
	sc := &scaled{
		canvas: c,
		x:      c.cursorX,
		y:      c.cursorY,
		size:   c.textSize,
	}
	tinyfont.WriteLine(sc, c.font, 0, fontAscent, s, c.textColour.ColorRGBA())

	_, w := tinyfont.LineWidth(c.font, s)
	c.cursorX += int(w) * c.textSize
}

// scaled is a drivers.Displayer that draws each pixel as a square block of
// the canvas, offset by the cursor position. tinyfont draws the text through
// it as if it were at the origin.
type scaled struct {
	canvas *Canvas
	x, y   int
	size   int
}

func (s *scaled) Size() (int16, int16) {
	return math.MaxInt16, math.MaxInt16
}

func (s *scaled) SetPixel(x, y int16, col color.RGBA) {
	px := s.x + int(x)*s.size
	py := s.y + int(y)*s.size
	for j := 0; j < s.size; j++ {
		for i := 0; i < s.size; i++ {
			s.canvas.SetPixel(int16(px+i), int16(py+j), col)
		}
	}
}

func (s *scaled) Display() error {
	return nil
}
