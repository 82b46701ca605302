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

package framebuffer

import (
	"image"
	"image/color"
	"sync"

	"github.com/oledout/oledout/hardware"
)

// Framebuffer is a block of RGB565 pixels.
type Framebuffer struct {
	crit sync.Mutex

	width  int
	height int
	pixels []hardware.Colour

	// the pixels as they were at the most recent call to Display()
	presented []hardware.Colour
	frames    int

	onDisplay func(*Framebuffer) error
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:     width,
		height:    height,
		pixels:    make([]hardware.Colour, width*height),
		presented: make([]hardware.Colour, width*height),
	}
}

// OnDisplay sets a function to be called every time a frame is presented.
// An error from the function is returned by Display().
func (fb *Framebuffer) OnDisplay(f func(*Framebuffer) error) {
	fb.onDisplay = f
}

// Size implements the drivers.Displayer interface.
func (fb *Framebuffer) Size() (int16, int16) {
	return int16(fb.width), int16(fb.height)
}

// SetPixel implements the drivers.Displayer interface. Pixels outside of the
// framebuffer are ignored.
func (fb *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int(x) >= fb.width || int(y) >= fb.height {
		return
	}
	fb.pixels[int(y)*fb.width+int(x)] = hardware.FromRGBA(c)
}

// FillScreen fills every pixel with the colour.
func (fb *Framebuffer) FillScreen(c color.RGBA) {
	v := hardware.FromRGBA(c)
	for i := range fb.pixels {
		fb.pixels[i] = v
	}
}

// Display implements the drivers.Displayer interface. The current pixels
// become the presented pixels.
func (fb *Framebuffer) Display() error {
	fb.crit.Lock()
	copy(fb.presented, fb.pixels)
	fb.frames++
	fb.crit.Unlock()

	if fb.onDisplay != nil {
		return fb.onDisplay(fb)
	}
	return nil
}

// Width returns the width of the framebuffer in pixels.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the height of the framebuffer in pixels.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Frames returns the number of times Display() has been called.
func (fb *Framebuffer) Frames() int {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	return fb.frames
}

// At returns the colour of the pixel being drawn. Pixels outside of the
// framebuffer are black.
func (fb *Framebuffer) At(x, y int) hardware.Colour {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return hardware.Black
	}
	return fb.pixels[y*fb.width+x]
}

// Presented returns a copy of the pixels as they were when Display() was last
// called. Pixels are in rows, starting at the top-left.
func (fb *Framebuffer) Presented() []hardware.Colour {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	p := make([]hardware.Colour, len(fb.presented))
	copy(p, fb.presented)
	return p
}

// Image returns the presented pixels as an image.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for i, c := range fb.Presented() {
		img.SetRGBA(i%fb.width, i/fb.width, c.ColorRGBA())
	}
	return img
}

// Count returns the number of pixels being drawn that are the colour.
func (fb *Framebuffer) Count(c hardware.Colour) int {
	var n int
	for _, p := range fb.pixels {
		if p == c {
			n++
		}
	}
	return n
}
