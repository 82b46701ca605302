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

package termboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/oledout/oledout/hardware"
	"github.com/oledout/oledout/hardware/framebuffer"
)

// ANSI sequences
const (
	cursorHome = "\033[H"
	clearAll   = "\033[2J"
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
	normal     = "\033[0m"
)

// half-block characters for monochrome output
const (
	blockNone  = " "
	blockUpper = "▀"
	blockLower = "▄"
	blockFull  = "█"
)

// Render the framebuffer to the writer, two rows of pixels for each line of
// text. In colour mode each character is an upper half block with the
// foreground set to the upper pixel and the background set to the lower
// pixel. Otherwise any pixel that is not black is drawn.
//
// A line showing the two LEDs follows the display.
func Render(w io.Writer, fb *framebuffer.Framebuffer, colour bool, red bool, yellow bool) error {
	var s strings.Builder

	s.WriteString(cursorHome)

	width := fb.Width()
	height := fb.Height()

	for y := 0; y < height; y += 2 {
		var fg, bg hardware.Colour
		started := false

		for x := 0; x < width; x++ {
			upper := fb.At(x, y)
			lower := hardware.Black
			if y+1 < height {
				lower = fb.At(x, y+1)
			}

			if !colour {
				switch {
				case upper != hardware.Black && lower != hardware.Black:
					s.WriteString(blockFull)
				case upper != hardware.Black:
					s.WriteString(blockUpper)
				case lower != hardware.Black:
					s.WriteString(blockLower)
				default:
					s.WriteString(blockNone)
				}
				continue
			}

			// colour codes are only written when they change
			if !started || upper != fg {
				r, g, b := upper.RGB()
				fmt.Fprintf(&s, "\033[38;2;%d;%d;%dm", r, g, b)
				fg = upper
			}
			if !started || lower != bg {
				r, g, b := lower.RGB()
				fmt.Fprintf(&s, "\033[48;2;%d;%d;%dm", r, g, b)
				bg = lower
			}
			started = true
			s.WriteString(blockUpper)
		}

		s.WriteString(normal)
		s.WriteString("\r\n")
	}

	s.WriteString(led("red", red, hardware.Red, colour))
	s.WriteString("  ")
	s.WriteString(led("yellow", yellow, hardware.Yellow, colour))
	s.WriteString("\r\n")

	_, err := io.WriteString(w, s.String())
	return err
}

func led(name string, on bool, c hardware.Colour, colour bool) string {
	if !on {
		return fmt.Sprintf("( ) %s", name)
	}
	if !colour {
		return fmt.Sprintf("(*) %s", name)
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("(\033[38;2;%d;%d;%dm*%s) %s", r, g, b, normal, name)
}
