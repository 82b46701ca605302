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

//go:build !windows

package termboard

import (
	"os"
	"time"

	"github.com/oledout/oledout/board"
	"github.com/oledout/oledout/curated"
	"github.com/oledout/oledout/hardware"
	"github.com/oledout/oledout/hardware/framebuffer"
	"github.com/oledout/oledout/hardware/gfx"
	"github.com/oledout/oledout/logger"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Board is a complete board running in the terminal. It implements the
// hardware.Pins, hardware.ToneGenerator and hardware.Servicer interfaces.
type Board struct {
	*Controls

	fb     *framebuffer.Framebuffer
	canvas *gfx.Canvas

	input  *os.File
	output *os.File

	// terminal attributes on entry. restored by Close()
	canAttr    unix.Termios
	cbreakAttr unix.Termios

	colour bool

	// sound the terminal bell for every tone
	Bell bool

	keys chan byte
}

// NewBoard is the preferred method of initialisation for the Board type. The
// input file must be a terminal.
func NewBoard(input *os.File, output *os.File, prf board.Profile, colour bool) (*Board, error) {
	b := &Board{
		Controls: NewControls(prf.Pins),
		fb:       framebuffer.NewFramebuffer(prf.Display.Width, prf.Display.Height),
		input:    input,
		output:   output,
		colour:   colour,
		keys:     make(chan byte, 64),
	}
	b.canvas = gfx.NewCanvas(b.fb)

	if err := termios.Tcgetattr(b.input.Fd(), &b.canAttr); err != nil {
		return nil, curated.Errorf("termboard: %v", err)
	}
	b.cbreakAttr = b.canAttr
	termios.Cfmakecbreak(&b.cbreakAttr)
	if err := termios.Tcsetattr(b.input.Fd(), termios.TCSANOW, &b.cbreakAttr); err != nil {
		return nil, curated.Errorf("termboard: %v", err)
	}

	b.fb.OnDisplay(func(fb *framebuffer.Framebuffer) error {
		red, yellow := b.LEDs()
		return Render(b.output, fb, b.colour, red, yellow)
	})

	b.output.WriteString(hideCursor + clearAll)

	go func() {
		buf := make([]byte, 16)
		for {
			n, err := b.input.Read(buf)
			if err != nil {
				close(b.keys)
				return
			}
			for _, k := range buf[:n] {
				b.keys <- k
			}
		}
	}()

	logger.Logf(logger.Allow, "term", "%dx%d display (colour %v)", b.fb.Width(), b.fb.Height(), colour)

	return b, nil
}

// Close restores the terminal.
func (b *Board) Close() error {
	b.output.WriteString(normal + showCursor + "\r\n")
	if err := termios.Tcsetattr(b.input.Fd(), termios.TCSANOW, &b.canAttr); err != nil {
		return curated.Errorf("termboard: %v", err)
	}
	return nil
}

// Hardware returns the board's collaborators.
func (b *Board) Hardware() hardware.Board {
	return hardware.Board{
		Display: b.canvas,
		Tone:    b,
		Pins:    b,
		Clock:   hardware.SystemClock{},
	}
}

// Service implements the hardware.Servicer interface. Buttons pressed during
// the previous tick are released and pending key presses are processed.
func (b *Board) Service() error {
	b.Release()

	for done := false; !done; {
		select {
		case k, ok := <-b.keys:
			if !ok {
				b.Off = true
				done = true
				break
			}
			b.Key(k)
		default:
			done = true
		}
	}

	if b.Off {
		return curated.Errorf(hardware.PowerOff)
	}
	return nil
}

// Tone implements the hardware.ToneGenerator interface.
func (b *Board) Tone(frequency int, duration time.Duration) {
	if b.Bell {
		b.output.WriteString("\a")
	}
}

// Stop implements the hardware.ToneGenerator interface.
func (b *Board) Stop() {
}
