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

package sdlboard

import (
	"fmt"

	"github.com/oledout/oledout/board"
	"github.com/oledout/oledout/curated"
	"github.com/oledout/oledout/hardware"
	"github.com/oledout/oledout/hardware/framebuffer"
	"github.com/oledout/oledout/hardware/gfx"
	"github.com/oledout/oledout/logger"
	"github.com/oledout/oledout/notifications"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "Oledout"

// height of the strip underneath the display where the LEDs are drawn, in
// display pixels
const ledStrip = 8

// size of each LED, in display pixels
const ledSize = 4

// Board is a complete board running in an SDL window. It implements the
// hardware.Pins, hardware.Servicer and notifications.Notify interfaces.
type Board struct {
	*Controls

	fb     *framebuffer.Framebuffer
	canvas *gfx.Canvas
	audio  *Audio

	window   *sdl.Window
	renderer *sdl.Renderer
	joystick *sdl.Joystick

	scale int32

	// the last game notice. shown in the window title
	notice string

	// arrow keys being held down
	left, right bool

	off bool
}

// Options for the NewBoard() function.
type Options struct {
	// the number of window pixels for each display pixel
	Scale int

	// buzzer volume in the range 0.0 to 1.0
	Volume float64

	// use the first physical joystick found by SDL
	Joystick bool
}

// NewBoard is the preferred method of initialisation for the Board type.
func NewBoard(prf board.Profile, opts Options) (*Board, error) {
	b := &Board{
		Controls: NewControls(prf.Pins),
		fb:       framebuffer.NewFramebuffer(prf.Display.Width, prf.Display.Height),
		scale:    int32(max(1, opts.Scale)),
	}
	b.canvas = gfx.NewCanvas(b.fb)

	var flags uint32 = sdl.INIT_VIDEO | sdl.INIT_AUDIO
	if opts.Joystick {
		flags |= sdl.INIT_JOYSTICK
	}

	err := sdl.Init(flags)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	w := int32(prf.Display.Width) * b.scale
	h := int32(prf.Display.Height+ledStrip) * b.scale

	b.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		b.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	b.renderer, err = sdl.CreateRenderer(b.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		b.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	err = b.renderer.SetScale(float32(b.scale), float32(b.scale))
	if err != nil {
		b.Destroy()
		return nil, curated.Errorf("sdl: %v", err)
	}

	b.audio, err = NewAudio(opts.Volume)
	if err != nil {
		b.Destroy()
		return nil, err
	}

	if opts.Joystick {
		if sdl.NumJoysticks() == 0 {
			logger.Log(logger.Allow, "joystick", "no joysticks found")
		} else {
			b.joystick = sdl.JoystickOpen(0)
			if b.joystick != nil && b.joystick.Attached() {
				logger.Logf(logger.Allow, "joystick", "using %s", b.joystick.Name())
			}
		}
	}

	b.fb.OnDisplay(b.draw)

	logger.Logf(logger.Allow, "sdl", "window %dx%d (scale %d)", w, h, b.scale)

	return b, nil
}

// Destroy the window and release all SDL resources.
func (b *Board) Destroy() {
	if b.audio != nil {
		b.audio.Close()
	}
	if b.joystick != nil {
		b.joystick.Close()
	}
	if b.renderer != nil {
		_ = b.renderer.Destroy()
	}
	if b.window != nil {
		_ = b.window.Destroy()
	}
	sdl.Quit()
}

// Hardware returns the board's collaborators.
func (b *Board) Hardware() hardware.Board {
	return hardware.Board{
		Display: b.canvas,
		Tone:    b.audio,
		Pins:    b,
		Clock:   hardware.SystemClock{},
	}
}

// Service implements the hardware.Servicer interface. All pending SDL events
// are processed.
func (b *Board) Service() error {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			b.off = true

		case *sdl.KeyboardEvent:
			b.key(ev)

		case *sdl.MouseMotionEvent:
			b.SetAxis(PositionToAxis(int(ev.X/b.scale), b.fb.Width()))

		case *sdl.JoyAxisEvent:
			if ev.Axis == 0 {
				b.SetAxis(StickToAxis(ev.Value))
			}

		case *sdl.JoyButtonEvent:
			pressed := ev.State == sdl.PRESSED
			switch ev.Button {
			case 0:
				b.SetButton(StartReset, pressed)
			case 1:
				b.SetButton(PauseResume, pressed)
			}
		}
	}

	b.Drift()

	if b.audio != nil {
		b.audio.Service()
	}

	if b.off {
		return curated.Errorf(hardware.PowerOff)
	}
	return nil
}

func (b *Board) key(ev *sdl.KeyboardEvent) {
	// repeated key events don't change anything
	if ev.Repeat == 1 {
		return
	}

	pressed := ev.Type == sdl.KEYDOWN

	switch ev.Keysym.Sym {
	case sdl.K_RETURN, sdl.K_s:
		b.SetButton(StartReset, pressed)
	case sdl.K_SPACE, sdl.K_p:
		b.SetButton(PauseResume, pressed)
	case sdl.K_LEFT:
		b.left = pressed
	case sdl.K_RIGHT:
		b.right = pressed
	case sdl.K_ESCAPE:
		if pressed {
			b.off = true
		}
	}

	switch {
	case b.left && !b.right:
		b.SetDrift(-1)
	case b.right && !b.left:
		b.SetDrift(1)
	default:
		b.SetDrift(0)
	}
}

// Notify implements the notifications.Notify interface.
func (b *Board) Notify(notice notifications.Notice) error {
	switch notice {
	case notifications.NotifyStarted, notifications.NotifyResumed:
		b.notice = "playing"
	case notifications.NotifyPaused:
		b.notice = "paused"
	case notifications.NotifyWon:
		b.notice = "won"
	case notifications.NotifyLost:
		b.notice = "game over"
	case notifications.NotifyReset:
		b.notice = ""
	default:
		return nil
	}

	if b.notice == "" {
		b.window.SetTitle(windowTitle)
	} else {
		b.window.SetTitle(fmt.Sprintf("%s [%s]", windowTitle, b.notice))
	}
	return nil
}

// draw the framebuffer and the LEDs to the window. pixels are drawn in
// horizontal runs of the same colour
func (b *Board) draw(fb *framebuffer.Framebuffer) error {
	if err := b.setColour(hardware.Black); err != nil {
		return err
	}
	if err := b.renderer.Clear(); err != nil {
		return curated.Errorf("sdl: %v", err)
	}

	width := fb.Width()
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < width; {
			c := fb.At(x, y)
			run := 1
			for x+run < width && fb.At(x+run, y) == c {
				run++
			}
			if c != hardware.Black {
				if err := b.fill(x, y, run, 1, c); err != nil {
					return err
				}
			}
			x += run
		}
	}

	red, yellow := b.LEDs()
	if err := b.led(width/2-ledSize*2, red, hardware.Red); err != nil {
		return err
	}
	if err := b.led(width/2+ledSize, yellow, hardware.Yellow); err != nil {
		return err
	}

	b.renderer.Present()
	return nil
}

// LEDs that are off are drawn dimmed
func (b *Board) led(x int, on bool, c hardware.Colour) error {
	if !on {
		c = dim(c)
	}
	y := b.fb.Height() + (ledStrip-ledSize)/2
	return b.fill(x, y, ledSize, ledSize, c)
}

// a quarter of the brightness of the colour
func dim(c hardware.Colour) hardware.Colour {
	col := c.ColorRGBA()
	col.R /= 4
	col.G /= 4
	col.B /= 4
	return hardware.FromRGBA(col)
}

func (b *Board) fill(x, y, w, h int, c hardware.Colour) error {
	if err := b.setColour(c); err != nil {
		return err
	}
	rect := sdl.Rect{X: int32(x), Y: int32(y), W: int32(w), H: int32(h)}
	if err := b.renderer.FillRect(&rect); err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	return nil
}

func (b *Board) setColour(c hardware.Colour) error {
	r, g, bl := c.RGB()
	if err := b.renderer.SetDrawColor(r, g, bl, 0xff); err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	return nil
}
