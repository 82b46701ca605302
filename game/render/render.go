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

// Package render is the presentation layer. It draws the play scene and the
// status screens to a hardware.Display and drives the two indicator LEDs.
//
// Every screen starts by clearing the display. There is no partial redraw.
package render

import (
	"fmt"

	"github.com/oledout/oledout/game/bricks"
	"github.com/oledout/oledout/game/session"
	"github.com/oledout/oledout/hardware"
)

// Size of the heart icons used to show the remaining lives. Each heart is
// followed by a two pixel gap.
const (
	HeartSize = 5
	heartGap  = 2
)

// Renderer draws to the display and sets the LEDs.
type Renderer struct {
	display hardware.Display
	pins    hardware.Pins

	red    hardware.Pin
	yellow hardware.Pin
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type. The pins are the outputs for the red and yellow LEDs.
func NewRenderer(display hardware.Display, pins hardware.Pins, red hardware.Pin, yellow hardware.Pin) *Renderer {
	return &Renderer{
		display: display,
		pins:    pins,
		red:     red,
		yellow:  yellow,
	}
}

// Frame draws the screen for the current state of the session. The Won and
// Lost banners are not drawn by Frame() because they are drawn once on entry
// to those states. See Won() and Lost().
func (r *Renderer) Frame(s *session.Session) {
	switch s.State {
	case session.NotStarted:
		r.message("Press Start", hardware.White, -30)
	case session.Paused:
		r.message("Paused", hardware.White, -30)
	case session.Playing:
		r.Scene(s)
	}
}

// Scene draws the play scene.
func (r *Renderer) Scene(s *session.Session) {
	d := r.display
	d.Clear(hardware.Black)

	d.FillRect(s.PaddleX, session.PaddleY, session.PaddleWidth, session.PaddleHeight, hardware.White)

	x, y := s.Ball.Pixel()
	d.FillRect(x, y, session.BallSize, session.BallSize, hardware.White)

	s.Bricks.Each(func(c bricks.Cell) {
		b := c.Rect()
		d.FillRect(b.X, b.Y, b.W, b.H, hardware.White)
	})

	d.SetTextColour(hardware.White)
	d.SetTextSize(1)
	d.SetCursor(0, 0)
	d.Print(fmt.Sprintf("Score: %d", s.Score))

	for i := 0; i < s.Lives; i++ {
		r.Heart(d.Width()-(i+1)*(HeartSize+heartGap), 0, HeartSize, hardware.Red)
	}
}

// Heart draws a heart icon. The x coordinate is the centre of the icon and
// the y coordinate is the top.
func (r *Renderer) Heart(x int, y int, size int, c hardware.Colour) {
	h := size / 2
	r.display.FillTriangle(x, y, x+h, y+h, x-h, y+h, c)
	r.display.FillTriangle(x, y+h, x+h, y+size, x-h, y+size, c)
	r.display.FillRect(x-h, y+size/4, size, h, c)
}

// Won draws the banner for the Won state and lights the yellow LED.
func (r *Renderer) Won() {
	r.message("YOU WON!!!", hardware.Green, -50)
	r.LEDs(false, true)
}

// Lost draws the banner for the Lost state and lights the red LED.
func (r *Renderer) Lost() {
	r.LEDs(true, false)
	r.message("Game Over", hardware.Red, -30)
}

// LEDs sets the state of the two LEDs.
func (r *Renderer) LEDs(red bool, yellow bool) {
	r.pins.DigitalWrite(r.red, hardware.Level(red))
	r.pins.DigitalWrite(r.yellow, hardware.Level(yellow))
}

// Present tells the display that the frame is complete, if the display needs
// to be told.
func (r *Renderer) Present() error {
	if p, ok := r.display.(hardware.Presenter); ok {
		return p.Present()
	}
	return nil
}

// message clears the screen and prints a single line of text, offset
// horizontally from the centre of the display.
func (r *Renderer) message(text string, c hardware.Colour, offset int) {
	d := r.display
	d.Clear(hardware.Black)
	d.SetTextColour(c)
	d.SetCursor(d.Width()/2+offset, d.Height()/2-10)
	d.SetTextSize(1)
	d.Print(text)
}
