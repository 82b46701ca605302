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

package render_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/oledout/oledout/game/bricks"
	"github.com/oledout/oledout/game/render"
	"github.com/oledout/oledout/game/session"
	"github.com/oledout/oledout/hardware"
	"github.com/oledout/oledout/hardware/virtual"
	"github.com/oledout/oledout/test"
)

const (
	redLED    = hardware.Pin(5)
	yellowLED = hardware.Pin(6)
)

// display records every call as a line of text
type display struct {
	calls     []string
	presented int
}

func (d *display) record(f string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(f, args...))
}

func (d *display) Clear(c hardware.Colour) {
	d.record("clear %04x", uint16(c))
}

func (d *display) FillRect(x, y, w, h int, c hardware.Colour) {
	d.record("rect %d %d %d %d %04x", x, y, w, h, uint16(c))
}

func (d *display) FillTriangle(x0, y0, x1, y1, x2, y2 int, c hardware.Colour) {
	d.record("tri %d %d %d %d %d %d %04x", x0, y0, x1, y1, x2, y2, uint16(c))
}

func (d *display) SetCursor(x, y int) {
	d.record("cursor %d %d", x, y)
}

func (d *display) SetTextColour(c hardware.Colour) {
	d.record("colour %04x", uint16(c))
}

func (d *display) SetTextSize(n int) {
	d.record("size %d", n)
}

func (d *display) Print(s string) {
	d.record("print %s", s)
}

func (d *display) Width() int {
	return session.ScreenWidth
}

func (d *display) Height() int {
	return session.ScreenHeight
}

func (d *display) Present() error {
	d.presented++
	return nil
}

func (d *display) count(prefix string) int {
	var n int
	for _, c := range d.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (d *display) contains(call string) bool {
	for _, c := range d.calls {
		if c == call {
			return true
		}
	}
	return false
}

func TestStartPrompt(t *testing.T) {
	d := &display{}
	r := render.NewRenderer(d, virtual.NewPins(), redLED, yellowLED)
	s := session.NewSession(session.ScreenWidth, session.ScreenHeight)

	r.Frame(s)
	test.ExpectEquality(t, strings.Join(d.calls, "\n"), strings.Join([]string{
		"clear 0000",
		"colour ffff",
		"cursor 18 22",
		"size 1",
		"print Press Start",
	}, "\n"))
}

func TestPausePrompt(t *testing.T) {
	d := &display{}
	r := render.NewRenderer(d, virtual.NewPins(), redLED, yellowLED)
	s := session.NewSession(session.ScreenWidth, session.ScreenHeight)
	s.State = session.Paused

	r.Frame(s)
	test.ExpectEquality(t, d.calls[0], "clear 0000")
	test.ExpectEquality(t, d.contains("print Paused"), true)
	test.ExpectEquality(t, d.contains("cursor 18 22"), true)
}

func TestScene(t *testing.T) {
	d := &display{}
	r := render.NewRenderer(d, virtual.NewPins(), redLED, yellowLED)
	s := session.NewSession(session.ScreenWidth, session.ScreenHeight)
	s.State = session.Playing
	s.Score = 30
	s.Lives = 2
	s.Ball.X = 10.4
	s.Ball.Y = 20.6
	s.Bricks.Destroy(bricks.Cell{Row: 0, Column: 0})

	r.Frame(s)
	test.ExpectEquality(t, d.calls[0], "clear 0000")
	test.ExpectEquality(t, d.calls[1], "rect 38 58 20 4 ffff")
	test.ExpectEquality(t, d.calls[2], "rect 10 21 3 3 ffff")
	test.ExpectEquality(t, d.contains("rect 0 12 14 5 ffff"), false)
	test.ExpectEquality(t, d.contains("rect 16 12 14 5 ffff"), true)
	test.ExpectEquality(t, d.contains("print Score: 30"), true)

	// paddle + ball + remaining bricks + a rectangle for each heart
	test.ExpectEquality(t, d.count("rect"), 2+bricks.Rows*bricks.Columns-1+2)
	test.ExpectEquality(t, d.count("tri"), 4)

	// hearts are right aligned
	test.ExpectEquality(t, d.contains("tri 89 0 91 2 87 2 f800"), true)
	test.ExpectEquality(t, d.contains("tri 82 0 84 2 80 2 f800"), true)
}

func TestHeart(t *testing.T) {
	d := &display{}
	r := render.NewRenderer(d, virtual.NewPins(), redLED, yellowLED)

	r.Heart(10, 0, render.HeartSize, hardware.Red)
	test.ExpectEquality(t, strings.Join(d.calls, "\n"), strings.Join([]string{
		"tri 10 0 12 2 8 2 f800",
		"tri 10 2 12 5 8 5 f800",
		"rect 8 1 5 2 f800",
	}, "\n"))
}

func TestBanners(t *testing.T) {
	d := &display{}
	p := virtual.NewPins()
	r := render.NewRenderer(d, p, redLED, yellowLED)

	r.Won()
	test.ExpectEquality(t, d.contains("colour 07e0"), true)
	test.ExpectEquality(t, d.contains("cursor -2 22"), true)
	test.ExpectEquality(t, d.contains("print YOU WON!!!"), true)
	test.ExpectEquality(t, p.DigitalRead(redLED), hardware.Low)
	test.ExpectEquality(t, p.DigitalRead(yellowLED), hardware.High)

	d.calls = d.calls[:0]
	r.Lost()
	test.ExpectEquality(t, d.contains("colour f800"), true)
	test.ExpectEquality(t, d.contains("print Game Over"), true)
	test.ExpectEquality(t, p.DigitalRead(redLED), hardware.High)
	test.ExpectEquality(t, p.DigitalRead(yellowLED), hardware.Low)

	// banners are not drawn by Frame()
	d.calls = d.calls[:0]
	s := session.NewSession(session.ScreenWidth, session.ScreenHeight)
	s.State = session.Lost
	r.Frame(s)
	test.ExpectEquality(t, len(d.calls), 0)
}

func TestPresent(t *testing.T) {
	d := &display{}
	r := render.NewRenderer(d, virtual.NewPins(), redLED, yellowLED)
	test.ExpectSuccess(t, r.Present())
	test.ExpectEquality(t, d.presented, 1)
}
