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

package autopilot

import (
	"github.com/oledout/oledout/board"
	"github.com/oledout/oledout/game/input"
	"github.com/oledout/oledout/game/session"
	"github.com/oledout/oledout/hardware"
)

// Pins implements the hardware.Pins interface.
type Pins struct {
	pins board.Pins
	s    *session.Session

	// the start button alternates between pressed and released on every read
	// while the game is waiting to start
	pressed bool

	// the levels most recently written to output pins
	levels map[hardware.Pin]hardware.Level

	// the game was waiting to start when the start button was last read
	waiting bool

	// number of games started. a game is counted when the start button is
	// first read after the game has left the NotStarted state
	Starts int
}

// NewPins is the preferred method of initialisation for the Pins type. The
// autopilot does nothing until Attach() has been called.
func NewPins(pins board.Pins) *Pins {
	return &Pins{
		pins:   pins,
		levels: make(map[hardware.Pin]hardware.Level),
	}
}

// Attach the autopilot to the session it is to play.
func (p *Pins) Attach(s *session.Session) {
	p.s = s
}

// DigitalRead implements the hardware.Pins interface.
func (p *Pins) DigitalRead(pin hardware.Pin) hardware.Level {
	switch pin {
	case hardware.Pin(p.pins.StartReset):
		if p.s == nil {
			return hardware.High
		}
		if p.s.State != session.NotStarted {
			if p.waiting {
				p.Starts++
			}
			p.waiting = false
			p.pressed = false
			return hardware.High
		}
		p.waiting = true
		p.pressed = !p.pressed
		if p.pressed {
			return hardware.Low
		}
		return hardware.High
	case hardware.Pin(p.pins.PauseResume):
		return hardware.High
	}

	if l, ok := p.levels[pin]; ok {
		return l
	}
	return hardware.High
}

// DigitalWrite implements the hardware.Pins interface.
func (p *Pins) DigitalWrite(pin hardware.Pin, level hardware.Level) {
	p.levels[pin] = level
}

// AnalogRead implements the hardware.Pins interface. The joystick is read as
// the value that puts the centre of the paddle under the centre of the ball.
func (p *Pins) AnalogRead(pin hardware.Pin) int {
	if pin != hardware.Pin(p.pins.JoystickX) || p.s == nil {
		return 0
	}

	span := p.s.MaxPaddleX()
	if span <= 0 {
		return 0
	}

	x, _ := p.s.Ball.Pixel()
	target := x + session.BallSize/2 - session.PaddleWidth/2
	target = max(0, min(span, target))

	// round up so that the mapping back to the paddle position lands exactly
	// on the target
	return (target*input.AxisMax + span - 1) / span
}
