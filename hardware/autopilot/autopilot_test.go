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

package autopilot_test

import (
	"testing"
	"time"

	"github.com/oledout/oledout/board"
	"github.com/oledout/oledout/game"
	"github.com/oledout/oledout/game/input"
	"github.com/oledout/oledout/game/session"
	"github.com/oledout/oledout/hardware"
	"github.com/oledout/oledout/hardware/autopilot"
	"github.com/oledout/oledout/hardware/framebuffer"
	"github.com/oledout/oledout/hardware/gfx"
	"github.com/oledout/oledout/hardware/virtual"
	"github.com/oledout/oledout/limiter"
	"github.com/oledout/oledout/test"
)

func TestAxisTracksBall(t *testing.T) {
	prf := board.Default()
	pins := autopilot.NewPins(prf.Pins)
	axis := hardware.Pin(prf.Pins.JoystickX)

	// nothing to track
	test.ExpectEquality(t, pins.AnalogRead(axis), 0)

	s := session.NewSession(96, 64)
	pins.Attach(s)

	for x := 0; x < 96; x++ {
		s.Ball.X = float64(x)
		target := max(0, min(s.MaxPaddleX(), x+session.BallSize/2-session.PaddleWidth/2))
		test.ExpectEquality(t, input.MapAxis(pins.AnalogRead(axis), s.MaxPaddleX()), target, x)
	}
}

func TestStartButton(t *testing.T) {
	prf := board.Default()
	pins := autopilot.NewPins(prf.Pins)
	start := hardware.Pin(prf.Pins.StartReset)

	s := session.NewSession(96, 64)
	pins.Attach(s)

	test.ExpectEquality(t, pins.DigitalRead(start), hardware.Low)
	test.ExpectEquality(t, pins.DigitalRead(start), hardware.High)
	test.ExpectEquality(t, pins.DigitalRead(start), hardware.Low)

	// presses are not games
	test.ExpectEquality(t, pins.Starts, 0)

	s.State = session.Playing
	test.ExpectEquality(t, pins.DigitalRead(start), hardware.High)
	test.ExpectEquality(t, pins.DigitalRead(hardware.Pin(prf.Pins.PauseResume)), hardware.High)
	test.ExpectEquality(t, pins.Starts, 1)

	// the end of a game is not a start
	s.State = session.Lost
	test.ExpectEquality(t, pins.DigitalRead(start), hardware.High)
	test.ExpectEquality(t, pins.Starts, 1)

	// the next game
	s.State = session.NotStarted
	test.ExpectEquality(t, pins.DigitalRead(start), hardware.Low)
	s.State = session.Playing
	test.ExpectEquality(t, pins.DigitalRead(start), hardware.High)
	test.ExpectEquality(t, pins.Starts, 2)
}

func TestPlaysWithoutLosing(t *testing.T) {
	prf := board.Default()
	clk := virtual.NewClock(time.Now())
	pins := autopilot.NewPins(prf.Pins)

	ctl, err := game.NewController(hardware.Board{
		Display: gfx.NewCanvas(framebuffer.NewFramebuffer(96, 64)),
		Tone:    virtual.NewBuzzer(clk),
		Pins:    pins,
		Clock:   clk,
	}, prf)
	test.DemandSuccess(t, err)
	ctl.SetLogging(false)
	pins.Attach(ctl.Session)

	test.ExpectSuccess(t, ctl.RunFor(300, limiter.NewLimiter(clk)))
	test.ExpectEquality(t, pins.Starts, 1)
	test.ExpectEquality(t, ctl.Session.State, session.Playing)
	test.ExpectEquality(t, ctl.Session.Lives, session.InitialLives)
	test.ExpectInequality(t, ctl.Session.Score, 0)
}
