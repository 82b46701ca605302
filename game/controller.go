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

package game

import (
	"github.com/oledout/oledout/board"
	"github.com/oledout/oledout/curated"
	"github.com/oledout/oledout/game/input"
	"github.com/oledout/oledout/game/melody"
	"github.com/oledout/oledout/game/render"
	"github.com/oledout/oledout/game/session"
	"github.com/oledout/oledout/hardware"
	"github.com/oledout/oledout/logger"
	"github.com/oledout/oledout/notifications"
)

// Sentinel error patterns returned by the package.
const (
	IncompleteBoard = "game: incomplete board: no %s"
	NotifyError     = "game: notification: %v"
)

// Controller is the game state machine.
type Controller struct {
	board   hardware.Board
	profile board.Profile

	// the session is exported for the benefit of debugging tools. it should
	// not be changed except by the controller
	Session *session.Session

	sampler  *input.Sampler
	renderer *render.Renderer

	// non-nil while a melody is being played cooperatively
	player *melody.Player

	// optional front-end that wants notices of game events
	notify notifications.Notify

	// the first error returned by the notify function. returned by the next
	// call to Service()
	notifyErr error

	// number of ticks since the controller was created
	ticks int

	logging bool
}

// NewController is the preferred method of initialisation for the Controller
// type. All four of the board's collaborators must be present.
func NewController(hw hardware.Board, prf board.Profile) (*Controller, error) {
	switch {
	case hw.Display == nil:
		return nil, curated.Errorf(IncompleteBoard, "display")
	case hw.Tone == nil:
		return nil, curated.Errorf(IncompleteBoard, "tone generator")
	case hw.Pins == nil:
		return nil, curated.Errorf(IncompleteBoard, "pins")
	case hw.Clock == nil:
		return nil, curated.Errorf(IncompleteBoard, "clock")
	}

	if err := prf.Validate(); err != nil {
		return nil, err
	}

	ctl := &Controller{
		board:   hw,
		profile: prf,
		Session: session.NewSession(hw.Display.Width(), hw.Display.Height()),
		logging: true,
	}

	ctl.sampler = input.NewSampler(hw.Pins, input.Config{
		StartReset:  hardware.Pin(prf.Pins.StartReset),
		PauseResume: hardware.Pin(prf.Pins.PauseResume),
		Axis:        hardware.Pin(prf.Pins.JoystickX),
		Debounce:    prf.Debounce.Duration,
		PaddleSpan:  ctl.Session.MaxPaddleX(),
	})

	ctl.renderer = render.NewRenderer(hw.Display, hw.Pins,
		hardware.Pin(prf.Pins.RedLED), hardware.Pin(prf.Pins.YellowLED))
	ctl.renderer.LEDs(false, false)

	if n, ok := hw.Pins.(notifications.Notify); ok {
		ctl.notify = n
	} else if n, ok := hw.Display.(notifications.Notify); ok {
		ctl.notify = n
	}

	logger.Logf(ctl, "game", "controller for %s", prf)

	return ctl, nil
}

// AllowLogging implements the logger.Permission interface.
func (ctl *Controller) AllowLogging() bool {
	return ctl.logging
}

// SetLogging turns logging by the controller on or off.
func (ctl *Controller) SetLogging(allow bool) {
	ctl.logging = allow
}

// SetNotify sets the receiver of game notices. This replaces any receiver
// found by NewController(). A nil value turns notices off.
func (ctl *Controller) SetNotify(n notifications.Notify) {
	ctl.notify = n
}

// Ticks returns the number of times Tick() has been called.
func (ctl *Controller) Ticks() int {
	return ctl.ticks
}

// PlayingMelody returns true if a melody is being played cooperatively.
func (ctl *Controller) PlayingMelody() bool {
	return ctl.player != nil && !ctl.player.Finished()
}

// Profile returns the board profile used by the controller.
func (ctl *Controller) Profile() board.Profile {
	return ctl.profile
}

func (ctl *Controller) notice(n notifications.Notice) {
	if ctl.notify == nil {
		return
	}
	if err := ctl.notify.Notify(n); err != nil && ctl.notifyErr == nil {
		ctl.notifyErr = curated.Errorf(NotifyError, err)
	}
}
