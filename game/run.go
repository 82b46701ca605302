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
	"context"

	"github.com/oledout/oledout/hardware"
	"github.com/oledout/oledout/limiter"
	"github.com/oledout/oledout/logger"
)

// Run the game loop until the context is cancelled or the board reports an
// error. Boards that implement the hardware.Servicer interface are serviced
// once per tick, before the tick.
//
// A board that has been switched off returns an error with the
// hardware.PowerOff pattern. Run() returns that error unchanged so the caller
// can decide whether it is really an error.
func (ctl *Controller) Run(ctx context.Context, lmtr *limiter.Limiter) error {
	svc, _ := ctl.board.Pins.(hardware.Servicer)
	if svc == nil {
		svc, _ = ctl.board.Display.(hardware.Servicer)
	}

	for {
		select {
		case <-ctx.Done():
			ctl.abandonMelody()
			return ctx.Err()
		default:
		}

		if svc != nil {
			if err := svc.Service(); err != nil {
				ctl.abandonMelody()
				return err
			}
		}

		if ctl.notifyErr != nil {
			return ctl.notifyErr
		}

		lmtr.Wait(ctl.Tick())
		lmtr.MeasureActual()
	}
}

// a melody interrupted by the end of the loop must not leave the buzzer
// sounding
func (ctl *Controller) abandonMelody() {
	if ctl.PlayingMelody() {
		logger.Logf(ctl, "melody", "%s abandoned", ctl.player.Melody())
		ctl.player.Abandon()
	}
}

// RunFor runs the game loop for the number of ticks. It is intended for
// headless use, where the limiter is usually driven by a virtual clock.
func (ctl *Controller) RunFor(ticks int, lmtr *limiter.Limiter) error {
	for range ticks {
		if ctl.notifyErr != nil {
			return ctl.notifyErr
		}
		lmtr.Wait(ctl.Tick())
		lmtr.MeasureActual()
	}
	return nil
}
