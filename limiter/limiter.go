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

package limiter

import (
	"sync/atomic"
	"time"

	"github.com/oledout/oledout/hardware"
)

// how often the frame rate is measured
const measurementPeriod = time.Second

// Limiter paces the game loop.
type Limiter struct {
	// whether to wait at all. an inactive limiter still measures the frame
	// rate
	Active bool

	clock hardware.Clock

	// the time at which the previous wait ended
	last time.Time

	// number of frames since the previous measurement and the time of that
	// measurement
	measureTime time.Time
	measureCt   int

	// the measured number of frames per second
	Measured atomic.Value // float32
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The clock is used for both measuring and sleeping.
func NewLimiter(clock hardware.Clock) *Limiter {
	lmtr := &Limiter{
		Active: true,
		clock:  clock,
	}
	lmtr.Measured.Store(float32(0.0))
	lmtr.last = clock.Now()
	lmtr.measureTime = lmtr.last
	return lmtr
}

// Wait should be called once per frame with the amount of time to wait after
// the frame. A wait of zero or less returns immediately.
func (lmtr *Limiter) Wait(d time.Duration) {
	lmtr.measureCt++

	if !lmtr.Active || d <= 0 {
		lmtr.last = lmtr.clock.Now()
		return
	}

	deadline := lmtr.last.Add(d)
	now := lmtr.clock.Now()
	if deadline.After(now) {
		lmtr.clock.Sleep(deadline.Sub(now))
		lmtr.last = deadline
	} else {
		lmtr.last = now
	}
}

// MeasureActual updates the Measured field once per measurement period.
func (lmtr *Limiter) MeasureActual() {
	t := lmtr.clock.Now()
	elapsed := t.Sub(lmtr.measureTime)
	if elapsed < measurementPeriod {
		return
	}

	m := float32(lmtr.measureCt) / float32(elapsed.Seconds())
	lmtr.Measured.Store(m)

	// reset time and count ready for next measurement
	lmtr.measureTime = t
	lmtr.measureCt = 0
}
