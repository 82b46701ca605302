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

package limiter_test

import (
	"testing"
	"time"

	"github.com/oledout/oledout/hardware/virtual"
	"github.com/oledout/oledout/limiter"
	"github.com/oledout/oledout/test"
)

// tolerance of measurement
const measurementTolerance = 0.01

func TestPacing(t *testing.T) {
	clk := virtual.NewClock(time.Now())
	lmtr := limiter.NewLimiter(clk)
	start := clk.Now()

	for range 100 {
		lmtr.Wait(30 * time.Millisecond)
		lmtr.MeasureActual()
	}
	test.ExpectEquality(t, clk.Now().Sub(start), 3*time.Second)

	rate := lmtr.Measured.Load().(float32)
	test.ExpectApproximate(t, rate, float32(1000.0/30.0), measurementTolerance)
}

func TestWorkIsSubtracted(t *testing.T) {
	clk := virtual.NewClock(time.Now())
	lmtr := limiter.NewLimiter(clk)
	start := clk.Now()

	// each frame takes 10ms of work before the wait
	for range 10 {
		clk.Advance(10 * time.Millisecond)
		lmtr.Wait(30 * time.Millisecond)
	}
	test.ExpectEquality(t, clk.Now().Sub(start), 300*time.Millisecond)

	// a frame that overruns resets the schedule
	clk.Advance(50 * time.Millisecond)
	lmtr.Wait(30 * time.Millisecond)
	test.ExpectEquality(t, clk.Now().Sub(start), 350*time.Millisecond)
	lmtr.Wait(30 * time.Millisecond)
	test.ExpectEquality(t, clk.Now().Sub(start), 380*time.Millisecond)
}

func TestZeroWait(t *testing.T) {
	clk := virtual.NewClock(time.Now())
	lmtr := limiter.NewLimiter(clk)
	start := clk.Now()

	for range 1000 {
		lmtr.Wait(0)
	}
	test.ExpectEquality(t, clk.Now(), start)
}

func TestInactive(t *testing.T) {
	clk := virtual.NewClock(time.Now())
	lmtr := limiter.NewLimiter(clk)
	start := clk.Now()

	lmtr.Active = false
	lmtr.Wait(time.Second)
	lmtr.Wait(time.Second)
	test.ExpectEquality(t, clk.Now(), start)

	// the schedule restarts from the time of the last inactive wait
	lmtr.Active = true
	lmtr.Wait(time.Second)
	test.ExpectEquality(t, clk.Now().Sub(start), time.Second)
}
