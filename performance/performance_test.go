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

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/oledout/oledout/board"
	"github.com/oledout/oledout/performance"
	"github.com/oledout/oledout/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("cpu, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfile("cpu,disk")
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, performance.ProfileFilename("performance", performance.ProfileCPU), "performance_cpu.profile")
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(330, 10*time.Second, 30*time.Millisecond)
	test.ExpectApproximate(t, fps, 33.0, 0.001)
	test.ExpectApproximate(t, accuracy, 99.0, 0.001)

	fps, accuracy = performance.CalcFPS(100, 0, 30*time.Millisecond)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestRunProfilerNone(t *testing.T) {
	ran := false
	err := performance.RunProfiler(performance.ProfileNone, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ran, true)
}

func TestCheck(t *testing.T) {
	var out strings.Builder
	err := performance.Check(&out, performance.ProfileNone, board.Default(), 100*time.Millisecond, true)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), " fps ("))
	test.ExpectSuccess(t, strings.Contains(out.String(), "starts 1"))

	err = performance.Check(&out, performance.ProfileNone, board.Default(), 0, true)
	test.ExpectFailure(t, err)
}
