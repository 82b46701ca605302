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

package melody_test

import (
	"testing"
	"time"

	"github.com/oledout/oledout/game/melody"
	"github.com/oledout/oledout/hardware/virtual"
	"github.com/oledout/oledout/test"
)

var start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestNoteTiming(t *testing.T) {
	n := melody.Note{Frequency: melody.C5, Divisor: melody.Quarter}
	test.ExpectEquality(t, n.Length(), 250*time.Millisecond)
	test.ExpectEquality(t, n.Silence(), 325*time.Millisecond)

	n = melody.Note{Frequency: melody.C4, Divisor: melody.Eighth}
	test.ExpectEquality(t, n.Length(), 125*time.Millisecond)
	test.ExpectEquality(t, n.Silence(), 162*time.Millisecond)
}

func TestMelodies(t *testing.T) {
	test.ExpectEquality(t, len(melody.Congratulations.Notes), 10)
	test.ExpectEquality(t, len(melody.GameOver.Notes), 13)
	test.ExpectEquality(t, melody.Congratulations.Duration(), 10*425*time.Millisecond)
	test.ExpectEquality(t, melody.GameOver.Duration(), (10*262+3*425)*time.Millisecond)
}

func TestBlockingPlay(t *testing.T) {
	clk := virtual.NewClock(start)
	bzr := virtual.NewBuzzer(clk)

	melody.Play(bzr, clk, melody.GameOver)
	test.ExpectEquality(t, clk.Now().Sub(start), melody.GameOver.Duration())
	test.ExpectEquality(t, len(bzr.Events), 2*len(melody.GameOver.Notes))

	// the first note, its silence and the start of the second note
	test.ExpectEquality(t, bzr.Events[0], virtual.ToneEvent{At: start, Frequency: melody.C4, Duration: 125 * time.Millisecond})
	test.ExpectEquality(t, bzr.Events[1].IsStop(), true)
	test.ExpectEquality(t, bzr.Events[1].At, start.Add(162*time.Millisecond))
	test.ExpectEquality(t, bzr.Events[2].Frequency, melody.G3)
	test.ExpectEquality(t, bzr.Events[2].At, start.Add(262*time.Millisecond))

	// last event is a stop
	test.ExpectEquality(t, bzr.Events[len(bzr.Events)-1].IsStop(), true)
}

func TestCooperativePlay(t *testing.T) {
	clk := virtual.NewClock(start)
	bzr := virtual.NewBuzzer(clk)

	p := melody.NewPlayer(bzr, melody.Congratulations, clk.Now())
	test.ExpectEquality(t, p.Finished(), false)
	test.ExpectEquality(t, len(bzr.Events), 1)

	// advance in uneven steps. the melody ends on schedule regardless
	var ticks int
	for {
		clk.Advance(30 * time.Millisecond)
		ticks++
		_, finished := p.Advance(clk.Now())
		if finished {
			break
		}
		test.DemandEquality(t, ticks < 1000, true)
	}
	elapsed := clk.Now().Sub(start)
	test.ExpectEquality(t, elapsed >= melody.Congratulations.Duration(), true)
	test.ExpectEquality(t, elapsed < melody.Congratulations.Duration()+30*time.Millisecond, true)

	var expected []int
	for _, n := range melody.Congratulations.Notes {
		expected = append(expected, n.Frequency)
	}
	tones := bzr.Tones()
	test.ExpectEquality(t, len(tones), len(expected))
	for i := range expected {
		test.ExpectEquality(t, tones[i], expected[i])
	}
}

func TestAdvanceReportsWait(t *testing.T) {
	clk := virtual.NewClock(start)
	bzr := virtual.NewBuzzer(clk)

	p := melody.NewPlayer(bzr, melody.Congratulations, clk.Now())
	wait, finished := p.Advance(clk.Now())
	test.ExpectEquality(t, finished, false)
	test.ExpectEquality(t, wait, 325*time.Millisecond)

	clk.Advance(wait)
	wait, _ = p.Advance(clk.Now())
	test.ExpectEquality(t, wait, melody.Pause)
	test.ExpectEquality(t, bzr.Events[len(bzr.Events)-1].IsStop(), true)
}

func TestAbandon(t *testing.T) {
	clk := virtual.NewClock(start)
	bzr := virtual.NewBuzzer(clk)

	p := melody.NewPlayer(bzr, melody.GameOver, clk.Now())
	p.Abandon()
	test.ExpectEquality(t, p.Finished(), true)
	test.ExpectEquality(t, bzr.Events[len(bzr.Events)-1].IsStop(), true)

	_, finished := p.Advance(clk.Now().Add(time.Hour))
	test.ExpectEquality(t, finished, true)
	test.ExpectEquality(t, len(bzr.Events), 2)
}
