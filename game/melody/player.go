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

package melody

import (
	"time"

	"github.com/oledout/oledout/hardware"
)

// Player plays a melody one event at a time.
type Player struct {
	tone   hardware.ToneGenerator
	melody Melody

	// index of the current note
	index int

	// the current note is sounding. when false the player is in the pause
	// after the note
	sounding bool

	// the time of the next event
	next time.Time

	finished bool
}

// NewPlayer is the preferred method of initialisation for the Player type. The
// first note is started immediately.
func NewPlayer(tone hardware.ToneGenerator, melody Melody, now time.Time) *Player {
	p := &Player{
		tone:   tone,
		melody: melody,
		next:   now,
	}
	if len(melody.Notes) == 0 {
		p.finished = true
		return p
	}
	p.startNote()
	return p
}

func (p *Player) startNote() {
	n := p.melody.Notes[p.index]
	p.tone.Tone(n.Frequency, n.Length())
	p.sounding = true
	p.next = p.next.Add(n.Silence())
}

// Advance processes every event that is due at or before the time. It
// returns the time remaining until the next event and whether the melody has
// finished. Events are scheduled relative to one another and not to the time
// Advance() is called, so a late call does not stretch the melody.
func (p *Player) Advance(now time.Time) (time.Duration, bool) {
	for !p.finished && !now.Before(p.next) {
		if p.sounding {
			p.tone.Stop()
			p.sounding = false
			p.next = p.next.Add(Pause)
			continue
		}

		p.index++
		if p.index >= len(p.melody.Notes) {
			p.finished = true
			break
		}
		p.startNote()
	}

	if p.finished {
		return 0, true
	}
	return p.next.Sub(now), false
}

// Finished returns true if the melody has finished.
func (p *Player) Finished() bool {
	return p.finished
}

// Melody returns the melody being played.
func (p *Player) Melody() Melody {
	return p.melody
}

// Abandon stops the buzzer and marks the melody as finished.
func (p *Player) Abandon() {
	if !p.finished {
		p.tone.Stop()
		p.finished = true
	}
}

// Play the melody from start to finish, sleeping on the clock between events.
func Play(tone hardware.ToneGenerator, clock hardware.Clock, melody Melody) {
	p := NewPlayer(tone, melody, clock.Now())
	for {
		wait, finished := p.Advance(clock.Now())
		if finished {
			return
		}
		clock.Sleep(wait)
	}
}
