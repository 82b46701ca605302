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

package virtual

import (
	"fmt"
	"time"

	"github.com/oledout/oledout/hardware"
)

// Clock is a hardware.Clock that only moves when told to.
type Clock struct {
	now time.Time
}

// NewClock is the preferred method of initialisation for the Clock type.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now implements the hardware.Clock interface.
func (c *Clock) Now() time.Time {
	return c.now
}

// Sleep implements the hardware.Clock interface. The clock is advanced by
// the duration.
func (c *Clock) Sleep(d time.Duration) {
	c.Advance(d)
}

// Advance the clock. Negative durations are ignored.
func (c *Clock) Advance(d time.Duration) {
	if d > 0 {
		c.now = c.now.Add(d)
	}
}

// ToneEvent is a single call to the Tone() or Stop() functions.
type ToneEvent struct {
	// time of the event
	At time.Time

	// the frequency and duration of the tone. both are zero for a Stop event
	Frequency int
	Duration  time.Duration
}

// IsStop returns true if the event silenced the buzzer.
func (e ToneEvent) IsStop() bool {
	return e.Frequency == 0
}

func (e ToneEvent) String() string {
	if e.IsStop() {
		return "stop"
	}
	return fmt.Sprintf("%dHz %v", e.Frequency, e.Duration)
}

// Buzzer is a hardware.ToneGenerator that records every event.
type Buzzer struct {
	clock  hardware.Clock
	Events []ToneEvent
}

// NewBuzzer is the preferred method of initialisation for the Buzzer type.
// Events are timestamped with the clock.
func NewBuzzer(clock hardware.Clock) *Buzzer {
	return &Buzzer{clock: clock}
}

// Tone implements the hardware.ToneGenerator interface.
func (b *Buzzer) Tone(frequency int, duration time.Duration) {
	b.Events = append(b.Events, ToneEvent{
		At:        b.clock.Now(),
		Frequency: frequency,
		Duration:  duration,
	})
}

// Stop implements the hardware.ToneGenerator interface.
func (b *Buzzer) Stop() {
	b.Events = append(b.Events, ToneEvent{At: b.clock.Now()})
}

// Tones returns the frequencies of every Tone event, in order.
func (b *Buzzer) Tones() []int {
	var f []int
	for _, e := range b.Events {
		if !e.IsStop() {
			f = append(f, e.Frequency)
		}
	}
	return f
}

// Pins is a hardware.Pins implementation with levels that are set directly.
// Unset digital pins read High, as an unpressed button does.
type Pins struct {
	levels map[hardware.Pin]hardware.Level
	analog map[hardware.Pin]int
}

// NewPins is the preferred method of initialisation for the Pins type.
func NewPins() *Pins {
	return &Pins{
		levels: make(map[hardware.Pin]hardware.Level),
		analog: make(map[hardware.Pin]int),
	}
}

// DigitalRead implements the hardware.Pins interface.
func (p *Pins) DigitalRead(pin hardware.Pin) hardware.Level {
	if l, ok := p.levels[pin]; ok {
		return l
	}
	return hardware.High
}

// DigitalWrite implements the hardware.Pins interface.
func (p *Pins) DigitalWrite(pin hardware.Pin, level hardware.Level) {
	p.levels[pin] = level
}

// AnalogRead implements the hardware.Pins interface.
func (p *Pins) AnalogRead(pin hardware.Pin) int {
	return p.analog[pin]
}

// SetAnalog sets the value returned by AnalogRead() for the pin.
func (p *Pins) SetAnalog(pin hardware.Pin, v int) {
	p.analog[pin] = v
}

// Press sets the pin to Low.
func (p *Pins) Press(pin hardware.Pin) {
	p.levels[pin] = hardware.Low
}

// Release sets the pin to High.
func (p *Pins) Release(pin hardware.Pin) {
	p.levels[pin] = hardware.High
}
