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

package input

import (
	"time"

	"github.com/oledout/oledout/hardware"
)

// AxisMax is the largest raw value returned by the joystick's ADC.
const AxisMax = 1023

// MapAxis converts a raw axis value to a position in the range [0, span].
// Raw values outside of the range [0, AxisMax] are clamped. The mapping uses
// integer arithmetic and so rounds towards zero.
func MapAxis(raw int, span int) int {
	raw = max(0, min(raw, AxisMax))
	return raw * span / AxisMax
}

type button struct {
	pin hardware.Pin

	// level seen on the previous sample
	level hardware.Level

	// time of the most recent reported press. the zero value means that
	// there has been no press yet
	pressed time.Time
}

// sample returns true if a debounced press has occurred since the previous
// sample.
func (b *button) sample(pins hardware.Pins, now time.Time, debounce time.Duration) bool {
	level := pins.DigitalRead(b.pin)
	edge := b.level == hardware.High && level == hardware.Low
	b.level = level

	if !edge {
		return false
	}
	if !b.pressed.IsZero() && now.Sub(b.pressed) < debounce {
		return false
	}
	b.pressed = now
	return true
}

// Config specifies which pins the sampler reads.
type Config struct {
	StartReset  hardware.Pin
	PauseResume hardware.Pin
	Axis        hardware.Pin

	Debounce time.Duration

	// the largest value the paddle position can take
	PaddleSpan int
}

// Sample is the result of one call to Sampler.Sample().
type Sample struct {
	StartReset  bool
	PauseResume bool

	// paddle position mapped from the joystick axis
	PaddleX int
}

// Sampler reads the buttons and joystick.
type Sampler struct {
	pins hardware.Pins
	cfg  Config

	startReset  button
	pauseResume button
}

// NewSampler is the preferred method of initialisation for the Sampler type.
func NewSampler(pins hardware.Pins, cfg Config) *Sampler {
	return &Sampler{
		pins: pins,
		cfg:  cfg,
		startReset: button{
			pin:   cfg.StartReset,
			level: hardware.High,
		},
		pauseResume: button{
			pin:   cfg.PauseResume,
			level: hardware.High,
		},
	}
}

// Sample the buttons and the joystick. The time should be monotonic.
func (s *Sampler) Sample(now time.Time) Sample {
	return Sample{
		StartReset:  s.startReset.sample(s.pins, now, s.cfg.Debounce),
		PauseResume: s.pauseResume.sample(s.pins, now, s.cfg.Debounce),
		PaddleX:     MapAxis(s.pins.AnalogRead(s.cfg.Axis), s.cfg.PaddleSpan),
	}
}
