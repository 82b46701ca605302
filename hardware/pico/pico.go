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

//go:build tinygo && pico

package pico

import (
	"machine"
	"time"

	"github.com/oledout/oledout/board"
	"github.com/oledout/oledout/curated"
	"github.com/oledout/oledout/hardware"
	"github.com/oledout/oledout/hardware/gfx"
	"tinygo.org/x/drivers/ssd1331"
	"tinygo.org/x/drivers/tone"
)

// SPI pins for the display.
const (
	displaySCK   = machine.GP18
	displaySDO   = machine.GP19
	displayReset = machine.GP22
	displayDC    = machine.GP17
	displayCS    = machine.GP13
)

// Profile returns the profile of the reference Pico board.
func Profile() board.Profile {
	prf := board.Default()
	prf.Name = "pico-ssd1331"
	prf.Pins = board.Pins{
		StartReset:  14,
		PauseResume: 15,
		JoystickX:   26,
		Buzzer:      16,
		RedLED:      20,
		YellowLED:   21,
	}
	return prf
}

// Board implements the hardware.Pins, hardware.ToneGenerator and
// hardware.Servicer interfaces.
type Board struct {
	display ssd1331.Device
	canvas  *gfx.Canvas

	speaker tone.Speaker

	// the time at which the sounding tone should stop. zero if no tone is
	// sounding
	until time.Time

	adc map[hardware.Pin]machine.ADC
}

// NewBoard is the preferred method of initialisation for the Board type. All
// pins named in the profile are configured.
func NewBoard(prf board.Profile) (*Board, error) {
	b := &Board{
		adc: make(map[hardware.Pin]machine.ADC),
	}

	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 16000000,
		SCK:       displaySCK,
		SDO:       displaySDO,
	})
	b.display = ssd1331.New(machine.SPI0, displayReset, displayDC, displayCS)
	b.display.Configure(ssd1331.Config{
		Width:  int16(prf.Display.Width),
		Height: int16(prf.Display.Height),
	})
	b.canvas = gfx.NewCanvas(&b.display)

	for _, p := range []board.Pin{prf.Pins.StartReset, prf.Pins.PauseResume} {
		machine.Pin(p).Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	for _, p := range []board.Pin{prf.Pins.RedLED, prf.Pins.YellowLED} {
		machine.Pin(p).Configure(machine.PinConfig{Mode: machine.PinOutput})
	}

	machine.InitADC()
	adc := machine.ADC{Pin: machine.Pin(prf.Pins.JoystickX)}
	adc.Configure(machine.ADCConfig{})
	b.adc[hardware.Pin(prf.Pins.JoystickX)] = adc

	var err error
	b.speaker, err = tone.New(machine.PWM0, machine.Pin(prf.Pins.Buzzer))
	if err != nil {
		return nil, curated.Errorf("pico: tone: %v", err)
	}

	return b, nil
}

// Hardware returns the board's collaborators.
func (b *Board) Hardware() hardware.Board {
	return hardware.Board{
		Display: b.canvas,
		Tone:    b,
		Pins:    b,
		Clock:   hardware.SystemClock{},
	}
}

// Service implements the hardware.Servicer interface. A tone that has
// reached the end of its duration is stopped.
func (b *Board) Service() error {
	if !b.until.IsZero() && !time.Now().Before(b.until) {
		b.Stop()
	}
	return nil
}

// DigitalRead implements the hardware.Pins interface.
func (b *Board) DigitalRead(pin hardware.Pin) hardware.Level {
	return hardware.Level(machine.Pin(pin).Get())
}

// DigitalWrite implements the hardware.Pins interface.
func (b *Board) DigitalWrite(pin hardware.Pin, level hardware.Level) {
	machine.Pin(pin).Set(bool(level))
}

// AnalogRead implements the hardware.Pins interface. The 16 bit ADC value is
// reduced to the 10 bit range of the reference board.
func (b *Board) AnalogRead(pin hardware.Pin) int {
	adc, ok := b.adc[pin]
	if !ok {
		return 0
	}
	return int(adc.Get() >> 6)
}

// Tone implements the hardware.ToneGenerator interface.
func (b *Board) Tone(frequency int, duration time.Duration) {
	if frequency <= 0 {
		b.Stop()
		return
	}
	b.speaker.SetPeriod(uint64(time.Second) / uint64(frequency))

	// a zero time is never reached by Service()
	if duration == 0 {
		b.until = time.Time{}
	} else {
		b.until = time.Now().Add(duration)
	}
}

// Stop implements the hardware.ToneGenerator interface.
func (b *Board) Stop() {
	b.speaker.Stop()
	b.until = time.Time{}
}
