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

package sdlboard

import (
	"github.com/oledout/oledout/board"
	"github.com/oledout/oledout/hardware"
)

// Button identifies one of the two buttons on the board.
type Button int

// List of valid Button values.
const (
	StartReset Button = iota
	PauseResume
)

// AxisStep is the change in the joystick value for each tick that an arrow
// key is held down.
const AxisStep = 48

// Controls hold the state of the buttons and joystick. Unlike the terminal,
// SDL tells us when a key is released, so buttons are held for as long as
// the key is down.
type Controls struct {
	pins board.Pins

	buttons [2]bool
	axis    int

	// direction the joystick is being moved by the arrow keys
	drift int

	levels map[hardware.Pin]hardware.Level
}

// NewControls is the preferred method of initialisation for the Controls type.
func NewControls(pins board.Pins) *Controls {
	return &Controls{
		pins:   pins,
		axis:   512,
		levels: make(map[hardware.Pin]hardware.Level),
	}
}

// SetButton sets the state of a button.
func (c *Controls) SetButton(b Button, pressed bool) {
	c.buttons[b] = pressed
}

// SetAxis sets the joystick value. The value is clamped to the range of the
// analog input.
func (c *Controls) SetAxis(v int) {
	c.axis = max(0, min(1023, v))
}

// SetDrift sets the direction that the joystick moves on every Drift() call.
// Negative values move the joystick left, positive values move it right.
func (c *Controls) SetDrift(d int) {
	c.drift = d
}

// Drift moves the joystick in the drift direction.
func (c *Controls) Drift() {
	switch {
	case c.drift < 0:
		c.SetAxis(c.axis - AxisStep)
	case c.drift > 0:
		c.SetAxis(c.axis + AxisStep)
	}
}

// DigitalRead implements the hardware.Pins interface. Buttons are active low.
func (c *Controls) DigitalRead(pin hardware.Pin) hardware.Level {
	switch pin {
	case hardware.Pin(c.pins.StartReset):
		return hardware.Level(!c.buttons[StartReset])
	case hardware.Pin(c.pins.PauseResume):
		return hardware.Level(!c.buttons[PauseResume])
	}
	if l, ok := c.levels[pin]; ok {
		return l
	}
	return hardware.High
}

// DigitalWrite implements the hardware.Pins interface.
func (c *Controls) DigitalWrite(pin hardware.Pin, level hardware.Level) {
	c.levels[pin] = level
}

// AnalogRead implements the hardware.Pins interface.
func (c *Controls) AnalogRead(pin hardware.Pin) int {
	if pin == hardware.Pin(c.pins.JoystickX) {
		return c.axis
	}
	return 0
}

// LEDs returns the state of the red and yellow LEDs.
func (c *Controls) LEDs() (bool, bool) {
	return c.levels[hardware.Pin(c.pins.RedLED)] == hardware.High,
		c.levels[hardware.Pin(c.pins.YellowLED)] == hardware.High
}

// StickToAxis converts the value of an SDL joystick axis to the range of the
// analog input.
func StickToAxis(v int16) int {
	return (int(v) + 32768) * 1023 / 65535
}

// PositionToAxis converts a horizontal position in a region of the given width
// to the range of the analog input.
func PositionToAxis(x int, width int) int {
	if width <= 1 {
		return 0
	}
	x = max(0, min(width-1, x))
	return x * 1023 / (width - 1)
}
