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

package termboard

import (
	"github.com/oledout/oledout/board"
	"github.com/oledout/oledout/hardware"
)

// ASCII codes for keys that are not printable characters.
const (
	keyInterrupt = 3
	keyEsc       = 27
	escCursor    = '['
	cursorRight  = 'C'
	cursorLeft   = 'D'
)

// AxisStep is the change in the joystick value for each key press.
const AxisStep = 64

// Controls translates key presses into pin levels. Presses are momentary:
// a button is held down until the next call to Release().
type Controls struct {
	pins board.Pins

	start bool
	pause bool
	axis  int

	// escape sequence state
	esc int

	// levels most recently written to output pins
	levels map[hardware.Pin]hardware.Level

	// the off switch has been pressed
	Off bool
}

// NewControls is the preferred method of initialisation for the Controls type.
// The joystick starts in the centre.
func NewControls(pins board.Pins) *Controls {
	return &Controls{
		pins:   pins,
		axis:   512,
		levels: make(map[hardware.Pin]hardware.Level),
	}
}

// Key processes a single byte of keyboard input.
func (c *Controls) Key(b byte) {
	switch c.esc {
	case 1:
		if b == escCursor {
			c.esc = 2
		} else {
			c.esc = 0
		}
		return
	case 2:
		c.esc = 0
		switch b {
		case cursorLeft:
			c.nudge(-AxisStep)
		case cursorRight:
			c.nudge(AxisStep)
		}
		return
	}

	switch b {
	case keyEsc:
		c.esc = 1
	case 's', 'S':
		c.start = true
	case 'p', 'P':
		c.pause = true
	case 'a', 'A':
		c.nudge(-AxisStep)
	case 'd', 'D':
		c.nudge(AxisStep)
	case 'q', 'Q', keyInterrupt:
		c.Off = true
	}
}

func (c *Controls) nudge(d int) {
	c.axis = max(0, min(1023, c.axis+d))
}

// Release both buttons.
func (c *Controls) Release() {
	c.start = false
	c.pause = false
}

// DigitalRead implements the hardware.Pins interface.
func (c *Controls) DigitalRead(pin hardware.Pin) hardware.Level {
	switch pin {
	case hardware.Pin(c.pins.StartReset):
		return hardware.Level(!c.start)
	case hardware.Pin(c.pins.PauseResume):
		return hardware.Level(!c.pause)
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
