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

package board

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oledout/oledout/curated"
	"github.com/oledout/oledout/hardware"
)

// Sentinel error patterns returned by the package.
const (
	UnknownMelodyMode = "board: unknown melody mode: %s"
	InvalidPin        = "board: invalid pin: %s"
	InvalidDuration   = "board: invalid duration: %v"
	UnknownKeys       = "board: unknown keys in %s: %s"
	InvalidProfile    = "board: invalid profile: %s"
	LoadError         = "board: %v"
)

// MelodyMode selects how melodies are scheduled.
type MelodyMode int

// List of valid MelodyMode values.
const (
	// the melody is advanced once per tick of the game loop
	Cooperative MelodyMode = iota

	// the melody plays to completion inside the tick that started it
	Blocking
)

func (m MelodyMode) String() string {
	switch m {
	case Cooperative:
		return "cooperative"
	case Blocking:
		return "blocking"
	}
	return fmt.Sprintf("unknown (%d)", int(m))
}

// ParseMelodyMode converts a string to a MelodyMode.
func ParseMelodyMode(s string) (MelodyMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cooperative":
		return Cooperative, nil
	case "blocking":
		return Blocking, nil
	}
	return Cooperative, curated.Errorf(UnknownMelodyMode, s)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (m MelodyMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (m *MelodyMode) UnmarshalText(text []byte) error {
	v, err := ParseMelodyMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// analog pins on the Uno are numbered after the 14 digital pins. A0 is pin 14
const analogBase = 14

// Pin is a pin number. In a profile file a pin can be given as a number or as
// an analog pin name (A0 to A5).
type Pin hardware.Pin

// ParsePin converts a pin name or number to a Pin.
func ParsePin(s string) (Pin, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if strings.HasPrefix(s, "A") {
		n, err := strconv.Atoi(s[1:])
		if err != nil || n < 0 || n > 5 {
			return 0, curated.Errorf(InvalidPin, s)
		}
		return Pin(analogBase + n), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, curated.Errorf(InvalidPin, s)
	}
	return Pin(n), nil
}

func (p Pin) String() string {
	if p >= analogBase && p < analogBase+6 {
		return fmt.Sprintf("A%d", int(p)-analogBase)
	}
	return strconv.Itoa(int(p))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (p Pin) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. TOML
// integers are also accepted, see UnmarshalTOML().
func (p *Pin) UnmarshalText(text []byte) error {
	v, err := ParsePin(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// UnmarshalTOML allows a pin to be specified as either a TOML integer or a
// TOML string.
func (p *Pin) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case int64:
		if v < 0 {
			return curated.Errorf(InvalidPin, strconv.FormatInt(v, 10))
		}
		*p = Pin(v)
		return nil
	case string:
		return p.UnmarshalText([]byte(v))
	}
	return curated.Errorf(InvalidPin, fmt.Sprintf("%v", v))
}

// Duration is a time.Duration written in a profile file as a string, for
// example "30ms".
type Duration struct {
	time.Duration
}

// MarshalText implements the encoding.TextMarshaler interface.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return curated.Errorf(InvalidDuration, err)
	}
	d.Duration = v
	return nil
}

// Pins specifies the pins that the peripherals are connected to.
type Pins struct {
	StartReset  Pin `toml:"start_reset"`
	PauseResume Pin `toml:"pause_resume"`
	JoystickX   Pin `toml:"joystick_x"`
	Buzzer      Pin `toml:"buzzer"`
	RedLED      Pin `toml:"red_led"`
	YellowLED   Pin `toml:"yellow_led"`
}

// Display specifies the dimensions of the display in pixels.
type Display struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Profile is the complete description of a board.
type Profile struct {
	Name    string  `toml:"name"`
	Display Display `toml:"display"`
	Pins    Pins    `toml:"pins"`

	// how long to wait after each frame of play
	FramePeriod Duration `toml:"frame_period"`

	// the minimum time between two presses of the same button
	Debounce Duration `toml:"debounce"`

	// how long to wait after each tick while waiting for the start button or
	// while paused. zero means no wait
	IdlePoll Duration `toml:"idle_poll"`

	Melody MelodyMode `toml:"melody"`
}

// Default returns the profile of the reference board.
func Default() Profile {
	return Profile{
		Name: "uno-ssd1331",
		Display: Display{
			Width:  96,
			Height: 64,
		},
		Pins: Pins{
			StartReset:  3,
			PauseResume: 4,
			JoystickX:   analogBase,
			Buzzer:      7,
			RedLED:      5,
			YellowLED:   6,
		},
		FramePeriod: Duration{30 * time.Millisecond},
		Debounce:    Duration{200 * time.Millisecond},
		IdlePoll:    Duration{0},
		Melody:      Cooperative,
	}
}

// Validate checks that the profile describes a usable board.
func (p Profile) Validate() error {
	if p.Display.Width <= 0 || p.Display.Height <= 0 {
		return curated.Errorf(InvalidProfile, fmt.Sprintf("display of %dx%d", p.Display.Width, p.Display.Height))
	}
	if p.FramePeriod.Duration <= 0 {
		return curated.Errorf(InvalidProfile, "frame period must be positive")
	}
	if p.Debounce.Duration < 0 || p.IdlePoll.Duration < 0 {
		return curated.Errorf(InvalidProfile, "durations cannot be negative")
	}

	used := make(map[Pin]string)
	for _, u := range []struct {
		name string
		pin  Pin
	}{
		{"start_reset", p.Pins.StartReset},
		{"pause_resume", p.Pins.PauseResume},
		{"joystick_x", p.Pins.JoystickX},
		{"buzzer", p.Pins.Buzzer},
		{"red_led", p.Pins.RedLED},
		{"yellow_led", p.Pins.YellowLED},
	} {
		if o, ok := used[u.pin]; ok {
			return curated.Errorf(InvalidProfile, fmt.Sprintf("%s and %s share pin %s", o, u.name, u.pin))
		}
		used[u.pin] = u.name
	}

	return nil
}

func (p Profile) String() string {
	return fmt.Sprintf("%s (%dx%d, %s melody)", p.Name, p.Display.Width, p.Display.Height, p.Melody)
}
