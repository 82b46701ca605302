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

package hardware

import "time"

// Display is the drawing surface. Coordinates are in pixels with the origin
// in the top-left corner. Drawing outside of the display is clipped.
type Display interface {
	// Clear fills the entire display with the colour
	Clear(c Colour)

	FillRect(x, y, w, h int, c Colour)
	FillTriangle(x0, y0, x1, y1, x2, y2 int, c Colour)

	// text is drawn at the cursor position, in the text colour and at the
	// text size (a multiplier of the font's natural size). printing advances
	// the cursor
	SetCursor(x, y int)
	SetTextColour(c Colour)
	SetTextSize(n int)
	Print(s string)

	Width() int
	Height() int
}

// Presenter is implemented by displays that buffer drawing operations and
// need to be told when a frame is complete.
type Presenter interface {
	Present() error
}

// ToneGenerator is the buzzer.
type ToneGenerator interface {
	// Tone starts a square wave of the frequency (in Hz). The tone stops by
	// itself after the duration, unless the duration is zero in which case it
	// continues until Stop() is called. A new tone replaces the current one.
	Tone(frequency int, duration time.Duration)

	// Stop silences the buzzer
	Stop()
}

// Pin identifies a physical pin on the board.
type Pin int

// Level is the logic level of a digital pin.
type Level bool

// List of logic levels.
const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "HIGH"
	}
	return "LOW"
}

// Pins is the digital and analog I/O of the board.
type Pins interface {
	DigitalRead(pin Pin) Level
	DigitalWrite(pin Pin, level Level)

	// AnalogRead returns the raw ADC value of the pin. On the reference board
	// the range is 0 to 1023 but implementations may return values outside of
	// that range, which callers must clamp
	AnalogRead(pin Pin) int
}

// Clock is the source of monotonic time.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the Clock implementation backed by the time package.
type SystemClock struct{}

// Now implements the Clock interface.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep implements the Clock interface.
func (SystemClock) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// Servicer is implemented by boards that must process pending events (window
// events, terminal input, etc.) once per tick. An error from Service() ends
// the game loop. Boards that are switched off return an error with the
// PowerOff pattern.
type Servicer interface {
	Service() error
}

// Sentinel error returned by Servicer implementations when the board is
// switched off, for example when the simulator window is closed.
const (
	PowerOff = "board has been powered off"
)

// Board bundles the collaborators used by the game.
type Board struct {
	Display Display
	Tone    ToneGenerator
	Pins    Pins
	Clock   Clock
}
