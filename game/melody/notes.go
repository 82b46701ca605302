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

import "time"

// Pitches in Hz.
const (
	C3  = 131
	E3  = 165
	F3  = 175
	G3  = 196
	GS3 = 208
	A3  = 220
	AS3 = 233
	B3  = 247
	C4  = 262
	C5  = 523
	D5  = 587
	E5  = 659
	F5  = 698
	C6  = 1047
)

// Divisors for common note lengths.
const (
	Quarter = 4
	Eighth  = 8
)

// Pause is the silence between one note ending and the next note starting.
const Pause = 100 * time.Millisecond

// Note is a single tone in a melody.
type Note struct {
	Frequency int
	Divisor   int
}

// Length returns how long the note sounds for.
func (n Note) Length() time.Duration {
	return time.Duration(1000/n.Divisor) * time.Millisecond
}

// Silence returns the offset from the start of the note at which the buzzer
// is stopped. It is 130% of the note length, truncated to the millisecond.
func (n Note) Silence() time.Duration {
	return time.Duration(1000/n.Divisor*13/10) * time.Millisecond
}

// Melody is a named sequence of notes.
type Melody struct {
	Name  string
	Notes []Note
}

func (m Melody) String() string {
	return m.Name
}

// Duration returns the total time taken to play the melody, including the
// pause after the final note.
func (m Melody) Duration() time.Duration {
	var d time.Duration
	for _, n := range m.Notes {
		d += n.Silence() + Pause
	}
	return d
}

// Congratulations is played when the game is won.
var Congratulations = Melody{
	Name: "congratulations",
	Notes: []Note{
		{C5, Quarter}, {D5, Quarter}, {E5, Quarter}, {C5, Quarter}, {D5, Quarter},
		{E5, Quarter}, {F5, Quarter}, {E5, Quarter}, {D5, Quarter}, {C5, Quarter},
	},
}

// GameOver is played when the last life is lost.
var GameOver = Melody{
	Name: "game over",
	Notes: []Note{
		{C4, Eighth}, {G3, Eighth}, {E3, Eighth}, {A3, Eighth},
		{B3, Quarter}, {A3, Quarter}, {A3, Quarter},
		{GS3, Eighth}, {AS3, Eighth}, {GS3, Eighth}, {G3, Eighth}, {F3, Eighth}, {G3, Eighth},
	},
}

// The short tone played when a brick is destroyed. The tone is started and
// left to stop by itself.
const (
	BrickHitFrequency = C6
	BrickHitDuration  = 100 * time.Millisecond
)
