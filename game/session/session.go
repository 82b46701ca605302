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

package session

import (
	"fmt"
	"math"

	"github.com/oledout/oledout/game/bricks"
)

// State is the top-level state of the game.
type State int

// List of valid State values.
const (
	NotStarted State = iota
	Playing
	Paused
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("unknown state (%d)", int(s))
}

// Ball position and velocity. Both are fractional. The position is rounded
// to whole pixels only when it is drawn.
type Ball struct {
	X, Y   float64
	DX, DY float64
}

// Pixel returns the position of the ball rounded to the nearest pixel.
func (b Ball) Pixel() (int, int) {
	return int(math.Round(b.X)), int(math.Round(b.Y))
}

// Box returns the bounding box of the ball.
func (b Ball) Box() bricks.Box {
	return bricks.Box{X: b.X, Y: b.Y, W: BallSize, H: BallSize}
}

func (b Ball) String() string {
	return fmt.Sprintf("(%.1f,%.1f) d(%.1f,%.1f)", b.X, b.Y, b.DX, b.DY)
}

// Session is the complete state of a single game.
type Session struct {
	State State

	// a pause requested before the game has started. the next start goes
	// directly to the Paused state
	PauseLatched bool

	Ball Ball

	// horizontal position of the paddle. the vertical position and the size
	// of the paddle are fixed
	PaddleX int

	Score int
	Lives int

	Bricks bricks.Grid

	// dimensions of the display the game is being played on
	Width  int
	Height int
}

// NewSession is the preferred method of initialisation for the Session type.
// The session is reset and ready to start.
func NewSession(width, height int) *Session {
	s := &Session{
		Width:  width,
		Height: height,
	}
	s.Reset()
	return s
}

// Reset the session to the NotStarted state, with a full brick field, a zero
// score and full lives.
func (s *Session) Reset() {
	s.State = NotStarted
	s.PauseLatched = false
	s.ResetBall()
	s.PaddleX = (s.Width - PaddleWidth) / 2
	s.Score = 0
	s.Lives = InitialLives
	s.Bricks.Reset()
}

// ResetBall puts the ball in the centre of the screen with the default
// velocity.
func (s *Session) ResetBall() {
	s.Ball = Ball{
		X:  float64(s.Width / 2),
		Y:  float64(s.Height / 2),
		DX: BallSpeed,
		DY: BallSpeed,
	}
}

// MaxPaddleX is the largest valid value for PaddleX.
func (s *Session) MaxPaddleX() int {
	return s.Width - PaddleWidth
}

// SetPaddle sets the horizontal position of the paddle, clamping the value to
// the range [0, MaxPaddleX()].
func (s *Session) SetPaddle(x int) {
	s.PaddleX = max(0, min(x, s.MaxPaddleX()))
}

func (s *Session) String() string {
	return fmt.Sprintf("%s score=%d lives=%d bricks=%d ball=%s paddle=%d",
		s.State, s.Score, s.Lives, s.Bricks.Remaining(), s.Ball, s.PaddleX)
}
