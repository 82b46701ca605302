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

package physics

import (
	"github.com/oledout/oledout/game/bricks"
	"github.com/oledout/oledout/game/session"
)

// Result summarises the events of a single frame.
type Result struct {
	WallX  bool
	WallY  bool
	Paddle bool

	// bricks destroyed in the frame, in scan order
	Hits []bricks.Cell

	// the ball left the bottom of the screen
	LifeLost bool
}

// Step advances the session by one frame. It should only be called when the
// session is in the Playing state. The session state will be changed to Lost
// or Won if the frame ends the game.
func Step(s *session.Session) Result {
	var r Result
	b := &s.Ball

	b.X += b.DX
	b.Y += b.DY

	if b.X <= 0 || b.X >= float64(s.Width-session.BallSize) {
		b.DX = -b.DX
		r.WallX = true
	}
	if b.Y <= 0 {
		b.DY = -b.DY
		r.WallY = true
	}

	// only a descending ball bounces. a ball still inside the paddle band
	// after bouncing must not be flipped back down
	if b.DY > 0 && hitsPaddle(s) {
		b.DY = -b.DY
		r.Paddle = true
	}

	for _, c := range s.Bricks.Overlapping(b.Box()) {
		if s.Bricks.Destroy(c) {
			b.DY = -b.DY
			s.Score += session.BrickValue
			r.Hits = append(r.Hits, c)
		}
	}

	if b.Y > float64(s.Height) {
		s.ResetBall()
		s.Lives--
		r.LifeLost = true
		if s.Lives <= 0 {
			s.Lives = 0
			s.State = session.Lost
			return r
		}
	}

	if s.Score == session.WinScore {
		s.State = session.Won
	}

	return r
}

// the ball's top edge is in the band starting one ball's height above the
// paddle and ending at the paddle's bottom edge, and the horizontal extents
// of the ball and paddle overlap
func hitsPaddle(s *session.Session) bool {
	b := s.Ball
	px := float64(s.PaddleX)
	return b.Y >= session.PaddleY-session.BallSize &&
		b.Y <= session.PaddleY+session.PaddleHeight &&
		b.X+session.BallSize >= px &&
		b.X <= px+session.PaddleWidth
}
