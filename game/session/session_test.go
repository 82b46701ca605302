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

package session_test

import (
	"testing"

	"github.com/oledout/oledout/game/bricks"
	"github.com/oledout/oledout/game/session"
	"github.com/oledout/oledout/test"
)

func TestNewSession(t *testing.T) {
	s := session.NewSession(session.ScreenWidth, session.ScreenHeight)
	test.ExpectEquality(t, s.State, session.NotStarted)
	test.ExpectEquality(t, s.Score, 0)
	test.ExpectEquality(t, s.Lives, session.InitialLives)
	test.ExpectEquality(t, s.PaddleX, 38)
	test.ExpectEquality(t, s.Ball, session.Ball{X: 48, Y: 32, DX: 1.3, DY: 1.3})
	test.ExpectEquality(t, s.Bricks.Remaining(), bricks.Rows*bricks.Columns)
}

func TestReset(t *testing.T) {
	s := session.NewSession(session.ScreenWidth, session.ScreenHeight)
	s.State = session.Paused
	s.PauseLatched = true
	s.Score = 70
	s.Lives = 1
	s.Ball = session.Ball{X: 3, Y: 4, DX: -1.3, DY: -1.3}
	s.PaddleX = 0
	s.Bricks.Destroy(bricks.Cell{Row: 2, Column: 2})

	s.Reset()
	test.ExpectEquality(t, s.State, session.NotStarted)
	test.ExpectEquality(t, s.PauseLatched, false)
	test.ExpectEquality(t, s.Score, 0)
	test.ExpectEquality(t, s.Lives, session.InitialLives)
	test.ExpectEquality(t, s.PaddleX, 38)
	test.ExpectEquality(t, s.Ball, session.Ball{X: 48, Y: 32, DX: 1.3, DY: 1.3})
	test.ExpectEquality(t, s.Bricks.Remaining(), bricks.Rows*bricks.Columns)
}

func TestPaddleClamp(t *testing.T) {
	s := session.NewSession(session.ScreenWidth, session.ScreenHeight)
	s.SetPaddle(-10)
	test.ExpectEquality(t, s.PaddleX, 0)
	s.SetPaddle(1000)
	test.ExpectEquality(t, s.PaddleX, session.ScreenWidth-session.PaddleWidth)
	s.SetPaddle(10)
	test.ExpectEquality(t, s.PaddleX, 10)
}

func TestBallPixel(t *testing.T) {
	b := session.Ball{X: 10.4, Y: 10.6}
	x, y := b.Pixel()
	test.ExpectEquality(t, x, 10)
	test.ExpectEquality(t, y, 11)
}

func TestStateString(t *testing.T) {
	test.ExpectEquality(t, session.NotStarted.String(), "not started")
	test.ExpectEquality(t, session.Lost.String(), "lost")
	test.ExpectEquality(t, session.State(99).String(), "unknown state (99)")
}
