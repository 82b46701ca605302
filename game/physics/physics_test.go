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

package physics_test

import (
	"testing"

	"github.com/oledout/oledout/game/bricks"
	"github.com/oledout/oledout/game/physics"
	"github.com/oledout/oledout/game/session"
	"github.com/oledout/oledout/test"
)

func newSession() *session.Session {
	s := session.NewSession(session.ScreenWidth, session.ScreenHeight)
	s.State = session.Playing
	return s
}

func sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}

func TestSideWalls(t *testing.T) {
	for _, target := range []float64{-1.0, -0.2, 0.0, 93.5, 94.1, 95.5} {
		for _, dx := range []float64{session.BallSpeed, -session.BallSpeed} {
			s := newSession()
			s.Ball = session.Ball{X: target - dx, Y: 40, DX: dx, DY: session.BallSpeed}

			r := physics.Step(s)
			test.ExpectEquality(t, r.WallX, true, target, dx)
			test.ExpectEquality(t, sign(s.Ball.DX), -sign(dx), target, dx)
		}
	}

	// clear of both walls
	s := newSession()
	s.Ball = session.Ball{X: 50, Y: 40, DX: session.BallSpeed, DY: session.BallSpeed}
	r := physics.Step(s)
	test.ExpectEquality(t, r.WallX, false)
	test.ExpectEquality(t, s.Ball.DX, session.BallSpeed)
}

func TestTopWall(t *testing.T) {
	s := newSession()
	s.Ball = session.Ball{X: 48, Y: 0.5, DX: session.BallSpeed, DY: -session.BallSpeed}

	r := physics.Step(s)
	test.ExpectEquality(t, r.WallY, true)
	test.ExpectEquality(t, s.Ball.DY, session.BallSpeed)
	test.ExpectApproximate(t, s.Ball.Y, -0.8, 0.001)
}

func TestPaddle(t *testing.T) {
	s := newSession()
	s.PaddleX = 38
	s.Ball = session.Ball{X: 45, Y: 54, DX: session.BallSpeed, DY: session.BallSpeed}

	r := physics.Step(s)
	test.ExpectEquality(t, r.Paddle, true)
	test.ExpectEquality(t, s.Ball.DY, -session.BallSpeed)
	test.ExpectEquality(t, s.Ball.DX, session.BallSpeed)

	// paddle is elsewhere
	s = newSession()
	s.PaddleX = 0
	s.Ball = session.Ball{X: 60, Y: 54, DX: session.BallSpeed, DY: session.BallSpeed}

	r = physics.Step(s)
	test.ExpectEquality(t, r.Paddle, false)
	test.ExpectEquality(t, s.Ball.DY, session.BallSpeed)
}

func TestPaddleDoesNotTrapRisingBall(t *testing.T) {
	s := newSession()
	s.PaddleX = 38
	s.Ball = session.Ball{X: 45, Y: 60, DX: session.BallSpeed, DY: -session.BallSpeed}

	// the ball is inside the paddle band for several frames while it rises
	// out of it. it must never be turned back down
	for range 4 {
		r := physics.Step(s)
		test.ExpectEquality(t, r.Paddle, false)
		test.ExpectEquality(t, s.Ball.DY, -session.BallSpeed)
	}
	test.ExpectEquality(t, s.Lives, session.InitialLives)
}

func TestBrick(t *testing.T) {
	s := newSession()
	s.Ball = session.Ball{X: 5, Y: 31.5, DX: session.BallSpeed, DY: -session.BallSpeed}

	r := physics.Step(s)
	test.ExpectEquality(t, len(r.Hits), 1)
	test.ExpectEquality(t, r.Hits[0], bricks.Cell{Row: 2, Column: 0})
	test.ExpectEquality(t, s.Score, session.BrickValue)
	test.ExpectEquality(t, s.Ball.DY, session.BallSpeed)
	test.ExpectEquality(t, s.Bricks.Active(bricks.Cell{Row: 2, Column: 0}), false)
	test.ExpectEquality(t, s.State, session.Playing)
}

func TestDoubleBrickHit(t *testing.T) {
	s := newSession()
	s.Ball = session.Ball{X: 12.2, Y: 31.5, DX: session.BallSpeed, DY: -session.BallSpeed}

	// both bricks are destroyed and the two reversals cancel each other out
	r := physics.Step(s)
	test.ExpectEquality(t, len(r.Hits), 2)
	test.ExpectEquality(t, s.Score, 2*session.BrickValue)
	test.ExpectEquality(t, s.Ball.DY, -session.BallSpeed)
}

func TestLifeLost(t *testing.T) {
	s := newSession()
	s.PaddleX = 0
	s.Ball = session.Ball{X: 80, Y: 63.5, DX: session.BallSpeed, DY: session.BallSpeed}

	r := physics.Step(s)
	test.ExpectEquality(t, r.LifeLost, true)
	test.ExpectEquality(t, s.Lives, session.InitialLives-1)
	test.ExpectEquality(t, s.State, session.Playing)
	test.ExpectEquality(t, s.Ball, session.Ball{X: 48, Y: 32, DX: 1.3, DY: 1.3})
}

func TestLastLifeLost(t *testing.T) {
	s := newSession()
	s.Lives = 1
	s.PaddleX = 0
	s.Ball = session.Ball{X: 80, Y: 63.5, DX: session.BallSpeed, DY: session.BallSpeed}

	r := physics.Step(s)
	test.ExpectEquality(t, r.LifeLost, true)
	test.ExpectEquality(t, s.Lives, 0)
	test.ExpectEquality(t, s.State, session.Lost)
}

func TestWinThreshold(t *testing.T) {
	s := newSession()
	s.Score = session.WinScore - session.BrickValue
	s.Ball = session.Ball{X: 5, Y: 31.5, DX: session.BallSpeed, DY: -session.BallSpeed}

	physics.Step(s)
	test.ExpectEquality(t, s.Score, session.WinScore)
	test.ExpectEquality(t, s.State, session.Won)

	// the threshold is an exact match
	s = newSession()
	s.Score = session.WinScore
	s.Ball = session.Ball{X: 5, Y: 31.5, DX: session.BallSpeed, DY: -session.BallSpeed}

	physics.Step(s)
	test.ExpectEquality(t, s.Score, session.WinScore+session.BrickValue)
	test.ExpectEquality(t, s.State, session.Playing)
}
