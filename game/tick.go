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

package game

import (
	"time"

	"github.com/oledout/oledout/board"
	"github.com/oledout/oledout/game/input"
	"github.com/oledout/oledout/game/melody"
	"github.com/oledout/oledout/game/physics"
	"github.com/oledout/oledout/game/session"
	"github.com/oledout/oledout/logger"
	"github.com/oledout/oledout/notifications"
)

// Tick runs one iteration of the game loop. The returned duration is how long
// the caller should wait before calling Tick() again.
func (ctl *Controller) Tick() time.Duration {
	ctl.ticks++

	now := ctl.board.Clock.Now()
	in := ctl.sampler.Sample(now)

	// input sampled during a melody is discarded
	if ctl.player != nil {
		wait, finished := ctl.player.Advance(now)
		if !finished {
			return wait
		}
		ctl.endOfGame()
		return ctl.idle()
	}

	if in.StartReset {
		ctl.startReset()
	}
	if in.PauseResume {
		ctl.pauseResume()
	}

	if ctl.Session.State != session.Playing {
		return ctl.idle()
	}

	return ctl.play(in, now)
}

// draw the idle screen for the current state
func (ctl *Controller) idle() time.Duration {
	ctl.renderer.Frame(ctl.Session)
	ctl.present()
	return ctl.profile.IdlePoll.Duration
}

func (ctl *Controller) present() {
	if err := ctl.renderer.Present(); err != nil {
		logger.Log(ctl, "game", err)
	}
}

func (ctl *Controller) startReset() {
	s := ctl.Session
	switch s.State {
	case session.NotStarted:
		if s.PauseLatched {
			s.State = session.Paused
		} else {
			s.State = session.Playing
		}
		s.PauseLatched = false
		logger.Logf(ctl, "game", "started (%s)", s.State)
		ctl.notice(notifications.NotifyStarted)
	case session.Playing, session.Paused:
		s.Reset()
		logger.Log(ctl, "game", "reset")
		ctl.notice(notifications.NotifyReset)
	}
}

func (ctl *Controller) pauseResume() {
	s := ctl.Session
	switch s.State {
	case session.NotStarted:
		s.PauseLatched = !s.PauseLatched
		logger.Logf(ctl, "game", "pause latched: %v", s.PauseLatched)
	case session.Playing:
		s.State = session.Paused
		logger.Log(ctl, "game", "paused")
		ctl.notice(notifications.NotifyPaused)
	case session.Paused:
		s.State = session.Playing
		logger.Log(ctl, "game", "resumed")
		ctl.notice(notifications.NotifyResumed)
	}
}

// play one frame of the game
func (ctl *Controller) play(in input.Sample, now time.Time) time.Duration {
	s := ctl.Session
	s.SetPaddle(in.PaddleX)

	r := physics.Step(s)

	if len(r.Hits) > 0 {
		ctl.board.Tone.Tone(melody.BrickHitFrequency, melody.BrickHitDuration)
		for range r.Hits {
			ctl.notice(notifications.NotifyBrickHit)
		}
		logger.Logf(ctl, "game", "score %d", s.Score)
	}

	if r.LifeLost {
		logger.Logf(ctl, "game", "ball lost (lives %d)", s.Lives)
		ctl.notice(notifications.NotifyLifeLost)
	}

	switch s.State {
	case session.Won:
		ctl.renderer.Won()
		ctl.present()
		logger.Logf(ctl, "game", "won with score %d", s.Score)
		ctl.notice(notifications.NotifyWon)
		return ctl.startMelody(melody.Congratulations, now)
	case session.Lost:
		ctl.renderer.Lost()
		ctl.present()
		logger.Logf(ctl, "game", "lost with score %d", s.Score)
		ctl.notice(notifications.NotifyLost)
		return ctl.startMelody(melody.GameOver, now)
	}

	ctl.renderer.Scene(s)
	ctl.present()
	return ctl.profile.FramePeriod.Duration
}

func (ctl *Controller) startMelody(m melody.Melody, now time.Time) time.Duration {
	logger.Logf(ctl, "melody", "%s (%s)", m, ctl.profile.Melody)

	if ctl.profile.Melody == board.Blocking {
		melody.Play(ctl.board.Tone, ctl.board.Clock, m)
		ctl.endOfGame()
		return ctl.idle()
	}

	ctl.player = melody.NewPlayer(ctl.board.Tone, m, now)
	wait, _ := ctl.player.Advance(now)
	return wait
}

// the melody for the Won or Lost state has finished
func (ctl *Controller) endOfGame() {
	ctl.player = nil
	ctl.renderer.LEDs(false, false)
	ctl.Session.Reset()
	logger.Log(ctl, "game", "reset")
	ctl.notice(notifications.NotifyReset)
}
