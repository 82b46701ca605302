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

package performance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/oledout/oledout/board"
	"github.com/oledout/oledout/curated"
	"github.com/oledout/oledout/game"
	"github.com/oledout/oledout/hardware"
	"github.com/oledout/oledout/hardware/autopilot"
	"github.com/oledout/oledout/hardware/framebuffer"
	"github.com/oledout/oledout/hardware/gfx"
	"github.com/oledout/oledout/hardware/virtual"
	"github.com/oledout/oledout/limiter"
)

// CalcFPS takes the number of frames and duration and returns the
// frames-per-second and the accuracy of that value as a percentage of the
// rate implied by the frame period.
func CalcFPS(numFrames int, duration time.Duration, framePeriod time.Duration) (fps float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration.Seconds()
	if framePeriod <= 0 {
		return fps, 0
	}
	accuracy = 100 * fps * framePeriod.Seconds()
	return fps, accuracy
}

// Check the performance of the game by letting the autopilot play it for the
// duration. The game is drawn to an in-memory display and the buzzer is
// silent. If uncapped is true the frame period is not waited for.
//
// Profiles are generated as specified by the Profile argument.
func Check(output io.Writer, profile Profile, prf board.Profile, duration time.Duration, uncapped bool) error {
	if duration <= 0 {
		return curated.Errorf(ProfileError, "duration must be positive")
	}

	clk := hardware.SystemClock{}
	fb := framebuffer.NewFramebuffer(prf.Display.Width, prf.Display.Height)
	pins := autopilot.NewPins(prf.Pins)

	ctl, err := game.NewController(hardware.Board{
		Display: gfx.NewCanvas(fb),
		Tone:    virtual.NewBuzzer(clk),
		Pins:    pins,
		Clock:   clk,
	}, prf)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	ctl.SetLogging(false)
	pins.Attach(ctl.Session)

	lmtr := limiter.NewLimiter(clk)
	lmtr.Active = !uncapped

	// the number of frames is the number of times the display was presented
	var startFrame int
	var start time.Time

	runner := func() error {
		start = time.Now()
		startFrame = fb.Frames()

		ctx, cancel := context.WithTimeout(context.Background(), duration)
		defer cancel()

		err := ctl.Run(ctx, lmtr)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return err
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}

	elapsed := time.Since(start)
	numFrames := fb.Frames() - startFrame
	fps, accuracy := CalcFPS(numFrames, elapsed, prf.FramePeriod.Duration)

	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, elapsed.Seconds(), accuracy)
	fmt.Fprintf(output, "score %d, lives %d, starts %d\n", ctl.Session.Score, ctl.Session.Lives, pins.Starts)

	return nil
}
