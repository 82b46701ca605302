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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/oledout/oledout/board"
	"github.com/oledout/oledout/curated"
	"github.com/oledout/oledout/game"
	"github.com/oledout/oledout/hardware"
	"github.com/oledout/oledout/hardware/autopilot"
	"github.com/oledout/oledout/hardware/framebuffer"
	"github.com/oledout/oledout/hardware/gfx"
	"github.com/oledout/oledout/hardware/sdlboard"
	"github.com/oledout/oledout/hardware/termboard"
	"github.com/oledout/oledout/hardware/virtual"
	"github.com/oledout/oledout/hardware/wavbuzzer"
	"github.com/oledout/oledout/limiter"
	"github.com/oledout/oledout/logger"
	"github.com/oledout/oledout/modalflag"
	"github.com/oledout/oledout/paths"
	"github.com/oledout/oledout/performance"
	"github.com/oledout/oledout/prefs"
	"github.com/oledout/oledout/statsview"
)

// name of the board profile in the resource directory. used if the -board
// flag is not given
const boardFile = "board.toml"

// the idle poll used by the host boards when the board profile asks for none.
// without it the status screens are redrawn as fast as the host can manage
const hostIdlePoll = 15 * time.Millisecond

// SDL requires that window events are handled on the main thread
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PLAY", "TERM", "WAV", "PERFORMANCE", "DEBUG", "BOARD")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, false)
	case "DEBUG":
		err = play(md, true)
	case "TERM":
		err = term(md)
	case "WAV":
		err = wav(md)
	case "PERFORMANCE":
		err = perform(md)
	case "BOARD":
		err = dumpBoard(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// flags common to every mode
type commonFlags struct {
	board *string
	prefs *string
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		board: md.AddString("board", "", "board profile (TOML file)"),
		prefs: md.AddString("prefs", "", "preferences for this session (key::value; key::value)"),
	}
}

// load the board profile and push any command line preferences. the
// preferences must be pushed before the host preferences are loaded
func (f commonFlags) apply() (board.Profile, error) {
	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
	}
	if *f.board != "" {
		return board.Load(*f.board)
	}
	return board.LoadOptional(paths.ResourcePath(boardFile))
}

// withIdlePoll returns the profile with the idle poll set, unless the profile
// already has one
func withIdlePoll(prf board.Profile, idle time.Duration) board.Profile {
	if prf.IdlePoll.Duration == 0 {
		prf.IdlePoll.Duration = idle
	}
	return prf
}

// a context that is cancelled on the interrupt signal
func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// errors that end the game loop normally
func endOfRun(err error) error {
	if err == nil || curated.Is(err, hardware.PowerOff) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func play(md *modalflag.Modes, debug bool) error {
	md.NewMode()

	common := addCommonFlags(md)
	scale := md.AddInt("scale", 0, "window scaling (overrides sdl.scale preference)")
	joystick := md.AddBool("joystick", false, "use physical joystick")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	idle := md.AddDuration("idlepoll", hostIdlePoll, "idle poll if the board profile has none")

	var log *bool
	var memvizFile *string
	var profile *string
	if debug {
		memvizFile = md.AddString("memviz", "", "write graph of the game session to file on exit")
		profile = md.AddString("profile", "none", "run through profiler: CPU, MEM, TRACE, ALL (comma separated)")
	} else {
		log = md.AddBool("log", false, "echo debugging log to stdout")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if debug || *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	prf, err := common.apply()
	if err != nil {
		return err
	}
	prf = withIdlePoll(prf, *idle)

	hp, err := newHostPrefs()
	if err != nil {
		return err
	}

	if *scale > 0 {
		if err := hp.scale.Set(*scale); err != nil {
			return err
		}
	}

	brd, err := sdlboard.NewBoard(prf, sdlboard.Options{
		Scale:    hp.scale.Get().(int),
		Volume:   hp.volume.Get().(float64),
		Joystick: *joystick,
	})
	if err != nil {
		return err
	}
	defer brd.Destroy()

	ctl, err := game.NewController(brd.Hardware(), prf)
	if err != nil {
		return err
	}

	ctx, cancel := interruptContext()
	defer cancel()

	run := func() error {
		return endOfRun(ctl.Run(ctx, limiter.NewLimiter(hardware.SystemClock{})))
	}

	if debug {
		prof, err := performance.ParseProfile(*profile)
		if err != nil {
			return err
		}
		err = performance.RunProfiler(prof, "debug", run)
		if err != nil {
			return err
		}
		if *memvizFile != "" {
			if err := writeMemviz(*memvizFile, ctl); err != nil {
				return err
			}
		}
	} else {
		if err := run(); err != nil {
			return err
		}
	}

	// save preferences before finishing successfully
	return hp.save()
}

// write a graph of the game session in the dot format
func writeMemviz(filename string, ctl *game.Controller) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer f.Close()

	memviz.Map(f, ctl.Session)
	fmt.Printf("! session graph written to %s\n", filename)

	return nil
}

func term(md *modalflag.Modes) error {
	md.NewMode()

	common := addCommonFlags(md)
	colour := md.AddBool("colour", true, "use 24 bit colour (overrides term.colour preference)")
	idle := md.AddDuration("idlepoll", hostIdlePoll, "idle poll if the board profile has none")
	bell := md.AddBool("bell", false, "ring terminal bell for tones (overrides term.bell preference)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// the log would spoil the display
	logger.SetEcho(nil)

	prf, err := common.apply()
	if err != nil {
		return err
	}
	prf = withIdlePoll(prf, *idle)

	hp, err := newHostPrefs()
	if err != nil {
		return err
	}

	// flags only override preferences if they have been specified
	md.Visit(func(flg string) {
		switch flg {
		case "colour":
			_ = hp.colour.Set(*colour)
		case "bell":
			_ = hp.bell.Set(*bell)
		}
	})

	brd, err := termboard.NewBoard(os.Stdin, os.Stdout, prf, hp.colour.Get().(bool))
	if err != nil {
		return err
	}
	brd.Bell = hp.bell.Get().(bool)

	ctl, err := game.NewController(brd.Hardware(), prf)
	if err != nil {
		_ = brd.Close()
		return err
	}

	ctx, cancel := interruptContext()
	defer cancel()

	err = endOfRun(ctl.Run(ctx, limiter.NewLimiter(hardware.SystemClock{})))
	if cerr := brd.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	return hp.save()
}

func wav(md *modalflag.Modes) error {
	md.NewMode()

	common := addCommonFlags(md)
	frames := md.AddInt("frames", 3000, "number of frames to run for")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := common.apply()
	if err != nil {
		return err
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
		hp, err := newHostPrefs()
		if err != nil {
			return err
		}
		filename = filepath.Join(hp.wavDir.Get().(string), paths.UniqueFilename("oledout", "wav"))
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	clk := virtual.NewClock(time.Now())
	bz, err := wavbuzzer.New(filename, clk)
	if err != nil {
		return err
	}

	pins := autopilot.NewPins(prf.Pins)
	ctl, err := game.NewController(hardware.Board{
		Display: gfx.NewCanvas(framebuffer.NewFramebuffer(prf.Display.Width, prf.Display.Height)),
		Tone:    bz,
		Pins:    pins,
		Clock:   clk,
	}, prf)
	if err != nil {
		return err
	}
	pins.Attach(ctl.Session)

	err = ctl.RunFor(*frames, limiter.NewLimiter(clk))
	if err != nil {
		return err
	}

	samples := bz.Samples()
	err = bz.Close()
	if err != nil {
		return err
	}

	fmt.Printf("! %d samples (%.2f seconds) written to %s\n", samples,
		float64(samples)/wavbuzzer.SampleRate, filename)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	common := addCommonFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	uncapped := md.AddBool("uncapped", true, "run without waiting for the frame period")
	profile := md.AddString("profile", "none", "run through profiler: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := common.apply()
	if err != nil {
		return err
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prof, prf, *duration, *uncapped)
}

// print the board profile in use, in the TOML format
func dumpBoard(md *modalflag.Modes) error {
	md.NewMode()

	common := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := common.apply()
	if err != nil {
		return err
	}

	return prf.Write(os.Stdout)
}
