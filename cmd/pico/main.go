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

//go:build tinygo && pico

// Command pico is the firmware for the Raspberry Pi Pico board.
package main

import (
	"context"

	"github.com/oledout/oledout/game"
	"github.com/oledout/oledout/hardware"
	"github.com/oledout/oledout/hardware/pico"
	"github.com/oledout/oledout/limiter"
)

func main() {
	prf := pico.Profile()

	b, err := pico.NewBoard(prf)
	if err != nil {
		panic(err)
	}

	ctl, err := game.NewController(b.Hardware(), prf)
	if err != nil {
		panic(err)
	}
	ctl.SetLogging(false)

	err = ctl.Run(context.Background(), limiter.NewLimiter(hardware.SystemClock{}))
	if err != nil {
		panic(err)
	}
}
