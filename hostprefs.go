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
	"github.com/oledout/oledout/paths"
	"github.com/oledout/oledout/prefs"
)

// name of the preferences file in the resource directory
const prefsFile = "preferences"

// preferences for the host front-ends. values are stored on disk between
// sessions and can be overridden on the command line with the -prefs flag
type hostPrefs struct {
	dsk *prefs.Disk

	// window scaling for PLAY and DEBUG modes
	scale prefs.Int

	// buzzer volume for PLAY and DEBUG modes
	volume prefs.Float

	// TERM mode options
	colour prefs.Bool
	bell   prefs.Bool

	// directory for recordings made in WAV mode
	wavDir prefs.String
}

func newHostPrefs() (*hostPrefs, error) {
	p := &hostPrefs{}

	pth := paths.ResourcePath(prefsFile)
	if err := paths.EnsureResourceDir(pth); err != nil {
		return nil, err
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	p.scale.SetRange(1, 20)

	// defaults
	if err := p.scale.Set(6); err != nil {
		return nil, err
	}
	if err := p.volume.Set(0.5); err != nil {
		return nil, err
	}
	if err := p.colour.Set(true); err != nil {
		return nil, err
	}
	if err := p.wavDir.Set("."); err != nil {
		return nil, err
	}

	if err := p.dsk.Add("sdl.scale", &p.scale); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("sdl.volume", &p.volume); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("term.colour", &p.colour); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("term.bell", &p.bell); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("wav.dir", &p.wavDir); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *hostPrefs) save() error {
	return p.dsk.Save()
}
