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

package board

import (
	"errors"
	"io"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/oledout/oledout/curated"
	"github.com/oledout/oledout/logger"
)

// Load a profile from a TOML file. Values not specified in the file are taken
// from Default().
func Load(path string) (Profile, error) {
	p := Default()
	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return Profile{}, curated.Errorf(LoadError, err)
	}
	return finish(p, md, path)
}

// LoadOptional is like Load() except that a file that does not exist is not
// an error. The default profile is returned in that case.
func LoadOptional(path string) (Profile, error) {
	p, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Profile{}, err
	}
	return p, nil
}

// Read a profile from the reader. The name is used in error messages.
func Read(r io.Reader, name string) (Profile, error) {
	p := Default()
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return Profile{}, curated.Errorf(LoadError, err)
	}
	return finish(p, md, name)
}

func finish(p Profile, md toml.MetaData, name string) (Profile, error) {
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return Profile{}, curated.Errorf(UnknownKeys, name, strings.Join(keys, ", "))
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	logger.Logf(logger.Allow, "board", "%s from %s", p, name)
	return p, nil
}

// Write the profile to the writer in TOML format.
func (p Profile) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(p)
}
