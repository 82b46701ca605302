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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"
)

// WarningBoilerPlate is written to the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand while oledout is running ***"

// the separator between a key and its value in the prefs file
const keySep = " :: "

// Disk associates pref values with keys and saves them to a file.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file is not accessed until Load() or Save() is called.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for disk")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a pref value to the disk under the key. Keys must be unique and must
// not contain the separator or a newline.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if key == "" || strings.Contains(key, strings.TrimSpace(keySep)) || strings.ContainsAny(key, "\n;") {
		return fmt.Errorf("prefs: illegal key %q", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key %q already added", key)
	}
	dsk.entries[key] = p
	return nil
}

// readFile returns the key/value pairs in the prefs file. A missing file is
// not an error.
func (dsk *Disk) readFile() (map[string]string, error) {
	values := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == WarningBoilerPlate {
			continue
		}
		k, v, ok := strings.Cut(line, keySep)
		if !ok {
			continue
		}
		values[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return values, nil
}

// Save the current values to the file. Entries in the file for keys that are
// not known to the disk are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	values, err := dsk.readFile()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var s strings.Builder
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(keySep)
		s.WriteString(values[k])
		s.WriteString("\n")
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load values from the file and then from the top of the command line stack.
// Values in the file for keys not known to the disk are ignored. A missing
// file is not an error.
//
// If saveOnFail is true and a value in the file cannot be set (because it is
// malformed, for example) then the file is saved with the current values and
// no error is returned.
func (dsk *Disk) Load(saveOnFail bool) error {
	values, err := dsk.readFile()
	if err != nil {
		return err
	}

	dsk.crit.Lock()
	var setErr error
	for k, p := range dsk.entries {
		if v, ok := values[k]; ok {
			if err := p.Set(v); err != nil && setErr == nil {
				setErr = fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	// command line values override values in the file
	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil && setErr == nil {
				setErr = fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}
	dsk.crit.Unlock()

	if setErr != nil {
		if saveOnFail {
			return dsk.Save()
		}
		return setErr
	}

	return nil
}

// Reset every value on the disk to its zero value. The file is not changed.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for k, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %w", k, err)
		}
	}
	return nil
}
