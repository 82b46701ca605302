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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/oledout/oledout/prefs"
	"github.com/oledout/oledout/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "prefs")
}

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading prefs file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	if expected != string(data) {
		t.Errorf("expected data and data in prefs file do not match\nexpected:\n%s\nin file:\n%s", expected, string(data))
	}
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestIntAndRange(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))
	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))

	w.SetRange(1, 16)
	test.ExpectFailure(t, w.Set(17))
	test.ExpectEquality(t, w.Get().(int), 99)
	test.ExpectSuccess(t, w.Set(16))
	test.ExpectEquality(t, w.Get().(int), 16)
}

func TestFloatAndString(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var f prefs.Float
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("volume", &f))
	test.ExpectSuccess(t, dsk.Add("dir", &s))

	test.ExpectSuccess(t, f.Set("0.25"))
	test.ExpectSuccess(t, s.Set("/tmp/wav"))
	test.ExpectFailure(t, f.Set("loud"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "dir :: /tmp/wav\nvolume :: 0.250\n")
}

func TestIllegalKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("", &v))
	test.ExpectFailure(t, dsk.Add("a::b", &v))
	test.ExpectFailure(t, dsk.Add("a;b", &v))
	test.ExpectSuccess(t, dsk.Add("a", &v))
	test.ExpectFailure(t, dsk.Add("a", &v))

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	// loading a missing file is not an error
	var scale prefs.Int
	test.ExpectSuccess(t, dsk.Add("sdl.scale", &scale))
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, scale.Get().(int), 0)

	test.ExpectSuccess(t, scale.Set(6))
	test.DemandSuccess(t, dsk.Save())
	test.ExpectSuccess(t, scale.Reset())

	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, scale.Get().(int), 6)

	// the command line overrides the file
	prefs.PushCommandLineStack("sdl.scale::9")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, scale.Get().(int), 9)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestLoadFailure(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("sdl.scale :: big\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var scale prefs.Int
	test.ExpectSuccess(t, dsk.Add("sdl.scale", &scale))
	test.ExpectFailure(t, dsk.Load(false))

	// saving on failure replaces the bad value
	test.ExpectSuccess(t, dsk.Load(true))
	cmpPrefFile(t, fn, "sdl.scale :: 0\n")
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestSharedFile(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpPrefFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// the pre hook prevents the update
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}
