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
	"testing"

	"github.com/oledout/oledout/prefs"
	"github.com/oledout/oledout/test"
)

func TestCommandLineStackValues(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("sdl.scale::8")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sdl.scale::8")

	// surrounding space is removed
	prefs.PushCommandLineStack("   sdl.scale:: 8 ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sdl.scale::8")

	// remaining values are sorted by key
	prefs.PushCommandLineStack("sdl.volume::0.5; sdl.scale::8")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sdl.scale::8; sdl.volume::0.5")

	// malformed pairs are ignored
	prefs.PushCommandLineStack("sdl.scale")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("sdl.scale;term.colour::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "term.colour::true")
	prefs.PushCommandLineStack("a::b::c; term.colour::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "term.colour::true")
}

func TestCommandLineStackGet(t *testing.T) {
	prefs.PushCommandLineStack("sdl.scale::8;sdl_volume")

	ok, _ := prefs.GetCommandLinePref("sdl_volume")
	test.ExpectFailure(t, ok)

	ok, v := prefs.GetCommandLinePref("sdl.scale")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "8")

	// values are removed when they are used
	ok, _ = prefs.GetCommandLinePref("sdl.scale")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("sdl.scale::8")
	prefs.PushCommandLineStack("sdl.volume::0.5")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the top of the stack is visible
	ok, _ := prefs.GetCommandLinePref("sdl.scale")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sdl.volume::0.5")

	// first group still exists
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "sdl.scale::8")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
