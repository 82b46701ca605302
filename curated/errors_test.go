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

package curated_test

import (
	"errors"
	"testing"

	"github.com/oledout/oledout/curated"
	"github.com/oledout/oledout/test"
)

const testPattern = "test error: %s"
const wrapPattern = "wrapped: %v"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// wrapping an error in the same context drops the repeated part
	f := curated.Errorf("test error: %v", e)
	test.ExpectEquality(t, f.Error(), "test error: foo")

	// repeated parts further down the chain are also dropped
	g := curated.Errorf("board: %v", curated.Errorf("board: %v", curated.Errorf("board: %v", "missing")))
	test.ExpectEquality(t, g.Error(), "board: missing")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))

	f := curated.Errorf(wrapPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))

	// plain errors are never curated
	p := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Has(p, testPattern))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestUnwrap(t *testing.T) {
	p := errors.New("plain error")
	e := curated.Errorf(wrapPattern, p)
	test.ExpectSuccess(t, errors.Is(e, p))
	test.ExpectEquality(t, e.Error(), "wrapped: plain error")
}
