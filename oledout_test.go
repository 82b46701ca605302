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
	"testing"
	"time"

	"github.com/oledout/oledout/board"
	"github.com/oledout/oledout/test"
)

func TestIdlePoll(t *testing.T) {
	// the device spins when idle but a host board does not
	prf := withIdlePoll(board.Default(), hostIdlePoll)
	test.ExpectEquality(t, prf.IdlePoll.Duration, hostIdlePoll)
	test.ExpectSuccess(t, prf.Validate())
	test.ExpectEquality(t, board.Default().IdlePoll.Duration, time.Duration(0))

	// an idle poll in the board profile is kept
	prf = board.Default()
	prf.IdlePoll.Duration = 50 * time.Millisecond
	prf = withIdlePoll(prf, hostIdlePoll)
	test.ExpectEquality(t, prf.IdlePoll.Duration, 50*time.Millisecond)
}
