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

//go:build windows

package termboard

import (
	"os"

	"github.com/oledout/oledout/board"
	"github.com/oledout/oledout/curated"
	"github.com/oledout/oledout/hardware"
)

// Board is not available on Windows.
type Board struct {
	*Controls
	Bell bool
}

// NewBoard always returns an error on Windows.
func NewBoard(input *os.File, output *os.File, prf board.Profile, colour bool) (*Board, error) {
	return nil, curated.Errorf("termboard: %v", "not supported on windows")
}

// Close does nothing on Windows.
func (b *Board) Close() error {
	return nil
}

// Hardware returns an empty board on Windows.
func (b *Board) Hardware() hardware.Board {
	return hardware.Board{}
}
