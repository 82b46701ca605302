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

// Package curated wraps the plain Go error type with a pattern that can be
// tested for later. Curated errors are created with Errorf(), which takes a
// pattern and values in the same way as fmt.Errorf():
//
//	e := curated.Errorf("board: %v", err)
//
// The pattern is remembered and can be checked with Is(), or searched for
// anywhere in a chain of curated errors with Has():
//
//	if curated.Has(err, game.Quit) {
//		return nil
//	}
//
// Sentinel errors are just pattern strings stored as constants in the package
// that raises them.
//
// Error() normalises the message so that duplicate adjacent parts of a chain
// are removed. Wrapping the same context twice, as commonly happens when a
// function and its caller both prefix an error, therefore produces:
//
//	board: file not found
//
// and not:
//
//	board: board: file not found
//
// Parts of a chain are separated by the sub-string ": ".
package curated
