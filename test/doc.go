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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions stop the test with t.Fatalf().
//
// ExpectSuccess() and ExpectFailure() accept bool and error values. A nil
// value is considered a success, because that is how errors work: a nil error
// means nothing went wrong.
//
// The CompareWriter type implements io.Writer and can be used to capture
// output, which can later be compared to an expected string.
package test
