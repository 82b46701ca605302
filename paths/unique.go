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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this.
//
// Used to generate filenames for buzzer recordings.
//
// Format of returned string is:
//
//	prepend_YYYYMMDD_HHMMSS.ext
//
// If the extension is empty then there is no trailing dot.
func UniqueFilename(prepend string, ext string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	fn := fmt.Sprintf("%s_%s", prepend, timestamp)

	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if len(ext) > 0 {
		fn = fmt.Sprintf("%s.%s", fn, ext)
	}

	return fn
}
