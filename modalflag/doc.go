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

// Package modalflag wraps the flag package of the standard library so that a
// program can have modes, each with its own flags. The oledout binary uses it
// to select between the PLAY, TERM, WAV, PERFORMANCE and DEBUG modes.
//
// Arguments are given once with NewArgs() and then parsed one layer at a time
// with Parse(). Before each call to Parse() the flags and sub-modes for that
// layer are added:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "TERM", "WAV")
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "WAV":
//		md.NewMode()
//		frames := md.AddInt("frames", 1000, "number of frames to run")
//		md.Parse()
//		...
//	}
//
// The first sub-mode is the default. It is selected when the next argument is
// not the name of a sub-mode. Sub-mode names are case insensitive.
//
// The -help flag is handled by Parse(), which prints the flags and sub-modes
// of the current layer to the Output writer and returns ParseHelp.
package modalflag
