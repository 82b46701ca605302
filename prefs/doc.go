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

// Package prefs stores the preferences of the host front-ends. Preferences
// are typed values (Bool, Int, Float, String) that are registered with a
// Disk under a key. The Disk saves and loads the values to a plain text file,
// one value per line, in the form:
//
//	key :: value
//
// Lines for keys that the Disk does not know about are preserved when the
// file is saved. This allows more than one Disk to share the same file.
//
// Values can also be given on the command line with the -prefs flag, as a
// list of key/value pairs separated by semi-colons:
//
//	-prefs "sdl.scale::8; sdl.volume::0.25"
//
// Command line values are pushed onto a stack with PushCommandLineStack()
// and applied the next time a Disk is loaded. They override the values in the
// file for that run only. Command line values are not saved unless the value
// is changed again after loading.
package prefs
