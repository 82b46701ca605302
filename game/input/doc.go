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

// Package input samples the two buttons and the joystick axis.
//
// The buttons are active-low. A press is reported on the falling edge of the
// button's level, that is on the first sample that reads Low after a sample
// that read High. Presses are debounced by timestamp: a falling edge that
// occurs within the debounce window of the previous reported press for the
// same button is ignored. Debouncing never blocks and one button's window has
// no effect on the other button.
//
// The joystick axis is mapped directly to a paddle position with no smoothing
// and no deadzone.
package input
