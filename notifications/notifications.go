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

package notifications

// Notice describes events that change the presentation of the game. These
// notifications can be used to present additional information to the user.
type Notice string

// List of defined notifications.
const (
	// the game has moved from the NotStarted state to the Playing or Paused
	// state
	NotifyStarted Notice = "NotifyStarted"

	// the game has been paused or resumed
	NotifyPaused  Notice = "NotifyPaused"
	NotifyResumed Notice = "NotifyResumed"

	// a brick has been destroyed
	NotifyBrickHit Notice = "NotifyBrickHit"

	// the ball has left the bottom of the screen
	NotifyLifeLost Notice = "NotifyLifeLost"

	// the game has been won or lost. the notice is sent before the melody
	// starts
	NotifyWon  Notice = "NotifyWon"
	NotifyLost Notice = "NotifyLost"

	// the session has been reset to the NotStarted state, either by the
	// start button or at the end of the win/loss melody
	NotifyReset Notice = "NotifyReset"
)

// Notify is implemented by front-ends that want to be told about game events.
// An error returned by Notify() ends the game loop.
type Notify interface {
	Notify(notice Notice) error
}
