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

package session

// Geometry of the game objects. The display is an SSD1331 (96x64) on the
// reference board but the session is created with the dimensions of whatever
// display is attached.
const (
	ScreenWidth  = 96
	ScreenHeight = 64

	PaddleWidth  = 20
	PaddleHeight = 4
	PaddleY      = 58

	BallSize = 3

	// the magnitude of each component of the ball's velocity. it never
	// changes, only the sign of each component changes
	BallSpeed = 1.3
)

// Scoring rules.
const (
	InitialLives = 3
	BrickValue   = 10

	// the game is won when the score is exactly this value. with a 96 pixel
	// display only the first six columns of the brick field are visible,
	// meaning that only 18 bricks can ever be hit
	WinScore = 180
)
