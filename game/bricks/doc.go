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

// Package bricks implements the brick field. The field is a fixed grid of
// destructible cells. The geometry of each cell is computed from its row and
// column and is never stored.
//
// Cells are either active or destroyed. A destroyed cell stays destroyed
// until the grid is reset. The zero value of Grid is a grid in which every
// cell has been destroyed; call Reset() to make the cells active.
//
// Scanning is always in row-major order, starting at the top-left cell.
package bricks
