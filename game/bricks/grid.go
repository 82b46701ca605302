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

package bricks

import "fmt"

// Dimensions of the grid and of each cell.
const (
	Rows    = 3
	Columns = 8

	Width  = 14
	Height = 5

	// the space between adjacent cells, both horizontally and vertically
	Gap = 2

	// the y coordinate of the top row
	Top = 12
)

// Cell identifies a single brick in the grid.
type Cell struct {
	Row    int
	Column int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Column)
}

// Valid returns true if the cell is inside the grid.
func (c Cell) Valid() bool {
	return c.Row >= 0 && c.Row < Rows && c.Column >= 0 && c.Column < Columns
}

// Rect is the on-screen rectangle of a cell.
type Rect struct {
	X, Y int
	W, H int
}

// Rect returns the screen rectangle for the cell.
func (c Cell) Rect() Rect {
	return Rect{
		X: c.Column * (Width + Gap),
		Y: Top + c.Row*(Height+Gap),
		W: Width,
		H: Height,
	}
}

// Box is an axis-aligned bounding box with fractional coordinates. It is used
// to describe the ball when testing for overlap.
type Box struct {
	X, Y float64
	W, H float64
}

// Overlaps returns true if the box and the rectangle share any area. Touching
// edges do not count as an overlap.
func (r Rect) Overlaps(b Box) bool {
	return b.X+b.W > float64(r.X) && b.X < float64(r.X+r.W) &&
		b.Y+b.H > float64(r.Y) && b.Y < float64(r.Y+r.H)
}

// Grid is the brick field.
type Grid struct {
	active [Rows][Columns]bool
}

// Reset makes every cell in the grid active.
func (g *Grid) Reset() {
	for r := range g.active {
		for c := range g.active[r] {
			g.active[r][c] = true
		}
	}
}

// Active returns true if the cell has not been destroyed. Cells outside of
// the grid are never active.
func (g *Grid) Active(c Cell) bool {
	if !c.Valid() {
		return false
	}
	return g.active[c.Row][c.Column]
}

// Destroy marks the cell as destroyed. It returns true if the cell was
// active before the call, meaning that calling Destroy() a second time on the
// same cell returns false. Cells outside of the grid are ignored.
func (g *Grid) Destroy(c Cell) bool {
	if !g.Active(c) {
		return false
	}
	g.active[c.Row][c.Column] = false
	return true
}

// HitTest returns the first active cell, in scan order, that overlaps the
// box. The boolean is false if there is no such cell.
func (g *Grid) HitTest(b Box) (Cell, bool) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			cell := Cell{Row: r, Column: c}
			if g.active[r][c] && cell.Rect().Overlaps(b) {
				return cell, true
			}
		}
	}
	return Cell{}, false
}

// Overlapping returns every active cell, in scan order, that overlaps the box.
func (g *Grid) Overlapping(b Box) []Cell {
	var cells []Cell
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			cell := Cell{Row: r, Column: c}
			if g.active[r][c] && cell.Rect().Overlaps(b) {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

// Remaining returns the number of active cells.
func (g *Grid) Remaining() int {
	var n int
	for r := range g.active {
		for c := range g.active[r] {
			if g.active[r][c] {
				n++
			}
		}
	}
	return n
}

// IsCleared returns true if there are no active cells remaining.
func (g *Grid) IsCleared() bool {
	return g.Remaining() == 0
}

// Each calls the function for every active cell in scan order.
func (g *Grid) Each(f func(Cell)) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if g.active[r][c] {
				f(Cell{Row: r, Column: c})
			}
		}
	}
}
