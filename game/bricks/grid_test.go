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

package bricks_test

import (
	"testing"

	"github.com/oledout/oledout/game/bricks"
	"github.com/oledout/oledout/test"
)

func TestGeometry(t *testing.T) {
	test.ExpectEquality(t, bricks.Cell{Row: 0, Column: 0}.Rect(), bricks.Rect{X: 0, Y: 12, W: 14, H: 5})
	test.ExpectEquality(t, bricks.Cell{Row: 1, Column: 2}.Rect(), bricks.Rect{X: 32, Y: 19, W: 14, H: 5})
	test.ExpectEquality(t, bricks.Cell{Row: 2, Column: 7}.Rect(), bricks.Rect{X: 112, Y: 26, W: 14, H: 5})
}

func TestReset(t *testing.T) {
	var g bricks.Grid
	test.ExpectEquality(t, g.IsCleared(), true)

	g.Reset()
	test.ExpectEquality(t, g.Remaining(), bricks.Rows*bricks.Columns)
	test.ExpectEquality(t, g.IsCleared(), false)

	g.Each(func(c bricks.Cell) {
		g.Destroy(c)
	})
	test.ExpectEquality(t, g.IsCleared(), true)

	g.Reset()
	test.ExpectEquality(t, g.Remaining(), bricks.Rows*bricks.Columns)
}

func TestDestroyIsIdempotent(t *testing.T) {
	var g bricks.Grid
	g.Reset()

	c := bricks.Cell{Row: 1, Column: 3}
	test.ExpectEquality(t, g.Destroy(c), true)
	test.ExpectEquality(t, g.Active(c), false)
	n := g.Remaining()

	test.ExpectEquality(t, g.Destroy(c), false)
	test.ExpectEquality(t, g.Active(c), false)
	test.ExpectEquality(t, g.Remaining(), n)
}

func TestOutOfRangeCells(t *testing.T) {
	var g bricks.Grid
	g.Reset()

	for _, c := range []bricks.Cell{{-1, 0}, {0, -1}, {bricks.Rows, 0}, {0, bricks.Columns}} {
		test.ExpectEquality(t, c.Valid(), false)
		test.ExpectEquality(t, g.Active(c), false)
		test.ExpectEquality(t, g.Destroy(c), false)
	}
	test.ExpectEquality(t, g.Remaining(), bricks.Rows*bricks.Columns)
}

func TestHitTest(t *testing.T) {
	var g bricks.Grid
	g.Reset()

	// inside the first brick
	c, ok := g.HitTest(bricks.Box{X: 5, Y: 13, W: 3, H: 3})
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, c, bricks.Cell{Row: 0, Column: 0})

	// in the gap between two columns. touching edges is not an overlap
	_, ok = g.HitTest(bricks.Box{X: 14, Y: 13, W: 2, H: 2})
	test.ExpectEquality(t, ok, false)

	// above the grid
	_, ok = g.HitTest(bricks.Box{X: 40, Y: 5, W: 3, H: 3})
	test.ExpectEquality(t, ok, false)

	// straddling two rows. the first in scan order is reported
	c, ok = g.HitTest(bricks.Box{X: 20, Y: 16.5, W: 3, H: 3})
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, c, bricks.Cell{Row: 0, Column: 1})
}

func TestDestroyedCellsAreNeverHit(t *testing.T) {
	var g bricks.Grid
	g.Reset()

	box := bricks.Box{X: 20, Y: 16.5, W: 3, H: 3}
	for {
		c, ok := g.HitTest(box)
		if !ok {
			break
		}
		g.Destroy(c)
		for _, o := range g.Overlapping(box) {
			test.ExpectInequality(t, o, c)
		}
	}
	test.ExpectEquality(t, len(g.Overlapping(box)), 0)

	g.Reset()
	test.ExpectEquality(t, len(g.Overlapping(box)), 2)
}

func TestOverlapping(t *testing.T) {
	var g bricks.Grid
	g.Reset()

	// a box covering the corner of four bricks
	box := bricks.Box{X: 12.5, Y: 15.5, W: 5, H: 5}
	cells := g.Overlapping(box)
	test.ExpectEquality(t, len(cells), 4)
	test.ExpectEquality(t, cells[0], bricks.Cell{Row: 0, Column: 0})
	test.ExpectEquality(t, cells[1], bricks.Cell{Row: 0, Column: 1})
	test.ExpectEquality(t, cells[2], bricks.Cell{Row: 1, Column: 0})
	test.ExpectEquality(t, cells[3], bricks.Cell{Row: 1, Column: 1})
}
