// Package systems provides the simulation systems that advance the arena each tick.
package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Locatable is anything the grid can bucket.
type Locatable interface {
	comparable
	Bounds() (pos r2.Vec, radius float64)
}

// Grid is a broad-phase index over the world disc's bounding square.
// It is rebuilt every tick; retrieval order carries no meaning.
type Grid[T Locatable] struct {
	cellSize float64
	origin   float64 // World coordinate of the first column/row edge
	cols     int
	rows     int
	cells    [][]T // flat grid of entity lists
	count    int

	seen map[T]struct{}
	out  []T
}

// NewGrid creates a grid covering [-worldRadius, worldRadius] on both axes.
func NewGrid[T Locatable](worldRadius, cellSize float64) *Grid[T] {
	n := int(math.Ceil(2*worldRadius/cellSize)) + 1

	cells := make([][]T, n*n)
	for i := range cells {
		cells[i] = make([]T, 0, 8) // pre-allocate small capacity
	}

	return &Grid[T]{
		cellSize: cellSize,
		origin:   -worldRadius,
		cols:     n,
		rows:     n,
		cells:    cells,
		seen:     make(map[T]struct{}, 64),
	}
}

// Clear removes all entries from the grid.
func (g *Grid[T]) Clear() {
	for i := range g.cells {
		clear(g.cells[i])
		g.cells[i] = g.cells[i][:0]
	}
	g.count = 0
}

// Len returns the number of inserted entries.
func (g *Grid[T]) Len() int {
	return g.count
}

// Insert adds v to every cell its circular footprint overlaps.
func (g *Grid[T]) Insert(v T) {
	pos, r := v.Bounds()
	c0, r0 := g.cell(pos.X-r, pos.Y-r)
	c1, r1 := g.cell(pos.X+r, pos.Y+r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			idx := row*g.cols + col
			g.cells[idx] = append(g.cells[idx], v)
		}
	}
	g.count++
}

// Retrieve returns every entry sharing at least one cell with q, excluding q.
// The returned slice is reused by the next Retrieve call.
func (g *Grid[T]) Retrieve(q T) []T {
	pos, r := q.Bounds()
	g.out = g.collect(g.out[:0], pos, r, q, true)
	return g.out
}

// RetrieveInto appends entries sharing a cell with the given circle to dst.
func (g *Grid[T]) RetrieveInto(dst []T, pos r2.Vec, radius float64) []T {
	var zero T
	return g.collect(dst, pos, radius, zero, false)
}

func (g *Grid[T]) collect(dst []T, pos r2.Vec, r float64, exclude T, hasExclude bool) []T {
	clear(g.seen)
	c0, r0 := g.cell(pos.X-r, pos.Y-r)
	c1, r1 := g.cell(pos.X+r, pos.Y+r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			for _, v := range g.cells[row*g.cols+col] {
				if hasExclude && v == exclude {
					continue
				}
				if _, dup := g.seen[v]; dup {
					continue
				}
				g.seen[v] = struct{}{}
				dst = append(dst, v)
			}
		}
	}
	return dst
}

// cell returns the clamped column and row for a world position.
func (g *Grid[T]) cell(x, y float64) (col, row int) {
	col = int(math.Floor((x - g.origin) / g.cellSize))
	row = int(math.Floor((y - g.origin) / g.cellSize))

	// Clamp to valid range
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}
