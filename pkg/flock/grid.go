package flock

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// Grid is the spatial index: a flat array of buckets over the world plane,
// addressed by key = row*cols + col. Buckets hold slot indices into the
// agent slice that was passed to Rebuild, never pointers, so they cannot
// dangle when the population is resized between ticks.
type Grid struct {
	cellSize float64
	invCell  float64 // 1 / cellSize
	cols     int
	rows     int
	wrap     bool
	cells    [][]int
}

// NewGrid covers a width x height world with square cells of cellSize.
// With wrap set, queries near an edge continue across the opposite edge;
// this is exact only when both dimensions are multiples of cellSize.
func NewGrid(width, height, cellSize float64, wrap bool) *Grid {
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		cellSize: cellSize,
		invCell:  1 / cellSize,
		cols:     cols,
		rows:     rows,
		wrap:     wrap,
		cells:    make([][]int, cols*rows),
	}
}

// Dims returns the number of columns and rows.
func (g *Grid) Dims() (cols, rows int) {
	return g.cols, g.rows
}

// cellOf maps a position to its cell. Floor, not truncation, so that small
// negative coordinates do not share cell 0 with small positive ones. The
// result is clamped so a point sitting exactly on the far edge, or one not
// yet wrapped, still lands in a real cell; Rebuild and Query share this.
func (g *Grid) cellOf(p geometry.Vector2D) (col, row int) {
	col = int(math.Floor(p.X * g.invCell))
	row = int(math.Floor(p.Y * g.invCell))
	col = min(max(col, 0), g.cols-1)
	row = min(max(row, 0), g.rows-1)
	return col, row
}

// Key is the bucket key of the cell containing p.
func (g *Grid) Key(p geometry.Vector2D) int {
	col, row := g.cellOf(p)
	return row*g.cols + col
}

// Rebuild clears every bucket, keeping its capacity, and reinserts all agents.
func (g *Grid) Rebuild(agents []Agent) {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	for i := range agents {
		k := g.Key(agents[i].Pos)
		g.cells[k] = append(g.cells[k], i)
	}
}

// Query appends to dst the slot index of every agent in the 3x3 block of
// cells centered on the cell containing p, and returns the extended slice.
// The agent sitting at p, if any, is part of the result: callers exclude
// themselves by slot index. Without wrap, cells beyond the world edge are
// simply absent, so agents near an edge see a truncated neighborhood.
func (g *Grid) Query(p geometry.Vector2D, dst []int) []int {
	col, row := g.cellOf(p)

	var (
		visited [9]int
		n       int
	)
	for dr := -1; dr <= 1; dr++ {
		r, ok := g.axis(row+dr, g.rows)
		if !ok {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c, ok := g.axis(col+dc, g.cols)
			if !ok {
				continue
			}
			key := r*g.cols + c
			// on grids narrower than 3 cells a wrapped block revisits cells
			if g.wrap && seen(visited[:n], key) {
				continue
			}
			visited[n] = key
			n++
			dst = append(dst, g.cells[key]...)
		}
	}
	return dst
}

func (g *Grid) axis(i, size int) (int, bool) {
	if i >= 0 && i < size {
		return i, true
	}
	if !g.wrap {
		return 0, false
	}
	if i < 0 {
		return i + size, true
	}
	return i - size, true
}

func seen(keys []int, key int) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
