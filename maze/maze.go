// Package maze implements the randomized depth-first backtracker.
//
// The carve keeps its own stack of frames instead of recursing, so grids of
// tens of thousands of cells cost heap rather than goroutine stack. For a
// given permutation sequence the result is identical to the recursive form:
// a cell shuffles its directions once when entered and descends into the
// first unvisited neighbour before trying its remaining directions.
package maze

import (
	"fmt"

	"github.com/zyedidia/generic/stack"
)

// Maze is a carved width×length grid. It is immutable once New returns.
// cells is row-major: cells[y*width+x].
type Maze struct {
	width  int
	length int
	cells  []Mask
}

// frame is one level of the backtracker: the cell being expanded, its
// shuffled directions, and the next direction to try.
type frame struct {
	at   Cell
	dirs [4]Direction
	next int
}

// New allocates a width×length grid and carves a perfect maze into it,
// starting at cell (0,0).
// Returns ErrInvalidDimension if width or length is below 1; no maze is
// built in that case.
// Complexity: O(W×L) time and memory.
func New(width, length int, opts ...Option) (*Maze, error) {
	// 1. Validate dimensions before allocating anything
	if width < 1 || length < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, length)
	}

	// 2. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 3. Allocate zeroed cells (all walls present) and carve
	m := &Maze{
		width:  width,
		length: length,
		cells:  make([]Mask, width*length),
	}
	m.carve(Cell{X: 0, Y: 0}, o.Shuffler)

	return m, nil
}

// carve grows the spanning tree from start. A cell counts as visited once
// its mask is non-zero; start is treated as visited from the outset since
// its mask stays zero until the first passage is opened.
func (m *Maze) carve(start Cell, s Shuffler) {
	frames := stack.New[*frame]()
	frames.Push(enter(start, s))

	var (
		f      *frame
		d      Direction
		dx, dy int
		next   Cell
	)
	for frames.Size() > 0 {
		f = frames.Peek()

		// Backtrack once every direction of this cell has been tried
		if f.next == len(f.dirs) {
			frames.Pop()
			continue
		}
		d = f.dirs[f.next]
		f.next++

		dx, dy = d.Delta()
		next = Cell{X: f.at.X + dx, Y: f.at.Y + dy}
		if !m.InBounds(next.X, next.Y) || next == start || m.cells[m.index(next.X, next.Y)] != 0 {
			continue
		}

		// Open the passage on both sides, then descend
		m.cells[m.index(f.at.X, f.at.Y)] = m.cells[m.index(f.at.X, f.at.Y)].With(d)
		m.cells[m.index(next.X, next.Y)] = m.cells[m.index(next.X, next.Y)].With(d.Opposite())
		frames.Push(enter(next, s))
	}
}

// enter builds the frame for a newly reached cell, shuffling its directions.
func enter(c Cell, s Shuffler) *frame {
	f := &frame{at: c, dirs: allDirections}
	s.Shuffle(f.dirs[:])

	return f
}
