package maze

import "fmt"

// Width returns the number of columns (x extent). A nil *Maze has width 0.
func (m *Maze) Width() int {
	if m == nil {
		return 0
	}

	return m.width
}

// Length returns the number of rows (y extent). A nil *Maze has length 0.
func (m *Maze) Length() int {
	if m == nil {
		return 0
	}

	return m.length
}

// InBounds reports whether (x,y) lies within the grid.
// Every coordinate is out of bounds on a nil *Maze.
// Complexity: O(1).
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width() && y >= 0 && y < m.Length()
}

// WallMask returns the passage mask of cell (x,y).
// Returns ErrOutOfRange if (x,y) is outside the grid; coordinates are never
// clamped.
// Complexity: O(1).
func (m *Maze) WallMask(x, y int) (Mask, error) {
	if !m.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfRange, x, y, m.Width(), m.Length())
	}

	return m.cells[m.index(x, y)], nil
}

// Neighbor returns the cell reached from (x,y) through an open passage
// towards d. The second result is false if (x,y) is out of range or the
// wall towards d is closed.
func (m *Maze) Neighbor(x, y int, d Direction) (Cell, bool) {
	if !m.InBounds(x, y) || !m.cells[m.index(x, y)].Has(d) {
		return Cell{}, false
	}
	dx, dy := d.Delta()

	return Cell{X: x + dx, Y: y + dy}, true
}

// Passages returns the number of undirected open passages.
// For every maze built by New this is Width()*Length()-1.
func (m *Maze) Passages() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, c := range m.cells {
		// count each edge once, from its west/north end
		if c.Has(East) {
			n++
		}
		if c.Has(South) {
			n++
		}
	}

	return n
}

// Walls lists every closed edge exactly once, rows first.
// Interior walls are reported from the cell on their north or west side
// (Side South or East); border walls from the only cell that touches them.
// Complexity: O(W×L).
func (m *Maze) Walls() []Wall {
	if m == nil {
		return nil
	}
	walls := make([]Wall, 0, 2*(m.width+m.length))

	var (
		x, y int
		c    Mask
		at   Cell
	)
	for y = 0; y < m.length; y++ {
		for x = 0; x < m.width; x++ {
			c = m.cells[m.index(x, y)]
			at = Cell{X: x, Y: y}
			if y == 0 && !c.Has(North) {
				walls = append(walls, Wall{Cell: at, Side: North})
			}
			if x == 0 && !c.Has(West) {
				walls = append(walls, Wall{Cell: at, Side: West})
			}
			if !c.Has(East) {
				walls = append(walls, Wall{Cell: at, Side: East})
			}
			if !c.Has(South) {
				walls = append(walls, Wall{Cell: at, Side: South})
			}
		}
	}

	return walls
}

// index maps (x,y) to a row-major index: y*width + x.
func (m *Maze) index(x, y int) int {
	return y*m.width + x
}
