// Package verify audits a maze topology against the perfect-maze
// invariants: every passage in bounds, every passage mutual, no cycles,
// and every cell reachable.
//
// Checks run in that order and stop at the first violation, so a report
// on a broken grid names the most local defect first.
//
// Complexity: O(W×L) time and memory.
package verify

import (
	"errors"
	"fmt"

	"github.com/spakin/disjoint"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazegen/bfs"
	"github.com/katalvlaran/mazegen/maze"
)

// Sentinel errors for verification.
var (
	// ErrTopologyNil is returned if a nil topology is passed.
	ErrTopologyNil = errors.New("verify: topology is nil")
	// ErrEmptyTopology indicates a width or length below 1.
	ErrEmptyTopology = errors.New("verify: topology has no cells")
	// ErrPassageOutOfBounds indicates a bit pointing outside the grid.
	ErrPassageOutOfBounds = errors.New("verify: passage leads out of bounds")
	// ErrAsymmetricPassage indicates a passage recorded on one side only.
	ErrAsymmetricPassage = errors.New("verify: passage not mirrored by neighbour")
	// ErrCycle indicates the passages contain a loop.
	ErrCycle = errors.New("verify: passages form a cycle")
	// ErrDisconnected indicates a cell unreachable from (0,0).
	ErrDisconnected = errors.New("verify: cell unreachable")
)

// Report summarizes a topology that passed every check.
type Report struct {
	Cells       int // Width×Length
	Passages    int // undirected open passages, Cells-1 for a perfect maze
	DeadEnds    int // cells with exactly one passage
	LongestPath int // passages on the longest route between any two cells
}

// Perfect checks that t is a perfect maze and summarizes it.
// The first violated invariant is returned wrapped with the offending
// coordinate; match it with errors.Is.
func Perfect(t bfs.Topology) (*Report, error) {
	if t == nil {
		return nil, ErrTopologyNil
	}
	if m, ok := t.(*maze.Maze); ok && m == nil {
		return nil, ErrTopologyNil
	}
	w, l := t.Width(), t.Length()
	if w < 1 || l < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyTopology, w, l)
	}

	// 1. Snapshot masks; WallMask must succeed for every in-range cell
	masks := make([]maze.Mask, w*l)
	var (
		x, y int
		err  error
	)
	for y = 0; y < l; y++ {
		for x = 0; x < w; x++ {
			if masks[y*w+x], err = t.WallMask(x, y); err != nil {
				return nil, fmt.Errorf("verify: WallMask(%d,%d): %w", x, y, err)
			}
		}
	}
	at := func(x, y int) maze.Mask { return masks[y*w+x] }
	inBounds := func(x, y int) bool { return x >= 0 && x < w && y >= 0 && y < l }

	// 2. Bounds and mutual passages
	var dx, dy int
	for y = 0; y < l; y++ {
		for x = 0; x < w; x++ {
			for _, d := range at(x, y).Directions() {
				dx, dy = d.Delta()
				if !inBounds(x+dx, y+dy) {
					return nil, fmt.Errorf("%w: (%d,%d) opens %s", ErrPassageOutOfBounds, x, y, d)
				}
				if !at(x+dx, y+dy).Has(d.Opposite()) {
					return nil, fmt.Errorf("%w: (%d,%d) opens %s", ErrAsymmetricPassage, x, y, d)
				}
			}
		}
	}

	// 3. Acyclicity: union each passage once, from its west/north end
	sets := make([]*disjoint.Element, w*l)
	for i := range sets {
		sets[i] = disjoint.NewElement()
	}
	rep := &Report{Cells: w * l}
	join := func(a, b int) bool {
		if sets[a].Find() == sets[b].Find() {
			return false
		}
		disjoint.Union(sets[a], sets[b])
		rep.Passages++
		return true
	}
	for y = 0; y < l; y++ {
		for x = 0; x < w; x++ {
			if at(x, y).Has(maze.East) && !join(y*w+x, y*w+x+1) {
				return nil, fmt.Errorf("%w: closing at (%d,%d) east", ErrCycle, x, y)
			}
			if at(x, y).Has(maze.South) && !join(y*w+x, (y+1)*w+x) {
				return nil, fmt.Errorf("%w: closing at (%d,%d) south", ErrCycle, x, y)
			}
			if at(x, y).Count() == 1 {
				rep.DeadEnds++
			}
		}
	}

	// 4. Connectivity from the entrance cell
	res, err := bfs.BFS(t, maze.Cell{X: 0, Y: 0})
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	reached := mapset.New[maze.Cell]()
	for _, c := range res.Order {
		reached.Put(c)
	}
	if reached.Size() != rep.Cells {
		for y = 0; y < l; y++ {
			for x = 0; x < w; x++ {
				if !reached.Has(maze.Cell{X: x, Y: y}) {
					return nil, fmt.Errorf("%w: (%d,%d) from (0,0)", ErrDisconnected, x, y)
				}
			}
		}
	}

	// 5. Diameter of the tree: farthest from the farthest cell
	res, err = bfs.BFS(t, res.Farthest())
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}
	rep.LongestPath = res.Depth[res.Farthest()]

	return rep, nil
}
