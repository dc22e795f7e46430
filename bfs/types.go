// Package bfs provides tunable options and error definitions
// for breadth-first search over maze passages.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazegen/maze"
)

// Sentinel errors for BFS execution.
var (
	// ErrTopologyNil is returned if a nil topology is passed.
	ErrTopologyNil = errors.New("bfs: topology is nil")

	// ErrStartOutOfRange is returned when the start cell is outside the grid.
	ErrStartOutOfRange = errors.New("bfs: start cell out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path to cell")
)

// Topology is the read-only view of a maze that BFS walks.
// *maze.Maze satisfies it.
type Topology interface {
	Width() int
	Length() int
	WallMask(x, y int) (maze.Mask, error)
}

// isNil reports whether t is nil, including a nil *maze.Maze held in the
// interface.
func isNil(t Topology) bool {
	if t == nil {
		return true
	}
	m, ok := t.(*maze.Maze)

	return ok && m == nil
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c maze.Cell, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(maze.Cell, int) error { return nil },
		MaxDepth: 0,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c maze.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its distance (in passages) from the start.
//   - Parent: map from cell to its predecessor in the BFS tree.
type Result struct {
	Order  []maze.Cell
	Depth  map[maze.Cell]int
	Parent map[maze.Cell]maze.Cell
}

// PathTo reconstructs the path from the start cell to dest, both included.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest maze.Cell) ([]maze.Cell, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrNoPath, dest.X, dest.Y)
	}
	// build reversed path
	path := make([]maze.Cell, 0, r.Depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Farthest returns the visited cell with the greatest depth. Ties go to the
// cell visited first. For an empty result it returns the zero Cell.
func (r *Result) Farthest() maze.Cell {
	var (
		best    maze.Cell
		deepest = -1
	)
	for _, c := range r.Order {
		if d := r.Depth[c]; d > deepest {
			best, deepest = c, d
		}
	}

	return best
}
