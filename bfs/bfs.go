// Package bfs provides breadth-first search over maze passages,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores cells in increasing distance from a start cell,
// with an optional visit hook and depth limit.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazegen/maze"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  maze.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	topo    Topology
	width   int
	length  int
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[maze.Cell]bool
	res     *Result
}

// BFS runs breadth-first search on t starting from start,
// applying any number of functional Options.
// Returns ErrTopologyNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// A topology with no cells rejects every start with ErrStartOutOfRange.
func BFS(t Topology, start maze.Cell, opts ...Option) (*Result, error) {
	if isNil(t) {
		return nil, ErrTopologyNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start cell
	w, l := t.Width(), t.Length()
	if start.X < 0 || start.X >= w || start.Y < 0 || start.Y >= l {
		return nil, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrStartOutOfRange, start.X, start.Y, w, l)
	}

	// Prepare walker
	n := w * l
	wk := &walker{
		topo:    t,
		width:   w,
		length:  l,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[maze.Cell]bool, n),
		res: &Result{
			Order:  make([]maze.Cell, 0, n),
			Depth:  make(map[maze.Cell]int, n),
			Parent: make(map[maze.Cell]maze.Cell, n),
		},
	}

	// Seed queue with start cell (no parent)
	wk.enqueue(start, 0, nil)
	// Main loop
	return wk.res, wk.loop()
}

// ShortestPath returns the cells on the shortest passage route from -> to,
// both included. In a perfect maze this is the unique route.
func ShortestPath(t Topology, from, to maze.Cell) ([]maze.Cell, error) {
	res, err := BFS(t, from)
	if err != nil {
		return nil, err
	}

	return res.PathTo(to)
}

// enqueue marks c visited at depth d, records its parent, and adds it to the
// queue.
func (w *walker) enqueue(c maze.Cell, d int, parent *maze.Cell) {
	w.visited[c] = true
	w.res.Depth[c] = d
	if parent != nil {
		w.res.Parent[c] = *parent
	}
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.cell)
	if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at (%d,%d): %w", item.cell.X, item.cell.Y, err)
	}

	return nil
}

// enqueueNeighbors follows every open, in-bounds passage of item's cell and
// enqueues each unseen neighbour within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	mask, err := w.topo.WallMask(item.cell.X, item.cell.Y)
	if err != nil {
		return fmt.Errorf("bfs: WallMask(%d,%d): %w", item.cell.X, item.cell.Y, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	var (
		dx, dy int
		nbr    maze.Cell
	)
	for _, d := range mask.Directions() {
		dx, dy = d.Delta()
		nbr = maze.Cell{X: item.cell.X + dx, Y: item.cell.Y + dy}
		if nbr.X < 0 || nbr.X >= w.width || nbr.Y < 0 || nbr.Y >= w.length {
			continue
		}
		// first time seen?
		if !w.visited[nbr] {
			parent := item.cell
			w.enqueue(nbr, nextDepth, &parent)
		}
	}

	return nil
}
