package bfs

import (
	"fmt"

	"github.com/trajeto/trajeto/core"
)

// queueItem pairs a node index with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g from start and stops as soon as
// goal is dequeued; that first dequeue is the shortest path in edges.
// Returns ErrGraphNil, ErrNodeOutOfRange, ErrWeightedGraph, or
// ErrOptionViolation for invalid input; an unreachable goal is not an
// error and is reported via Result.Found.
func BFS(g *core.Graph, start, goal int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start=%d", ErrNodeOutOfRange, start)
	}
	if !g.HasNode(goal) {
		return nil, fmt.Errorf("%w: goal=%d", ErrNodeOutOfRange, goal)
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Start:  start,
			Goal:   goal,
			Parent: make([]int, n),
			Depth:  make([]int, n),
			Order:  make([]int, 0, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Parent[i] = core.NoParent
		w.res.Depth[i] = -1
	}

	// Seed the frontier with start (no parent).
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{id: start})

	return w.res, w.loop()
}

// loop processes the queue until the goal is dequeued, the frontier
// empties, or an error/cancellation aborts.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		// First dequeue of the goal is the shortest path: stop here.
		if item.id == w.res.Goal {
			w.res.Found = true
			return nil
		}

		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen neighbor in adjacency order and records its parent.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.id, err)
	}

	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, e := range neighbors {
		if !w.opts.FilterNeighbor(item.id, e.To) {
			continue
		}
		if w.visited[e.To] {
			continue
		}
		w.visited[e.To] = true
		w.res.Parent[e.To] = item.id
		w.res.Depth[e.To] = nextDepth
		w.queue = append(w.queue, queueItem{id: e.To, depth: nextDepth})
	}

	return nil
}
