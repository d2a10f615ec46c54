package dfs

import (
	"fmt"

	"github.com/trajeto/trajeto/core"
)

// frame is one suspended level of the walk: a node and how far through
// its neighbor list the exploration has advanced.
type frame struct {
	id    int
	edges []core.Edge
	next  int
}

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	stack []frame
	res   *Result
}

// DFS performs a depth-first search on g from start, stopping the
// instant goal is discovered. Returns ErrGraphNil or ErrNodeOutOfRange
// for invalid input; an unreachable goal is reported via Result.Found,
// not as an error.
func DFS(g *core.Graph, start, goal int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start=%d", ErrNodeOutOfRange, start)
	}
	if !g.HasNode(goal) {
		return nil, fmt.Errorf("%w: goal=%d", ErrNodeOutOfRange, goal)
	}

	n := g.NodeCount()
	res := &Result{
		Start:   start,
		Goal:    goal,
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Parent[i] = core.NoParent
	}

	w := &walker{graph: g, opts: o, stack: make([]frame, 0, n), res: res}

	// Discover the root; start == goal succeeds immediately.
	done, err := w.discover(start)
	if err != nil {
		return res, err
	}
	if done {
		return res, nil
	}

	return res, w.loop()
}

// discover marks id visited, fires the hook, and reports whether it is
// the goal. On a non-goal node the walk descends into it.
func (w *walker) discover(id int) (bool, error) {
	w.res.Visited[id] = true
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return false, fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}
	if id == w.res.Goal {
		w.res.Found = true
		return true, nil
	}

	edges, err := w.graph.Neighbors(id)
	if err != nil {
		return false, fmt.Errorf("dfs: neighbors of %d: %w", id, err)
	}
	w.stack = append(w.stack, frame{id: id, edges: edges})

	return false, nil
}

// loop drives the explicit stack. Each iteration advances the topmost
// frame by one neighbor, descending on first visits and popping frames
// whose neighbors are exhausted — exactly the order the recursive form
// would produce, success propagating upward immediately.
func (w *walker) loop() error {
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.edges) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		e := top.edges[top.next]
		top.next++

		if w.res.Visited[e.To] {
			continue
		}
		w.res.Parent[e.To] = top.id
		done, err := w.discover(e.To)
		if err != nil || done {
			return err
		}
	}

	return nil
}
