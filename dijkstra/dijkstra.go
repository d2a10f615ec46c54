package dijkstra

import (
	"fmt"

	"github.com/trajeto/trajeto/core"
)

// Dijkstra computes minimum-cost distances and predecessors from
// source to every node of the weighted graph g.
//
// Validation order: options, nil graph, weighted flag, source range.
// A disconnected node is not an error — its entry stays at Inf with
// no predecessor.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: source=%d", ErrNodeOutOfRange, source)
	}

	r := newRunner(g, source, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	cfg     Options
	visited []bool
	res     *Result
}

// newRunner initializes all distances to Inf, predecessors to
// core.NoParent, and the source distance to zero.
func newRunner(g *core.Graph, source int, cfg Options) *runner {
	n := g.NodeCount()
	res := &Result{
		Source: source,
		Dist:   make([]int64, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Dist[i] = Inf
		res.Parent[i] = core.NoParent
	}
	res.Dist[source] = 0

	return &runner{g: g, cfg: cfg, visited: make([]bool, n), res: res}
}

// process runs at most N-1 selection rounds: pick the cheapest
// unvisited node, finalize it, relax its outgoing edges. Stops early
// when no reachable unvisited node remains or the distance cap is hit.
func (r *runner) process() error {
	n := r.g.NodeCount()
	for count := 0; count < n-1; count++ {
		u := r.selectMin()
		if u == core.NoParent {
			break // every reachable node is finalized
		}
		r.visited[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// selectMin scans for the unvisited node with the smallest tentative
// distance. Strict "<" keeps the first minimum found, so equal
// distances break toward the lowest index. Returns core.NoParent when
// nothing unvisited is reachable within MaxDistance.
func (r *runner) selectMin() int {
	min := Inf
	u := core.NoParent
	for v := 0; v < len(r.visited); v++ {
		if r.visited[v] || r.res.Dist[v] >= min {
			continue
		}
		if r.res.Dist[v] > r.cfg.MaxDistance {
			continue
		}
		min = r.res.Dist[v]
		u = v
	}

	return u
}

// relax improves the tentative distance of every neighbor of u that is
// cheaper to reach through u.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, e := range neighbors {
		if e.Weight < 0 {
			return fmt.Errorf("%w: %d→%d weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
		}
		if r.visited[e.To] {
			continue
		}
		nd := du + e.Weight
		if nd > r.cfg.MaxDistance {
			continue
		}
		if nd < r.res.Dist[e.To] {
			r.res.Dist[e.To] = nd
			r.res.Parent[e.To] = u
		}
	}

	return nil
}
