package core

import "fmt"

// NewGraph allocates a Graph with n nodes and empty adjacency.
// Returns ErrBadNodeCount if n is negative.
// Complexity: O(n).
func NewGraph(n int, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadNodeCount, n)
	}
	g := &Graph{adj: make([][]Edge, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// NodeCount reports the fixed number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.adj) }

// Directed reports whether AddEdge inserts a single direction.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether the graph accepts non-zero edge weights.
func (g *Graph) Weighted() bool { return g.weighted }

// HasNode reports whether u is a valid node index.
func (g *Graph) HasNode(u int) bool { return u >= 0 && u < len(g.adj) }

// AddEdge appends the edge src→dst with the given weight. On an
// undirected graph the reverse edge dst→src is appended in the same
// call, so the pair is always consistent.
//
// Unweighted graphs take weight 0 and store each edge with unit cost.
//
// Returns ErrNodeOutOfRange if either endpoint is invalid,
// ErrNegativeWeight for weight < 0, and ErrBadWeight for a non-zero
// weight on an unweighted graph.
// Complexity: amortized O(1).
func (g *Graph) AddEdge(src, dst int, weight int64) error {
	if !g.HasNode(src) {
		return fmt.Errorf("%w: src=%d, nodes=%d", ErrNodeOutOfRange, src, len(g.adj))
	}
	if !g.HasNode(dst) {
		return fmt.Errorf("%w: dst=%d, nodes=%d", ErrNodeOutOfRange, dst, len(g.adj))
	}
	if weight < 0 {
		return fmt.Errorf("%w: %d→%d weight=%d", ErrNegativeWeight, src, dst, weight)
	}
	if !g.weighted {
		if weight != 0 {
			return fmt.Errorf("%w: %d→%d weight=%d", ErrBadWeight, src, dst, weight)
		}
		weight = 1 // unit cost: every edge is one step
	}

	g.adj[src] = append(g.adj[src], Edge{To: dst, Weight: weight})
	if !g.directed && src != dst {
		g.adj[dst] = append(g.adj[dst], Edge{To: src, Weight: weight})
	}

	return nil
}

// Neighbors returns a copy of u's outgoing edges,
// most-recently-added-first. The slice is owned by the caller.
// Returns ErrNodeOutOfRange for an invalid index.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if !g.HasNode(u) {
		return nil, fmt.Errorf("%w: %d, nodes=%d", ErrNodeOutOfRange, u, len(g.adj))
	}
	list := g.adj[u]
	out := make([]Edge, len(list))
	for i, e := range list {
		out[len(list)-1-i] = e
	}

	return out, nil
}

// Degree reports the number of outgoing edges recorded for u,
// duplicates included.
func (g *Graph) Degree(u int) (int, error) {
	if !g.HasNode(u) {
		return 0, fmt.Errorf("%w: %d, nodes=%d", ErrNodeOutOfRange, u, len(g.adj))
	}

	return len(g.adj[u]), nil
}

// SetName associates a display name with node u. Names are a
// convenience for the transit variant; the grid variant never sets
// them. Returns ErrNodeOutOfRange for an invalid index.
func (g *Graph) SetName(u int, name string) error {
	if !g.HasNode(u) {
		return fmt.Errorf("%w: %d, nodes=%d", ErrNodeOutOfRange, u, len(g.adj))
	}
	if g.names == nil {
		g.names = make([]string, len(g.adj))
	}
	g.names[u] = name

	return nil
}

// Name returns the display name of node u, or the empty string when
// none was set or u is out of range.
func (g *Graph) Name(u int) string {
	if g.names == nil || !g.HasNode(u) {
		return ""
	}

	return g.names[u]
}
