// Package core declares the Graph, Edge, sentinel errors, and the
// functional options accepted by NewGraph.
package core

import "errors"

// NoParent marks a node with no recorded predecessor. Every traversal
// in this module initializes its parent array to NoParent.
const NoParent = -1

// Sentinel errors for core graph operations.
var (
	// ErrBadNodeCount indicates a negative node count was passed to NewGraph.
	ErrBadNodeCount = errors.New("core: node count must be non-negative")

	// ErrNodeOutOfRange indicates a node index outside [0, NodeCount).
	// Passing such an index is a programming error in the caller.
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrNegativeWeight indicates a negative edge weight; trajeto's
	// traversals require non-negative weights, so the graph rejects
	// them at insertion time.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates a non-zero weight passed to an unweighted graph.
	ErrBadWeight = errors.New("core: non-zero weight on unweighted graph")
)

// Edge is one outgoing adjacency entry: the destination node and the
// cost of reaching it. Unweighted graphs store Weight == 1 so that
// every edge counts as one step.
type Edge struct {
	// To is the destination node index.
	To int

	// Weight is the cost of traversing this edge.
	Weight int64
}

// Option configures a Graph before any edges are added.
type Option func(*Graph)

// WithDirected makes AddEdge insert exactly the direction given.
// By default a Graph is undirected: AddEdge(u, v, w) also records
// the reverse edge v→u atomically.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// WithWeighted allows non-negative edge weights. Unweighted graphs
// reject any non-zero weight with ErrBadWeight.
func WithWeighted() Option {
	return func(g *Graph) { g.weighted = true }
}

// Graph is an adjacency-list graph over a fixed number of
// integer-indexed nodes.
type Graph struct {
	directed bool
	weighted bool

	// adj[u] holds u's outgoing edges in insertion order; Neighbors
	// iterates it backwards to expose most-recently-added-first.
	adj [][]Edge

	// names[u] is the optional display name of node u; allocated
	// lazily on the first SetName call.
	names []string
}
