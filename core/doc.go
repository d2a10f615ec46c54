// Package core defines the Graph type shared by every traversal in trajeto.
//
// A Graph owns a fixed set of nodes identified by integer indices in
// [0, NodeCount) and one adjacency list of outgoing edges per node.
// The node count is fixed at construction; edges may only be appended,
// never removed. Duplicate edges are tolerated — they cost space, not
// correctness.
//
// Ordering contract:
//
// Neighbors(u) yields edges most-recently-added-first. BFS and DFS
// visit neighbors in exactly this order, so two programs inserting the
// same edges in the same sequence produce identical paths. Callers that
// need reproducible output must therefore build their graphs in a
// deterministic order.
//
// Concurrency:
//
// A Graph is intended to be built by a single goroutine and treated as
// read-only afterwards. Once construction is done it may be shared by
// concurrent traversals without locking; no method mutates state except
// AddEdge and SetName.
//
// Errors:
//
//	ErrBadNodeCount   - negative node count passed to NewGraph.
//	ErrNodeOutOfRange - node index outside [0, NodeCount).
//	ErrNegativeWeight - negative edge weight.
//	ErrBadWeight      - non-zero weight on an unweighted graph.
package core
