// Package bfs provides breadth-first search between two nodes of a
// core.Graph, returning the shortest path in edge count.
//
// BFS processes nodes in non-decreasing distance from the start, so
// the first time the goal is dequeued its recorded path is guaranteed
// shortest; the search stops right there. All edges count as one step,
// which is why weighted graphs are rejected — use dijkstra for those.
//
// Tie-breaking among equal-distance neighbors follows adjacency order
// (core.Graph yields neighbors most-recently-added-first), making the
// returned path deterministic for a given construction order.
//
// Options:
//
//	WithContext(ctx)        — cancellation between dequeues.
//	WithMaxDepth(d)         — do not explore beyond depth d (0 = no limit).
//	WithOnVisit(fn)         — hook per dequeued node; an error aborts.
//	WithFilterNeighbor(fn)  — skip edges by returning false.
//
// Errors:
//
//	ErrGraphNil        — nil graph.
//	ErrNodeOutOfRange  — start or goal outside the graph.
//	ErrWeightedGraph   — graph was built with core.WithWeighted.
//	ErrOptionViolation — invalid option value.
//
// "Goal unreachable" is not an error: Result.Found reports it.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
