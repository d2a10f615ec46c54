// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over the non-negative weights of a core.Graph.
//
// The implementation is the classic O(N²) variant: each round a linear
// scan selects the unvisited node with the minimum tentative distance,
// finalizes it, and relaxes its outgoing edges. For the small, bounded
// node counts this module targets (grids of a few hundred cells,
// transit maps of a few dozen stations) the scan beats a heap on both
// simplicity and constant factors.
//
// Tie-break policy: the scan compares with strict "<", so among
// unvisited nodes sharing the minimum distance the lowest index is
// selected. This is an explicit, documented choice; callers relying on
// reproducible output get it for free from deterministic construction.
//
// The result covers all destinations at once: Dist[v] holds the
// minimum accumulated weight from the source (Inf when unreachable)
// and Parent[v] the predecessor on that cheapest path.
//
// Negative weights cannot occur — core.Graph rejects them at insertion
// — but relaxation re-checks and fails with ErrNegativeWeight rather
// than silently computing garbage.
//
// Errors:
//
//	ErrGraphNil        — nil graph.
//	ErrUnweightedGraph — graph built without core.WithWeighted.
//	ErrNodeOutOfRange  — source outside the graph.
//	ErrNegativeWeight  — negative weight observed during relaxation.
//	ErrBadMaxDistance  — negative WithMaxDistance value.
//
// Complexity: O(N² + E) time, O(N) memory.
package dijkstra
