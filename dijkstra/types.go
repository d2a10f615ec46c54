// Package dijkstra option and result types for weighted shortest paths.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/trajeto/trajeto/paths"
)

// Inf is the distance recorded for nodes the source cannot reach.
const Inf = int64(math.MaxInt64)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates the graph does not carry weights;
	// Dijkstra needs them, use bfs for unit-cost graphs.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrNodeOutOfRange indicates the source is not a valid node index.
	ErrNodeOutOfRange = errors.New("dijkstra: node index out of range")

	// ErrNegativeWeight indicates a negative edge weight was observed
	// during relaxation. core.Graph rejects these at insertion, so
	// seeing this error means the graph was corrupted.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates WithMaxDistance was given a
	// negative cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Options configures the behavior of the algorithm.
type Options struct {
	// MaxDistance caps exploration: nodes whose tentative distance
	// exceeds it are never finalized. Default Inf (no cap).
	MaxDistance int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: Inf}
}

// WithMaxDistance sets a maximum distance threshold; nodes farther
// than max from the source stay at Inf. Negative values surface as
// ErrBadMaxDistance when Dijkstra is invoked.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// Result holds single-source shortest-path data for every node.
type Result struct {
	// Source echoes the node the search ran from.
	Source int

	// Dist[v] is the minimum accumulated weight from Source to v,
	// Inf when v is unreachable.
	Dist []int64

	// Parent[v] is v's predecessor on the cheapest path,
	// core.NoParent for the source and for unreachable nodes.
	Parent []int
}

// Reachable reports whether the source can reach v. Out-of-range
// indices count as unreachable.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Inf
}

// PathTo reconstructs the cheapest path Source → dest.
// Returns paths.ErrNoPath when dest is unreachable.
func (r *Result) PathTo(dest int) ([]int, error) {
	return paths.Reconstruct(r.Parent, r.Source, dest)
}
