// Package bfs option and result types for breadth-first search.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/trajeto/trajeto/paths"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNodeOutOfRange is returned when start or goal is not a valid
	// node index of the graph.
	ErrNodeOutOfRange = errors.New("bfs: node index out of range")

	// ErrWeightedGraph is returned when BFS is run on a weighted
	// graph; BFS counts edges, not weights.
	ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is dequeued. If it returns an
	// error, BFS aborts and propagates that error.
	OnVisit func(id, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background
// context, no depth limit, no filtering, a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on each dequeued node;
// returning an error from it stops the search.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS between two nodes.
type Result struct {
	// Start and Goal echo the endpoints the search ran with.
	Start, Goal int

	// Found reports whether Goal was dequeued before the frontier
	// emptied. False is the ordinary "no path exists" outcome.
	Found bool

	// Parent[v] is the node v was first reached from, core.NoParent
	// if v was never enqueued.
	Parent []int

	// Depth[v] is v's distance in edges from Start, -1 if unreached.
	Depth []int

	// Order lists nodes in dequeue sequence, ending with Goal when
	// the search succeeded.
	Order []int
}

// Path reconstructs the shortest path Start → Goal.
// Returns paths.ErrNoPath when the search reported not-found.
func (r *Result) Path() ([]int, error) {
	return paths.Reconstruct(r.Parent, r.Start, r.Goal)
}
