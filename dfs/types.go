// Package dfs option and result types for depth-first search.
package dfs

import (
	"context"
	"errors"

	"github.com/trajeto/trajeto/paths"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned when a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNodeOutOfRange is returned when start or goal is not a valid
	// node index of the graph.
	ErrNodeOutOfRange = errors.New("dfs: node index out of range")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is first discovered.
	// Returning an error aborts traversal with that error.
	OnVisit func(id int) error
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context used for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a discovery hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Result captures the outcome of a depth-first search.
type Result struct {
	// Start and Goal echo the endpoints the search ran with.
	Start, Goal int

	// Found reports whether Goal was reached. False is the ordinary
	// "no path exists" outcome.
	Found bool

	// Parent[v] is the node v was first discovered from,
	// core.NoParent if v was never visited.
	Parent []int

	// Visited flags which nodes the walk touched before stopping.
	Visited []bool
}

// Path reconstructs the discovered path Start → Goal. The path is
// valid but has no shortness guarantee.
// Returns paths.ErrNoPath when the search reported not-found.
func (r *Result) Path() ([]int, error) {
	return paths.Reconstruct(r.Parent, r.Start, r.Goal)
}
