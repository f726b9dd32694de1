// Package bfs provides tunable options and error definitions
// for breadth-first path search over a core.Graph.
package bfs

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/lvlopt/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNodeNotFound is returned when the start node is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrEndNodeNotFound is returned when the end node is absent.
	ErrEndNodeNotFound = errors.New("bfs: end node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is dequeued, with its depth from start.
	// If it returns an error, the search aborts and propagates that error.
	OnVisit func(n *core.Node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(*core.Node, int) error { return nil },
		MaxDepth: 0,
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

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(n *core.Node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the number of edges a returned path may have.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = pkgerrors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a breadth-first path search.
type Result struct {
	// Path runs from start to end inclusive; nil when Found is false.
	Path []*core.Node

	// Found reports whether end was reached.
	Found bool

	// Order lists nodes in the sequence they were visited (dequeued).
	Order []*core.Node
}

// Len returns the number of edges on the path, or -1 when nothing was found.
func (r *Result) Len() int {
	if !r.Found {
		return -1
	}

	return len(r.Path) - 1
}

// String renders the path as "A->B->C", or "" when nothing was found.
func (r *Result) String() string {
	return core.FormatPath(r.Path)
}
