// Package dfs defines types and options for depth-first path search,
// including cancellation, a per-frame visit hook, and trace logging.
package dfs

import (
	"context"
	"errors"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvlopt/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to ShortestPath.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start node is not in the graph.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")

	// ErrEndNodeNotFound indicates that the end node is not in the graph.
	ErrEndNodeNotFound = errors.New("dfs: end node not found")
)

// Option configures optional behavior of ShortestPath.
type Option func(*Options)

// Options holds configurable parameters for the search.
type Options struct {
	// Ctx allows cancellation; checked once per search frame.
	Ctx context.Context

	// OnVisit, if non-nil, is called with the current partial path each time a
	// frame is entered (start first). The slice is only valid during the call.
	// Returning an error aborts the search with that error.
	OnVisit func(path []*core.Node) error

	// Log receives a V(1) entry per frame with the rendered partial path.
	Log logr.Logger
}

// DefaultOptions returns Options with a background context, no hook,
// and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: nil,
		Log:     logr.Discard(),
	}
}

// WithContext sets the context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the per-frame hook.
func WithOnVisit(fn func(path []*core.Node) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithLogger routes the per-frame trace to log.
func WithLogger(log logr.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

// Result captures the outcome of a path search.
type Result struct {
	// Path runs from start to end inclusive; nil when Found is false.
	Path []*core.Node

	// Found reports whether end was reached. A start==end search finds the
	// single-node path.
	Found bool

	// Explored counts search frames entered (nodes pushed onto the path).
	Explored int
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
