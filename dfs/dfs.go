// Package dfs implements depth-first shortest-path search on core.Graph.
//
// Key features:
//   - ShortestPath(g, start, end, opts...): cycle-free DFS with a length bound
//   - Hooks: OnVisit per search frame, with error aborts
//   - Trace logging through logr at V(1)
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   exponential in the worst case (all simple paths); the length
//     bound prunes most of them on typical graphs.
//   - Memory: O(V) for the recursion stack and on-path set.
package dfs

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlopt/core"
)

// walker encapsulates state during the search.
type walker struct {
	graph  *core.Graph
	opts   Options
	end    *core.Node
	path   []*core.Node        // current partial path, start first
	onPath map[*core.Node]bool // membership of path, for cycle avoidance
	best   []*core.Node        // shortest complete path found so far
	res    *Result
}

// ShortestPath searches g depth-first from start for end and returns the
// shortest path this traversal order discovers.
//
// Children are tried in insertion order. A child already on the current
// path is skipped. A child is descended into only while no complete path is
// known or the current path is strictly shorter than the best one; reaching
// end replaces the best path. Every path shorter than the current best still
// passes that bound, so the result has the fewest edges; among equally short
// paths the one met last in traversal order wins, which makes the chosen
// route depend on child order. bfs.ShortestPath breaks ties by first
// discovery instead.
//
// A disconnected end yields Found == false with a nil error.
func ShortestPath(g *core.Graph, start, end *core.Node, opts ...Option) (*Result, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, ErrStartNodeNotFound
	}
	if !g.HasNode(end) {
		return nil, ErrEndNodeNotFound
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Walk
	w := &walker{
		graph:  g,
		opts:   o,
		end:    end,
		onPath: make(map[*core.Node]bool),
		res:    &Result{},
	}
	if err := w.search(start); err != nil {
		return w.res, err
	}

	// 4. Publish
	if w.best != nil {
		w.res.Path = w.best
		w.res.Found = true
	}

	return w.res, nil
}

// search enters one frame for node, extending the current path.
func (w *walker) search(node *core.Node) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Push
	w.path = append(w.path, node)
	w.onPath[node] = true
	defer func() {
		w.path = w.path[:len(w.path)-1]
		delete(w.onPath, node)
	}()
	w.res.Explored++

	// 3. Trace
	if w.opts.Log.V(1).Enabled() {
		w.opts.Log.V(1).Info("current dfs path", "path", core.FormatPath(w.path))
	}
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(w.path); err != nil {
			return errors.Wrapf(err, "dfs: OnVisit hook at %q", node.Name())
		}
	}

	// 4. Terminal
	if node == w.end {
		w.best = append([]*core.Node(nil), w.path...)
		return nil
	}

	// 5. Explore children
	children, err := w.graph.ChildrenOf(node)
	if err != nil {
		return errors.Wrapf(err, "dfs: ChildrenOf(%q)", node.Name())
	}
	for _, child := range children {
		if w.onPath[child] {
			continue
		}
		if w.best == nil || len(w.path) < len(w.best) {
			if err = w.search(child); err != nil {
				return err
			}
		}
	}

	return nil
}
