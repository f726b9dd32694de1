// Package bfs provides breadth-first path search over a core.Graph,
// returning a fewest-edge path between two nodes.
//
// BFS explores nodes in increasing distance from the start node, so the
// first time the end node is visited its parent chain is a shortest path.
// Ties between equally short paths follow child insertion order.
package bfs

import (
	"context"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlopt/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  *core.Node
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	end     *core.Node
	queue   *linkedlistqueue.Queue
	visited map[*core.Node]bool
	parent  map[*core.Node]*core.Node
	res     *Result
}

// ShortestPath runs breadth-first search on g from start until end is
// visited, applying any number of functional Options.
// Returns ErrGraphNil, ErrStartNodeNotFound or ErrEndNodeNotFound for
// invalid input, ErrOptionViolation for bad options, or any hook error.
// An unreachable end yields Found == false with a nil error.
func ShortestPath(g *core.Graph, start, end *core.Node, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, ErrStartNodeNotFound
	}
	if !g.HasNode(end) {
		return nil, ErrEndNodeNotFound
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		end:     end,
		queue:   linkedlistqueue.New(),
		visited: make(map[*core.Node]bool, n),
		parent:  make(map[*core.Node]*core.Node, n),
		res:     &Result{Order: make([]*core.Node, 0, n)},
	}

	w.enqueue(start, 0, nil)
	if err := w.loop(); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// enqueue marks n visited at depth d, records its parent and queues it.
func (w *walker) enqueue(n *core.Node, d int, parent *core.Node) {
	w.visited[n] = true
	if parent != nil {
		w.parent[n] = parent
	}
	w.queue.Enqueue(queueItem{node: n, depth: d})
}

// loop processes the queue until end is visited, the queue drains,
// an error occurs, or the context is canceled.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v, _ := w.queue.Dequeue()
		item := v.(queueItem)
		if err := w.visit(item); err != nil {
			return err
		}
		if item.node == w.end {
			w.res.Path = w.pathTo(item.node)
			w.res.Found = true
			return nil
		}
		if err := w.enqueueChildren(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return errors.Wrapf(err, "bfs: OnVisit error at %q", item.node.Name())
	}

	return nil
}

// enqueueChildren queues every unseen child within MaxDepth.
func (w *walker) enqueueChildren(item queueItem) error {
	children, err := w.graph.ChildrenOf(item.node)
	if err != nil {
		return errors.Wrapf(err, "bfs: ChildrenOf(%q)", item.node.Name())
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, child := range children {
		if !w.visited[child] {
			w.enqueue(child, next, item.node)
		}
	}

	return nil
}

// pathTo rebuilds start→dest from parent links.
func (w *walker) pathTo(dest *core.Node) []*core.Node {
	var path []*core.Node
	for cur, ok := dest, true; ok; cur, ok = w.parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
