// File: methods_nodes.go
// Role: Node registration & membership queries.
//
// Determinism:
//   - Nodes() returns nodes in registration order.
//
// Concurrency:
//   - No internal locking; see Graph.
package core

import "github.com/pkg/errors"

// AddNode registers n with the graph.
//
// Implementation:
//   - Stage 1: Reject nil (ErrNilNode).
//   - Stage 2: Reject a node already present (ErrDuplicateNode).
//   - Stage 3: Append n to the arena and open an empty adjacency list.
//
// Returns:
//   - error: nil on success; otherwise a wrapped sentinel.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if _, exists := g.index[n]; exists {
		return errors.Wrapf(ErrDuplicateNode, "add node %q", n.name)
	}

	g.index[n] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.adj = append(g.adj, nil)

	return nil
}

// HasNode reports whether n is a member of the graph (nil ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(n *Node) bool {
	if n == nil {
		return false
	}
	_, ok := g.index[n]

	return ok
}

// ChildrenOf returns the direct successors of n in insertion order.
//
// The returned slice is a fresh copy; mutating it never affects the graph.
// Duplicate entries appear when the same edge was inserted more than once.
//
// Errors:
//   - ErrNilNode if n is nil.
//   - ErrNodeNotFound if n is not a member.
//
// Complexity:
//   - Time O(d), Space O(d) where d = out-degree of n.
func (g *Graph) ChildrenOf(n *Node) ([]*Node, error) {
	i, err := g.lookup(n)
	if err != nil {
		return nil, errors.Wrap(err, "children of")
	}

	out := make([]*Node, len(g.adj[i]))
	for k, j := range g.adj[i] {
		out[k] = g.nodes[j]
	}

	return out, nil
}

// Nodes returns every registered node in registration order.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeByName returns the first registered node carrying name.
// Complexity: O(V).
func (g *Graph) NodeByName(name string) (*Node, bool) {
	for _, n := range g.nodes {
		if n.name == name {
			return n, true
		}
	}

	return nil, false
}

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// lookup resolves n to its arena index.
func (g *Graph) lookup(n *Node) (int, error) {
	if n == nil {
		return 0, ErrNilNode
	}
	i, ok := g.index[n]
	if !ok {
		return 0, errors.Wrapf(ErrNodeNotFound, "node %q", n.name)
	}

	return i, nil
}
