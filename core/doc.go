// Package core provides a small, append-only in-memory graph with a minimal
// API surface, used by the dfs and bfs search packages.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected insertion policy (WithDirected)
//   - Plain edges (weight 1.0) and explicitly weighted edges in one record
//   - Arena storage: nodes in an indexed table, edges as index pairs,
//     adjacency as ordered index lists
//   - Deterministic iteration: Nodes(), Edges(), ChildrenOf() follow insertion order
//   - Text round-trip: Graph.String() and ParseEdgeList agree on one format
//     (unique names, finite weights)
//
// Why a single type?
//
//   - An undirected graph is a directed graph whose every inserted edge is
//     mirrored; a flag captures that without a second type.
//
// Core Methods:
//
//	NewGraph(opts ...GraphOption) *Graph   // directed by default
//	AddNode(n *Node) error                 // O(1); ErrDuplicateNode on re-add
//	AddEdge(e Edge) error                  // O(1); ErrNodeNotFound if an endpoint is missing
//	ChildrenOf(n *Node) ([]*Node, error)   // O(d); ErrNodeNotFound for non-members
//	HasNode(n *Node) bool                  // O(1)
//	Nodes() []*Node                        // O(V)
//	Edges() []Edge                         // O(E)
//	NodeByName(name string) (*Node, bool)  // O(V)
//	ParseEdgeList(src string, ...) (*Graph, error)
//	FormatPath(path []*Node) string        // "A->B->C"
//
// Node identity is the pointer: NewNode("A") twice yields two distinct nodes.
//
// No removal operations exist. The graph is not internally locked; build it
// from one goroutine, then share it read-only.
package core
