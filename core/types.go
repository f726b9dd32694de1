// Package core defines the central Graph, Node, and Edge types,
// and provides the append-only primitives for building and querying graphs.
//
// Storage is arena-style: nodes live in an indexed table, edges are stored as
// pairs of table indices, and adjacency is an ordered list of indices per node.
// Callers never see the indices; they work with *Node handles.
//
// Errors:
//
//	ErrNilNode        - node pointer is nil.
//	ErrDuplicateNode  - node already registered in this graph.
//	ErrNodeNotFound   - node is not a member of this graph.
//	ErrParse          - edge-list text could not be parsed (see ParseError).
package core

import (
	"errors"
	"strings"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilNode indicates that a nil *Node was supplied.
	ErrNilNode = errors.New("core: node is nil")

	// ErrDuplicateNode indicates a second registration of the same node.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrNodeNotFound indicates an operation referenced a node outside the graph.
	ErrNodeNotFound = errors.New("core: node not in graph")

	// ErrParse indicates malformed edge-list text.
	ErrParse = errors.New("core: cannot parse edge list")
)

// DefaultEdgeWeight is the weight carried by edges built with NewEdge.
const DefaultEdgeWeight = 1.0

// Node is an immutable named handle. Identity is the pointer, not the name:
// two nodes created with the same name are distinct members of a graph.
type Node struct {
	name string
}

// NewNode returns a new node carrying name.
func NewNode(name string) *Node {
	return &Node{name: name}
}

// Name returns the node's name, or "" for a nil node.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}

	return n.name
}

// String implements fmt.Stringer. A nil node renders as "<nil>".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}

	return n.name
}

// Edge is an ordered (Src, Dst) pair with a weight.
//
// Weighted distinguishes an edge built with NewWeightedEdge from a plain one;
// plain edges still carry DefaultEdgeWeight so weight-aware callers can treat
// every edge uniformly.
type Edge struct {
	// Src is the source node.
	Src *Node

	// Dst is the destination node.
	Dst *Node

	// Weight is the edge cost (DefaultEdgeWeight for plain edges).
	Weight float64

	// Weighted reports whether the weight was set explicitly.
	Weighted bool
}

// NewEdge builds a plain edge src→dst with DefaultEdgeWeight.
func NewEdge(src, dst *Node) Edge {
	return Edge{Src: src, Dst: dst, Weight: DefaultEdgeWeight}
}

// NewWeightedEdge builds an edge src→dst carrying weight.
func NewWeightedEdge(src, dst *Node, weight float64) Edge {
	return Edge{Src: src, Dst: dst, Weight: weight, Weighted: true}
}

// String renders "A->B" for plain edges and "A->(w)B" for weighted ones,
// in the ParseEdgeList text format. Nil endpoints render as "<nil>".
func (e Edge) String() string {
	var sb strings.Builder
	writeEdge(&sb, e.Src, e.Dst, e.Weight, e.Weighted)

	return sb.String()
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the insertion policy for new edges
// (true = directed, false = undirected with mirrored reverse edges).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// edgeRecord is an edge stored as arena indices.
type edgeRecord struct {
	src, dst int
	weight   float64
	weighted bool
	mirror   bool // reverse record stored by an undirected AddEdge
}

// Graph is an append-only adjacency-list graph.
//
// A Graph is not safe for concurrent mutation; callers sharing one across
// goroutines must serialize AddNode/AddEdge themselves. Concurrent reads of a
// fully built graph are safe.
type Graph struct {
	directed bool

	nodes []*Node       // arena: index → node, insertion order
	index map[*Node]int // node → arena index
	edges []edgeRecord  // every stored edge, mirrors included
	adj   [][]int       // adj[i] = ordered child indices of nodes[i]
}

// NewGraph creates an empty Graph. By default the graph is directed;
// pass WithDirected(false) for the undirected insertion policy.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed: true,
		index:    make(map[*Node]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
