// File: methods_edges.go
// Role: Edge insertion & edge queries.
//
// Determinism:
//   - Edges() returns edges in insertion order; a mirror edge directly
//     follows the edge that produced it.
//
// AI-HINT (file):
//   - AddEdge never auto-creates nodes; register both endpoints first.
package core

import "github.com/pkg/errors"

// AddEdge inserts e according to the graph's insertion policy.
//
// Implementation:
//   - Stage 1: Resolve both endpoints; either missing ⇒ ErrNodeNotFound.
//   - Stage 2: Append Dst to Src's adjacency list.
//   - Stage 3: Undirected graphs also append Src to Dst's list (mirror edge,
//     same weight).
//
// Behavior highlights:
//   - Parallel edges and self-loops are accepted; they are appended again.
//   - Nothing is mutated when validation fails.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(e Edge) error {
	src, err := g.lookup(e.Src)
	if err != nil {
		return errors.Wrapf(err, "add edge source")
	}
	dst, err := g.lookup(e.Dst)
	if err != nil {
		return errors.Wrapf(err, "add edge destination")
	}

	g.link(edgeRecord{src: src, dst: dst, weight: e.Weight, weighted: e.Weighted})
	if !g.directed {
		g.link(edgeRecord{src: dst, dst: src, weight: e.Weight, weighted: e.Weighted, mirror: true})
	}

	return nil
}

// link stores one directed record and its adjacency entry.
func (g *Graph) link(r edgeRecord) {
	g.edges = append(g.edges, r)
	g.adj[r.src] = append(g.adj[r.src], r.dst)
}

// Edges returns every stored edge, mirrors included, in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, r := range g.edges {
		out[i] = Edge{
			Src:      g.nodes[r.src],
			Dst:      g.nodes[r.dst],
			Weight:   r.weight,
			Weighted: r.weighted,
		}
	}

	return out
}

// EdgeCount returns the number of stored edges (mirrors included).
func (g *Graph) EdgeCount() int { return len(g.edges) }
