// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and text rendering.
// Policy:
//   - No algorithms or hidden state here.

package core

import "strings"

// Directed reports the edge insertion policy chosen at construction time.
// false means every AddEdge also stores the reverse edge.
func (g *Graph) Directed() bool { return g.directed }

// String renders the graph in the ParseEdgeList text format: one line per
// AddEdge call, in insertion order, then one line per node no edge touches.
// Undirected mirror records are skipped, weighted edges keep their weight
// as "A->(w)B", and names outside the bare-name grammar are quoted.
//
// ParseEdgeList(g.String(), WithDirected(g.Directed())) reproduces the same
// edge list, provided node names are unique and weights are finite.
// Isolated nodes may come back in a different position.
//
// Complexity: O(V+E).
func (g *Graph) String() string {
	var sb strings.Builder
	newline := func() {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
	}

	touched := make([]bool, len(g.nodes))
	for _, r := range g.edges {
		if r.mirror {
			continue
		}
		touched[r.src], touched[r.dst] = true, true
		newline()
		writeEdge(&sb, g.nodes[r.src], g.nodes[r.dst], r.weight, r.weighted)
	}
	for i, n := range g.nodes {
		if !touched[i] {
			newline()
			writeName(&sb, n)
		}
	}

	return sb.String()
}

// FormatPath renders a path as "A->B->C". An empty path renders as "".
func FormatPath(path []*Node) string {
	names := make([]string, len(path))
	for i, n := range path {
		names[i] = n.String()
	}

	return strings.Join(names, "->")
}
