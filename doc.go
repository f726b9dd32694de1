// Package lvlopt is a small playground for classic optimization problems:
// the 0/1 knapsack and shortest routes in graphs.
//
// 🚀 What is inside?
//
//	• knapsack/ — Item, greedy selection by key function, exhaustive power-set search
//	• core/     — append-only Graph of Node handles, directed or undirected,
//	              with an edge-list text format (A->B, A->(2.5)B)
//	• dfs/      — depth-first shortest-path search with a length bound
//	• bfs/      — breadth-first fewest-edge path search
//
// ✨ Why?
//
//   - Greedy vs. exhaustive shows the price of optimality: O(n log n) vs. O(2ⁿ·n).
//   - DFS vs. BFS shows why breadth-first search is the right tool for
//     unweighted shortest paths.
//
// Quick ASCII example:
//
//	0 → 1 → 2 → 3 → 5
//	 ╲_____↗
//
// Libraries never print; examples/ holds a runnable walkthrough that logs
// its results with zap.
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
