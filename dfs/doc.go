// Package dfs implements depth-first shortest-path search on a core.Graph.
//
// What:
//
//   - ShortestPath: walks every cycle-free path from start, in child
//     insertion order, and keeps the shortest complete path it meets. A
//     branch is entered only while the current partial path is strictly
//     shorter than the best complete path found so far.
//
// Why:
//   - It is the textbook exhaustive route search, the baseline that
//     breadth-first search improves on.
//
// Caveat:
//
//	The length bound is a pruning rule: a branch whose partial path is
//	already as long as the best complete path is never entered. Equal-length
//	paths still replace the best one, so which shortest route is returned
//	depends on child insertion order. The work done is exponential in the
//	worst case; bfs.ShortestPath finds a fewest-edge path in O(V+E).
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartNodeNotFound    start node not in graph
//   - ErrEndNodeNotFound      end node not in graph
//   - context.Canceled        search canceled via context
//   - hook errors             propagated from OnVisit
//
// An unreachable end is not an error: Result.Found is false.
//
// Functions:
//
//   - ShortestPath(g *core.Graph, start, end *core.Node, opts ...Option) (*Result, error)
//   - DefaultOptions(), WithContext(), WithOnVisit(), WithLogger()
package dfs
