// Package bfs provides breadth-first path search over a core.Graph,
// returning a fewest-edge path between two nodes.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Stop as soon as the end node is visited and rebuild its parent chain.
//   - Returns a Result containing:
//   - Path: start … end, nil when unreachable
//   - Found: whether end was reached
//   - Order: visit sequence up to and including end
//   - Hooks: OnVisit (may abort with an error).
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Guaranteed fewest-edge paths in O(V + E), the counterpart of the
//     exhaustive dfs.ShortestPath.
//
// Determinism
//
//	Children are enqueued in core insertion order, so the visit sequence and
//	the chosen path among equally short ones are fully reproducible: the
//	first discovered parent wins.
//
// Errors
//
//   - ErrGraphNil, ErrStartNodeNotFound, ErrEndNodeNotFound
//   - ErrOptionViolation for negative MaxDepth
//   - context.Canceled / DeadlineExceeded
//   - errors returned by OnVisit
//
// The FIFO is github.com/emirpasic/gods/queues/linkedlistqueue.
package bfs
