// Package knapsack solves the 0/1 knapsack problem two ways: a greedy
// heuristic and an exhaustive power-set search.
//
// What:
//
//   - Greedy(items, capacity, key): sort by a KeyFunc (ByValue,
//     ByWeightInverse, ByDensity, or your own), take whatever still fits.
//     O(n log n), not optimal.
//   - Exhaustive(items, capacity): try all 2ⁿ subsets, keep the feasible one
//     with the greatest value. O(2ⁿ·n), optimal, small n only.
//   - PowerSet / ChooseBest: the same search split into its two steps.
//
// Tie-breaking:
//
//   - Greedy keeps input order among equal keys.
//   - Exhaustive enumerates masks 0…2ⁿ−1 (bit i ⇒ item i) and replaces the
//     best subset only on a strictly greater value, so the first optimum wins.
//
// Results:
//
//	Every solver returns a Selection. Nothing fitting is not an error: the
//	Selection is Empty() with value 0. Weights are summed exactly, so all
//	solvers agree on whether a subset fits regardless of item order.
//
// Errors:
//
//   - ErrInvalidItem       negative value, non-positive weight, NaN or ±Inf (NewItem)
//   - ErrNegativeCapacity  capacity < 0 or NaN
//   - ErrNilKey            nil key function (Greedy)
//   - ErrTooManyItems      more than MaxExhaustiveItems items (PowerSet, Exhaustive)
package knapsack
