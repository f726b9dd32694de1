package knapsack

import (
	"math"
	"math/big"
	"sort"
)

// Greedy fills a knapsack of the given capacity by visiting items in
// descending key order and taking each one whose weight still fits.
//
// Ties in key order keep input order. The input slice is not modified.
// Weights are summed exactly, so a subset fits here iff it fits in
// Exhaustive, and Value and Weight are the exact totals rounded once.
// The result is a heuristic, not an optimum: compare with Exhaustive.
//
// Errors:
//   - ErrNegativeCapacity if capacity < 0 or NaN.
//   - ErrNilKey if key is nil.
//
// Complexity: O(n log n).
func Greedy(items []Item, capacity float64, key KeyFunc) (Selection, error) {
	if math.IsNaN(capacity) || capacity < 0 {
		return Selection{}, ErrNegativeCapacity
	}
	if key == nil {
		return Selection{}, ErrNilKey
	}

	// Score once; a key may be costly or non-pure.
	order := make([]int, len(items))
	scores := make([]float64, len(items))
	for i, it := range items {
		order[i] = i
		scores[i] = key(it)
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	// Feasibility is decided on exact sums, the same way Exhaustive does.
	exact := exactItems(items)
	room := newLimit(capacity)
	var total exactSum
	next := new(big.Rat)
	sel := Selection{Items: make([]Item, 0, len(items))}
	for _, i := range order {
		if room.fits(next.Add(&total.weight, exact[i].weight)) {
			total.add(exact[i])
			sel.Items = append(sel.Items, items[i])
		}
	}
	sel.Value, sel.Weight = total.totals()

	return sel, nil
}
