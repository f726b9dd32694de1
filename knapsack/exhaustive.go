package knapsack

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

// PowerSet returns every subset of items. Subset k holds item i iff bit i
// of k is set, so subsets appear in increasing mask order starting with the
// empty set, and items inside a subset keep input order.
//
// Errors: ErrTooManyItems when len(items) > MaxExhaustiveItems.
//
// Complexity: O(2ⁿ·n) time and space.
func PowerSet(items []Item) ([][]Item, error) {
	if err := checkSize(items); err != nil {
		return nil, err
	}

	n := len(items)
	out := make([][]Item, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		subset := make([]Item, 0, bits.OnesCount(uint(mask)))
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset = append(subset, items[i])
			}
		}
		out = append(out, subset)
	}

	return out, nil
}

// ChooseBest picks the subset with strictly the greatest value among those
// whose weight fits capacity. The first such subset in slice order wins ties.
// When nothing fits with positive value the result is an empty Selection.
//
// Errors: ErrNegativeCapacity if capacity < 0 or NaN.
func ChooseBest(subsets [][]Item, capacity float64) (Selection, error) {
	if math.IsNaN(capacity) || capacity < 0 {
		return Selection{}, ErrNegativeCapacity
	}

	room := newLimit(capacity)
	var best Selection
	var bestSum, cand exactSum
	for _, subset := range subsets {
		cand.reset()
		for _, it := range exactItems(subset) {
			cand.add(it)
		}
		if room.fits(&cand.weight) && cand.value.Cmp(&bestSum.value) > 0 {
			bestSum.set(&cand)
			best.Items = subset
		}
	}
	best.Value, best.Weight = bestSum.totals()

	return best.clone(), nil
}

// Exhaustive solves the 0/1 knapsack problem exactly by enumerating every
// subset of items in PowerSet order without materialising the power set.
// It returns the same Selection as ChooseBest(PowerSet(items), capacity).
//
// Errors:
//   - ErrNegativeCapacity if capacity < 0 or NaN.
//   - ErrTooManyItems when len(items) > MaxExhaustiveItems.
//
// Complexity: O(2ⁿ·n) time, O(n) space.
func Exhaustive(items []Item, capacity float64) (Selection, error) {
	if math.IsNaN(capacity) || capacity < 0 {
		return Selection{}, ErrNegativeCapacity
	}
	if err := checkSize(items); err != nil {
		return Selection{}, err
	}

	n := len(items)
	exact := exactItems(items)
	room := newLimit(capacity)
	bestMask := 0
	var best, cand exactSum
	for mask := 0; mask < 1<<n; mask++ {
		cand.reset()
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				cand.add(exact[i])
			}
		}
		if room.fits(&cand.weight) && cand.value.Cmp(&best.value) > 0 {
			bestMask = mask
			best.set(&cand)
		}
	}

	sel := Selection{Items: make([]Item, 0, bits.OnesCount(uint(bestMask)))}
	for i := 0; i < n; i++ {
		if bestMask&(1<<i) != 0 {
			sel.Items = append(sel.Items, items[i])
		}
	}
	sel.Value, sel.Weight = best.totals()

	return sel, nil
}

// clone detaches Items from caller-owned storage.
func (s Selection) clone() Selection {
	s.Items = append(make([]Item, 0, len(s.Items)), s.Items...)

	return s
}

func checkSize(items []Item) error {
	if len(items) > MaxExhaustiveItems {
		return errors.Wrapf(ErrTooManyItems, "%d items, limit %d", len(items), MaxExhaustiveItems)
	}

	return nil
}
