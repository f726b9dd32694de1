package knapsack

import (
	"math"
	"math/big"
)

// exactItem holds an item's value and weight as exact rationals. Every
// float64 is a dyadic rational, so the conversion loses nothing and a subset
// total does not depend on the order its items are added in.
type exactItem struct {
	value, weight *big.Rat
}

func exactItems(items []Item) []exactItem {
	out := make([]exactItem, len(items))
	for i, it := range items {
		out[i] = exactItem{value: ratOf(it.value), weight: ratOf(it.weight)}
	}

	return out
}

// exactSum accumulates item totals without rounding.
type exactSum struct {
	value, weight big.Rat
}

func (s *exactSum) add(it exactItem) {
	s.value.Add(&s.value, it.value)
	s.weight.Add(&s.weight, it.weight)
}

func (s *exactSum) reset() {
	s.value.SetInt64(0)
	s.weight.SetInt64(0)
}

func (s *exactSum) set(o *exactSum) {
	s.value.Set(&o.value)
	s.weight.Set(&o.weight)
}

// totals rounds the exact sums to the nearest float64 once.
func (s *exactSum) totals() (value, weight float64) {
	value, _ = s.value.Float64()
	weight, _ = s.weight.Float64()

	return value, weight
}

// limit is a capacity in exact form. +Inf admits every weight.
type limit struct {
	capacity *big.Rat // nil when unbounded
}

func newLimit(capacity float64) limit {
	if math.IsInf(capacity, 1) {
		return limit{}
	}

	return limit{capacity: ratOf(capacity)}
}

// fits reports weight ≤ capacity.
func (l limit) fits(weight *big.Rat) bool {
	return l.capacity == nil || weight.Cmp(l.capacity) <= 0
}

// ratOf converts a finite float64. NewItem and the capacity checks keep
// NaN and infinities away from here.
func ratOf(f float64) *big.Rat {
	return new(big.Rat).SetFloat64(f)
}
