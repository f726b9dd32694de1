// Package knapsack defines items, key functions and selections for the
// 0/1 knapsack solvers in this package.
package knapsack

import (
	"errors"
	"math"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sentinel errors for knapsack operations.
var (
	// ErrInvalidItem indicates a negative value, a non-positive weight, or a
	// non-finite one of either.
	ErrInvalidItem = errors.New("knapsack: invalid item")

	// ErrNegativeCapacity indicates a negative or NaN capacity.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrNilKey indicates a nil key function passed to Greedy.
	ErrNilKey = errors.New("knapsack: key function is nil")

	// ErrTooManyItems indicates an exhaustive search over more than
	// MaxExhaustiveItems items.
	ErrTooManyItems = errors.New("knapsack: too many items for exhaustive search")
)

// MaxExhaustiveItems bounds the input size of PowerSet and Exhaustive.
const MaxExhaustiveItems = 30

// Item is an immutable (name, value, weight) triple.
type Item struct {
	name   string
	value  float64
	weight float64
}

// NewItem validates and builds an Item. value must be finite and ≥ 0,
// weight finite and > 0.
func NewItem(name string, value, weight float64) (Item, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return Item{}, pkgerrors.Wrapf(ErrInvalidItem, "%q value %v", name, value)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return Item{}, pkgerrors.Wrapf(ErrInvalidItem, "%q weight %v", name, weight)
	}

	return Item{name: name, value: value, weight: weight}, nil
}

// Name returns the item's name.
func (it Item) Name() string { return it.name }

// Value returns the item's value.
func (it Item) Value() float64 { return it.value }

// Weight returns the item's weight.
func (it Item) Weight() float64 { return it.weight }

// String renders "<name, value, weight>".
func (it Item) String() string {
	return "<" + it.name + ", " + formatFloat(it.value) + ", " + formatFloat(it.weight) + ">"
}

// KeyFunc scores an item; Greedy takes items in descending score order.
type KeyFunc func(Item) float64

// ByValue ranks items by value.
func ByValue(it Item) float64 { return it.value }

// ByWeightInverse ranks lighter items first.
func ByWeightInverse(it Item) float64 { return 1 / it.weight }

// ByDensity ranks items by value per unit weight.
func ByDensity(it Item) float64 { return it.value / it.weight }

// KeyFuncs returns the built-in key functions by name, in the fixed order
// "value", "weight", "density". Each call returns a fresh map.
func KeyFuncs() *orderedmap.OrderedMap[string, KeyFunc] {
	keys := orderedmap.New[string, KeyFunc]()
	keys.Set("value", ByValue)
	keys.Set("weight", ByWeightInverse)
	keys.Set("density", ByDensity)

	return keys
}

// Selection is the outcome of a solver: the chosen items and their totals.
type Selection struct {
	// Items are the chosen items. Greedy lists them in acceptance order,
	// the exhaustive solvers in input order.
	Items []Item

	// Value is the summed value of Items.
	Value float64

	// Weight is the summed weight of Items.
	Weight float64
}

// Empty reports whether nothing was taken.
func (s Selection) Empty() bool { return len(s.Items) == 0 }

// Names returns the names of the chosen items.
func (s Selection) Names() []string {
	out := make([]string, len(s.Items))
	for i, it := range s.Items {
		out[i] = it.name
	}

	return out
}

// String renders the total value followed by one item per line.
func (s Selection) String() string {
	var sb strings.Builder
	sb.WriteString("Total value of items taken = ")
	sb.WriteString(formatFloat(s.Value))
	for _, it := range s.Items {
		sb.WriteString("\n  ")
		sb.WriteString(it.String())
	}

	return sb.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
