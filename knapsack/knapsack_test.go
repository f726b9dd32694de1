package knapsack_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/knapsack"
)

// buildItems returns the six-item burglar example.
func buildItems(t testing.TB) []knapsack.Item {
	t.Helper()
	names := []string{"clock", "painting", "radio", "vase", "book", "computer"}
	values := []float64{175, 90, 20, 50, 10, 200}
	weights := []float64{10, 9, 4, 2, 1, 20}

	items := make([]knapsack.Item, len(names))
	for i := range names {
		it, err := knapsack.NewItem(names[i], values[i], weights[i])
		require.NoError(t, err)
		items[i] = it
	}

	return items
}

// fractionalItems draws n items whose weights are multiples of 0.1, which
// float64 cannot represent exactly.
func fractionalItems(t testing.TB, rng *rand.Rand, n int) []knapsack.Item {
	t.Helper()
	items := make([]knapsack.Item, n)
	for i := range items {
		it, err := knapsack.NewItem("f"+strconv.Itoa(i), float64(1+rng.Intn(9)), float64(1+rng.Intn(9))/10)
		require.NoError(t, err)
		items[i] = it
	}

	return items
}

// randomItems draws n items with integral values and weights.
func randomItems(t testing.TB, rng *rand.Rand, n int) []knapsack.Item {
	t.Helper()
	items := make([]knapsack.Item, n)
	for i := range items {
		it, err := knapsack.NewItem("i"+strconv.Itoa(i), float64(rng.Intn(100)), float64(1+rng.Intn(20)))
		require.NoError(t, err)
		items[i] = it
	}

	return items
}

func TestNewItem_Validation(t *testing.T) {
	_, err := knapsack.NewItem("neg", -1, 1)
	assert.ErrorIs(t, err, knapsack.ErrInvalidItem)
	_, err = knapsack.NewItem("zero", 1, 0)
	assert.ErrorIs(t, err, knapsack.ErrInvalidItem)
	_, err = knapsack.NewItem("nan", math.NaN(), 1)
	assert.ErrorIs(t, err, knapsack.ErrInvalidItem)
	_, err = knapsack.NewItem("priceless", math.Inf(1), 1)
	assert.ErrorIs(t, err, knapsack.ErrInvalidItem)
	_, err = knapsack.NewItem("anvil", 1, math.Inf(1))
	assert.ErrorIs(t, err, knapsack.ErrInvalidItem)

	it, err := knapsack.NewItem("free", 0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "<free, 0, 0.5>", it.String())
}

func TestGreedy_Errors(t *testing.T) {
	items := buildItems(t)

	_, err := knapsack.Greedy(items, -1, knapsack.ByValue)
	assert.ErrorIs(t, err, knapsack.ErrNegativeCapacity)
	_, err = knapsack.Greedy(items, math.NaN(), knapsack.ByValue)
	assert.ErrorIs(t, err, knapsack.ErrNegativeCapacity)
	_, err = knapsack.Greedy(items, 10, nil)
	assert.ErrorIs(t, err, knapsack.ErrNilKey)
}

func TestGreedy_BurglarKeys(t *testing.T) {
	items := buildItems(t)

	cases := []struct {
		key   string
		value float64
		names []string
	}{
		{"value", 260, []string{"computer", "vase", "book"}},
		{"weight", 170, []string{"book", "vase", "radio", "painting"}},
		// book, computer and painting tie at density 10; input order decides.
		{"density", 325, []string{"vase", "clock", "painting", "book"}},
	}
	keys := knapsack.KeyFuncs()
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			key, ok := keys.Get(tc.key)
			require.True(t, ok)

			sel, err := knapsack.Greedy(items, 25, key)
			require.NoError(t, err)
			assert.Equal(t, tc.value, sel.Value)
			assert.LessOrEqual(t, sel.Weight, 25.0)
			if diff := cmp.Diff(tc.names, sel.Names()); diff != "" {
				t.Errorf("items mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGreedy_DoesNotMutateInput(t *testing.T) {
	items := buildItems(t)
	before := append([]knapsack.Item(nil), items...)

	_, err := knapsack.Greedy(items, 25, knapsack.ByDensity)
	require.NoError(t, err)
	assert.Equal(t, before, items)
}

func TestGreedy_ZeroCapacity(t *testing.T) {
	sel, err := knapsack.Greedy(buildItems(t), 0, knapsack.ByValue)
	require.NoError(t, err)
	assert.True(t, sel.Empty())
	assert.Zero(t, sel.Value)
}

func TestKeyFuncs_Order(t *testing.T) {
	var got []string
	for pair := knapsack.KeyFuncs().Oldest(); pair != nil; pair = pair.Next() {
		got = append(got, pair.Key)
	}
	assert.Equal(t, []string{"value", "weight", "density"}, got)
}

func TestExhaustive_Burglar(t *testing.T) {
	items := buildItems(t)

	sel, err := knapsack.Exhaustive(items, 20)
	require.NoError(t, err)
	assert.Equal(t, 275.0, sel.Value)
	assert.Equal(t, 20.0, sel.Weight)
	assert.Equal(t, []string{"clock", "painting", "book"}, sel.Names())

	sel, err = knapsack.Exhaustive(items, 25)
	require.NoError(t, err)
	assert.Equal(t, 335.0, sel.Value)
	assert.Equal(t, []string{"clock", "painting", "radio", "vase"}, sel.Names())
}

func TestExhaustive_Errors(t *testing.T) {
	_, err := knapsack.Exhaustive(buildItems(t), -0.5)
	assert.ErrorIs(t, err, knapsack.ErrNegativeCapacity)

	big := randomItems(t, rand.New(rand.NewSource(1)), knapsack.MaxExhaustiveItems+1)
	_, err = knapsack.Exhaustive(big, 10)
	assert.ErrorIs(t, err, knapsack.ErrTooManyItems)
	_, err = knapsack.PowerSet(big)
	assert.ErrorIs(t, err, knapsack.ErrTooManyItems)
}

func TestExhaustive_NothingFits(t *testing.T) {
	sel, err := knapsack.Exhaustive(buildItems(t), 0.5)
	require.NoError(t, err)
	assert.True(t, sel.Empty())
	assert.Zero(t, sel.Value)
	assert.Zero(t, sel.Weight)

	sel, err = knapsack.Exhaustive(nil, 10)
	require.NoError(t, err)
	assert.True(t, sel.Empty())
}

func TestExhaustive_TieFirstMaskWins(t *testing.T) {
	a, _ := knapsack.NewItem("a", 5, 1)
	b, _ := knapsack.NewItem("b", 5, 1)

	// {a} is mask 1, {b} is mask 2: only one fits, a comes first.
	sel, err := knapsack.Exhaustive([]knapsack.Item{a, b}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, sel.Names())
}

func TestPowerSet_Order(t *testing.T) {
	items := buildItems(t)[:3]

	pset, err := knapsack.PowerSet(items)
	require.NoError(t, err)
	require.Len(t, pset, 8)

	got := make([][]string, len(pset))
	for i, subset := range pset {
		got[i] = knapsack.Selection{Items: subset}.Names()
	}
	want := [][]string{
		{},
		{"clock"},
		{"painting"},
		{"clock", "painting"},
		{"radio"},
		{"clock", "radio"},
		{"painting", "radio"},
		{"clock", "painting", "radio"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("power set mismatch (-want +got):\n%s", diff)
	}
}

func TestChooseBest_MatchesExhaustive(t *testing.T) {
	items := buildItems(t)
	pset, err := knapsack.PowerSet(items)
	require.NoError(t, err)

	for _, capacity := range []float64{0, 1, 5, 12.5, 20, 25, 46} {
		viaSet, err := knapsack.ChooseBest(pset, capacity)
		require.NoError(t, err)
		direct, err := knapsack.Exhaustive(items, capacity)
		require.NoError(t, err)
		assert.Equal(t, viaSet, direct, "capacity %v", capacity)
	}

	_, err = knapsack.ChooseBest(pset, -1)
	assert.ErrorIs(t, err, knapsack.ErrNegativeCapacity)
}

// TestExhaustive_Properties checks, on random instances, that the exhaustive
// optimum is feasible, repeatable, and never worse than any greedy strategy.
func TestExhaustive_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for round := 0; round < 50; round++ {
		items := randomItems(t, rng, 1+rng.Intn(10))
		capacity := float64(rng.Intn(60))

		best, err := knapsack.Exhaustive(items, capacity)
		require.NoError(t, err)
		assert.LessOrEqual(t, best.Weight, capacity, "round %d", round)

		again, err := knapsack.Exhaustive(items, capacity)
		require.NoError(t, err)
		assert.Equal(t, best, again, "round %d not idempotent", round)

		for pair := knapsack.KeyFuncs().Oldest(); pair != nil; pair = pair.Next() {
			greedy, err := knapsack.Greedy(items, capacity, pair.Value)
			require.NoError(t, err)
			assert.LessOrEqual(t, greedy.Weight, capacity)
			assert.GreaterOrEqual(t, best.Value, greedy.Value, "round %d key %s", round, pair.Key)
		}
	}
}

// TestExhaustive_FractionalWeights covers weights whose float64 sum depends
// on addition order (0.3+0.2+0.1 == 0.6, 0.1+0.2+0.3 > 0.6). The exact sum
// of the three stored weights exceeds the stored 0.6, so both solvers must
// reject {a, b, c} whatever order they add in.
func TestExhaustive_FractionalWeights(t *testing.T) {
	a, _ := knapsack.NewItem("a", 1, 0.1)
	b, _ := knapsack.NewItem("b", 2, 0.2)
	c, _ := knapsack.NewItem("c", 3, 0.3)
	items := []knapsack.Item{a, b, c}

	greedy, err := knapsack.Greedy(items, 0.6, knapsack.ByValue)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, greedy.Names())
	assert.Equal(t, 5.0, greedy.Value)

	best, err := knapsack.Exhaustive(items, 0.6)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, best.Names())
	assert.Equal(t, 5.0, best.Value)
	assert.Equal(t, greedy.Weight, best.Weight)
	assert.LessOrEqual(t, best.Weight, 0.6)

	subsets, err := knapsack.PowerSet(items)
	require.NoError(t, err)
	chosen, err := knapsack.ChooseBest(subsets, 0.6)
	require.NoError(t, err)
	assert.Equal(t, best, chosen)
}

func TestExhaustive_UnboundedCapacity(t *testing.T) {
	items := buildItems(t)

	best, err := knapsack.Exhaustive(items, math.Inf(1))
	require.NoError(t, err)
	assert.Len(t, best.Items, len(items))
	assert.Equal(t, 545.0, best.Value)

	greedy, err := knapsack.Greedy(items, math.Inf(1), knapsack.ByDensity)
	require.NoError(t, err)
	assert.Equal(t, best.Value, greedy.Value)
}

// TestExhaustive_FractionalProperties repeats the dominance check on
// weights that are not exactly representable.
func TestExhaustive_FractionalProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		items := fractionalItems(t, rng, 1+rng.Intn(8))
		capacity := float64(rng.Intn(30)) / 10

		best, err := knapsack.Exhaustive(items, capacity)
		require.NoError(t, err)
		assert.LessOrEqual(t, best.Weight, capacity, "round %d", round)

		for pair := knapsack.KeyFuncs().Oldest(); pair != nil; pair = pair.Next() {
			greedy, err := knapsack.Greedy(items, capacity, pair.Value)
			require.NoError(t, err)
			assert.LessOrEqual(t, greedy.Weight, capacity, "round %d key %s", round, pair.Key)
			assert.GreaterOrEqual(t, best.Value, greedy.Value, "round %d key %s", round, pair.Key)
		}
	}
}

func TestSelection_String(t *testing.T) {
	sel, err := knapsack.Exhaustive(buildItems(t), 20)
	require.NoError(t, err)
	assert.Equal(t,
		"Total value of items taken = 275\n  <clock, 175, 10>\n  <painting, 90, 9>\n  <book, 10, 1>",
		sel.String())
}
