//go:build unit

package catalog_test

import (
	"testing"

	"festivo/internal/domain/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func foods(prices ...int64) []catalog.FoodOption {
	out := make([]catalog.FoodOption, 0, len(prices))
	for i, p := range prices {
		out = append(out, catalog.FoodOption{
			Name:  "food-" + string(rune('a'+i)),
			Price: decimal.NewFromInt(p),
		})
	}
	return out
}

func TestTotalFoodCost(t *testing.T) {
	t.Run("empty selection costs zero", func(t *testing.T) {
		assert.True(t, catalog.TotalFoodCost(nil).IsZero())
		assert.True(t, catalog.TotalFoodCost([]catalog.FoodOption{}).IsZero())
	})

	t.Run("sums all selected prices", func(t *testing.T) {
		total := catalog.TotalFoodCost(foods(8000, 1500, 800))
		assert.True(t, total.Equal(decimal.NewFromInt(10300)), "got %s", total)
	})

	t.Run("preserves centavo precision", func(t *testing.T) {
		sel := []catalog.FoodOption{
			{Name: "a", Price: decimal.RequireFromString("99.99")},
			{Name: "b", Price: decimal.RequireFromString("0.01")},
		}
		assert.True(t, catalog.TotalFoodCost(sel).Equal(decimal.NewFromInt(100)))
	})
}

func TestWithinBudget(t *testing.T) {
	budget := decimal.NewFromInt(10000)

	cases := []struct {
		name   string
		prices []int64
		want   bool
	}{
		{name: "under budget passes", prices: []int64{8000, 1500}, want: true},
		{name: "exactly equal passes", prices: []int64{8000, 2000}, want: true},
		{name: "one over fails", prices: []int64{8000, 2001}, want: false},
		{name: "empty selection passes", prices: nil, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, catalog.WithinBudget(foods(tc.prices...), budget))
		})
	}

	t.Run("fractional boundary is exact", func(t *testing.T) {
		b := decimal.RequireFromString("100.00")
		at := []catalog.FoodOption{{Name: "a", Price: decimal.RequireFromString("100.00")}}
		over := []catalog.FoodOption{{Name: "a", Price: decimal.RequireFromString("100.01")}}
		assert.True(t, catalog.WithinBudget(at, b))
		assert.False(t, catalog.WithinBudget(over, b))
	})
}

func TestNewPackage(t *testing.T) {
	t.Run("valid package is active with an id", func(t *testing.T) {
		p, err := catalog.NewPackage("Garden Wedding", "desc", decimal.NewFromInt(50000), "wedding",
			[]string{"round"}, []string{"tiffany"}, foods(8000))
		require.NoError(t, err)
		assert.True(t, p.IsActive())
		assert.NotEmpty(t, p.ID())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := catalog.NewPackage("", "", decimal.NewFromInt(1), "", nil, nil, nil)
		assert.ErrorIs(t, err, catalog.ErrEmptyPackageName)
	})

	t.Run("negative base price rejected", func(t *testing.T) {
		_, err := catalog.NewPackage("x", "", decimal.NewFromInt(-1), "", nil, nil, nil)
		assert.ErrorIs(t, err, catalog.ErrNegativeBasePrice)
	})

	t.Run("zero base price allowed", func(t *testing.T) {
		_, err := catalog.NewPackage("x", "", decimal.Zero, "", nil, nil, nil)
		assert.NoError(t, err)
	})
}

func TestFoodByName(t *testing.T) {
	p, err := catalog.NewPackage("x", "", decimal.NewFromInt(100), "",
		[]string{"round"}, []string{"tiffany"},
		[]catalog.FoodOption{{Name: "lechon belly", Price: decimal.NewFromInt(80)}})
	require.NoError(t, err)

	got, ok := p.FoodByName("lechon belly")
	require.True(t, ok)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(80)))

	_, ok = p.FoodByName("sisig")
	assert.False(t, ok)
}
