package catalog

import "github.com/shopspring/decimal"

// TotalFoodCost sums the prices of the selected food options. Zero for an
// empty selection.
func TotalFoodCost(foods []FoodOption) decimal.Decimal {
	total := decimal.Zero
	for _, f := range foods {
		total = total.Add(f.Price)
	}
	return total
}

// WithinBudget reports whether the selected foods fit the budget. The boundary
// case of an exactly-equal total passes.
func WithinBudget(foods []FoodOption, budget decimal.Decimal) bool {
	return TotalFoodCost(foods).LessThanOrEqual(budget)
}
