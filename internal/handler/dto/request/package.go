package request

import (
	"festivo/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

type FoodOptionRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
}

type CreatePackageRequest struct {
	Name            string              `json:"name" binding:"required"`
	Description     string              `json:"description"`
	BasePrice       decimal.Decimal     `json:"base_price"`
	Category        string              `json:"category"`
	AvailableTables []string            `json:"available_tables"`
	AvailableChairs []string            `json:"available_chairs"`
	AvailableFoods  []FoodOptionRequest `json:"available_foods"`
}

func (r CreatePackageRequest) ToDomain() (*catalog.Package, error) {
	foods := make([]catalog.FoodOption, 0, len(r.AvailableFoods))
	for _, f := range r.AvailableFoods {
		foods = append(foods, catalog.FoodOption{Name: f.Name, Price: f.Price})
	}
	return catalog.NewPackage(
		r.Name, r.Description, r.BasePrice, r.Category,
		r.AvailableTables, r.AvailableChairs, foods,
	)
}
