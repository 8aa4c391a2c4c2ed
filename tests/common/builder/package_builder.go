//go:build unit || e2e

package builder

import (
	"time"

	"festivo/internal/domain/catalog"
	"festivo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PackageBuilder defaults to a package whose food menu comfortably fits
// within the base price budget; tests tighten BasePrice to probe the
// boundary.
type PackageBuilder struct {
	Name            string
	Description     string
	BasePrice       decimal.Decimal
	Category        string
	IsActive        bool
	AvailableTables []string
	AvailableChairs []string
	AvailableFoods  []catalog.FoodOption
}

func NewPackageBuilder() *PackageBuilder {
	return &PackageBuilder{
		Name:        "Garden Wedding Package",
		Description: "Full venue styling for up to 150 guests",
		BasePrice:   decimal.NewFromInt(50000),
		Category:    "wedding",
		IsActive:    true,
		AvailableTables: []string{
			"round", "long",
		},
		AvailableChairs: []string{
			"tiffany", "monoblock",
		},
		AvailableFoods: []catalog.FoodOption{
			{Name: "lechon belly", Price: decimal.NewFromInt(8000)},
			{Name: "pancit canton", Price: decimal.NewFromInt(1500)},
			{Name: "fruit salad", Price: decimal.NewFromInt(800)},
		},
	}
}

func (b *PackageBuilder) With(mutate func(*PackageBuilder)) *PackageBuilder {
	mutate(b)
	return b
}

func (b *PackageBuilder) BuildDomain() (*catalog.Package, error) {
	return catalog.NewPackage(
		b.Name, b.Description, b.BasePrice, b.Category,
		b.AvailableTables, b.AvailableChairs, b.AvailableFoods,
	)
}

// BuildInactiveDomain reconstructs a deactivated package, which NewPackage
// cannot produce.
func (b *PackageBuilder) BuildInactiveDomain() *catalog.Package {
	now := time.Now()
	return catalog.ReconstructPackage(
		uuid.New(), b.Name, b.Description, b.BasePrice, b.Category, false,
		b.AvailableTables, b.AvailableChairs, b.AvailableFoods, now, now,
	)
}

func (b *PackageBuilder) BuildReadModel() *queries.PackageView {
	foods := make([]queries.FoodOptionView, 0, len(b.AvailableFoods))
	for _, f := range b.AvailableFoods {
		foods = append(foods, queries.FoodOptionView{Name: f.Name, Price: f.Price})
	}
	return &queries.PackageView{
		ID:              uuid.New(),
		Name:            b.Name,
		Description:     b.Description,
		BasePrice:       b.BasePrice,
		Category:        b.Category,
		IsActive:        b.IsActive,
		AvailableTables: b.AvailableTables,
		AvailableChairs: b.AvailableChairs,
		AvailableFoods:  foods,
		CreatedAt:       time.Now(),
	}
}
