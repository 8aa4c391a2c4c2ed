package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeBasePrice = errors.New("base price cannot be negative")
	ErrEmptyPackageName  = errors.New("package name is required")
)

// FoodOption is a single customizable food item offered by a package.
// Prices are always resolved from the catalog, never trusted from clients.
type FoodOption struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Package is a catalog item: an event package with a base price and the menu
// of customizable options. Immutable during a booking.
type Package struct {
	id              uuid.UUID
	name            string
	description     string
	basePrice       decimal.Decimal
	category        string
	isActive        bool
	availableTables []string
	availableChairs []string
	availableFoods  []FoodOption
	createdAt       time.Time
	updatedAt       time.Time
}

func NewPackage(
	name, description string,
	basePrice decimal.Decimal,
	category string,
	availableTables, availableChairs []string,
	availableFoods []FoodOption,
) (*Package, error) {
	if name == "" {
		return nil, ErrEmptyPackageName
	}
	if basePrice.IsNegative() {
		return nil, ErrNegativeBasePrice
	}

	return &Package{
		id:              uuid.New(),
		name:            name,
		description:     description,
		basePrice:       basePrice,
		category:        category,
		isActive:        true,
		availableTables: availableTables,
		availableChairs: availableChairs,
		availableFoods:  availableFoods,
	}, nil
}

func ReconstructPackage(
	id uuid.UUID,
	name, description string,
	basePrice decimal.Decimal,
	category string,
	isActive bool,
	availableTables, availableChairs []string,
	availableFoods []FoodOption,
	createdAt, updatedAt time.Time,
) *Package {
	return &Package{
		id:              id,
		name:            name,
		description:     description,
		basePrice:       basePrice,
		category:        category,
		isActive:        isActive,
		availableTables: availableTables,
		availableChairs: availableChairs,
		availableFoods:  availableFoods,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (p *Package) ID() uuid.UUID              { return p.id }
func (p *Package) Name() string               { return p.name }
func (p *Package) Description() string        { return p.description }
func (p *Package) BasePrice() decimal.Decimal { return p.basePrice }
func (p *Package) Category() string           { return p.category }
func (p *Package) IsActive() bool             { return p.isActive }
func (p *Package) AvailableTables() []string  { return p.availableTables }
func (p *Package) AvailableChairs() []string  { return p.availableChairs }
func (p *Package) AvailableFoods() []FoodOption {
	return p.availableFoods
}
func (p *Package) CreatedAt() time.Time { return p.createdAt }
func (p *Package) UpdatedAt() time.Time { return p.updatedAt }

func (p *Package) HasTable(tableType string) bool {
	for _, t := range p.availableTables {
		if t == tableType {
			return true
		}
	}
	return false
}

func (p *Package) HasChair(chairType string) bool {
	for _, c := range p.availableChairs {
		if c == chairType {
			return true
		}
	}
	return false
}

// FoodByName resolves a food option from the package's canonical menu.
func (p *Package) FoodByName(name string) (FoodOption, bool) {
	for _, f := range p.availableFoods {
		if f.Name == name {
			return f, true
		}
	}
	return FoodOption{}, false
}
