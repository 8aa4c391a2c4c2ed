package readstore

import (
	"context"
	"encoding/json"
	"time"

	"festivo/internal/domain/catalog"
	"festivo/internal/infra"
	"festivo/internal/infra/db"
	"festivo/internal/pkg/pgconv"
	"festivo/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PackageReadStore struct {
	db db.DBTX
}

func NewPackageReadStore(dbtx db.DBTX) *PackageReadStore {
	return &PackageReadStore{db: dbtx}
}

const packageColumns = `
	id, name, description, base_price, category, is_active,
	available_tables, available_chairs, available_foods,
	created_at, updated_at`

// FindByID loads a package as a domain entity for command-side validation.
func (s *PackageReadStore) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`

	var (
		rowID                uuid.UUID
		name, description    string
		basePrice            decimal.Decimal
		category             string
		isActive             bool
		tables, chairs, food []byte
		createdAt, updatedAt time.Time
	)
	err := s.db.QueryRow(ctx, query, id).Scan(
		&rowID, &name, &description, &basePrice, &category, &isActive,
		&tables, &chairs, &food,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find package", err)
	}

	availableTables, err := decodeStrings(tables)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode available tables", err)
	}
	availableChairs, err := decodeStrings(chairs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode available chairs", err)
	}
	availableFoods, err := decodeFoods(food)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode available foods", err)
	}

	return catalog.ReconstructPackage(
		rowID, name, description, basePrice, category, isActive,
		availableTables, availableChairs, availableFoods,
		createdAt, updatedAt,
	), nil
}

// FindViewByID loads a package projection for API responses. Inactive
// packages are still viewable; only booking is restricted.
func (s *PackageReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.PackageView, error) {
	pkg, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toPackageView(pkg)
	return &view, nil
}

// ListActive returns the bookable catalog ordered by name.
func (s *PackageReadStore) ListActive(ctx context.Context) ([]queries.PackageView, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE is_active ORDER BY name`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err)
	}
	defer rows.Close()

	views := make([]queries.PackageView, 0)
	for rows.Next() {
		var (
			rowID                uuid.UUID
			name, description    string
			basePrice            decimal.Decimal
			category             string
			isActive             bool
			tables, chairs, food []byte
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(
			&rowID, &name, &description, &basePrice, &category, &isActive,
			&tables, &chairs, &food,
			&createdAt, &updatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan package row", err)
		}

		availableTables, err := decodeStrings(tables)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode available tables", err)
		}
		availableChairs, err := decodeStrings(chairs)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode available chairs", err)
		}
		availableFoods, err := decodeFoods(food)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode available foods", err)
		}

		pkg := catalog.ReconstructPackage(
			rowID, name, description, basePrice, category, isActive,
			availableTables, availableChairs, availableFoods,
			createdAt, updatedAt,
		)
		views = append(views, toPackageView(pkg))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate package rows", err)
	}
	return views, nil
}

func toPackageView(p *catalog.Package) queries.PackageView {
	return queries.PackageView{
		ID:              p.ID(),
		Name:            p.Name(),
		Description:     p.Description(),
		BasePrice:       p.BasePrice(),
		Category:        p.Category(),
		IsActive:        p.IsActive(),
		AvailableTables: p.AvailableTables(),
		AvailableChairs: p.AvailableChairs(),
		AvailableFoods:  toFoodViews(p.AvailableFoods()),
		CreatedAt:       p.CreatedAt(),
	}
}

func toFoodViews(foods []catalog.FoodOption) []queries.FoodOptionView {
	views := make([]queries.FoodOptionView, 0, len(foods))
	for _, f := range foods {
		views = append(views, queries.FoodOptionView{Name: f.Name, Price: f.Price})
	}
	return views
}

func decodeStrings(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeFoods(raw []byte) ([]catalog.FoodOption, error) {
	if len(raw) == 0 {
		return []catalog.FoodOption{}, nil
	}
	var out []catalog.FoodOption
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
