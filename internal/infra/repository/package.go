package repository

import (
	"context"
	"encoding/json"

	"festivo/internal/domain/catalog"
	"festivo/internal/infra"
	"festivo/internal/infra/db"
)

// PackageRepository writes catalog packages. Used by seeding and admin CRUD;
// the booking core only reads packages.
type PackageRepository struct {
	db db.DBTX
}

func NewPackageRepository(dbtx db.DBTX) *PackageRepository {
	return &PackageRepository{db: dbtx}
}

func (r *PackageRepository) Create(ctx context.Context, p *catalog.Package) error {
	tables, err := json.Marshal(p.AvailableTables())
	if err != nil {
		return infra.WrapRepoErr("failed to encode available tables", err)
	}
	chairs, err := json.Marshal(p.AvailableChairs())
	if err != nil {
		return infra.WrapRepoErr("failed to encode available chairs", err)
	}
	foods, err := json.Marshal(p.AvailableFoods())
	if err != nil {
		return infra.WrapRepoErr("failed to encode available foods", err)
	}

	const query = `
		INSERT INTO packages (
			id, name, description, base_price, category, is_active,
			available_tables, available_chairs, available_foods
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = r.db.Exec(ctx, query,
		p.ID(), p.Name(), p.Description(), p.BasePrice(), p.Category(), p.IsActive(),
		tables, chairs, foods,
	)
	if err != nil {
		return wrapPgError("failed to create package", err)
	}
	return nil
}
