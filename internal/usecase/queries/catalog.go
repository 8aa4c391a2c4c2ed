package queries

import (
	"context"

	"festivo/internal/infra"
	"festivo/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	ListPackages(ctx context.Context) ([]PackageView, error)
	GetPackage(ctx context.Context, id uuid.UUID) (*PackageView, error)
}

type PackageViewRepo interface {
	ListActive(ctx context.Context) ([]PackageView, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*PackageView, error)
}

type catalogQueriesImpl struct {
	repo PackageViewRepo
}

func NewCatalogQueries(repo PackageViewRepo) CatalogQueries {
	return &catalogQueriesImpl{repo: repo}
}

func (q *catalogQueriesImpl) ListPackages(ctx context.Context) ([]PackageView, error) {
	return q.repo.ListActive(ctx)
}

func (q *catalogQueriesImpl) GetPackage(ctx context.Context, id uuid.UUID) (*PackageView, error) {
	view, err := q.repo.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPackageNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
