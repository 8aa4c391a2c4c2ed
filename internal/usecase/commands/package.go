package commands

import (
	"context"

	"festivo/internal/domain/catalog"
	reqdto "festivo/internal/handler/dto/request"
	"festivo/internal/infra"
	"festivo/internal/pkg/errs"
	"festivo/internal/usecase/queries"
)

// PackageWriter persists catalog packages. Admin-only surface.
type PackageWriter interface {
	Create(ctx context.Context, p *catalog.Package) error
}

type CatalogCommands interface {
	CreatePackage(ctx context.Context, req reqdto.CreatePackageRequest) (*queries.PackageView, error)
}

type catalogCommandsImpl struct {
	writer PackageWriter
	views  queries.PackageViewRepo
}

func NewCatalogCommands(writer PackageWriter, views queries.PackageViewRepo) CatalogCommands {
	return &catalogCommandsImpl{writer: writer, views: views}
}

func (c *catalogCommandsImpl) CreatePackage(ctx context.Context, req reqdto.CreatePackageRequest) (*queries.PackageView, error) {
	pkg, err := req.ToDomain()
	if err != nil {
		fe := errs.FieldErrors{}
		switch {
		case errs.Is(err, catalog.ErrEmptyPackageName):
			fe.Add("name", "package name is required")
		case errs.Is(err, catalog.ErrNegativeBasePrice):
			fe.Add("base_price", "base price cannot be negative")
		default:
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		return nil, fe
	}

	if err := c.writer.Create(ctx, pkg); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			fe := errs.FieldErrors{}
			fe.Add("name", "a package with this name already exists")
			return nil, fe
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.views.FindViewByID(ctx, pkg.ID())
}
