package components

import (
	"festivo/internal/infra/db"
	"festivo/internal/infra/readstore"
	"festivo/internal/infra/repository"
	"festivo/internal/infra/storage"
	"festivo/internal/infra/uow"
	"festivo/internal/pkg/clock"
	"festivo/internal/pkg/config"
	"festivo/internal/usecase/commands"
	"festivo/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		NewStorageConfig,
		uow.NewPostgresUoW,
		clock.NewRealClock,
		fx.Annotate(
			storage.NewLocalFileStore,
			fx.As(new(storage.FileStore)),
		),
		// Readstores back the query-side repo interfaces. Writes go
		// through the unit of work, which builds its own repositories
		// bound to the transaction.
		fx.Annotate(
			readstore.NewPackageReadStore,
			fx.As(new(queries.PackageViewRepo)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentViewRepo)),
			fx.As(new(queries.PaymentReader)),
		),
		fx.Annotate(
			readstore.NewReceiptReadStore,
			fx.As(new(queries.ReceiptReader)),
		),
		fx.Annotate(
			readstore.NewRevenueReadStore,
			fx.As(new(queries.RevenueRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserViewRepo)),
			fx.As(new(commands.UserReader)),
		),
		fx.Annotate(
			repository.NewPackageRepository,
			fx.As(new(commands.PackageWriter)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewStorageConfig(cfg config.Config) config.StorageConfig {
	return cfg.Storage
}
