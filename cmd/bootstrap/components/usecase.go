package components

import (
	"festivo/internal/pkg/config"
	"festivo/internal/usecase"
	"festivo/internal/usecase/commands"
	"festivo/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		NewPaymentConfig,
		usecase.NewTokenValidator,

		queries.NewCatalogQueries,
		queries.NewReservationQueries,
		queries.NewPaymentQueries,
		queries.NewReceiptQueries,
		queries.NewRevenueQueries,
		queries.NewUserQueries,

		commands.NewAuthCommands,
		commands.NewCatalogCommands,
		commands.NewReservationCommands,
		commands.NewPaymentCommands,
		commands.NewReceiptCommands,
	),
)

func NewPaymentConfig(cfg config.Config) config.PaymentConfig {
	return cfg.Payment
}
