package components

import (
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRoomCommands,
		commands.NewCustomerCommands,
		commands.NewReservationCommands,
		commands.NewPaymentCommands,
		commands.NewMealCommands,
		commands.NewWeeklyMenuCommands,
		commands.NewGalleryCommands,
		commands.NewMainMenuCommands,
		commands.NewAnalyticsCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRoomQueries,
		queries.NewCustomerQueries,
		queries.NewReservationQueries,
		queries.NewPaymentQueries,
		queries.NewMealQueries,
		queries.NewWeeklyMenuQueries,
		queries.NewMediaQueries,
		queries.NewAnalyticsQueries,
	),
)
