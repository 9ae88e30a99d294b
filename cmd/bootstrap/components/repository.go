package components

import (
	repo_impl "hotel-backoffice/internal/infra/repository"
	"hotel-backoffice/internal/infra/uow"
	"hotel-backoffice/internal/usecase/commands"
	"hotel-backoffice/internal/usecase/queries"

	"go.uber.org/fx"
)

// Pool-bound repositories serve the catalog usecases and the read side.
// Reservation, user and analytics writes go through the unit of work, which
// binds its own repositories to the transaction.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,

		fx.Annotate(
			repo_impl.NewRoomRepository,
			fx.As(new(commands.RoomRepo)),
			fx.As(new(queries.RoomViewRepo)),
			fx.As(new(queries.RoomReader)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewCustomerRepository,
			fx.As(new(commands.CustomerRepo)),
			fx.As(new(queries.CustomerViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewPaymentRepository,
			fx.As(new(commands.PaymentRepo)),
			fx.As(new(queries.PaymentViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewMealRepository,
			fx.As(new(commands.MealRepo)),
			fx.As(new(queries.MealViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewWeeklyMenuRepository,
			fx.As(new(commands.WeeklyMenuRepo)),
			fx.As(new(queries.WeeklyMenuViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewGalleryRepository,
			fx.As(new(commands.GalleryRepo)),
			fx.As(new(queries.GalleryViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewMainMenuRepository,
			fx.As(new(commands.MainMenuRepo)),
			fx.As(new(queries.MainMenuViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserReader)),
			fx.As(new(queries.UserRepo)),
		),
		fx.Annotate(
			repo_impl.NewAnalyticsRepository,
			fx.As(new(queries.SnapshotViewRepo)),
		),
	),
)
