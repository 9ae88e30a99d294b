package components

import (
	"hotel-backoffice/internal/handler"
	"hotel-backoffice/internal/handler/api"
	"hotel-backoffice/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		middleware.NewLogger,
		middleware.NewAuthMiddleware,
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewCustomerHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		api.NewMealHandler,
		api.NewWeeklyMenuHandler,
		api.NewMediaHandler,
		api.NewAnalyticsHandler,
		api.NewHealthHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	room *api.RoomHandler,
	customer *api.CustomerHandler,
	reservation *api.ReservationHandler,
	payment *api.PaymentHandler,
	meal *api.MealHandler,
	weeklyMenu *api.WeeklyMenuHandler,
	media *api.MediaHandler,
	analytics *api.AnalyticsHandler,
	health *api.HealthHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Room:        room,
		Customer:    customer,
		Reservation: reservation,
		Payment:     payment,
		Meal:        meal,
		WeeklyMenu:  weeklyMenu,
		Media:       media,
		Analytics:   analytics,
		Health:      health,
	}
}
