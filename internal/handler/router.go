package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-backoffice/internal/domain/user"
	"hotel-backoffice/internal/handler/api"
	"hotel-backoffice/internal/handler/middleware"
	"hotel-backoffice/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Room        *api.RoomHandler
	Customer    *api.CustomerHandler
	Reservation *api.ReservationHandler
	Payment     *api.PaymentHandler
	Meal        *api.MealHandler
	WeeklyMenu  *api.WeeklyMenuHandler
	Media       *api.MediaHandler
	Analytics   *api.AnalyticsHandler
	Health      *api.HealthHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staffOnly := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleStaff)}
	adminOnly := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.ListRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.GetRoom},
				{Method: http.MethodPost, Path: "", Handler: h.Room.CreateRoom, Mw: adminOnly},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Room.UpdateRoom, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.DeleteRoom, Mw: adminOnly},
			})
		}

		customers := apiGroup.Group("/customers")
		{
			addRoutes(customers, []route{
				// Public so the booking form can register walk-in customers.
				{Method: http.MethodPost, Path: "", Handler: h.Customer.CreateCustomer},
				{Method: http.MethodGet, Path: "", Handler: h.Customer.ListCustomers, Mw: staffOnly},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.GetCustomer, Mw: staffOnly},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Customer.UpdateCustomer, Mw: staffOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Customer.DeleteCustomer, Mw: adminOnly},
			})
		}

		reservations := apiGroup.Group("/offline-reservations")
		reservations.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleStaff))
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListReservations},
				{Method: http.MethodGet, Path: "/check-availability", Handler: h.Reservation.CheckAvailability},
				{Method: http.MethodGet, Path: "/search/:number", Handler: h.Reservation.SearchByNumber},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.CreateReservation},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Reservation.UpdateStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.DeleteReservation},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleStaff))
		{
			addRoutes(payments, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Payment.ListPayments},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Payment.GetPayment},
				{Method: http.MethodPost, Path: "", Handler: h.Payment.CreatePayment},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Payment.UpdatePayment},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Payment.DeletePayment, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}},
			})
		}

		meals := apiGroup.Group("/meals")
		{
			addRoutes(meals, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Meal.ListMeals},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Meal.GetMeal},
				{Method: http.MethodPost, Path: "", Handler: h.Meal.CreateMeal, Mw: staffOnly},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Meal.UpdateMeal, Mw: staffOnly},
				{Method: http.MethodPatch, Path: "/:id/toggle-recommended", Handler: h.Meal.ToggleRecommended, Mw: staffOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Meal.DeleteMeal, Mw: staffOnly},
			})
		}

		weeklyMenu := apiGroup.Group("/weekly-menu")
		{
			addRoutes(weeklyMenu, []route{
				{Method: http.MethodGet, Path: "", Handler: h.WeeklyMenu.GetWeek},
				{Method: http.MethodGet, Path: "/:day", Handler: h.WeeklyMenu.GetDay},
				{Method: http.MethodPut, Path: "/:day", Handler: h.WeeklyMenu.AssignSlot, Mw: staffOnly},
				{Method: http.MethodPost, Path: "/:day/meals", Handler: h.WeeklyMenu.AddExtra, Mw: staffOnly},
				{Method: http.MethodDelete, Path: "/:day/meals/:mealId", Handler: h.WeeklyMenu.RemoveExtra, Mw: staffOnly},
				{Method: http.MethodDelete, Path: "/:day", Handler: h.WeeklyMenu.ClearDay, Mw: staffOnly},
			})
		}

		gallery := apiGroup.Group("/gallery")
		{
			addRoutes(gallery, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Media.ListGallery},
				{Method: http.MethodPost, Path: "", Handler: h.Media.CreateGalleryImage, Mw: staffOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Media.DeleteGalleryImage, Mw: staffOnly},
			})
		}

		mainMenus := apiGroup.Group("/main-menus")
		{
			addRoutes(mainMenus, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Media.ListMainMenus},
				{Method: http.MethodPost, Path: "", Handler: h.Media.CreateMainMenu, Mw: staffOnly},
				{Method: http.MethodPatch, Path: "/:id/activate", Handler: h.Media.ActivateMainMenu, Mw: staffOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Media.DeleteMainMenu, Mw: staffOnly},
			})
		}

		analytics := apiGroup.Group("/analytics")
		analytics.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleStaff))
		{
			addRoutes(analytics, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Analytics.GetSnapshot},
				{Method: http.MethodGet, Path: "/history", Handler: h.Analytics.History},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
