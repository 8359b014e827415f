package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rantevou-app/gateway/internal/backend"
	"github.com/rantevou-app/gateway/internal/config"
	"github.com/rantevou-app/gateway/internal/handlers"
	"github.com/rantevou-app/gateway/internal/middleware"
	"github.com/rantevou-app/gateway/internal/session"
	"github.com/rantevou-app/gateway/internal/timezone"
)

func RegisterRoutes(r *gin.Engine, api *backend.Client, store session.Store, cfg *config.Config) {

	// ======================================================
	// SESSION INFRA (SINGLETONS)
	// ======================================================
	codec := session.NewCodec(cfg.SessionSecret)
	registry := session.NewRegistry(store, api)

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(api, registry, codec, cfg.SessionCookie)
	clientHandler := handlers.NewClientHandler(api)
	appointmentHandler := handlers.NewAppointmentHandler(api, loc)
	calendarHandler := handlers.NewCalendarHandler(api, loc)
	dashboardHandler := handlers.NewDashboardHandler(api, loc)

	// ======================================================
	// API (JSON)
	// ======================================================
	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.SessionMiddleware(cfg.SessionCookie, codec, registry))
	{
		// ------------------------------
		// AUTH (public-only entry points)
		// ------------------------------
		public := apiGroup.Group("/auth")
		public.Use(middleware.PublicOnly())
		{
			public.POST("/login", authHandler.Login)
			public.POST("/signup", authHandler.Signup)
		}

		// Session probe and logout work for anyone with a cookie.
		apiGroup.GET("/auth/session", authHandler.Session)
		apiGroup.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// PROTECTED VIEWS
		// ------------------------------
		secured := apiGroup.Group("/")
		secured.Use(middleware.RequireAuth())
		{
			secured.GET("/clients", clientHandler.List)
			secured.GET("/clients/search", clientHandler.Search)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.POST("/clients/save", clientHandler.Create)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/upcoming", appointmentHandler.Upcoming)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.POST("/appointments/save", appointmentHandler.Create)
			secured.PUT("/appointments/update/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.PUT("/appointments/:id/reminder/sent", appointmentHandler.MarkReminderSent)

			secured.GET("/calendar/:year/:month", calendarHandler.Month)

			secured.GET("/dashboard", dashboardHandler.Get)
		}
	}
}
