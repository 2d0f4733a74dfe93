package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ayursutra-server/internal/config"
	"ayursutra-server/internal/handlers"
	"ayursutra-server/internal/latency"
	"ayursutra-server/internal/metrics"
	"ayursutra-server/internal/middleware"
	"ayursutra-server/internal/models"
	"ayursutra-server/internal/services"
)

// Deps bundles what the HTTP layer needs.
type Deps struct {
	Config        *config.Config
	Bookings      *services.BookingService
	Latency       *latency.Simulator
	Metrics       *metrics.Collector
	Log           *zap.Logger
	SuggestSource string
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(d.Log))
	router.Use(middleware.Metrics(d.Metrics))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{d.Config.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	SetupRoutes(router, d)
	return router
}

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, d Deps) {
	sessionHandler := handlers.NewSessionHandler(d.Config, d.Log)
	doctorHandler := handlers.NewDoctorHandler(d.Bookings)
	appointmentHandler := handlers.NewAppointmentHandler(d.Bookings, d.Latency, d.Metrics, d.Log)
	historyHandler := handlers.NewMedicalHistoryHandler(d.Bookings, d.Metrics, d.SuggestSource)

	// Public routes (no session required)
	public := router.Group("/api/v1")
	{
		public.POST("/session", sessionHandler.StartSession)
	}

	// Session routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(d.Config.JWTSecret))
	{
		private.GET("/session", sessionHandler.GetSession)

		doctorRoutes := private.Group("/doctors")
		{
			doctorRoutes.GET("", doctorHandler.GetDoctors)
			doctorRoutes.GET("/suggested", middleware.RoleAuthMiddleware(models.RolePatient), historyHandler.GetSuggestedDoctors)
			doctorRoutes.GET("/:id", doctorHandler.GetDoctorByID)
			doctorRoutes.PATCH("/:id/availability", middleware.RoleAuthMiddleware(models.RoleAdmin), doctorHandler.UpdateAvailability)
			doctorRoutes.GET("/:id/appointments", middleware.RoleAuthMiddleware(models.RoleDoctor, models.RoleAdmin), doctorHandler.GetDoctorAppointments)
		}

		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.POST("", middleware.RoleAuthMiddleware(models.RolePatient), appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.GetAppointmentsForUser)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)

			// Role rules for each action live in the booking service.
			appointmentRoutes.POST("/:id/transitions", appointmentHandler.TransitionAppointment)
			appointmentRoutes.PUT("/:id/prescription", appointmentHandler.Prescribe)
			appointmentRoutes.DELETE("/:id", appointmentHandler.DeleteAppointment)
		}

		historyRoutes := private.Group("/medical-history")
		historyRoutes.Use(middleware.RoleAuthMiddleware(models.RolePatient))
		{
			historyRoutes.GET("", historyHandler.GetMedicalHistory)
			historyRoutes.PUT("", historyHandler.UpdateMedicalHistory)
		}
	}

	router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
