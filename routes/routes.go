package routes

import (
	"net/http"
	"time"

	"lacquer/handlers"
	"lacquer/middleware"
	"lacquer/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login/logout endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)

		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("/logout", hb.Auth.LogoutHandler)
	}
}

// RegisterAppointmentRoutes registers booking endpoints. Creation is public
// (recaptcha-gated); everything else is admin-only.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.POST("", hb.Appointments.CreateAppointmentHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.GET("", hb.Appointments.ListAppointmentsHandler)
		api.GET("/:id", hb.Appointments.GetAppointmentHandler)
		api.PATCH("/:id", hb.Appointments.UpdateAppointmentHandler)
		api.DELETE("/:id", hb.Appointments.DeleteAppointmentHandler)
	}
}

// RegisterBlockedDateRoutes registers blocked-date endpoints. The list is
// public so the booking form can warn before submission.
func RegisterBlockedDateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/blocked-dates")
	{
		api.GET("", hb.BlockedDates.ListBlockedDatesHandler)

		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("", hb.BlockedDates.CreateBlockedDateHandler)
		api.GET("/:id", hb.BlockedDates.GetBlockedDateHandler)
		api.PATCH("/:id", hb.BlockedDates.UpdateBlockedDateHandler)
		api.DELETE("/:id", hb.BlockedDates.DeleteBlockedDateHandler)
	}
}

// RegisterOpenHourRoutes registers open-hours endpoints.
func RegisterOpenHourRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/open-hours")
	{
		api.GET("", hb.OpenHours.ListOpenHoursHandler)

		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("", hb.OpenHours.CreateOpenHourHandler)
		api.POST("/initialize", hb.OpenHours.InitializeOpenHoursHandler)
		api.POST("/reset", hb.OpenHours.ResetOpenHoursHandler)
		api.GET("/:id", hb.OpenHours.GetOpenHourHandler)
		api.PATCH("/:id", hb.OpenHours.UpdateOpenHourHandler)
		api.PATCH("/day/:dayOfWeek", hb.OpenHours.UpdateOpenHourByDayHandler)
		api.DELETE("/:id", hb.OpenHours.DeleteOpenHourHandler)
	}
}

// RegisterServiceRoutes registers service-catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Services.ListServicesHandler)
		api.GET("/active", hb.Services.ListActiveServicesHandler)

		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("", hb.Services.CreateServiceHandler)
		api.GET("/:id", hb.Services.GetServiceHandler)
		api.PATCH("/:id", hb.Services.UpdateServiceHandler)
		api.DELETE("/:id", hb.Services.DeleteServiceHandler)
	}
}

// RegisterAvailabilityRoute registers the public availability endpoint.
func RegisterAvailabilityRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/availability", hb.Availability.GetAvailabilityHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterBlockedDateRoutes(r, hb)
	RegisterOpenHourRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterAvailabilityRoute(r, hb)
	RegisterHealthRoute(r)
}
