package routes

import (
	"net/http"
	"time"

	"brewdesk/handlers"
	"brewdesk/middleware"
	"brewdesk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBrowseRoutes registers the public discovery endpoints.
func RegisterBrowseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/businesses")
	{
		api.GET("", hb.ListBusinessesHandler)
		api.GET("/:id", hb.GetBusinessHandler)
		api.GET("/:id/desks", hb.ListDesksHandler)
		api.GET("/:id/dates", hb.GetAvailableDatesHandler)
		api.GET("/:id/hours/:date", hb.GetHoursHandler)
	}

	// Desk availability is public so customers can browse before signing in.
	r.GET("/api/desks/:id/availability/:date", hb.GetAvailabilityHandler)
}

// RegisterUserRoutes registers identity-sync and profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.IdentityAuthMiddleware(hb.UserService))
		api.POST("/sync", hb.SyncUserHandler)
		api.GET("/me", hb.GetMeHandler)
		api.GET("/me/reservations", hb.GetMyReservationsHandler)
		api.GET("/me/business", hb.GetMyBusinessHandler)
	}
}

// RegisterOwnerRoutes registers business management endpoints.
func RegisterOwnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/businesses")
	{
		api.Use(middleware.IdentityAuthMiddleware(hb.UserService))
		api.POST("", hb.CreateBusinessHandler)
		api.PATCH("/:id", hb.UpdateBusinessHandler)
		api.POST("/:id/desks", hb.CreateDeskHandler)
		api.PUT("/:id/hours/:date", hb.SetHoursHandler)
		api.DELETE("/:id/hours/:date", hb.ClearHoursHandler)
		api.GET("/:id/reservations", hb.GetBusinessReservationsHandler)
	}

	desks := r.Group("/api/desks")
	{
		desks.Use(middleware.IdentityAuthMiddleware(hb.UserService))
		desks.PATCH("/:id", hb.UpdateDeskHandler)
		desks.DELETE("/:id", hb.DeleteDeskHandler)
	}
}

// RegisterBookingRoutes registers the reservation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.IdentityAuthMiddleware(hb.UserService))
		api.POST("/quote", hb.QuoteBookingHandler)
		api.POST("", hb.CreateBookingHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
	}
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
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBrowseRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterOwnerRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
