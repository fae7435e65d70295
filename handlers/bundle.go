package handlers

import (
	"brewdesk/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route registration.
type HandlerBundle struct {
	UserService user.UserService

	// User endpoints
	SyncUserHandler          gin.HandlerFunc
	GetMeHandler             gin.HandlerFunc
	GetMyReservationsHandler gin.HandlerFunc

	// Business endpoints
	ListBusinessesHandler          gin.HandlerFunc
	GetBusinessHandler             gin.HandlerFunc
	GetMyBusinessHandler           gin.HandlerFunc
	CreateBusinessHandler          gin.HandlerFunc
	UpdateBusinessHandler          gin.HandlerFunc
	GetBusinessReservationsHandler gin.HandlerFunc

	// Desk endpoints
	ListDesksHandler  gin.HandlerFunc
	CreateDeskHandler gin.HandlerFunc
	UpdateDeskHandler gin.HandlerFunc
	DeleteDeskHandler gin.HandlerFunc

	// Hours endpoints
	GetHoursHandler          gin.HandlerFunc
	SetHoursHandler          gin.HandlerFunc
	ClearHoursHandler        gin.HandlerFunc
	GetAvailableDatesHandler gin.HandlerFunc

	// Booking endpoints
	GetAvailabilityHandler gin.HandlerFunc
	QuoteBookingHandler    gin.HandlerFunc
	CreateBookingHandler   gin.HandlerFunc
	GetBookingHandler      gin.HandlerFunc
	CancelBookingHandler   gin.HandlerFunc
}
