package booking

import (
	"context"

	businessRepo "brewdesk/database/repository/business"
	deskRepo "brewdesk/database/repository/desk"
	hoursRepo "brewdesk/database/repository/hours"
	reservationRepo "brewdesk/database/repository/reservation"
	"brewdesk/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// BookingService defines the customer-facing booking flow: availability for a
// desk and date, a priced quote for a chosen window, and the reservation
// itself.
type BookingService interface {
	GetDayAvailability(ctx context.Context, deskID, date string) (*models.DayAvailability, error)
	QuoteBooking(ctx context.Context, req models.BookingRequest) (*models.BookingQuote, error)
	Reserve(ctx context.Context, userID string, req models.BookingRequest) (*models.Reservation, error)
	CancelReservation(ctx context.Context, reservationID, userID string) error
	GetReservationByID(reservationID string) (*models.Reservation, error)
	GetReservationsByUserID(userID string) ([]models.Reservation, error)
	GetReservationsByBusinessID(ownerID, businessID string) ([]models.Reservation, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	ReservationRepo reservationRepo.ReservationRepository
	DeskRepo        deskRepo.DeskRepository
	BusinessRepo    businessRepo.BusinessRepository
	HoursRepo       hoursRepo.HoursRepository
	Cache           *redis.Client
	// ReminderQueue is optional; when nil no reminders are scheduled.
	ReminderQueue *asynq.Client
}
