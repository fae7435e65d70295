package reservationRepo

import (
	"context"

	"brewdesk/models"
)

// ReservationRepository defines persistence for desk reservations.
type ReservationRepository interface {
	GetByID(id string) (*models.Reservation, error)
	GetByUserID(userID string) ([]models.Reservation, error)
	GetByBusinessID(businessID string) ([]models.Reservation, error)
	// GetForDeskOnDate returns the non-cancelled reservations for one desk
	// and date, the snapshot the availability resolver consumes.
	GetForDeskOnDate(deskID, date string) ([]models.Reservation, error)
	// CountOverlapping counts non-cancelled reservations for the desk/date
	// overlapping the half-open [startTime, endTime) range.
	CountOverlapping(ctx context.Context, deskID, date, startTime, endTime string) (int64, error)
	// CreateIfAvailable re-checks the overlap and inserts the reservation in
	// one transaction, so two racing bookings cannot both commit.
	CreateIfAvailable(ctx context.Context, reservation *models.Reservation) error
	Cancel(id, userID string) error
}
