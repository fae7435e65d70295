package models

import "time"

// Reservation lifecycle statuses. A reservation is created confirmed,
// may transition to cancelled, and never leaves cancelled.
const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
)

// Reservation is a booked desk for a half-open [start,end) time range on one date.
type Reservation struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id" json:"userId"`
	BusinessID    string    `bson:"business_id" json:"businessId"`
	DeskID        string    `bson:"desk_id" json:"deskId"`
	Date          string    `bson:"date" json:"date"`             // "YYYY-MM-DD"
	StartTime     string    `bson:"start_time" json:"startTime"`  // "HH:MM:SS"
	EndTime       string    `bson:"end_time" json:"endTime"`      // "HH:MM:SS"
	DurationHours int       `bson:"duration_hours" json:"durationHours"`
	TotalPrice    float64   `bson:"total_price" json:"totalPrice"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// ReservationInterval is the narrow view of a reservation the availability
// resolver consumes: a half-open [start,end) hour range plus its status.
// Cancelled intervals never block availability.
type ReservationInterval struct {
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
	Status    string `json:"status"`
}

// Blocks reports whether the interval removes hours from availability.
func (ri ReservationInterval) Blocks() bool {
	return ri.Status != ReservationStatusCancelled
}
