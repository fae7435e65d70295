package hoursRepo

import "brewdesk/models"

// HoursRepository defines persistence for per-date business hours.
// At most one record exists per (businessID, date); Upsert keeps it that way.
type HoursRepository interface {
	Upsert(hours *models.DailyHours) (*models.DailyHours, error)
	// Get returns nil when the business has not published hours for the date.
	Get(businessID, date string) (*models.DailyHours, error)
	Delete(businessID, date string) error
	// GetDatesInRange returns the dates in [startDate, endDate] that have
	// hours set, for calendar rendering.
	GetDatesInRange(businessID, startDate, endDate string) ([]string, error)
}
