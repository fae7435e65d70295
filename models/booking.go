package models

// BookingRequest is a customer's booking intent before it is derived into a
// concrete [start,end) interval and checked against existing reservations.
type BookingRequest struct {
	DeskID        string `json:"deskId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	StartHour     int    `json:"startHour"`
	DurationHours int    `json:"durationHours" binding:"required,min=1"`
}

// StartOption is one selectable start hour together with the longest
// contiguous booking possible from it.
type StartOption struct {
	Hour        int    `json:"hour"`
	MaxDuration int    `json:"maxDuration"`
	Label       string `json:"label"` // e.g. "9:00 AM"
}

// DayAvailability is the bookable picture for one desk on one date.
type DayAvailability struct {
	DeskID      string        `json:"deskId"`
	Date        string        `json:"date"`
	OpenHour    int           `json:"openHour"`
	CloseHour   int           `json:"closeHour"`
	StartHours  []StartOption `json:"startHours"`
	BookedHours []int         `json:"bookedHours"`
}

// BookingQuote prices a fully specified candidate interval before confirmation.
type BookingQuote struct {
	DeskID        string  `json:"deskId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	DurationHours int     `json:"durationHours"`
	MaxDuration   int     `json:"maxDuration"`
	TotalPrice    float64 `json:"totalPrice"`
}
