package models

import "time"

// DailyHours is the open/close window a business publishes for one calendar
// date. At most one record exists per (BusinessID, Date); open must precede
// close. Times are stored as "HH:MM:SS"; selection works at hour granularity.
type DailyHours struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"business_id" json:"businessId"`
	Date       string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	OpenTime   string    `bson:"open_time" json:"openTime"`
	CloseTime  string    `bson:"close_time" json:"closeTime"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}
