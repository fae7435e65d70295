package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The store keeps times as "HH:MM:SS" and dates as "YYYY-MM-DD"; the
// availability resolver works on integer hour-of-day values. Conversion
// happens here, once, at the boundary.

// ParseHour extracts the hour component from a "HH:MM:SS" (or "HH:MM")
// time string. Minutes and seconds are truncated.
func ParseHour(timeStr string) (int, error) {
	parts := strings.SplitN(timeStr, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", timeStr, err)
	}
	if hour < 0 || hour > 24 {
		return 0, fmt.Errorf("invalid time %q: hour out of range", timeStr)
	}
	return hour, nil
}

// FormatHourString renders an hour-of-day as the stored "HH:MM:SS" form.
func FormatHourString(hour int) string {
	return fmt.Sprintf("%02d:00:00", hour)
}

// FormatHourLabel renders an hour-of-day for display, e.g. "9:00 AM".
func FormatHourLabel(hour int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:00 %s", display, period)
}

// ValidDate reports whether dateStr is a well-formed "YYYY-MM-DD" calendar day.
func ValidDate(dateStr string) bool {
	_, err := time.Parse("2006-01-02", dateStr)
	return err == nil
}
