// Package resolvers holds the availability resolver: pure computations that
// turn a day's open/close hours plus existing reservations into selectable
// start times, duration bounds and a final conflict verdict. All functions
// are total; malformed input degrades to "nothing bookable" rather than an
// error, since callers have no recovery path beyond showing no slots.
package resolvers

import "brewdesk/models"

// EnumerateStartHours returns the ordered candidate start hours
// [openHour, closeHour). An inverted or empty window yields nil.
func EnumerateStartHours(openHour, closeHour int) []int {
	if openHour >= closeHour {
		return nil
	}
	hours := make([]int, 0, closeHour-openHour)
	for h := openHour; h < closeHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// bookedHourSet marks every hour covered by a blocking reservation.
func bookedHourSet(reservations []models.ReservationInterval) map[int]bool {
	booked := make(map[int]bool)
	for _, r := range reservations {
		if !r.Blocks() {
			continue
		}
		for h := r.StartHour; h < r.EndHour; h++ {
			booked[h] = true
		}
	}
	return booked
}

// FilterBookedHours removes hours covered by a non-cancelled reservation from
// the candidate start hours, preserving order. The result is the set of hours
// a customer may select as a start time; it does not yet bound duration.
func FilterBookedHours(startHours []int, reservations []models.ReservationInterval) []int {
	booked := bookedHourSet(reservations)
	if len(booked) == 0 {
		return startHours
	}
	open := make([]int, 0, len(startHours))
	for _, h := range startHours {
		if !booked[h] {
			open = append(open, h)
		}
	}
	return open
}

// MaxDuration returns how many contiguous hours are bookable from startHour
// before hitting closing time or the next blocking reservation, whichever is
// nearer. The caller only offers open start hours, so startHour itself is
// assumed free; the result is never below 1.
func MaxDuration(startHour, closeHour int, reservations []models.ReservationInterval) int {
	booked := bookedHourSet(reservations)
	maxDur := closeHour - startHour
	for h := startHour + 1; h < closeHour; h++ {
		if booked[h] {
			maxDur = h - startHour
			break
		}
	}
	if maxDur < 1 {
		return 1
	}
	return maxDur
}

// Overlaps is the half-open interval overlap test. Intervals that merely
// touch at an endpoint do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// IsAvailable reports whether no non-cancelled reservation overlaps the
// candidate [start, end). The caller scopes reservations to one desk and
// date; this is the authoritative check run before a reservation is persisted.
func IsAvailable(start, end int, reservations []models.ReservationInterval) bool {
	for _, r := range reservations {
		if !r.Blocks() {
			continue
		}
		if Overlaps(start, end, r.StartHour, r.EndHour) {
			return false
		}
	}
	return true
}
