package resolvers

import (
	"testing"

	"brewdesk/models"

	"github.com/stretchr/testify/assert"
)

func confirmed(start, end int) models.ReservationInterval {
	return models.ReservationInterval{StartHour: start, EndHour: end, Status: models.ReservationStatusConfirmed}
}

func cancelled(start, end int) models.ReservationInterval {
	return models.ReservationInterval{StartHour: start, EndHour: end, Status: models.ReservationStatusCancelled}
}

func TestEnumerateStartHours(t *testing.T) {
	assert.Equal(t, []int{9, 10, 11, 12, 13, 14, 15, 16}, EnumerateStartHours(9, 17))
	assert.Equal(t, []int{0}, EnumerateStartHours(0, 1))
	assert.Len(t, EnumerateStartHours(8, 20), 12)
}

func TestEnumerateStartHoursDegradesOnBadWindow(t *testing.T) {
	assert.Empty(t, EnumerateStartHours(17, 9))
	assert.Empty(t, EnumerateStartHours(12, 12))
}

func TestFilterBookedHoursNoReservations(t *testing.T) {
	hours := EnumerateStartHours(9, 17)
	assert.Equal(t, hours, FilterBookedHours(hours, nil))
}

func TestFilterBookedHoursRemovesCoveredHours(t *testing.T) {
	hours := EnumerateStartHours(9, 17)
	got := FilterBookedHours(hours, []models.ReservationInterval{confirmed(12, 14)})
	assert.Equal(t, []int{9, 10, 11, 14, 15, 16}, got)
}

func TestFilterBookedHoursIgnoresCancelled(t *testing.T) {
	hours := EnumerateStartHours(9, 17)
	got := FilterBookedHours(hours, []models.ReservationInterval{cancelled(12, 14)})
	assert.Equal(t, hours, got)
}

func TestMaxDuration(t *testing.T) {
	reservations := []models.ReservationInterval{confirmed(12, 14)}

	// Blocked at hour 12.
	assert.Equal(t, 3, MaxDuration(9, 17, reservations))
	// Runs to close, no further blocker.
	assert.Equal(t, 3, MaxDuration(14, 17, reservations))
	// Immediately blocked still allows a 1-hour booking.
	assert.Equal(t, 1, MaxDuration(11, 17, reservations))
	// No reservations at all: bounded by close only.
	assert.Equal(t, 8, MaxDuration(9, 17, nil))
}

func TestMaxDurationNeverBelowOne(t *testing.T) {
	assert.Equal(t, 1, MaxDuration(17, 17, nil))
	assert.Equal(t, 1, MaxDuration(18, 17, nil))
}

func TestOverlaps(t *testing.T) {
	// Touching endpoints do not overlap.
	assert.False(t, Overlaps(10, 12, 12, 14))
	assert.False(t, Overlaps(12, 14, 10, 12))
	assert.True(t, Overlaps(10, 13, 12, 14))
	assert.True(t, Overlaps(12, 13, 10, 17))
	assert.True(t, Overlaps(9, 10, 9, 10))
}

func TestIsAvailable(t *testing.T) {
	existing := []models.ReservationInterval{confirmed(9, 10)}
	assert.False(t, IsAvailable(9, 10, existing))
	assert.True(t, IsAvailable(10, 11, existing))
	assert.True(t, IsAvailable(9, 10, []models.ReservationInterval{cancelled(9, 10)}))
	assert.True(t, IsAvailable(9, 10, nil))
}

func TestEndToEndDayScenario(t *testing.T) {
	// Business hours 09:00-17:00, desk has a confirmed 12:00-14:00 reservation.
	reservations := []models.ReservationInterval{confirmed(12, 14)}

	startHours := FilterBookedHours(EnumerateStartHours(9, 17), reservations)
	assert.Equal(t, []int{9, 10, 11, 14, 15, 16}, startHours)

	assert.Equal(t, 1, MaxDuration(11, 17, reservations))
	assert.Equal(t, 3, MaxDuration(14, 17, reservations))
}
