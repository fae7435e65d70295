package business

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHoursWindow(t *testing.T) {
	open, close, err := validateHoursWindow("2024-06-01", "09:00:00", "17:00:00")
	assert.NoError(t, err)
	assert.Equal(t, 9, open)
	assert.Equal(t, 17, close)
}

func TestValidateHoursWindowTruncatesMinutes(t *testing.T) {
	open, close, err := validateHoursWindow("2024-06-01", "09:30:00", "17:45:00")
	assert.NoError(t, err)
	assert.Equal(t, 9, open)
	assert.Equal(t, 17, close)
}

func TestValidateHoursWindowRejectsInvertedWindow(t *testing.T) {
	_, _, err := validateHoursWindow("2024-06-01", "17:00:00", "09:00:00")
	assert.ErrorIs(t, err, ErrInvalidHours)

	// Equal open and close means no bookable hour.
	_, _, err = validateHoursWindow("2024-06-01", "09:00:00", "09:00:00")
	assert.ErrorIs(t, err, ErrInvalidHours)
}

func TestValidateHoursWindowRejectsBadInput(t *testing.T) {
	_, _, err := validateHoursWindow("June 1st", "09:00:00", "17:00:00")
	assert.ErrorIs(t, err, ErrInvalidHours)

	_, _, err = validateHoursWindow("2024-06-01", "open", "17:00:00")
	assert.ErrorIs(t, err, ErrInvalidHours)

	_, _, err = validateHoursWindow("2024-06-01", "09:00:00", "closed")
	assert.ErrorIs(t, err, ErrInvalidHours)
}
