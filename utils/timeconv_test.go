package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHour(t *testing.T) {
	hour, err := ParseHour("09:00:00")
	assert.NoError(t, err)
	assert.Equal(t, 9, hour)

	hour, err = ParseHour("17:30:00")
	assert.NoError(t, err)
	assert.Equal(t, 17, hour) // minutes are truncated

	hour, err = ParseHour("23:59")
	assert.NoError(t, err)
	assert.Equal(t, 23, hour)
}

func TestParseHourRejectsGarbage(t *testing.T) {
	_, err := ParseHour("late")
	assert.Error(t, err)

	_, err = ParseHour("25:00:00")
	assert.Error(t, err)

	_, err = ParseHour("-1:00:00")
	assert.Error(t, err)
}

func TestFormatHourString(t *testing.T) {
	assert.Equal(t, "09:00:00", FormatHourString(9))
	assert.Equal(t, "14:00:00", FormatHourString(14))
}

func TestFormatHourLabel(t *testing.T) {
	assert.Equal(t, "9:00 AM", FormatHourLabel(9))
	assert.Equal(t, "12:00 PM", FormatHourLabel(12))
	assert.Equal(t, "12:00 AM", FormatHourLabel(0))
	assert.Equal(t, "5:00 PM", FormatHourLabel(17))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2024-06-01"))
	assert.False(t, ValidDate("2024-13-01"))
	assert.False(t, ValidDate("01/06/2024"))
	assert.False(t, ValidDate(""))
}
