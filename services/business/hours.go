package business

import (
	"brewdesk/models"
	"brewdesk/utils"
)

// validateHoursWindow checks the (date, open, close) triple at write time.
// Selection works at hour granularity, so open must precede close by at
// least one whole hour.
func validateHoursWindow(date, openTime, closeTime string) (openHour, closeHour int, err error) {
	if !utils.ValidDate(date) {
		return 0, 0, ErrInvalidHours
	}
	openHour, err = utils.ParseHour(openTime)
	if err != nil {
		return 0, 0, ErrInvalidHours
	}
	closeHour, err = utils.ParseHour(closeTime)
	if err != nil {
		return 0, 0, ErrInvalidHours
	}
	if openHour >= closeHour {
		return 0, 0, ErrInvalidHours
	}
	return openHour, closeHour, nil
}

// SetHours publishes (or replaces) the open/close window for one date.
func (s *DefaultBusinessService) SetHours(ownerID, businessID, date, openTime, closeTime string) (*models.DailyHours, error) {
	if _, err := s.requireOwnership(ownerID, businessID); err != nil {
		return nil, err
	}

	openHour, closeHour, err := validateHoursWindow(date, openTime, closeTime)
	if err != nil {
		return nil, err
	}

	// Store normalized to whole hours.
	return s.HoursRepo.Upsert(&models.DailyHours{
		BusinessID: businessID,
		Date:       date,
		OpenTime:   utils.FormatHourString(openHour),
		CloseTime:  utils.FormatHourString(closeHour),
	})
}

// ClearHours withdraws the window for one date.
func (s *DefaultBusinessService) ClearHours(ownerID, businessID, date string) error {
	if _, err := s.requireOwnership(ownerID, businessID); err != nil {
		return err
	}
	return s.HoursRepo.Delete(businessID, date)
}

// GetHours returns the published window for one date, or nil when unset.
func (s *DefaultBusinessService) GetHours(businessID, date string) (*models.DailyHours, error) {
	return s.HoursRepo.Get(businessID, date)
}

// GetAvailableDates returns the dates with published hours in a range,
// for calendar rendering.
func (s *DefaultBusinessService) GetAvailableDates(businessID, startDate, endDate string) ([]string, error) {
	if !utils.ValidDate(startDate) || !utils.ValidDate(endDate) {
		return nil, ErrInvalidHours
	}
	return s.HoursRepo.GetDatesInRange(businessID, startDate, endDate)
}
