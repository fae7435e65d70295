package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"brewdesk/config"
	"brewdesk/models"
	"brewdesk/resolvers"
	"brewdesk/utils"

	"go.uber.org/zap"
)

// toIntervals converts stored reservations into the hour-granularity view the
// resolver consumes. Malformed rows are skipped: a row we cannot interpret
// must not make the whole day unbookable.
func toIntervals(reservations []models.Reservation) []models.ReservationInterval {
	intervals := make([]models.ReservationInterval, 0, len(reservations))
	for _, res := range reservations {
		startHour, err := utils.ParseHour(res.StartTime)
		if err != nil {
			continue
		}
		endHour, err := utils.ParseHour(res.EndTime)
		if err != nil {
			continue
		}
		intervals = append(intervals, models.ReservationInterval{
			StartHour: startHour,
			EndHour:   endHour,
			Status:    res.Status,
		})
	}
	return intervals
}

func availabilityCacheKey(deskID, date string) string {
	return utils.AvailabilityCachePrefix + deskID + ":" + date
}

// GetDayAvailability computes the bookable picture for one desk and date:
// selectable start hours with per-start max durations, plus the booked hours.
// Results are cached briefly; bookings and cancellations invalidate the key.
func (s *DefaultBookingService) GetDayAvailability(ctx context.Context, deskID, date string) (*models.DayAvailability, error) {
	logger := utils.GetLogger()

	if !utils.ValidDate(date) {
		return nil, ErrNotBookable
	}

	cacheKey := availabilityCacheKey(deskID, date)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var day models.DayAvailability
			if err := json.Unmarshal([]byte(cached), &day); err == nil {
				return &day, nil
			}
		}
	}

	desk, err := s.DeskRepo.GetByID(deskID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch desk: %w", err)
	}
	if desk == nil {
		return nil, ErrNotFound
	}

	hours, err := s.HoursRepo.Get(desk.BusinessID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hours: %w", err)
	}

	day := &models.DayAvailability{DeskID: deskID, Date: date, StartHours: []models.StartOption{}, BookedHours: []int{}}
	if hours == nil {
		// No published hours: nothing bookable, not an error.
		return day, nil
	}

	openHour, openErr := utils.ParseHour(hours.OpenTime)
	closeHour, closeErr := utils.ParseHour(hours.CloseTime)
	if openErr != nil || closeErr != nil {
		// Ill-formed hours degrade to an empty day.
		logger.Warn("ill-formed hours record",
			zap.String("businessID", desk.BusinessID), zap.String("date", date))
		return day, nil
	}
	day.OpenHour = openHour
	day.CloseHour = closeHour

	reservations, err := s.ReservationRepo.GetForDeskOnDate(deskID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	intervals := toIntervals(reservations)

	candidates := resolvers.EnumerateStartHours(openHour, closeHour)
	for _, hour := range resolvers.FilterBookedHours(candidates, intervals) {
		day.StartHours = append(day.StartHours, models.StartOption{
			Hour:        hour,
			MaxDuration: resolvers.MaxDuration(hour, closeHour, intervals),
			Label:       utils.FormatHourLabel(hour),
		})
	}

	booked := make(map[int]bool)
	for _, iv := range intervals {
		if !iv.Blocks() {
			continue
		}
		for h := iv.StartHour; h < iv.EndHour; h++ {
			booked[h] = true
		}
	}
	for _, hour := range candidates {
		if booked[hour] {
			day.BookedHours = append(day.BookedHours, hour)
		}
	}

	if s.Cache != nil {
		if data, err := json.Marshal(day); err == nil {
			ttl := time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second
			if err := s.Cache.Set(ctx, cacheKey, data, ttl).Err(); err != nil {
				logger.Warn("failed to cache availability", zap.Error(err))
			}
		}
	}
	return day, nil
}

// invalidateAvailability drops the cached day after a booking or cancellation.
func (s *DefaultBookingService) invalidateAvailability(ctx context.Context, deskID, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, availabilityCacheKey(deskID, date)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("deskID", deskID), zap.String("date", date), zap.Error(err))
	}
}
