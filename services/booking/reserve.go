package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	reservationRepo "brewdesk/database/repository/reservation"
	"brewdesk/models"
	"brewdesk/resolvers"
	"brewdesk/services/tasks"
	"brewdesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// validateRequest resolves the request against desk, hours and existing
// reservations. Returns the desk, the derived [start,end) hour window and the
// day's close hour.
func (s *DefaultBookingService) validateRequest(req models.BookingRequest) (*models.Desk, int, int, int, []models.ReservationInterval, error) {
	if !utils.ValidDate(req.Date) || req.DurationHours < 1 {
		return nil, 0, 0, 0, nil, ErrNotBookable
	}

	desk, err := s.DeskRepo.GetByID(req.DeskID)
	if err != nil {
		return nil, 0, 0, 0, nil, fmt.Errorf("failed to fetch desk: %w", err)
	}
	if desk == nil {
		return nil, 0, 0, 0, nil, ErrNotFound
	}

	hours, err := s.HoursRepo.Get(desk.BusinessID, req.Date)
	if err != nil {
		return nil, 0, 0, 0, nil, fmt.Errorf("failed to fetch hours: %w", err)
	}
	if hours == nil {
		return nil, 0, 0, 0, nil, ErrNotBookable
	}

	openHour, openErr := utils.ParseHour(hours.OpenTime)
	closeHour, closeErr := utils.ParseHour(hours.CloseTime)
	if openErr != nil || closeErr != nil || openHour >= closeHour {
		return nil, 0, 0, 0, nil, ErrNotBookable
	}

	start := req.StartHour
	end := start + req.DurationHours
	if start < openHour || end > closeHour {
		return nil, 0, 0, 0, nil, ErrNotBookable
	}

	reservations, err := s.ReservationRepo.GetForDeskOnDate(req.DeskID, req.Date)
	if err != nil {
		return nil, 0, 0, 0, nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	return desk, start, end, closeHour, toIntervals(reservations), nil
}

// QuoteBooking prices a candidate window without committing anything.
func (s *DefaultBookingService) QuoteBooking(ctx context.Context, req models.BookingRequest) (*models.BookingQuote, error) {
	desk, start, end, closeHour, intervals, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}
	if !resolvers.IsAvailable(start, end, intervals) {
		return nil, ErrSlotTaken
	}

	return &models.BookingQuote{
		DeskID:        req.DeskID,
		Date:          req.Date,
		StartTime:     utils.FormatHourString(start),
		EndTime:       utils.FormatHourString(end),
		DurationHours: req.DurationHours,
		MaxDuration:   resolvers.MaxDuration(start, closeHour, intervals),
		TotalPrice:    desk.HourlyRate * float64(req.DurationHours),
	}, nil
}

// Reserve books the desk. The resolver check here is advisory; the
// authoritative conflict detection happens inside CreateIfAvailable, so a
// racing booking surfaces as ErrSlotTaken rather than a double-booking.
// Nothing is persisted on any failure path.
func (s *DefaultBookingService) Reserve(ctx context.Context, userID string, req models.BookingRequest) (*models.Reservation, error) {
	logger := utils.GetLogger()

	desk, start, end, _, intervals, err := s.validateRequest(req)
	if err != nil {
		return nil, err
	}

	business, err := s.BusinessRepo.GetByID(desk.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch business: %w", err)
	}
	if business == nil {
		return nil, ErrNotFound
	}
	if business.OwnerID == userID {
		return nil, ErrOwnBusiness
	}

	if !resolvers.IsAvailable(start, end, intervals) {
		return nil, ErrSlotTaken
	}

	reservation := &models.Reservation{
		ID:            uuid.New().String(),
		UserID:        userID,
		BusinessID:    desk.BusinessID,
		DeskID:        desk.ID,
		Date:          req.Date,
		StartTime:     utils.FormatHourString(start),
		EndTime:       utils.FormatHourString(end),
		DurationHours: req.DurationHours,
		TotalPrice:    desk.HourlyRate * float64(req.DurationHours),
		Status:        models.ReservationStatusConfirmed,
	}

	if err := s.ReservationRepo.CreateIfAvailable(ctx, reservation); err != nil {
		if errors.Is(err, reservationRepo.ErrSlotConflict) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	s.invalidateAvailability(ctx, desk.ID, req.Date)
	s.scheduleReminder(reservation, business.Name)

	logger.Info("reservation confirmed",
		zap.String("reservationID", reservation.ID),
		zap.String("deskID", desk.ID),
		zap.String("date", req.Date),
		zap.String("start", reservation.StartTime))
	return reservation, nil
}

// scheduleReminder enqueues a reminder an hour before the reservation starts.
// Best effort: a queue failure never fails the booking.
func (s *DefaultBookingService) scheduleReminder(reservation *models.Reservation, businessName string) {
	if s.ReminderQueue == nil {
		return
	}

	startAt, err := time.ParseInLocation("2006-01-02 15:04:05", reservation.Date+" "+reservation.StartTime, time.Local)
	if err != nil {
		return
	}
	fireAt := startAt.Add(-time.Hour)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		ReservationID: reservation.ID,
		UserID:        reservation.UserID,
		Title:         "Upcoming reservation",
		Body:          fmt.Sprintf("Your desk at %s is booked from %s.", businessName, reservation.StartTime),
		FireDate:      fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Warn("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.ReminderQueue.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Warn("failed to enqueue reminder", zap.Error(err))
	}
}

// CancelReservation transitions the reservation to cancelled and frees its hours.
func (s *DefaultBookingService) CancelReservation(ctx context.Context, reservationID, userID string) error {
	reservation, err := s.ReservationRepo.GetByID(reservationID)
	if err != nil {
		return err
	}
	if reservation == nil {
		return ErrNotFound
	}
	if reservation.UserID != userID {
		return ErrForbidden
	}

	if err := s.ReservationRepo.Cancel(reservationID, userID); err != nil {
		return err
	}
	s.invalidateAvailability(ctx, reservation.DeskID, reservation.Date)
	return nil
}

// GetReservationByID retrieves a reservation.
func (s *DefaultBookingService) GetReservationByID(reservationID string) (*models.Reservation, error) {
	return s.ReservationRepo.GetByID(reservationID)
}

// GetReservationsByUserID lists a customer's reservations.
func (s *DefaultBookingService) GetReservationsByUserID(userID string) ([]models.Reservation, error) {
	return s.ReservationRepo.GetByUserID(userID)
}

// GetReservationsByBusinessID lists reservations at a business; owner only.
func (s *DefaultBookingService) GetReservationsByBusinessID(ownerID, businessID string) ([]models.Reservation, error) {
	business, err := s.BusinessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrNotFound
	}
	if business.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return s.ReservationRepo.GetByBusinessID(businessID)
}
