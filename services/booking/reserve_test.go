package booking

import (
	"context"
	"testing"

	reservationRepo "brewdesk/database/repository/reservation"
	"brewdesk/models"

	"github.com/stretchr/testify/assert"
)

// --- in-memory fakes ---

type fakeDeskRepo struct {
	desks map[string]models.Desk
}

func (f *fakeDeskRepo) Create(desk *models.Desk) error { f.desks[desk.ID] = *desk; return nil }
func (f *fakeDeskRepo) Update(desk *models.Desk) error { f.desks[desk.ID] = *desk; return nil }
func (f *fakeDeskRepo) Delete(id string) error         { delete(f.desks, id); return nil }
func (f *fakeDeskRepo) GetByID(id string) (*models.Desk, error) {
	if d, ok := f.desks[id]; ok {
		return &d, nil
	}
	return nil, nil
}
func (f *fakeDeskRepo) GetByBusinessID(businessID string) ([]models.Desk, error) {
	var out []models.Desk
	for _, d := range f.desks {
		if d.BusinessID == businessID {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeBusinessRepo struct {
	businesses map[string]models.Business
}

func (f *fakeBusinessRepo) Create(b *models.Business) error { f.businesses[b.ID] = *b; return nil }
func (f *fakeBusinessRepo) Update(b *models.Business) error { f.businesses[b.ID] = *b; return nil }
func (f *fakeBusinessRepo) Delete(id string) error          { delete(f.businesses, id); return nil }
func (f *fakeBusinessRepo) GetByID(id string) (*models.Business, error) {
	if b, ok := f.businesses[id]; ok {
		return &b, nil
	}
	return nil, nil
}
func (f *fakeBusinessRepo) GetByOwnerID(ownerID string) (*models.Business, error) {
	for _, b := range f.businesses {
		if b.OwnerID == ownerID {
			return &b, nil
		}
	}
	return nil, nil
}
func (f *fakeBusinessRepo) GetAll() ([]models.Business, error) {
	var out []models.Business
	for _, b := range f.businesses {
		out = append(out, b)
	}
	return out, nil
}

type fakeHoursRepo struct {
	hours map[string]models.DailyHours // key: businessID + "|" + date
}

func (f *fakeHoursRepo) Upsert(h *models.DailyHours) (*models.DailyHours, error) {
	f.hours[h.BusinessID+"|"+h.Date] = *h
	return h, nil
}
func (f *fakeHoursRepo) Get(businessID, date string) (*models.DailyHours, error) {
	if h, ok := f.hours[businessID+"|"+date]; ok {
		return &h, nil
	}
	return nil, nil
}
func (f *fakeHoursRepo) Delete(businessID, date string) error {
	delete(f.hours, businessID+"|"+date)
	return nil
}
func (f *fakeHoursRepo) GetDatesInRange(businessID, startDate, endDate string) ([]string, error) {
	var dates []string
	for _, h := range f.hours {
		if h.BusinessID == businessID && h.Date >= startDate && h.Date <= endDate {
			dates = append(dates, h.Date)
		}
	}
	return dates, nil
}

type fakeReservationRepo struct {
	reservations map[string]models.Reservation
}

func (f *fakeReservationRepo) GetByID(id string) (*models.Reservation, error) {
	if r, ok := f.reservations[id]; ok {
		return &r, nil
	}
	return nil, nil
}
func (f *fakeReservationRepo) GetByUserID(userID string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeReservationRepo) GetByBusinessID(businessID string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.BusinessID == businessID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeReservationRepo) GetForDeskOnDate(deskID, date string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.DeskID == deskID && r.Date == date && r.Status != models.ReservationStatusCancelled {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeReservationRepo) CountOverlapping(ctx context.Context, deskID, date, startTime, endTime string) (int64, error) {
	var count int64
	for _, r := range f.reservations {
		if r.DeskID == deskID && r.Date == date && r.Status != models.ReservationStatusCancelled &&
			r.StartTime < endTime && r.EndTime > startTime {
			count++
		}
	}
	return count, nil
}
func (f *fakeReservationRepo) CreateIfAvailable(ctx context.Context, r *models.Reservation) error {
	count, _ := f.CountOverlapping(ctx, r.DeskID, r.Date, r.StartTime, r.EndTime)
	if count > 0 {
		return reservationRepo.ErrSlotConflict
	}
	f.reservations[r.ID] = *r
	return nil
}
func (f *fakeReservationRepo) Cancel(id, userID string) error {
	r, ok := f.reservations[id]
	if !ok || r.UserID != userID || r.Status == models.ReservationStatusCancelled {
		return ErrNotFound
	}
	r.Status = models.ReservationStatusCancelled
	f.reservations[id] = r
	return nil
}

// newTestService seeds one business (owner "owner-1"), one desk at $10/hr and
// hours 09:00-17:00 on 2024-06-01 with a confirmed 12:00-14:00 reservation.
func newTestService() *DefaultBookingService {
	deskRepo := &fakeDeskRepo{desks: map[string]models.Desk{
		"desk-1": {ID: "desk-1", BusinessID: "biz-1", Name: "Window Desk", HourlyRate: 10},
	}}
	businessRepo := &fakeBusinessRepo{businesses: map[string]models.Business{
		"biz-1": {ID: "biz-1", OwnerID: "owner-1", Name: "Grindhouse Coffee"},
	}}
	hoursRepo := &fakeHoursRepo{hours: map[string]models.DailyHours{
		"biz-1|2024-06-01": {BusinessID: "biz-1", Date: "2024-06-01", OpenTime: "09:00:00", CloseTime: "17:00:00"},
	}}
	resRepo := &fakeReservationRepo{reservations: map[string]models.Reservation{
		"res-1": {
			ID: "res-1", UserID: "user-2", BusinessID: "biz-1", DeskID: "desk-1",
			Date: "2024-06-01", StartTime: "12:00:00", EndTime: "14:00:00",
			DurationHours: 2, Status: models.ReservationStatusConfirmed,
		},
	}}

	return &DefaultBookingService{
		ReservationRepo: resRepo,
		DeskRepo:        deskRepo,
		BusinessRepo:    businessRepo,
		HoursRepo:       hoursRepo,
	}
}

func TestGetDayAvailability(t *testing.T) {
	svc := newTestService()

	day, err := svc.GetDayAvailability(context.Background(), "desk-1", "2024-06-01")
	assert.NoError(t, err)
	assert.Equal(t, 9, day.OpenHour)
	assert.Equal(t, 17, day.CloseHour)
	assert.Equal(t, []int{12, 13}, day.BookedHours)

	hours := make([]int, 0, len(day.StartHours))
	byHour := make(map[int]models.StartOption)
	for _, opt := range day.StartHours {
		hours = append(hours, opt.Hour)
		byHour[opt.Hour] = opt
	}
	assert.Equal(t, []int{9, 10, 11, 14, 15, 16}, hours)

	// Blocked immediately at 12 vs running to close.
	assert.Equal(t, 1, byHour[11].MaxDuration)
	assert.Equal(t, 3, byHour[14].MaxDuration)
	assert.Equal(t, "2:00 PM", byHour[14].Label)
}

func TestGetDayAvailabilityNoHours(t *testing.T) {
	svc := newTestService()

	day, err := svc.GetDayAvailability(context.Background(), "desk-1", "2024-06-02")
	assert.NoError(t, err)
	assert.Empty(t, day.StartHours)
	assert.Empty(t, day.BookedHours)
}

func TestGetDayAvailabilityUnknownDesk(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetDayAvailability(context.Background(), "desk-404", "2024-06-01")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuoteBooking(t *testing.T) {
	svc := newTestService()

	quote, err := svc.QuoteBooking(context.Background(), models.BookingRequest{
		DeskID: "desk-1", Date: "2024-06-01", StartHour: 14, DurationHours: 2,
	})
	assert.NoError(t, err)
	assert.Equal(t, "14:00:00", quote.StartTime)
	assert.Equal(t, "16:00:00", quote.EndTime)
	assert.Equal(t, 3, quote.MaxDuration)
	assert.Equal(t, float64(20), quote.TotalPrice)
}

func TestQuoteBookingConflict(t *testing.T) {
	svc := newTestService()

	_, err := svc.QuoteBooking(context.Background(), models.BookingRequest{
		DeskID: "desk-1", Date: "2024-06-01", StartHour: 11, DurationHours: 2,
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestReserve(t *testing.T) {
	svc := newTestService()

	reservation, err := svc.Reserve(context.Background(), "user-3", models.BookingRequest{
		DeskID: "desk-1", Date: "2024-06-01", StartHour: 9, DurationHours: 3,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, reservation.Status)
	assert.Equal(t, "09:00:00", reservation.StartTime)
	assert.Equal(t, "12:00:00", reservation.EndTime)
	assert.Equal(t, float64(30), reservation.TotalPrice)
	assert.Equal(t, "biz-1", reservation.BusinessID)
}

func TestReserveConflict(t *testing.T) {
	svc := newTestService()

	_, err := svc.Reserve(context.Background(), "user-3", models.BookingRequest{
		DeskID: "desk-1", Date: "2024-06-01", StartHour: 13, DurationHours: 1,
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestReserveTouchingEndpointAllowed(t *testing.T) {
	svc := newTestService()

	// [14,15) touches the existing [12,14) at its endpoint: no overlap.
	_, err := svc.Reserve(context.Background(), "user-3", models.BookingRequest{
		DeskID: "desk-1", Date: "2024-06-01", StartHour: 14, DurationHours: 1,
	})
	assert.NoError(t, err)
}

func TestReserveOutsideHours(t *testing.T) {
	svc := newTestService()

	_, err := svc.Reserve(context.Background(), "user-3", models.BookingRequest{
		DeskID: "desk-1", Date: "2024-06-01", StartHour: 16, DurationHours: 2,
	})
	assert.ErrorIs(t, err, ErrNotBookable)

	_, err = svc.Reserve(context.Background(), "user-3", models.BookingRequest{
		DeskID: "desk-1", Date: "2024-06-01", StartHour: 7, DurationHours: 1,
	})
	assert.ErrorIs(t, err, ErrNotBookable)
}

func TestReserveNoHoursPublished(t *testing.T) {
	svc := newTestService()

	_, err := svc.Reserve(context.Background(), "user-3", models.BookingRequest{
		DeskID: "desk-1", Date: "2024-06-02", StartHour: 10, DurationHours: 1,
	})
	assert.ErrorIs(t, err, ErrNotBookable)
}

func TestReserveOwnBusinessRejected(t *testing.T) {
	svc := newTestService()

	_, err := svc.Reserve(context.Background(), "owner-1", models.BookingRequest{
		DeskID: "desk-1", Date: "2024-06-01", StartHour: 9, DurationHours: 1,
	})
	assert.ErrorIs(t, err, ErrOwnBusiness)
}

func TestReserveOverCancelledReservation(t *testing.T) {
	svc := newTestService()
	repo := svc.ReservationRepo.(*fakeReservationRepo)
	res := repo.reservations["res-1"]
	res.Status = models.ReservationStatusCancelled
	repo.reservations["res-1"] = res

	// The cancelled 12:00-14:00 no longer blocks.
	_, err := svc.Reserve(context.Background(), "user-3", models.BookingRequest{
		DeskID: "desk-1", Date: "2024-06-01", StartHour: 12, DurationHours: 2,
	})
	assert.NoError(t, err)
}

func TestCancelReservation(t *testing.T) {
	svc := newTestService()

	err := svc.CancelReservation(context.Background(), "res-1", "user-2")
	assert.NoError(t, err)

	stored, err := svc.GetReservationByID("res-1")
	assert.NoError(t, err)
	assert.Equal(t, models.ReservationStatusCancelled, stored.Status)

	// The freed window becomes bookable again.
	_, err = svc.Reserve(context.Background(), "user-3", models.BookingRequest{
		DeskID: "desk-1", Date: "2024-06-01", StartHour: 12, DurationHours: 2,
	})
	assert.NoError(t, err)
}

func TestCancelReservationWrongUser(t *testing.T) {
	svc := newTestService()

	err := svc.CancelReservation(context.Background(), "res-1", "user-3")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetReservationsByBusinessOwnerOnly(t *testing.T) {
	svc := newTestService()

	reservations, err := svc.GetReservationsByBusinessID("owner-1", "biz-1")
	assert.NoError(t, err)
	assert.Len(t, reservations, 1)

	_, err = svc.GetReservationsByBusinessID("user-2", "biz-1")
	assert.ErrorIs(t, err, ErrForbidden)
}
