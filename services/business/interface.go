package business

import (
	businessRepo "brewdesk/database/repository/business"
	deskRepo "brewdesk/database/repository/desk"
	hoursRepo "brewdesk/database/repository/hours"
	"brewdesk/models"
)

// BusinessService defines business-owner operations: the listing itself,
// its desks, and the per-date hours it publishes.
type BusinessService interface {
	CreateBusiness(ownerID string, business models.Business) (*models.Business, error)
	UpdateBusiness(ownerID, businessID string, updates models.Business) (*models.Business, error)
	GetBusinessByID(businessID string) (*models.Business, error)
	GetBusinessByOwnerID(ownerID string) (*models.Business, error)
	GetAllBusinesses() ([]models.Business, error)

	CreateDesk(ownerID, businessID string, desk models.Desk) (*models.Desk, error)
	UpdateDesk(ownerID, deskID string, updates models.Desk) (*models.Desk, error)
	DeleteDesk(ownerID, deskID string) error
	GetDesksByBusinessID(businessID string) ([]models.Desk, error)

	SetHours(ownerID, businessID, date, openTime, closeTime string) (*models.DailyHours, error)
	ClearHours(ownerID, businessID, date string) error
	GetHours(businessID, date string) (*models.DailyHours, error)
	GetAvailableDates(businessID, startDate, endDate string) ([]string, error)
}

// DefaultBusinessService is the production implementation.
type DefaultBusinessService struct {
	Repo      businessRepo.BusinessRepository
	DeskRepo  deskRepo.DeskRepository
	HoursRepo hoursRepo.HoursRepository
}
