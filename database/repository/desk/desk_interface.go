package deskRepo

import "brewdesk/models"

// DeskRepository defines persistence for desks.
type DeskRepository interface {
	Create(desk *models.Desk) error
	Update(desk *models.Desk) error
	Delete(id string) error
	GetByID(id string) (*models.Desk, error)
	GetByBusinessID(businessID string) ([]models.Desk, error)
}
