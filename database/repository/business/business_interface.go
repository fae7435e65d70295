package businessRepo

import "brewdesk/models"

// BusinessRepository defines persistence for business listings.
type BusinessRepository interface {
	Create(business *models.Business) error
	Update(business *models.Business) error
	Delete(id string) error
	GetByID(id string) (*models.Business, error)
	// GetByOwnerID returns nil when the owner has no business yet.
	GetByOwnerID(ownerID string) (*models.Business, error)
	GetAll() ([]models.Business, error)
}
