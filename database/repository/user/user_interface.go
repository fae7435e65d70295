package userRepo

import "brewdesk/models"

// UserRepository defines persistence for identity-synced user records.
type UserRepository interface {
	// Sync upserts a user row keyed by the identity provider's subject id
	// and returns the stored record.
	Sync(user *models.User) (*models.User, error)
	GetByID(id string) (*models.User, error)
	GetByExternalID(externalID string) (*models.User, error)
}
