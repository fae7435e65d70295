package user

import (
	userRepo "brewdesk/database/repository/user"
	"brewdesk/models"
)

// UserService defines business logic for identity-synced users. Credentials
// and sessions live with the external identity provider; this service only
// mirrors the account locally.
type UserService interface {
	// Sync upserts the local user row for verified identity claims and
	// returns the stored record.
	Sync(claims models.IdentityClaims) (*models.User, error)
	GetUserByID(userID string) (*models.User, error)
	GetUserByExternalID(externalID string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
