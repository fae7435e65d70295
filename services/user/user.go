package user

import (
	"fmt"

	"brewdesk/models"
)

// Sync mirrors the identity provider's account locally. Called on the
// explicit sync endpoint and lazily by the auth middleware on first sight
// of a subject id.
func (s *DefaultUserService) Sync(claims models.IdentityClaims) (*models.User, error) {
	if claims.Subject == "" {
		return nil, fmt.Errorf("identity claims missing subject")
	}

	stored, err := s.Repo.Sync(&models.User{
		ExternalID: claims.Subject,
		Email:      claims.Email,
		Name:       claims.Name,
		AvatarURL:  claims.AvatarURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sync user: %w", err)
	}
	return stored, nil
}

// GetUserByID retrieves a user by its unique ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// GetUserByExternalID retrieves a user by the identity provider subject id.
func (s *DefaultUserService) GetUserByExternalID(externalID string) (*models.User, error) {
	return s.Repo.GetByExternalID(externalID)
}
