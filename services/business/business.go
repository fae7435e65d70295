package business

import (
	"fmt"
	"strings"

	"brewdesk/models"

	"github.com/google/uuid"
)

// CreateBusiness lists a new business for the owner. One listing per owner.
func (s *DefaultBusinessService) CreateBusiness(ownerID string, business models.Business) (*models.Business, error) {
	if strings.TrimSpace(business.Name) == "" || strings.TrimSpace(business.Address) == "" || strings.TrimSpace(business.City) == "" {
		return nil, fmt.Errorf("business name, address and city are required")
	}

	existing, err := s.Repo.GetByOwnerID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing business: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}

	business.ID = uuid.New().String()
	business.OwnerID = ownerID
	if err := s.Repo.Create(&business); err != nil {
		return nil, err
	}
	return &business, nil
}

// requireOwnership fetches the business and verifies the caller owns it.
func (s *DefaultBusinessService) requireOwnership(ownerID, businessID string) (*models.Business, error) {
	business, err := s.Repo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrNotFound
	}
	if business.OwnerID != ownerID {
		return nil, ErrNotOwner
	}
	return business, nil
}

// UpdateBusiness applies profile updates to an owned business.
func (s *DefaultBusinessService) UpdateBusiness(ownerID, businessID string, updates models.Business) (*models.Business, error) {
	business, err := s.requireOwnership(ownerID, businessID)
	if err != nil {
		return nil, err
	}

	if updates.Name != "" {
		business.Name = updates.Name
	}
	if updates.Description != "" {
		business.Description = updates.Description
	}
	if updates.Address != "" {
		business.Address = updates.Address
	}
	if updates.City != "" {
		business.City = updates.City
	}
	if updates.State != "" {
		business.State = updates.State
	}
	if updates.ZipCode != "" {
		business.ZipCode = updates.ZipCode
	}
	if updates.Amenities != nil {
		business.Amenities = updates.Amenities
	}

	if err := s.Repo.Update(business); err != nil {
		return nil, err
	}
	return business, nil
}

// GetBusinessByID retrieves a single business listing.
func (s *DefaultBusinessService) GetBusinessByID(businessID string) (*models.Business, error) {
	return s.Repo.GetByID(businessID)
}

// GetBusinessByOwnerID retrieves the caller's own listing, if any.
func (s *DefaultBusinessService) GetBusinessByOwnerID(ownerID string) (*models.Business, error) {
	return s.Repo.GetByOwnerID(ownerID)
}

// GetAllBusinesses retrieves every listing for customers to browse.
func (s *DefaultBusinessService) GetAllBusinesses() ([]models.Business, error) {
	return s.Repo.GetAll()
}
