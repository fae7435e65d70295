package business

import (
	"fmt"
	"strings"

	"brewdesk/models"

	"github.com/google/uuid"
)

// CreateDesk adds a desk to an owned business.
func (s *DefaultBusinessService) CreateDesk(ownerID, businessID string, desk models.Desk) (*models.Desk, error) {
	if _, err := s.requireOwnership(ownerID, businessID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(desk.Name) == "" {
		return nil, fmt.Errorf("desk name is required")
	}
	if desk.HourlyRate <= 0 {
		return nil, fmt.Errorf("desk hourly rate must be positive")
	}

	desk.ID = uuid.New().String()
	desk.BusinessID = businessID
	if err := s.DeskRepo.Create(&desk); err != nil {
		return nil, err
	}
	return &desk, nil
}

// UpdateDesk applies updates to a desk of an owned business.
func (s *DefaultBusinessService) UpdateDesk(ownerID, deskID string, updates models.Desk) (*models.Desk, error) {
	desk, err := s.DeskRepo.GetByID(deskID)
	if err != nil {
		return nil, err
	}
	if desk == nil {
		return nil, ErrNotFound
	}
	if _, err := s.requireOwnership(ownerID, desk.BusinessID); err != nil {
		return nil, err
	}

	if updates.Name != "" {
		desk.Name = updates.Name
	}
	if updates.Description != "" {
		desk.Description = updates.Description
	}
	if updates.HourlyRate > 0 {
		desk.HourlyRate = updates.HourlyRate
	}

	if err := s.DeskRepo.Update(desk); err != nil {
		return nil, err
	}
	return desk, nil
}

// DeleteDesk removes a desk from an owned business.
func (s *DefaultBusinessService) DeleteDesk(ownerID, deskID string) error {
	desk, err := s.DeskRepo.GetByID(deskID)
	if err != nil {
		return err
	}
	if desk == nil {
		return ErrNotFound
	}
	if _, err := s.requireOwnership(ownerID, desk.BusinessID); err != nil {
		return err
	}
	return s.DeskRepo.Delete(deskID)
}

// GetDesksByBusinessID lists the desks of a business.
func (s *DefaultBusinessService) GetDesksByBusinessID(businessID string) ([]models.Desk, error) {
	return s.DeskRepo.GetByBusinessID(businessID)
}
