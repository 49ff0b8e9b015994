package client

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	clientRepo "glowdesk/database/repository/client"
	"glowdesk/models"
)

// ClientService manages client records.
type ClientService interface {
	Create(ctx context.Context, businessID string, c models.Client) (*models.Client, error)
	List(ctx context.Context, businessID string) ([]models.Client, error)
	Update(ctx context.Context, businessID string, c models.Client) (*models.Client, error)
	Delete(ctx context.Context, businessID, id string) error
	// ImportCSV parses and inserts clients from CSV data, reporting
	// per-row failures without aborting the whole import.
	ImportCSV(ctx context.Context, businessID string, data []byte) (*ImportReport, error)
}

// DefaultClientService is the default implementation.
type DefaultClientService struct {
	Repo clientRepo.ClientRepository
}

func (s *DefaultClientService) Create(ctx context.Context, businessID string, c models.Client) (*models.Client, error) {
	if c.FirstName == "" && c.LastName == "" {
		return nil, fmt.Errorf("client name is required")
	}
	c.ID = uuid.New().String()
	c.BusinessID = businessID
	c.CreatedAt = time.Now()
	if err := s.Repo.Create(ctx, &c); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &c, nil
}

func (s *DefaultClientService) List(ctx context.Context, businessID string) ([]models.Client, error) {
	return s.Repo.ListByBusiness(ctx, businessID)
}

func (s *DefaultClientService) Update(ctx context.Context, businessID string, c models.Client) (*models.Client, error) {
	if c.ID == "" {
		return nil, fmt.Errorf("client ID is required for update")
	}
	existing, err := s.Repo.GetByID(ctx, businessID, c.ID)
	if err != nil {
		return nil, fmt.Errorf("client not found: %w", err)
	}
	c.BusinessID = businessID
	c.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(ctx, &c); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return &c, nil
}

func (s *DefaultClientService) Delete(ctx context.Context, businessID, id string) error {
	return s.Repo.Delete(ctx, businessID, id)
}
