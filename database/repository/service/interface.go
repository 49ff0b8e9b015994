package serviceRepo

import (
	"context"

	"glowdesk/models"
)

// ServiceRepository defines methods for service catalogue data access.
type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	GetByID(ctx context.Context, businessID, id string) (*models.Service, error)
	ListByBusiness(ctx context.Context, businessID string) ([]models.Service, error)
	Update(ctx context.Context, svc *models.Service) error
	Delete(ctx context.Context, businessID, id string) error
}
