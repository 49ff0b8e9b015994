package clientRepo

import (
	"context"

	"glowdesk/models"
)

// ClientRepository defines methods for client data access.
type ClientRepository interface {
	// Create inserts a new client record.
	Create(ctx context.Context, client *models.Client) error
	// CreateMany inserts a batch of client records (CSV import).
	CreateMany(ctx context.Context, clients []models.Client) error
	// GetByID retrieves a client by its unique ID.
	GetByID(ctx context.Context, businessID, id string) (*models.Client, error)
	// ListByBusiness retrieves all clients for a business.
	ListByBusiness(ctx context.Context, businessID string) ([]models.Client, error)
	// CountByBusiness returns the number of clients for a business.
	CountByBusiness(ctx context.Context, businessID string) (int64, error)
	// Update replaces an existing client record.
	Update(ctx context.Context, client *models.Client) error
	// Delete removes a client record by its ID.
	Delete(ctx context.Context, businessID, id string) error
}
