package campaignRepo

import (
	"context"

	"glowdesk/models"
)

// CampaignRepository defines methods for marketing campaign data access.
type CampaignRepository interface {
	// Upsert inserts the campaign or replaces it when the ID already exists.
	Upsert(ctx context.Context, c *models.Campaign) error
	// GetByID retrieves a campaign by its unique ID.
	GetByID(ctx context.Context, businessID, id string) (*models.Campaign, error)
	// ListByBusiness retrieves non-archived campaigns for a business,
	// optionally filtered by subtype.
	ListByBusiness(ctx context.Context, businessID, subtype string) ([]models.Campaign, error)
	// FindActiveBySubtype retrieves non-archived campaigns of the given
	// subtype with the stored active flag set, excluding excludeID.
	// Used by the single-active-boost exclusivity pre-check.
	FindActiveBySubtype(ctx context.Context, businessID, subtype, excludeID string) ([]models.Campaign, error)
	// SetActive updates the stored is_active snapshot.
	SetActive(ctx context.Context, businessID, id string, active bool) error
	// Archive soft-deletes a campaign by setting archived_at.
	Archive(ctx context.Context, businessID, id string) error

	// ListActiveBoost retrieves every stored-active, non-archived boost
	// campaign across businesses. Used by the nightly expiry sweep.
	ListActiveBoost(ctx context.Context) ([]models.Campaign, error)

	// CreateMetrics inserts the metrics row written once at campaign creation.
	CreateMetrics(ctx context.Context, m *models.CampaignMetrics) error
	// GetMetrics retrieves the metrics row for a campaign, or nil when absent.
	GetMetrics(ctx context.Context, campaignID string) (*models.CampaignMetrics, error)
}
