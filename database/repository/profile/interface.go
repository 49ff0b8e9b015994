package profileRepo

import (
	"context"

	"glowdesk/models"
)

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	// Create inserts a new profile record.
	Create(ctx context.Context, p *models.Profile) error
	// GetByID retrieves a profile by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	// GetByEmail retrieves a profile by email, or nil when none exists.
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	// Update replaces an existing profile record.
	Update(ctx context.Context, p *models.Profile) error
}
