package staffRepo

import (
	"context"

	"glowdesk/models"
)

// StaffRepository defines methods for staff member data access.
type StaffRepository interface {
	Create(ctx context.Context, staff *models.StaffMember) error
	GetByID(ctx context.Context, businessID, id string) (*models.StaffMember, error)
	// ListByBusiness retrieves staff for a business, optionally only active members.
	ListByBusiness(ctx context.Context, businessID string, activeOnly bool) ([]models.StaffMember, error)
	Update(ctx context.Context, staff *models.StaffMember) error
	Delete(ctx context.Context, businessID, id string) error
}
