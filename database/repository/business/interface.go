package businessRepo

import (
	"context"

	"glowdesk/models"
)

// BusinessRepository defines methods for business, hours, bank account and
// booking link data access.
type BusinessRepository interface {
	// Create inserts a new business record.
	Create(ctx context.Context, biz *models.Business) error
	// GetByID retrieves a business by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Business, error)
	// GetByOwner retrieves the business owned by a profile, or nil when none exists.
	GetByOwner(ctx context.Context, profileID string) (*models.Business, error)
	// Update replaces an existing business record.
	Update(ctx context.Context, biz *models.Business) error

	// UpsertHours writes the opening window for one weekday.
	UpsertHours(ctx context.Context, hours *models.BusinessHours) error
	// ListHours retrieves all weekly opening windows for a business.
	ListHours(ctx context.Context, businessID string) ([]models.BusinessHours, error)

	CreateBankAccount(ctx context.Context, acct *models.BankAccount) error
	ListBankAccounts(ctx context.Context, businessID string) ([]models.BankAccount, error)
	DeleteBankAccount(ctx context.Context, businessID, id string) error

	CreateBookingLink(ctx context.Context, link *models.BookingLink) error
	ListBookingLinks(ctx context.Context, businessID string) ([]models.BookingLink, error)
	SetBookingLinkActive(ctx context.Context, businessID, id string, active bool) error
}
