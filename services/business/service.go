package business

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	businessRepo "glowdesk/database/repository/business"
	serviceRepo "glowdesk/database/repository/service"
	staffRepo "glowdesk/database/repository/staff"
	"glowdesk/models"
)

// BusinessService manages the business profile and its settings surface:
// staff, service catalogue, opening hours, bank accounts and booking links.
type BusinessService interface {
	Get(ctx context.Context, businessID string) (*models.Business, error)
	Update(ctx context.Context, biz models.Business) (*models.Business, error)

	CreateStaff(ctx context.Context, businessID string, m models.StaffMember) (*models.StaffMember, error)
	ListStaff(ctx context.Context, businessID string, activeOnly bool) ([]models.StaffMember, error)
	UpdateStaff(ctx context.Context, businessID string, m models.StaffMember) (*models.StaffMember, error)
	DeleteStaff(ctx context.Context, businessID, id string) error

	CreateService(ctx context.Context, businessID string, svc models.Service) (*models.Service, error)
	ListServices(ctx context.Context, businessID string) ([]models.Service, error)
	UpdateService(ctx context.Context, businessID string, svc models.Service) (*models.Service, error)
	DeleteService(ctx context.Context, businessID, id string) error

	SetHours(ctx context.Context, businessID string, hours models.BusinessHours) error
	ListHours(ctx context.Context, businessID string) ([]models.BusinessHours, error)

	AddBankAccount(ctx context.Context, businessID string, acct models.BankAccount) (*models.BankAccount, error)
	ListBankAccounts(ctx context.Context, businessID string) ([]models.BankAccount, error)
	DeleteBankAccount(ctx context.Context, businessID, id string) error

	CreateBookingLink(ctx context.Context, businessID, slug string) (*models.BookingLink, error)
	ListBookingLinks(ctx context.Context, businessID string) ([]models.BookingLink, error)
	SetBookingLinkActive(ctx context.Context, businessID, id string, active bool) error
}

// DefaultBusinessService is the default implementation.
type DefaultBusinessService struct {
	BusinessRepo businessRepo.BusinessRepository
	StaffRepo    staffRepo.StaffRepository
	ServiceRepo  serviceRepo.ServiceRepository
}

func (s *DefaultBusinessService) Get(ctx context.Context, businessID string) (*models.Business, error) {
	biz, err := s.BusinessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("business not found: %w", err)
	}
	return biz, nil
}

func (s *DefaultBusinessService) Update(ctx context.Context, biz models.Business) (*models.Business, error) {
	existing, err := s.BusinessRepo.GetByID(ctx, biz.ID)
	if err != nil {
		return nil, fmt.Errorf("business not found: %w", err)
	}
	biz.OwnerProfileID = existing.OwnerProfileID
	biz.CreatedAt = existing.CreatedAt
	if err := s.BusinessRepo.Update(ctx, &biz); err != nil {
		return nil, fmt.Errorf("failed to update business: %w", err)
	}
	return &biz, nil
}

func (s *DefaultBusinessService) CreateStaff(ctx context.Context, businessID string, m models.StaffMember) (*models.StaffMember, error) {
	if m.FirstName == "" {
		return nil, fmt.Errorf("staff first name is required")
	}
	m.ID = uuid.New().String()
	m.BusinessID = businessID
	if m.Status == "" {
		m.Status = models.StaffActive
	}
	m.CreatedAt = time.Now()
	if err := s.StaffRepo.Create(ctx, &m); err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}
	return &m, nil
}

func (s *DefaultBusinessService) ListStaff(ctx context.Context, businessID string, activeOnly bool) ([]models.StaffMember, error) {
	return s.StaffRepo.ListByBusiness(ctx, businessID, activeOnly)
}

func (s *DefaultBusinessService) UpdateStaff(ctx context.Context, businessID string, m models.StaffMember) (*models.StaffMember, error) {
	if m.ID == "" {
		return nil, fmt.Errorf("staff ID is required for update")
	}
	if m.Status != models.StaffActive && m.Status != models.StaffInactive {
		return nil, fmt.Errorf("unknown staff status %q", m.Status)
	}
	existing, err := s.StaffRepo.GetByID(ctx, businessID, m.ID)
	if err != nil {
		return nil, fmt.Errorf("staff member not found: %w", err)
	}
	m.BusinessID = businessID
	m.CreatedAt = existing.CreatedAt
	if err := s.StaffRepo.Update(ctx, &m); err != nil {
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}
	return &m, nil
}

func (s *DefaultBusinessService) DeleteStaff(ctx context.Context, businessID, id string) error {
	return s.StaffRepo.Delete(ctx, businessID, id)
}

func (s *DefaultBusinessService) CreateService(ctx context.Context, businessID string, svc models.Service) (*models.Service, error) {
	if svc.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if svc.DurationMinutes <= 0 {
		return nil, fmt.Errorf("service duration must be positive")
	}
	svc.ID = uuid.New().String()
	svc.BusinessID = businessID
	svc.CreatedAt = time.Now()
	if err := s.ServiceRepo.Create(ctx, &svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &svc, nil
}

func (s *DefaultBusinessService) ListServices(ctx context.Context, businessID string) ([]models.Service, error) {
	return s.ServiceRepo.ListByBusiness(ctx, businessID)
}

func (s *DefaultBusinessService) UpdateService(ctx context.Context, businessID string, svc models.Service) (*models.Service, error) {
	if svc.ID == "" {
		return nil, fmt.Errorf("service ID is required for update")
	}
	existing, err := s.ServiceRepo.GetByID(ctx, businessID, svc.ID)
	if err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}
	svc.BusinessID = businessID
	svc.CreatedAt = existing.CreatedAt
	if err := s.ServiceRepo.Update(ctx, &svc); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return &svc, nil
}

func (s *DefaultBusinessService) DeleteService(ctx context.Context, businessID, id string) error {
	return s.ServiceRepo.Delete(ctx, businessID, id)
}

func (s *DefaultBusinessService) SetHours(ctx context.Context, businessID string, hours models.BusinessHours) error {
	if hours.Weekday < 0 || hours.Weekday > 6 {
		return fmt.Errorf("weekday must be between 0 and 6")
	}
	if !hours.Closed && hours.OpenMinute >= hours.CloseMin {
		return fmt.Errorf("opening time must be before closing time")
	}
	if hours.ID == "" {
		hours.ID = uuid.New().String()
	}
	hours.BusinessID = businessID
	if err := s.BusinessRepo.UpsertHours(ctx, &hours); err != nil {
		return fmt.Errorf("failed to save business hours: %w", err)
	}
	return nil
}

func (s *DefaultBusinessService) ListHours(ctx context.Context, businessID string) ([]models.BusinessHours, error) {
	return s.BusinessRepo.ListHours(ctx, businessID)
}

// AddBankAccount format-validates the numbers before any write. Bank
// details are stored for payout setup only; nothing here moves money.
func (s *DefaultBusinessService) AddBankAccount(ctx context.Context, businessID string, acct models.BankAccount) (*models.BankAccount, error) {
	if acct.AccountHolder == "" {
		return nil, fmt.Errorf("account holder name is required")
	}
	if err := ValidateAccountNumber(acct.AccountNumber); err != nil {
		return nil, err
	}
	if err := ValidateRoutingNumber(acct.RoutingNumber); err != nil {
		return nil, err
	}
	acct.ID = uuid.New().String()
	acct.BusinessID = businessID
	acct.CreatedAt = time.Now()
	if err := s.BusinessRepo.CreateBankAccount(ctx, &acct); err != nil {
		return nil, fmt.Errorf("failed to save bank account: %w", err)
	}
	return &acct, nil
}

func (s *DefaultBusinessService) ListBankAccounts(ctx context.Context, businessID string) ([]models.BankAccount, error) {
	return s.BusinessRepo.ListBankAccounts(ctx, businessID)
}

func (s *DefaultBusinessService) DeleteBankAccount(ctx context.Context, businessID, id string) error {
	return s.BusinessRepo.DeleteBankAccount(ctx, businessID, id)
}

func (s *DefaultBusinessService) CreateBookingLink(ctx context.Context, businessID, slug string) (*models.BookingLink, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}
	for _, r := range slug {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return nil, fmt.Errorf("slug may contain only lowercase letters, digits and dashes")
		}
	}
	link := &models.BookingLink{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Slug:       slug,
		Active:     true,
		CreatedAt:  time.Now(),
	}
	if err := s.BusinessRepo.CreateBookingLink(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to create booking link: %w", err)
	}
	return link, nil
}

func (s *DefaultBusinessService) ListBookingLinks(ctx context.Context, businessID string) ([]models.BookingLink, error) {
	return s.BusinessRepo.ListBookingLinks(ctx, businessID)
}

func (s *DefaultBusinessService) SetBookingLinkActive(ctx context.Context, businessID, id string, active bool) error {
	return s.BusinessRepo.SetBookingLinkActive(ctx, businessID, id, active)
}
