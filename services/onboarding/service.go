package onboarding

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"go.uber.org/zap"

	"glowdesk/config"
	businessRepo "glowdesk/database/repository/business"
	profileRepo "glowdesk/database/repository/profile"
	"glowdesk/models"
	"glowdesk/utils"
)

// FlowState is the snapshot returned to the wizard after every step.
type FlowState struct {
	ProfileID  string `json:"profile_id"`
	ResumeStep int    `json:"resume_step"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Business   string `json:"business_id,omitempty"`
}

// OnboardingService drives the five-step signup wizard. Every step persists
// its slice of data immediately, so abandoning the flow midway leaves
// partial state durably saved.
type OnboardingService interface {
	// Status recomputes the resume step from stored state.
	Status(ctx context.Context, profileID string) (*FlowState, error)
	// SubmitEmail records the email address (step 1).
	SubmitEmail(ctx context.Context, profileID, email string) (*FlowState, error)
	// ConfirmEmail marks the email address confirmed.
	ConfirmEmail(ctx context.Context, profileID string) (*FlowState, error)
	// SubmitPhone validates and records the phone number (step 2).
	SubmitPhone(ctx context.Context, profileID, phone string) (*FlowState, error)
	// VerifyPhone marks the phone number verified.
	VerifyPhone(ctx context.Context, profileID string) (*FlowState, error)
	// SubmitPersonalDetails records first and last name (step 3).
	SubmitPersonalDetails(ctx context.Context, profileID, firstName, lastName string) (*FlowState, error)
	// SubmitBusiness creates the business (step 4). skip persists an empty
	// business name and advances; skipping any other step is not possible.
	SubmitBusiness(ctx context.Context, profileID, name, phone, address string, skip bool) (*FlowState, error)
}

// DefaultOnboardingService is the default implementation.
type DefaultOnboardingService struct {
	ProfileRepo  profileRepo.ProfileRepository
	BusinessRepo businessRepo.BusinessRepository
	Cache        *redis.Client
}

// Status recomputes the flow state from the store; the cached snapshot is
// advisory only.
func (s *DefaultOnboardingService) Status(ctx context.Context, profileID string) (*FlowState, error) {
	p, err := s.ProfileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("profile not found: %w", err)
	}
	biz, err := s.BusinessRepo.GetByOwner(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up business: %w", err)
	}

	state := &FlowState{
		ProfileID:  profileID,
		ResumeStep: ResumeStep(p, biz != nil),
		Email:      p.Email,
		Phone:      p.Phone,
	}
	if biz != nil {
		state.Business = biz.ID
	}
	s.cacheState(ctx, state)
	return state, nil
}

func (s *DefaultOnboardingService) SubmitEmail(ctx context.Context, profileID, email string) (*FlowState, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	p, err := s.ProfileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("profile not found: %w", err)
	}
	p.Email = email
	p.EmailConfirmed = false
	if err := s.ProfileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save email: %w", err)
	}
	return s.Status(ctx, profileID)
}

func (s *DefaultOnboardingService) ConfirmEmail(ctx context.Context, profileID string) (*FlowState, error) {
	p, err := s.ProfileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("profile not found: %w", err)
	}
	if p.Email == "" {
		return nil, fmt.Errorf("no email on file to confirm")
	}
	p.EmailConfirmed = true
	if err := s.ProfileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to confirm email: %w", err)
	}
	return s.Status(ctx, profileID)
}

// SubmitPhone parses the number against the configured default region and
// stores it in E.164 form.
func (s *DefaultOnboardingService) SubmitPhone(ctx context.Context, profileID, phone string) (*FlowState, error) {
	num, err := phonenumbers.Parse(phone, config.AppConfig.PhoneDefaultRegion)
	if err != nil {
		return nil, fmt.Errorf("invalid phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return nil, fmt.Errorf("invalid phone number")
	}

	p, err := s.ProfileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("profile not found: %w", err)
	}
	p.Phone = phonenumbers.Format(num, phonenumbers.E164)
	p.PhoneVerified = false
	if err := s.ProfileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save phone: %w", err)
	}
	return s.Status(ctx, profileID)
}

func (s *DefaultOnboardingService) VerifyPhone(ctx context.Context, profileID string) (*FlowState, error) {
	p, err := s.ProfileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("profile not found: %w", err)
	}
	if p.Phone == "" {
		return nil, fmt.Errorf("no phone number on file to verify")
	}
	p.PhoneVerified = true
	if err := s.ProfileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to verify phone: %w", err)
	}
	return s.Status(ctx, profileID)
}

func (s *DefaultOnboardingService) SubmitPersonalDetails(ctx context.Context, profileID, firstName, lastName string) (*FlowState, error) {
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("first and last name are required")
	}
	p, err := s.ProfileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("profile not found: %w", err)
	}
	p.FirstName = firstName
	p.LastName = lastName
	if err := s.ProfileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save personal details: %w", err)
	}
	return s.Status(ctx, profileID)
}

func (s *DefaultOnboardingService) SubmitBusiness(ctx context.Context, profileID, name, phone, address string, skip bool) (*FlowState, error) {
	if !skip && name == "" {
		return nil, fmt.Errorf("business name is required")
	}
	if skip {
		name = ""
	}

	existing, err := s.BusinessRepo.GetByOwner(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up business: %w", err)
	}
	if existing != nil {
		existing.Name = name
		existing.Phone = phone
		existing.Address = address
		if err := s.BusinessRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update business: %w", err)
		}
		return s.Status(ctx, profileID)
	}

	biz := &models.Business{
		ID:             uuid.New().String(),
		OwnerProfileID: profileID,
		Name:           name,
		Phone:          phone,
		Address:        address,
		CreatedAt:      time.Now(),
	}
	if err := s.BusinessRepo.Create(ctx, biz); err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}
	return s.Status(ctx, profileID)
}

// cacheState stores the latest flow snapshot for quick wizard reloads.
func (s *DefaultOnboardingService) cacheState(ctx context.Context, state *FlowState) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(state)
	if err != nil {
		return
	}
	key := "onboarding:" + state.ProfileID
	if err := s.Cache.Set(ctx, key, data, 30*time.Minute).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache onboarding state", zap.String("profileID", state.ProfileID), zap.Error(err))
	}
}
