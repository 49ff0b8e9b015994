package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	profileRepo "glowdesk/database/repository/profile"
	"glowdesk/models"
	"glowdesk/utils"
)

const tokenTTL = 72 * time.Hour

// AuthResult bundles a profile with its session token.
type AuthResult struct {
	Profile models.Profile `json:"profile"`
	Token   string         `json:"token"`
}

// AuthService handles profile registration and login.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
}

// DefaultAuthService is the default implementation.
type DefaultAuthService struct {
	Repo profileRepo.ProfileRepository
}

func (s *DefaultAuthService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	logger := utils.GetLogger()

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	p := &models.Profile{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		logger.Error("failed to create profile", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	token, err := utils.GenerateToken(p.ID, p.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResult{Profile: *p, Token: token}, nil
}

func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	p, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(p.ID, p.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResult{Profile: *p, Token: token}, nil
}

func (s *DefaultAuthService) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("profile not found: %w", err)
	}
	return p, nil
}
