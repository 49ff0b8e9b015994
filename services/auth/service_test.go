package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowdesk/config"
	"glowdesk/models"
	"glowdesk/utils"
)

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *models.Profile) error {
	cp := *p
	f.profiles[p.ID] = &cp
	return nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, assert.AnError
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, p *models.Profile) error {
	cp := *p
	f.profiles[p.ID] = &cp
	return nil
}

func newTestService() *DefaultAuthService {
	config.AppConfig.JWTSecret = "test-secret"
	return &DefaultAuthService{Repo: &fakeProfileRepo{profiles: map[string]*models.Profile{}}}
}

func TestRegister(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	result, err := svc.Register(ctx, "owner@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Profile.ID)
	assert.NotEmpty(t, result.Token)
	assert.NotEqual(t, "hunter2hunter2", result.Profile.PasswordHash)

	// The token subject resolves back to the profile.
	id, err := utils.ExtractIDFromToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Profile.ID, id)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, "owner@example.com", "hunter2hunter2")
		assert.Error(t, err)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := svc.Register(ctx, "other@example.com", "short")
		assert.Error(t, err)
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "hunter2hunter2")
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "owner@example.com", "hunter2hunter2")
	require.NoError(t, err)

	result, err := svc.Login(ctx, "owner@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "owner@example.com", "wrong-password")
		assert.Error(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "hunter2hunter2")
		assert.Error(t, err)
	})
}
