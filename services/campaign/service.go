package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	appointmentRepo "glowdesk/database/repository/appointment"
	campaignRepo "glowdesk/database/repository/campaign"
	clientRepo "glowdesk/database/repository/client"
	"glowdesk/models"
	"glowdesk/services/tasks"
	"glowdesk/utils"
)

// TaskEnqueuer abstracts the asynq client for tests.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// SaveBoostInput carries everything needed to create or update a boost
// campaign. A non-empty ID updates the existing campaign.
type SaveBoostInput struct {
	ID           string               `json:"id,omitempty"`
	Name         string               `json:"name"`
	CampaignType string               `json:"campaign_type"`
	Settings     models.BoostSettings `json:"settings"`
}

// CampaignView is a campaign with its derived activity and metrics attached.
// EffectiveActive, not the stored flag, is the truth the caller displays.
type CampaignView struct {
	Campaign        models.Campaign         `json:"campaign"`
	EffectiveActive bool                    `json:"effective_active"`
	Metrics         *models.CampaignMetrics `json:"metrics,omitempty"`
}

// CampaignService manages marketing campaigns.
type CampaignService interface {
	// SaveBoost validates and upserts a boost campaign, enforcing the
	// single-active-boost rule and sizing the audience as a side effect.
	SaveBoost(ctx context.Context, businessID string, input SaveBoostInput) (*CampaignView, error)
	// Get retrieves one campaign with derived activity and metrics.
	Get(ctx context.Context, businessID, id string) (*CampaignView, error)
	// List retrieves non-archived campaigns with derived activity.
	List(ctx context.Context, businessID, subtype string) ([]CampaignView, error)
	// Deactivate clears the stored active flag.
	Deactivate(ctx context.Context, businessID, id string) error
	// Archive soft-deletes a campaign.
	Archive(ctx context.Context, businessID, id string) error
	// SendTestEmail queues a test email for a campaign.
	SendTestEmail(ctx context.Context, businessID, id, email string) error
	// ExpirySweep flips stale stored active flags on expired boost
	// campaigns and returns how many were flipped.
	ExpirySweep(ctx context.Context) (int, error)
}

// DefaultCampaignService is the default implementation.
type DefaultCampaignService struct {
	CampaignRepo    campaignRepo.CampaignRepository
	ClientRepo      clientRepo.ClientRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	Tasks           TaskEnqueuer

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultCampaignService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SaveBoost creates or updates a boost campaign.
//
// The exclusivity pre-check fails closed: if the lookup errors, the save is
// rejected as a conflict rather than risking two active boost campaigns.
// No write of any kind happens on a rejected save.
func (s *DefaultCampaignService) SaveBoost(ctx context.Context, businessID string, input SaveBoostInput) (*CampaignView, error) {
	logger := utils.GetLogger()
	now := s.now()

	if input.Name == "" {
		return nil, fmt.Errorf("campaign name is required")
	}
	if err := ValidateWindow(input.Settings.Schedule); err != nil {
		return nil, err
	}
	if !BoostStillValid(input.Settings.Schedule, now) {
		return nil, ErrNoEnabledDays
	}
	if input.Settings.TargetingOption == models.TargetingInactive && input.Settings.DaysThreshold <= 0 {
		return nil, fmt.Errorf("days threshold must be positive for inactive targeting")
	}

	existing, err := s.CampaignRepo.FindActiveBySubtype(ctx, businessID, models.SubtypeBoost, input.ID)
	if err != nil {
		logger.Error("SaveBoost: exclusivity lookup failed, rejecting save",
			zap.String("businessID", businessID), zap.Error(err))
		return nil, ErrBoostConflict
	}
	for i := range existing {
		if EffectiveActive(&existing[i], now) {
			return nil, ErrBoostConflict
		}
	}

	audience, err := s.AudienceSize(ctx, businessID, input.Settings, now)
	if err != nil {
		return nil, err
	}

	firstDay, lastDay := enabledEdges(input.Settings.Schedule)

	isNew := input.ID == ""
	c := models.Campaign{
		ID:           input.ID,
		BusinessID:   businessID,
		CampaignType: input.CampaignType,
		Subtype:      models.SubtypeBoost,
		Name:         input.Name,
		IsActive:     BoostStillValid(input.Settings.Schedule, now),
		Settings: models.CampaignSettings{
			Subtype: models.SubtypeBoost,
			Boost:   &input.Settings,
		},
		StartDate: firstDay,
		EndDate:   lastDay,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if c.CampaignType == "" {
		c.CampaignType = "email"
	}
	if isNew {
		c.ID = uuid.New().String()
	} else {
		prev, err := s.CampaignRepo.GetByID(ctx, businessID, input.ID)
		if err != nil {
			return nil, fmt.Errorf("campaign not found: %w", err)
		}
		// Upsert replaces the whole document, so writing over an
		// archived campaign would clear archived_at and revive it.
		if prev.Archived() {
			return nil, fmt.Errorf("campaign not found: %s has been archived", input.ID)
		}
		c.CreatedAt = prev.CreatedAt
	}

	if err := s.CampaignRepo.Upsert(ctx, &c); err != nil {
		logger.Error("SaveBoost: failed to save campaign", zap.String("campaignID", c.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save campaign: %w", err)
	}

	var metrics *models.CampaignMetrics
	if isNew {
		metrics = &models.CampaignMetrics{
			CampaignID:    c.ID,
			UsersTargeted: audience,
		}
		if err := s.CampaignRepo.CreateMetrics(ctx, metrics); err != nil {
			logger.Error("SaveBoost: failed to create metrics", zap.String("campaignID", c.ID), zap.Error(err))
		}
	} else {
		metrics, _ = s.CampaignRepo.GetMetrics(ctx, c.ID)
	}

	logger.Info("Saved boost campaign",
		zap.String("campaignID", c.ID),
		zap.String("businessID", businessID),
		zap.Int("audience", audience))

	return &CampaignView{
		Campaign:        c,
		EffectiveActive: EffectiveActive(&c, now),
		Metrics:         metrics,
	}, nil
}

func (s *DefaultCampaignService) Get(ctx context.Context, businessID, id string) (*CampaignView, error) {
	c, err := s.CampaignRepo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, fmt.Errorf("campaign not found: %w", err)
	}
	metrics, err := s.CampaignRepo.GetMetrics(ctx, id)
	if err != nil {
		utils.GetLogger().Warn("failed to load campaign metrics", zap.String("campaignID", id), zap.Error(err))
	}
	return &CampaignView{
		Campaign:        *c,
		EffectiveActive: EffectiveActive(c, s.now()),
		Metrics:         metrics,
	}, nil
}

func (s *DefaultCampaignService) List(ctx context.Context, businessID, subtype string) ([]CampaignView, error) {
	campaigns, err := s.CampaignRepo.ListByBusiness(ctx, businessID, subtype)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	now := s.now()
	views := make([]CampaignView, 0, len(campaigns))
	for i := range campaigns {
		metrics, _ := s.CampaignRepo.GetMetrics(ctx, campaigns[i].ID)
		views = append(views, CampaignView{
			Campaign:        campaigns[i],
			EffectiveActive: EffectiveActive(&campaigns[i], now),
			Metrics:         metrics,
		})
	}
	return views, nil
}

func (s *DefaultCampaignService) Deactivate(ctx context.Context, businessID, id string) error {
	if err := s.CampaignRepo.SetActive(ctx, businessID, id, false); err != nil {
		return fmt.Errorf("failed to deactivate campaign: %w", err)
	}
	return nil
}

func (s *DefaultCampaignService) Archive(ctx context.Context, businessID, id string) error {
	if err := s.CampaignRepo.Archive(ctx, businessID, id); err != nil {
		return fmt.Errorf("failed to archive campaign: %w", err)
	}
	return nil
}

// SendTestEmail queues delivery of a test email for the campaign.
func (s *DefaultCampaignService) SendTestEmail(ctx context.Context, businessID, id, email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	c, err := s.CampaignRepo.GetByID(ctx, businessID, id)
	if err != nil {
		return fmt.Errorf("campaign not found: %w", err)
	}

	task, err := tasks.NewTestEmailTask(models.TestEmailPayload{
		Email:    email,
		Campaign: c.Name,
		Settings: c.Settings,
	})
	if err != nil {
		return fmt.Errorf("failed to build test email task: %w", err)
	}
	if _, err := s.Tasks.Enqueue(task); err != nil {
		return fmt.Errorf("failed to queue test email: %w", err)
	}
	return nil
}

// ExpirySweep converges stale stored flags with computed validity. A boost
// campaign whose last enabled day has passed keeps is_active=true on disk
// until this sweep (or a save) rewrites it; reads never trust the flag alone.
func (s *DefaultCampaignService) ExpirySweep(ctx context.Context) (int, error) {
	logger := utils.GetLogger()

	campaigns, err := s.CampaignRepo.ListActiveBoost(ctx)
	if err != nil {
		return 0, fmt.Errorf("expiry sweep query failed: %w", err)
	}

	now := s.now()
	flipped := 0
	for i := range campaigns {
		c := &campaigns[i]
		if EffectiveActive(c, now) {
			continue
		}
		if err := s.CampaignRepo.SetActive(ctx, c.BusinessID, c.ID, false); err != nil {
			logger.Error("ExpirySweep: failed to flip stale flag",
				zap.String("campaignID", c.ID), zap.Error(err))
			continue
		}
		flipped++
	}

	if flipped > 0 {
		logger.Info("Expiry sweep flipped stale campaigns", zap.Int("count", flipped))
	}
	return flipped, nil
}
