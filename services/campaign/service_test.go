package campaign

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowdesk/models"
	"glowdesk/services/tasks"
)

type fakeCampaignRepo struct {
	campaigns map[string]*models.Campaign
	metrics   map[string]*models.CampaignMetrics

	findActiveErr error
	upsertCalls   int
	setActive     map[string]bool
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{
		campaigns: map[string]*models.Campaign{},
		metrics:   map[string]*models.CampaignMetrics{},
		setActive: map[string]bool{},
	}
}

func (f *fakeCampaignRepo) Upsert(ctx context.Context, c *models.Campaign) error {
	f.upsertCalls++
	cp := *c
	f.campaigns[c.ID] = &cp
	return nil
}

func (f *fakeCampaignRepo) GetByID(ctx context.Context, businessID, id string) (*models.Campaign, error) {
	c, ok := f.campaigns[id]
	if !ok {
		return nil, fmt.Errorf("campaign %s not found", id)
	}
	return c, nil
}

func (f *fakeCampaignRepo) ListByBusiness(ctx context.Context, businessID, subtype string) ([]models.Campaign, error) {
	var out []models.Campaign
	for _, c := range f.campaigns {
		if c.Archived() || (subtype != "" && c.Subtype != subtype) {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCampaignRepo) FindActiveBySubtype(ctx context.Context, businessID, subtype, excludeID string) ([]models.Campaign, error) {
	if f.findActiveErr != nil {
		return nil, f.findActiveErr
	}
	var out []models.Campaign
	for _, c := range f.campaigns {
		if c.ID == excludeID || c.Archived() || !c.IsActive || c.Subtype != subtype {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCampaignRepo) SetActive(ctx context.Context, businessID, id string, active bool) error {
	f.setActive[id] = active
	if c, ok := f.campaigns[id]; ok {
		c.IsActive = active
	}
	return nil
}

func (f *fakeCampaignRepo) Archive(ctx context.Context, businessID, id string) error {
	c, ok := f.campaigns[id]
	if !ok {
		return fmt.Errorf("campaign %s not found", id)
	}
	now := time.Now()
	c.ArchivedAt = &now
	return nil
}

func (f *fakeCampaignRepo) ListActiveBoost(ctx context.Context) ([]models.Campaign, error) {
	var out []models.Campaign
	for _, c := range f.campaigns {
		if c.IsActive && !c.Archived() && c.Subtype == models.SubtypeBoost {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCampaignRepo) CreateMetrics(ctx context.Context, m *models.CampaignMetrics) error {
	cp := *m
	f.metrics[m.CampaignID] = &cp
	return nil
}

func (f *fakeCampaignRepo) GetMetrics(ctx context.Context, campaignID string) (*models.CampaignMetrics, error) {
	return f.metrics[campaignID], nil
}

type fakeClientRepo struct {
	clients []models.Client
}

func (f *fakeClientRepo) Create(ctx context.Context, client *models.Client) error       { return nil }
func (f *fakeClientRepo) CreateMany(ctx context.Context, clients []models.Client) error { return nil }
func (f *fakeClientRepo) GetByID(ctx context.Context, businessID, id string) (*models.Client, error) {
	return nil, fmt.Errorf("not found")
}
func (f *fakeClientRepo) ListByBusiness(ctx context.Context, businessID string) ([]models.Client, error) {
	return f.clients, nil
}
func (f *fakeClientRepo) CountByBusiness(ctx context.Context, businessID string) (int64, error) {
	return int64(len(f.clients)), nil
}
func (f *fakeClientRepo) Update(ctx context.Context, client *models.Client) error { return nil }
func (f *fakeClientRepo) Delete(ctx context.Context, businessID, id string) error { return nil }

type fakeAppointmentRepo struct {
	completedSince  []string
	futureScheduled []string
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error { return nil }
func (f *fakeAppointmentRepo) Update(ctx context.Context, appt *models.Appointment) error { return nil }
func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, businessID, id, status string) error {
	return nil
}
func (f *fakeAppointmentRepo) GetByID(ctx context.Context, businessID, id string) (*models.Appointment, error) {
	return nil, fmt.Errorf("not found")
}
func (f *fakeAppointmentRepo) ListByRange(ctx context.Context, businessID string, from, to time.Time) ([]models.Appointment, error) {
	return nil, nil
}
func (f *fakeAppointmentRepo) Delete(ctx context.Context, businessID, id string) error { return nil }
func (f *fakeAppointmentRepo) ClientIDsCompletedSince(ctx context.Context, businessID string, since time.Time) ([]string, error) {
	return f.completedSince, nil
}
func (f *fakeAppointmentRepo) ClientIDsWithFutureScheduled(ctx context.Context, businessID string, after time.Time) ([]string, error) {
	return f.futureScheduled, nil
}

type spyEnqueuer struct {
	enqueued []*asynq.Task
	err      error
}

func (s *spyEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.enqueued = append(s.enqueued, task)
	return &asynq.TaskInfo{}, nil
}

func newServiceUnderTest(repo *fakeCampaignRepo, now time.Time) (*DefaultCampaignService, *spyEnqueuer) {
	spy := &spyEnqueuer{}
	svc := &DefaultCampaignService{
		CampaignRepo: repo,
		ClientRepo: &fakeClientRepo{clients: []models.Client{
			{ID: "client-1"}, {ID: "client-2"}, {ID: "client-3"},
		}},
		AppointmentRepo: &fakeAppointmentRepo{},
		Tasks:           spy,
		Now:             func() time.Time { return now },
	}
	return svc, spy
}

func boostInput(now time.Time) SaveBoostInput {
	return SaveBoostInput{
		Name: "Spring boost",
		Settings: models.BoostSettings{
			TargetingOption: models.TargetingAll,
			DiscountPercent: 20,
			Schedule:        NewScheduleWindow(now),
		},
	}
}

func TestSaveBoostCreates(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	repo := newFakeCampaignRepo()
	svc, _ := newServiceUnderTest(repo, now)

	view, err := svc.SaveBoost(context.Background(), "biz-1", boostInput(now))
	require.NoError(t, err)

	assert.NotEmpty(t, view.Campaign.ID)
	assert.Equal(t, models.SubtypeBoost, view.Campaign.Subtype)
	assert.Equal(t, "email", view.Campaign.CampaignType)
	assert.True(t, view.Campaign.IsActive)
	assert.True(t, view.EffectiveActive)
	assert.Equal(t, "2026-03-10", view.Campaign.StartDate)
	assert.Equal(t, "2026-03-16", view.Campaign.EndDate)

	require.NotNil(t, view.Metrics)
	assert.Equal(t, 3, view.Metrics.UsersTargeted)
	assert.Equal(t, 1, repo.upsertCalls)
}

func TestSaveBoostEdgesShrinkWithDisabledDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	repo := newFakeCampaignRepo()
	svc, _ := newServiceUnderTest(repo, now)

	input := boostInput(now)
	input.Settings.Schedule[0].Enabled = false
	input.Settings.Schedule[6].Enabled = false

	view, err := svc.SaveBoost(context.Background(), "biz-1", input)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-11", view.Campaign.StartDate)
	assert.Equal(t, "2026-03-15", view.Campaign.EndDate)
}

func TestSaveBoostRejectsSecondActive(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	repo := newFakeCampaignRepo()
	svc, _ := newServiceUnderTest(repo, now)

	_, err := svc.SaveBoost(context.Background(), "biz-1", boostInput(now))
	require.NoError(t, err)

	_, err = svc.SaveBoost(context.Background(), "biz-1", boostInput(now))
	assert.ErrorIs(t, err, ErrBoostConflict)
	assert.Equal(t, 1, repo.upsertCalls)
}

func TestSaveBoostAllowsReplacingExpiredBoost(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	repo := newFakeCampaignRepo()
	svc, _ := newServiceUnderTest(repo, now)

	// A boost whose stored flag is stale: flagged active, window long past.
	repo.campaigns["stale"] = &models.Campaign{
		ID:       "stale",
		Subtype:  models.SubtypeBoost,
		IsActive: true,
		Settings: models.CampaignSettings{
			Subtype: models.SubtypeBoost,
			Boost:   &models.BoostSettings{Schedule: NewScheduleWindow(now.AddDate(0, 0, -30))},
		},
	}

	_, err := svc.SaveBoost(context.Background(), "biz-1", boostInput(now))
	assert.NoError(t, err)
}

func TestSaveBoostFailsClosedOnLookupError(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	repo := newFakeCampaignRepo()
	repo.findActiveErr = fmt.Errorf("connection reset")
	svc, _ := newServiceUnderTest(repo, now)

	_, err := svc.SaveBoost(context.Background(), "biz-1", boostInput(now))
	assert.ErrorIs(t, err, ErrBoostConflict)
	assert.Zero(t, repo.upsertCalls)
	assert.Empty(t, repo.metrics)
}

func TestSaveBoostRejectsDeadWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	repo := newFakeCampaignRepo()
	svc, _ := newServiceUnderTest(repo, now)

	input := boostInput(now)
	for i := range input.Settings.Schedule {
		input.Settings.Schedule[i].Enabled = false
	}

	_, err := svc.SaveBoost(context.Background(), "biz-1", input)
	assert.ErrorIs(t, err, ErrNoEnabledDays)
	assert.Zero(t, repo.upsertCalls)
}

func TestSaveBoostUpdatePreservesCreatedAt(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	repo := newFakeCampaignRepo()
	svc, _ := newServiceUnderTest(repo, now)

	created, err := svc.SaveBoost(context.Background(), "biz-1", boostInput(now))
	require.NoError(t, err)

	later := now.Add(48 * time.Hour)
	svc.Now = func() time.Time { return later }

	input := boostInput(later)
	input.ID = created.Campaign.ID
	input.Name = "Renamed boost"

	updated, err := svc.SaveBoost(context.Background(), "biz-1", input)
	require.NoError(t, err)
	assert.Equal(t, created.Campaign.CreatedAt, updated.Campaign.CreatedAt)
	assert.Equal(t, later, updated.Campaign.UpdatedAt)
	assert.Equal(t, "Renamed boost", updated.Campaign.Name)
	assert.Equal(t, 2, repo.upsertCalls)
}

func TestSaveBoostRejectsUpdateToArchivedCampaign(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	repo := newFakeCampaignRepo()
	svc, _ := newServiceUnderTest(repo, now)

	created, err := svc.SaveBoost(context.Background(), "biz-1", boostInput(now))
	require.NoError(t, err)
	require.NoError(t, repo.Archive(context.Background(), "biz-1", created.Campaign.ID))

	input := boostInput(now)
	input.ID = created.Campaign.ID

	_, err = svc.SaveBoost(context.Background(), "biz-1", input)
	require.Error(t, err)
	assert.Equal(t, 1, repo.upsertCalls)
	assert.True(t, repo.campaigns[created.Campaign.ID].Archived())
}

func TestSaveBoostRequiresThresholdForInactiveTargeting(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	repo := newFakeCampaignRepo()
	svc, _ := newServiceUnderTest(repo, now)

	input := boostInput(now)
	input.Settings.TargetingOption = models.TargetingInactive
	input.Settings.DaysThreshold = 0

	_, err := svc.SaveBoost(context.Background(), "biz-1", input)
	assert.Error(t, err)
	assert.Zero(t, repo.upsertCalls)
}

func TestAudienceSize(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	svc := &DefaultCampaignService{
		ClientRepo: &fakeClientRepo{clients: []models.Client{
			{ID: "recent-visit"}, {ID: "future-booking"}, {ID: "both"}, {ID: "dormant"}, {ID: "never-visited"},
		}},
		AppointmentRepo: &fakeAppointmentRepo{
			completedSince:  []string{"recent-visit", "both"},
			futureScheduled: []string{"future-booking", "both"},
		},
		Now: func() time.Time { return now },
	}

	t.Run("all counts every client", func(t *testing.T) {
		n, err := svc.AudienceSize(context.Background(), "biz-1", models.BoostSettings{
			TargetingOption: models.TargetingAll,
		}, now)
		require.NoError(t, err)
		assert.Equal(t, 5, n)
	})

	t.Run("inactive excludes the union of recent and upcoming", func(t *testing.T) {
		n, err := svc.AudienceSize(context.Background(), "biz-1", models.BoostSettings{
			TargetingOption: models.TargetingInactive,
			DaysThreshold:   30,
		}, now)
		require.NoError(t, err)
		// Only "dormant" and "never-visited" remain.
		assert.Equal(t, 2, n)
	})

	t.Run("unknown option", func(t *testing.T) {
		_, err := svc.AudienceSize(context.Background(), "biz-1", models.BoostSettings{
			TargetingOption: "vip",
		}, now)
		assert.Error(t, err)
	})
}

func TestSendTestEmail(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	repo := newFakeCampaignRepo()
	svc, spy := newServiceUnderTest(repo, now)

	view, err := svc.SaveBoost(context.Background(), "biz-1", boostInput(now))
	require.NoError(t, err)

	err = svc.SendTestEmail(context.Background(), "biz-1", view.Campaign.ID, "owner@example.com")
	require.NoError(t, err)
	require.Len(t, spy.enqueued, 1)
	assert.Equal(t, tasks.TypeTestEmailSend, spy.enqueued[0].Type())

	t.Run("missing email", func(t *testing.T) {
		err := svc.SendTestEmail(context.Background(), "biz-1", view.Campaign.ID, "")
		assert.Error(t, err)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		err := svc.SendTestEmail(context.Background(), "biz-1", "missing", "owner@example.com")
		assert.Error(t, err)
	})
}

func TestExpirySweep(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	repo := newFakeCampaignRepo()
	svc, _ := newServiceUnderTest(repo, now)

	repo.campaigns["live"] = &models.Campaign{
		ID: "live", BusinessID: "biz-1", Subtype: models.SubtypeBoost, IsActive: true,
		Settings: models.CampaignSettings{
			Subtype: models.SubtypeBoost,
			Boost:   &models.BoostSettings{Schedule: NewScheduleWindow(now)},
		},
	}
	repo.campaigns["stale"] = &models.Campaign{
		ID: "stale", BusinessID: "biz-1", Subtype: models.SubtypeBoost, IsActive: true,
		Settings: models.CampaignSettings{
			Subtype: models.SubtypeBoost,
			Boost:   &models.BoostSettings{Schedule: NewScheduleWindow(now.AddDate(0, 0, -30))},
		},
	}

	flipped, err := svc.ExpirySweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, flipped)

	active, ok := repo.setActive["stale"]
	require.True(t, ok)
	assert.False(t, active)
	_, touchedLive := repo.setActive["live"]
	assert.False(t, touchedLive)
}
