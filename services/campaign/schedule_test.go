package campaign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowdesk/models"
)

func window(now time.Time, enabled ...bool) []models.ScheduleDay {
	w := NewScheduleWindow(now)
	for i := range w {
		w[i].Enabled = i < len(enabled) && enabled[i]
	}
	return w
}

func TestNewScheduleWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.Local)
	w := NewScheduleWindow(now)

	require.Len(t, w, 7)
	assert.Equal(t, "2026-03-10", w[0].Date)
	assert.Equal(t, "2026-03-16", w[6].Date)
	for _, day := range w {
		assert.True(t, day.Enabled)
	}
	assert.NoError(t, ValidateWindow(w))
}

func TestValidateWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	t.Run("wrong length", func(t *testing.T) {
		assert.Error(t, ValidateWindow(NewScheduleWindow(now)[:5]))
		assert.Error(t, ValidateWindow(nil))
	})

	t.Run("bad date", func(t *testing.T) {
		w := NewScheduleWindow(now)
		w[3].Date = "not-a-date"
		assert.Error(t, ValidateWindow(w))
	})

	t.Run("non ascending", func(t *testing.T) {
		w := NewScheduleWindow(now)
		w[2].Date, w[3].Date = w[3].Date, w[2].Date
		assert.Error(t, ValidateWindow(w))
	})

	t.Run("duplicate date", func(t *testing.T) {
		w := NewScheduleWindow(now)
		w[4].Date = w[3].Date
		assert.Error(t, ValidateWindow(w))
	})
}

func TestBoostStillValid(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	t.Run("all days disabled", func(t *testing.T) {
		assert.False(t, BoostStillValid(window(now), now))
	})

	t.Run("only today enabled is still valid until midnight", func(t *testing.T) {
		assert.True(t, BoostStillValid(window(now, true), now))
	})

	t.Run("future day enabled", func(t *testing.T) {
		assert.True(t, BoostStillValid(window(now, false, false, false, false, false, false, true), now))
	})

	t.Run("window fully in the past", func(t *testing.T) {
		old := NewScheduleWindow(now.AddDate(0, 0, -10))
		assert.False(t, BoostStillValid(old, now))
	})

	t.Run("yesterday only", func(t *testing.T) {
		w := []models.ScheduleDay{
			{Date: "2026-03-09", Enabled: true},
			{Date: "2026-03-10", Enabled: false},
		}
		assert.False(t, BoostStillValid(w, now))
	})
}

func TestEnabledEdges(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	first, last := enabledEdges(window(now, false, true, true, false, true))
	assert.Equal(t, "2026-03-11", first)
	assert.Equal(t, "2026-03-14", last)

	first, last = enabledEdges(window(now))
	assert.Empty(t, first)
	assert.Empty(t, last)
}

func TestEffectiveActive(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	boost := func(schedule []models.ScheduleDay) *models.Campaign {
		return &models.Campaign{
			Subtype:  models.SubtypeBoost,
			IsActive: true,
			Settings: models.CampaignSettings{
				Subtype: models.SubtypeBoost,
				Boost:   &models.BoostSettings{Schedule: schedule},
			},
		}
	}

	t.Run("live boost", func(t *testing.T) {
		assert.True(t, EffectiveActive(boost(NewScheduleWindow(now)), now))
	})

	t.Run("stored flag true but schedule expired", func(t *testing.T) {
		c := boost(NewScheduleWindow(now.AddDate(0, 0, -10)))
		assert.True(t, c.IsActive)
		assert.False(t, EffectiveActive(c, now))
	})

	t.Run("stored flag false wins", func(t *testing.T) {
		c := boost(NewScheduleWindow(now))
		c.IsActive = false
		assert.False(t, EffectiveActive(c, now))
	})

	t.Run("archived is never active", func(t *testing.T) {
		c := boost(NewScheduleWindow(now))
		archived := now.Add(-time.Hour)
		c.ArchivedAt = &archived
		assert.False(t, EffectiveActive(c, now))
	})

	t.Run("non boost subtypes trust the stored flag", func(t *testing.T) {
		c := &models.Campaign{Subtype: models.SubtypeReminder, IsActive: true}
		assert.True(t, EffectiveActive(c, now))
	})

	t.Run("nil campaign", func(t *testing.T) {
		assert.False(t, EffectiveActive(nil, now))
	})
}
