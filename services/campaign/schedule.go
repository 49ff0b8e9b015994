package campaign

import (
	"fmt"
	"time"

	"glowdesk/models"
)

const scheduleWindowDays = 7

const dateLayout = "2006-01-02"

// NewScheduleWindow builds the sliding 7-day window starting at the local
// calendar day of now, every day enabled.
func NewScheduleWindow(now time.Time) []models.ScheduleDay {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	window := make([]models.ScheduleDay, scheduleWindowDays)
	for i := range window {
		window[i] = models.ScheduleDay{
			Date:    today.AddDate(0, 0, i).Format(dateLayout),
			Enabled: true,
		}
	}
	return window
}

// ValidateWindow enforces the window shape: exactly 7 entries, dates parse
// and ascend strictly.
func ValidateWindow(window []models.ScheduleDay) error {
	if len(window) != scheduleWindowDays {
		return fmt.Errorf("schedule must contain exactly %d days, got %d", scheduleWindowDays, len(window))
	}
	var prev time.Time
	for i, day := range window {
		d, err := time.ParseInLocation(dateLayout, day.Date, time.Local)
		if err != nil {
			return fmt.Errorf("schedule day %d has invalid date %q", i, day.Date)
		}
		if i > 0 && !d.After(prev) {
			return fmt.Errorf("schedule dates must be strictly ascending")
		}
		prev = d
	}
	return nil
}

// BoostStillValid reports whether a boost schedule still has life in it:
// the latest enabled day, taken to the last instant of that local day, must
// be strictly after now. An all-disabled window is never valid.
func BoostStillValid(window []models.ScheduleDay, now time.Time) bool {
	var latest time.Time
	found := false
	for _, day := range window {
		if !day.Enabled {
			continue
		}
		d, err := time.ParseInLocation(dateLayout, day.Date, now.Location())
		if err != nil {
			continue
		}
		if !found || d.After(latest) {
			latest = d
			found = true
		}
	}
	if !found {
		return false
	}

	endOfDay := time.Date(latest.Year(), latest.Month(), latest.Day(), 23, 59, 59, 999000000, now.Location())
	return endOfDay.After(now)
}

// enabledEdges returns the first and last enabled dates of the window.
// Days toggled off at the edges shrink the effective campaign period.
func enabledEdges(window []models.ScheduleDay) (first, last string) {
	for _, day := range window {
		if !day.Enabled {
			continue
		}
		if first == "" || day.Date < first {
			first = day.Date
		}
		if day.Date > last {
			last = day.Date
		}
	}
	return first, last
}

// EffectiveActive derives the activity truth for a campaign. For boost
// campaigns the date computation is authoritative; the stored is_active flag
// is only a save-time snapshot and can go stale.
func EffectiveActive(c *models.Campaign, now time.Time) bool {
	if c == nil || !c.IsActive || c.Archived() {
		return false
	}
	if c.Subtype != models.SubtypeBoost {
		return true
	}
	if c.Settings.Boost == nil {
		return false
	}
	return BoostStillValid(c.Settings.Boost.Schedule, now)
}
