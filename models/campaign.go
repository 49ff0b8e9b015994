package models

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Campaign subtypes. Subtypes select the settings payload shape; "boost"
// additionally enforces at most one non-archived active campaign per business.
const (
	SubtypeBoost      = "boost"
	SubtypeLastMinute = "last_minute"
	SubtypeReminder   = "reminder"
)

// Targeting options for boost campaigns.
const (
	TargetingAll      = "all"
	TargetingInactive = "inactive"
)

// ScheduleDay is one entry of a campaign's sliding 7-day window.
// Date is a local calendar date in "2006-01-02" form.
type ScheduleDay struct {
	Date    string `bson:"date" json:"date"`
	Enabled bool   `bson:"enabled" json:"enabled"`
}

// BoostSettings is the settings payload for "boost" campaigns.
type BoostSettings struct {
	TargetingOption string        `bson:"targeting_option" json:"targeting_option"` // "all" or "inactive"
	DaysThreshold   int           `bson:"days_threshold,omitempty" json:"days_threshold,omitempty"`
	DiscountPercent int           `bson:"discount_percent" json:"discount_percent"`
	ServiceIDs      []string      `bson:"service_ids,omitempty" json:"service_ids,omitempty"`
	Schedule        []ScheduleDay `bson:"schedule" json:"schedule"`
}

// LastMinuteSettings is the settings payload for "last_minute" campaigns.
type LastMinuteSettings struct {
	HoursBefore     int      `bson:"hours_before" json:"hours_before"`
	DiscountPercent int      `bson:"discount_percent" json:"discount_percent"`
	ServiceIDs      []string `bson:"service_ids,omitempty" json:"service_ids,omitempty"`
}

// ReminderSettings is the settings payload for "reminder" campaigns.
type ReminderSettings struct {
	DaysAfter int    `bson:"days_after" json:"days_after"`
	Message   string `bson:"message,omitempty" json:"message,omitempty"`
}

// CampaignSettings is a tagged union keyed by Subtype: exactly one payload
// pointer is non-nil, matching the tag.
type CampaignSettings struct {
	Subtype    string              `bson:"subtype" json:"subtype"`
	Boost      *BoostSettings      `bson:"boost,omitempty" json:"boost,omitempty"`
	LastMinute *LastMinuteSettings `bson:"last_minute,omitempty" json:"last_minute,omitempty"`
	Reminder   *ReminderSettings   `bson:"reminder,omitempty" json:"reminder,omitempty"`
}

// Validate checks that the payload present matches the subtype tag.
func (s CampaignSettings) Validate() error {
	switch s.Subtype {
	case SubtypeBoost:
		if s.Boost == nil || s.LastMinute != nil || s.Reminder != nil {
			return fmt.Errorf("settings payload does not match subtype %q", s.Subtype)
		}
	case SubtypeLastMinute:
		if s.LastMinute == nil || s.Boost != nil || s.Reminder != nil {
			return fmt.Errorf("settings payload does not match subtype %q", s.Subtype)
		}
	case SubtypeReminder:
		if s.Reminder == nil || s.Boost != nil || s.LastMinute != nil {
			return fmt.Errorf("settings payload does not match subtype %q", s.Subtype)
		}
	default:
		return fmt.Errorf("unknown campaign subtype %q", s.Subtype)
	}
	return nil
}

// UnmarshalJSON decodes the union and rejects payloads that do not match the
// subtype tag.
func (s *CampaignSettings) UnmarshalJSON(data []byte) error {
	type alias CampaignSettings
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = CampaignSettings(raw)
	return s.Validate()
}

// UnmarshalBSON applies the same subtype check to documents read from
// storage, so a corrupted settings document fails loudly at decode time
// instead of silently reading as inactive.
func (s *CampaignSettings) UnmarshalBSON(data []byte) error {
	type alias CampaignSettings
	var raw alias
	if err := bson.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = CampaignSettings(raw)
	return s.Validate()
}

// Campaign is a marketing campaign row. IsActive is a snapshot written at
// save time; the read path derives effective activity from the schedule
// instead of trusting the stored flag.
type Campaign struct {
	ID           string           `bson:"id" json:"id"`
	BusinessID   string           `bson:"business_id" json:"business_id"`
	CampaignType string           `bson:"campaign_type" json:"campaign_type"` // e.g. "email"
	Subtype      string           `bson:"campaign_subtype" json:"campaign_subtype"`
	Name         string           `bson:"name" json:"name"`
	IsActive     bool             `bson:"is_active" json:"is_active"`
	Settings     CampaignSettings `bson:"settings" json:"settings"`
	StartDate    string           `bson:"start_date,omitempty" json:"start_date,omitempty"` // first enabled day
	EndDate      string           `bson:"end_date,omitempty" json:"end_date,omitempty"`     // last enabled day
	ArchivedAt   *time.Time       `bson:"archived_at,omitempty" json:"archived_at,omitempty"`
	CreatedAt    time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time        `bson:"updated_at" json:"updated_at"`
}

// Archived reports whether the campaign has been soft-deleted.
func (c Campaign) Archived() bool {
	return c.ArchivedAt != nil
}

// CampaignMetrics is created once alongside a campaign and never mutated by
// this service afterward; ingestion of engagement numbers is external.
type CampaignMetrics struct {
	CampaignID          string  `bson:"campaign_id" json:"campaign_id"`
	UsersTargeted       int     `bson:"users_targeted" json:"users_targeted"`
	UsersEngaged        int     `bson:"users_engaged" json:"users_engaged"`
	UsersOpened         int     `bson:"users_opened" json:"users_opened"`
	UsersClicked        int     `bson:"users_clicked" json:"users_clicked"`
	UsersUnsubscribed   int     `bson:"users_unsubscribed" json:"users_unsubscribed"`
	PercentEngaged      float64 `bson:"percent_engaged" json:"percent_engaged"`
	PercentOpened       float64 `bson:"percent_opened" json:"percent_opened"`
	PercentClicked      float64 `bson:"percent_clicked" json:"percent_clicked"`
	PercentUnsubscribed float64 `bson:"percent_unsubscribed" json:"percent_unsubscribed"`
}
