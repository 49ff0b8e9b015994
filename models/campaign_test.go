package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCampaignSettingsValidate(t *testing.T) {
	t.Run("matching payloads", func(t *testing.T) {
		assert.NoError(t, CampaignSettings{Subtype: SubtypeBoost, Boost: &BoostSettings{}}.Validate())
		assert.NoError(t, CampaignSettings{Subtype: SubtypeLastMinute, LastMinute: &LastMinuteSettings{}}.Validate())
		assert.NoError(t, CampaignSettings{Subtype: SubtypeReminder, Reminder: &ReminderSettings{}}.Validate())
	})

	t.Run("missing payload", func(t *testing.T) {
		assert.Error(t, CampaignSettings{Subtype: SubtypeBoost}.Validate())
	})

	t.Run("payload from another subtype", func(t *testing.T) {
		s := CampaignSettings{
			Subtype:  SubtypeBoost,
			Boost:    &BoostSettings{},
			Reminder: &ReminderSettings{},
		}
		assert.Error(t, s.Validate())
	})

	t.Run("unknown subtype", func(t *testing.T) {
		assert.Error(t, CampaignSettings{Subtype: "flash_sale"}.Validate())
	})
}

func TestCampaignSettingsUnmarshalJSON(t *testing.T) {
	t.Run("valid boost payload", func(t *testing.T) {
		var s CampaignSettings
		data := []byte(`{"subtype":"boost","boost":{"targeting_option":"all","discount_percent":15,"schedule":[]}}`)
		require.NoError(t, json.Unmarshal(data, &s))
		require.NotNil(t, s.Boost)
		assert.Equal(t, 15, s.Boost.DiscountPercent)
	})

	t.Run("mismatched payload rejected at decode time", func(t *testing.T) {
		var s CampaignSettings
		data := []byte(`{"subtype":"boost","reminder":{"days_after":30}}`)
		assert.Error(t, json.Unmarshal(data, &s))
	})
}

func TestCampaignSettingsUnmarshalBSON(t *testing.T) {
	t.Run("valid boost document", func(t *testing.T) {
		data, err := bson.Marshal(bson.M{
			"subtype": SubtypeBoost,
			"boost":   bson.M{"targeting_option": TargetingAll, "discount_percent": 20},
		})
		require.NoError(t, err)

		var s CampaignSettings
		require.NoError(t, bson.Unmarshal(data, &s))
		require.NotNil(t, s.Boost)
		assert.Equal(t, 20, s.Boost.DiscountPercent)
	})

	t.Run("mismatched stored document rejected at decode time", func(t *testing.T) {
		data, err := bson.Marshal(bson.M{
			"subtype":  SubtypeBoost,
			"reminder": bson.M{"days_after": 3, "message": "hi"},
		})
		require.NoError(t, err)

		var s CampaignSettings
		assert.Error(t, bson.Unmarshal(data, &s))
	})
}

func TestCampaignArchived(t *testing.T) {
	var c Campaign
	assert.False(t, c.Archived())
}
