package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"glowdesk/models"
)

const (
	TypeTestEmailSend       = "email:test_send"
	TypeCampaignExpirySweep = "campaign:expiry_sweep"
)

// NewTestEmailTask builds the task carrying a campaign test email.
func NewTestEmailTask(payload models.TestEmailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeTestEmailSend, b), nil
}

// NewExpirySweepTask builds the nightly campaign expiry sweep task.
func NewExpirySweepTask() *asynq.Task {
	return asynq.NewTask(TypeCampaignExpirySweep, nil)
}
