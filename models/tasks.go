package models

// TestEmailPayload is the body of a campaign test-email task. The worker
// forwards it as JSON to the configured test-email endpoint.
type TestEmailPayload struct {
	Email    string           `json:"email"`
	Campaign string           `json:"campaign"`
	Settings CampaignSettings `json:"settings"`
}
