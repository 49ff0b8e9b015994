package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"glowdesk/models"
)

// TestEmailSender delivers campaign test emails.
type TestEmailSender interface {
	SendTestEmail(ctx context.Context, payload models.TestEmailPayload) error
}

// HTTPTestEmailSender forwards test emails to an external sending endpoint as
// a JSON POST.
type HTTPTestEmailSender struct {
	Endpoint string
	Client   *http.Client
}

// NewHTTPTestEmailSender creates a sender for the given endpoint URL.
func NewHTTPTestEmailSender(endpoint string) (*HTTPTestEmailSender, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("test email endpoint is not configured")
	}
	return &HTTPTestEmailSender{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// SendTestEmail posts the payload to the configured endpoint.
func (s *HTTPTestEmailSender) SendTestEmail(ctx context.Context, payload models.TestEmailPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal test email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build test email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("test email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("test email endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
