package campaign

import (
	"context"
	"fmt"
	"time"

	"glowdesk/models"
)

// AudienceSize computes the target audience count for a boost campaign.
//
// "all" counts every client of the business. "inactive" is a set difference:
// clients minus the union of {completed a visit within daysThreshold days}
// and {any future scheduled appointment}. A client who completed a visit 29
// days ago at threshold 30 is excluded even if they also have a booking next
// month; a client with no appointments at all is included.
func (s *DefaultCampaignService) AudienceSize(ctx context.Context, businessID string, settings models.BoostSettings, now time.Time) (int, error) {
	switch settings.TargetingOption {
	case models.TargetingAll:
		n, err := s.ClientRepo.CountByBusiness(ctx, businessID)
		if err != nil {
			return 0, fmt.Errorf("failed to count clients: %w", err)
		}
		return int(n), nil

	case models.TargetingInactive:
		clients, err := s.ClientRepo.ListByBusiness(ctx, businessID)
		if err != nil {
			return 0, fmt.Errorf("failed to list clients: %w", err)
		}

		since := now.AddDate(0, 0, -settings.DaysThreshold)
		recent, err := s.AppointmentRepo.ClientIDsCompletedSince(ctx, businessID, since)
		if err != nil {
			return 0, fmt.Errorf("failed to load recent visits: %w", err)
		}
		upcoming, err := s.AppointmentRepo.ClientIDsWithFutureScheduled(ctx, businessID, now)
		if err != nil {
			return 0, fmt.Errorf("failed to load upcoming visits: %w", err)
		}

		engaged := make(map[string]bool, len(recent)+len(upcoming))
		for _, id := range recent {
			engaged[id] = true
		}
		for _, id := range upcoming {
			engaged[id] = true
		}

		count := 0
		for _, c := range clients {
			if !engaged[c.ID] {
				count++
			}
		}
		return count, nil

	default:
		return 0, fmt.Errorf("unknown targeting option %q", settings.TargetingOption)
	}
}
