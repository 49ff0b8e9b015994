package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"glowdesk/models"
)

func TestResumeStep(t *testing.T) {
	tests := []struct {
		name        string
		profile     models.Profile
		hasBusiness bool
		want        int
	}{
		{
			name: "fresh profile starts at email",
			want: StepEmail,
		},
		{
			name:    "confirmed email moves to phone",
			profile: models.Profile{EmailConfirmed: true},
			want:    StepPhone,
		},
		{
			name:    "verified phone moves to personal details",
			profile: models.Profile{EmailConfirmed: true, PhoneVerified: true},
			want:    StepPersonalDetails,
		},
		{
			name: "personal details move to business",
			profile: models.Profile{
				EmailConfirmed: true,
				PhoneVerified:  true,
				FirstName:      "Maya",
				LastName:       "Reyes",
			},
			want: StepBusiness,
		},
		{
			name:        "existing business short-circuits to completion",
			hasBusiness: true,
			want:        StepCompletion,
		},
		{
			name:    "partial name does not advance past phone verification",
			profile: models.Profile{EmailConfirmed: true, PhoneVerified: true, FirstName: "Maya"},
			want:    StepPersonalDetails,
		},
		{
			name:    "unconfirmed email stays on email even with a phone on file",
			profile: models.Profile{Phone: "+14155552671"},
			want:    StepEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResumeStep(&tt.profile, tt.hasBusiness))
		})
	}
}
