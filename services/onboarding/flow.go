package onboarding

import "glowdesk/models"

// Onboarding steps, in order.
const (
	StepEmail           = 1
	StepPhone           = 2
	StepPersonalDetails = 3
	StepBusiness        = 4
	StepCompletion      = 5
)

// ResumeStep computes where a returning profile picks the wizard back up.
//
// This is a priority-ordered fallthrough, not independent per-step checks:
// an existing business jumps straight to completion regardless of the
// earlier flags, which are assumed complete transitively.
func ResumeStep(p *models.Profile, hasBusiness bool) int {
	switch {
	case hasBusiness:
		return StepCompletion
	case p.PersonalDetailsComplete():
		return StepBusiness
	case p.PhoneVerified:
		return StepPersonalDetails
	case p.EmailConfirmed:
		return StepPhone
	default:
		return StepEmail
	}
}
