package service

import (
	"context"

	"github.com/hardcoretiff/adspot-wizard/internal/domain"
)

// Onboarder defines the interface for running the onboarding workflow.
type Onboarder interface {
	Onboard(ctx context.Context, user domain.UserData, campaign *domain.CampaignData) (*Result, error)
}
