// Package wizard holds the transient multi-step form state. Sessions live
// in process memory only; nothing survives a restart and a submitted
// session is gone for good.
package wizard

import (
	"time"

	"github.com/google/uuid"

	"github.com/hardcoretiff/adspot-wizard/internal/domain"
	"github.com/hardcoretiff/adspot-wizard/internal/tracking"
)

// StepNames lists the wizard steps in order. CurrentStep is 1-based.
var StepNames = []string{
	"Experience",
	"Goals",
	"Brand Identity",
	"Ad Creative",
	"Tracking",
	"Subscription",
}

// StepCount is the number of wizard steps.
const StepCount = 6

// Session is one in-flight wizard run.
type Session struct {
	ID          string
	CurrentStep int
	Campaign    domain.CampaignData
	User        domain.UserData
	CreatedAt   time.Time
}

// NewSession creates a session with the initial campaign defaults. The
// two tracking ids are generated here, once, and stay stable for the
// session's lifetime.
func NewSession() *Session {
	return &Session{
		ID:          uuid.NewString(),
		CurrentStep: 1,
		Campaign: domain.CampaignData{
			ExperienceLevel: "none",
			Brand: domain.BrandProfile{
				PrimaryColor:   "#FF0000",
				SecondaryColor: "#000000",
				FontFamily:     "Inter",
			},
			CallToAction:       "Learn More",
			RetargetingPixelID: tracking.NewID(tracking.PixelPrefix),
			HeatmapID:          tracking.NewID(tracking.HeatmapPrefix),
			BillingCycle:       domain.BillingMonthly,
		},
		CreatedAt: time.Now(),
	}
}

// StepName returns the name of the current step.
func (s *Session) StepName() string {
	return StepNames[s.CurrentStep-1]
}

// Advance moves to the next step, clamped at the last one.
func (s *Session) Advance() {
	if s.CurrentStep < StepCount {
		s.CurrentStep++
	}
}

// Back moves to the previous step, clamped at the first one.
func (s *Session) Back() {
	if s.CurrentStep > 1 {
		s.CurrentStep--
	}
}

// UpdateCampaign replaces the accumulated campaign data, preserving the
// session's tracking ids regardless of what the caller sent.
func (s *Session) UpdateCampaign(c domain.CampaignData) {
	c.RetargetingPixelID = s.Campaign.RetargetingPixelID
	c.HeatmapID = s.Campaign.HeatmapID
	s.Campaign = c
}

// Finalize locks in the plan selection at submit time, resolving the
// Stripe price id from the fixed plan table.
func (s *Session) Finalize(tier domain.Tier, cycle domain.BillingCycle, user domain.UserData) {
	s.Campaign.SubscriptionTier = tier
	s.Campaign.BillingCycle = cycle
	s.Campaign.StripePriceID = StripePriceID(tier, cycle)
	s.User = user
}
