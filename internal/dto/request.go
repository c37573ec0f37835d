package dto

import "github.com/hardcoretiff/adspot-wizard/internal/domain"

// OnboardRequest is the direct submission payload: the fully accumulated
// wizard data plus the account owner details.
type OnboardRequest struct {
	CampaignData domain.CampaignData `json:"campaignData" binding:"required"`
	UserData     domain.UserData     `json:"userData" binding:"required"`
}

// UpdateCampaignRequest replaces a session's accumulated campaign data.
type UpdateCampaignRequest struct {
	CampaignData domain.CampaignData `json:"campaignData" binding:"required"`
	UserData     *domain.UserData    `json:"userData,omitempty"`
}

// SubmitSessionRequest finalizes a wizard session: the plan selection made
// on the last step plus the owner details.
type SubmitSessionRequest struct {
	SubscriptionTier domain.Tier         `json:"subscriptionTier" binding:"required"`
	BillingCycle     domain.BillingCycle `json:"billingCycle" binding:"required"`
	UserData         domain.UserData     `json:"userData" binding:"required"`
}
