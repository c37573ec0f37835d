package dto

import (
	"github.com/hardcoretiff/adspot-wizard/internal/domain"
	"github.com/hardcoretiff/adspot-wizard/internal/progress"
)

// ErrorResponse carries a human-readable failure message.
type ErrorResponse struct {
	Error string `json:"error" example:"subscription tier must be one of mini, scale or max"`
}

// OnboardResponse is returned when the full provisioning chain completed.
type OnboardResponse struct {
	Success    bool   `json:"success" example:"true"`
	LocationID string `json:"locationId" example:"ve9EPM428h8vShlRW1KT"`
}

// SessionResponse is the current state of a wizard session.
type SessionResponse struct {
	SessionID    string              `json:"sessionId"`
	CurrentStep  int                 `json:"currentStep" example:"1"`
	StepName     string              `json:"stepName" example:"Experience"`
	CampaignData domain.CampaignData `json:"campaignData"`
	UserData     domain.UserData     `json:"userData"`
}

// ProgressResponse is the display-step snapshot for the overlay.
type ProgressResponse struct {
	Steps []progress.Step `json:"steps"`
}
