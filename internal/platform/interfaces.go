package platform

import (
	"context"

	"github.com/hardcoretiff/adspot-wizard/internal/domain"
)

// API defines the four platform operations the onboarding flow depends on.
type API interface {
	// CreateWorkspace provisions a tier-templated sub-account and returns
	// its location id.
	CreateWorkspace(ctx context.Context, user domain.UserData, tier domain.Tier) (string, error)

	// UploadAsset uploads a base64 data URI into the workspace media
	// library. Failures degrade to an empty URL and are never fatal.
	UploadAsset(ctx context.Context, locationID, dataURI string) string

	// CreateContact creates the owner contact and returns its id.
	CreateContact(ctx context.Context, locationID string, user domain.UserData, campaign *domain.CampaignData) (string, error)

	// CreateCampaignRecord stores the campaign metadata as a custom object
	// record associated with the contact.
	CreateCampaignRecord(ctx context.Context, locationID, contactID string, campaign *domain.CampaignData, assetURL string) error
}
