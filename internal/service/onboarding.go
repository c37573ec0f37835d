package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/hardcoretiff/adspot-wizard/internal/domain"
	"github.com/hardcoretiff/adspot-wizard/internal/platform"
)

// ErrInvalidTier is returned when the submitted subscription tier is not
// one of the three known tiers. Checked before any platform call.
var ErrInvalidTier = errors.New("subscription tier must be one of mini, scale or max")

// Result carries the identifiers produced by a completed onboarding run.
// The ids are owned by the platform and are not retained after the run.
type Result struct {
	LocationID string
	ContactID  string
	AssetURL   string
}

// OnboardingService sequences the platform calls that provision a new
// customer workspace. One forward pass, no retries, no rollback: a
// workspace created before a later failure stays behind, so the location
// id is logged the moment it exists to allow manual cleanup.
type OnboardingService struct {
	platform platform.API
	log      *zap.Logger
}

// NewOnboardingService creates a new onboarding service.
func NewOnboardingService(api platform.API, log *zap.Logger) *OnboardingService {
	return &OnboardingService{
		platform: api,
		log:      log,
	}
}

// Onboard runs the full provisioning chain:
//
//	createWorkspace -> [uploadAsset?] -> createContact -> createCampaignRecord
//
// Stage order is fixed by data dependencies: every later stage needs the
// location id, and the campaign record needs the contact id. The asset
// stage is skipped outright when no logo was supplied and never fails the
// chain. Any other stage error aborts the remainder and propagates
// unmodified.
func (s *OnboardingService) Onboard(ctx context.Context, user domain.UserData, campaign *domain.CampaignData) (*Result, error) {
	if !campaign.SubscriptionTier.Valid() {
		return nil, fmt.Errorf("%w, got %q", ErrInvalidTier, campaign.SubscriptionTier)
	}

	s.log.Info("Starting onboarding workflow",
		zap.String("email", user.Email),
		zap.String("tier", string(campaign.SubscriptionTier)))

	locationID, err := s.platform.CreateWorkspace(ctx, user, campaign.SubscriptionTier)
	if err != nil {
		s.log.Error("Workspace creation failed", zap.Error(err))
		return nil, err
	}
	s.log.Info("Workspace created", zap.String("location_id", locationID))

	assetURL := ""
	if campaign.Brand.LogoURL != "" {
		assetURL = s.platform.UploadAsset(ctx, locationID, campaign.Brand.LogoURL)
	} else {
		s.log.Info("No logo supplied, skipping asset upload",
			zap.String("location_id", locationID))
	}

	contactID, err := s.platform.CreateContact(ctx, locationID, user, campaign)
	if err != nil {
		s.log.Error("Contact creation failed",
			zap.String("location_id", locationID),
			zap.Error(err))
		return nil, err
	}
	s.log.Info("Contact created",
		zap.String("location_id", locationID),
		zap.String("contact_id", contactID))

	if err := s.platform.CreateCampaignRecord(ctx, locationID, contactID, campaign, assetURL); err != nil {
		s.log.Error("Campaign record creation failed",
			zap.String("location_id", locationID),
			zap.String("contact_id", contactID),
			zap.Error(err))
		return nil, err
	}
	s.log.Info("Campaign data synced", zap.String("location_id", locationID))

	return &Result{
		LocationID: locationID,
		ContactID:  contactID,
		AssetURL:   assetURL,
	}, nil
}
