package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Service holds settings for the HTTP service itself.
type Service struct {
	Environment string `envconfig:"SERVICE_ENVIRONMENT" default:"development"`
	APIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
	Host        string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
}

// Platform holds credentials and mappings for the external marketing
// platform. AccessToken takes precedence over the legacy APIKey; at least
// one must be set before the first outbound call. The snapshot ids map
// subscription tiers to the platform template loaded into new workspaces.
type Platform struct {
	BaseURL           string `envconfig:"GHL_BASE_URL" default:"https://services.leadconnectorhq.com"`
	AccessToken       string `envconfig:"GHL_ACCESS_TOKEN"`
	APIKey            string `envconfig:"GHL_API_KEY"`
	CompanyID         string `envconfig:"GHL_COMPANY_ID" required:"true"`
	SnapshotTierMini  string `envconfig:"SNAPSHOT_TIER_MINI"`
	SnapshotTierScale string `envconfig:"SNAPSHOT_TIER_SCALE"`
	SnapshotTierMax   string `envconfig:"SNAPSHOT_TIER_MAX"`
}

type Config struct {
	Service  Service
	Platform Platform
}

// Load reads the configuration from the environment once at startup.
// Missing required values fail here; credentials and snapshot ids are
// checked at first use so a partially configured process can still serve
// the wizard itself.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
