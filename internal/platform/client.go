package platform

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/hardcoretiff/adspot-wizard/internal/config"
	"github.com/hardcoretiff/adspot-wizard/internal/domain"
)

// Client talks to the external marketing platform. Each operation is a
// single round trip with no internal retry; callers own sequencing.
type Client struct {
	baseURL    string
	creds      Credentials
	companyID  string
	snapshots  map[domain.Tier]string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a platform client from the immutable process config.
func NewClient(cfg config.Platform, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		creds: Credentials{
			AccessToken: cfg.AccessToken,
			APIKey:      cfg.APIKey,
		},
		companyID: cfg.CompanyID,
		snapshots: map[domain.Tier]string{
			domain.TierMini:  cfg.SnapshotTierMini,
			domain.TierScale: cfg.SnapshotTierScale,
			domain.TierMax:   cfg.SnapshotTierMax,
		},
		httpClient: http.DefaultClient,
		log:        log,
	}
}

// snapshotFor maps a tier to its configured snapshot template id.
// Unknown or empty tiers fall back to the mini template.
func (c *Client) snapshotFor(tier domain.Tier) string {
	if id, ok := c.snapshots[tier]; ok && id != "" {
		return id
	}
	return c.snapshots[domain.TierMini]
}

// CreateWorkspace provisions a sub-account seeded from the tier's snapshot
// template and returns the new location id.
func (c *Client) CreateWorkspace(ctx context.Context, user domain.UserData, tier domain.Tier) (string, error) {
	headers, err := c.creds.Headers()
	if err != nil {
		return "", err
	}

	snapshotID := c.snapshotFor(tier)
	if snapshotID == "" {
		return "", &MissingTemplateError{Tier: tier}
	}

	name := user.CompanyName
	if name == "" {
		name = "AdSpot Client - " + user.Email
	}

	c.log.Info("Creating workspace",
		zap.String("email", user.Email),
		zap.String("tier", string(tier)))

	// Address and locale fields are not collected by the wizard; the
	// platform requires them, so fixed defaults go out.
	payload := map[string]interface{}{
		"companyId":  c.companyID,
		"name":       name,
		"email":      user.Email,
		"phone":      user.Phone,
		"address":    "123 AdSpot Way",
		"city":       "Digital City",
		"state":      "CA",
		"country":    "US",
		"timezone":   "US/Pacific",
		"snapshotId": snapshotID,
	}

	body, status, err := c.postJSON(ctx, "/locations/", headers, payload)
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", &RequestError{Op: "workspace creation", Status: status, Body: string(body)}
	}

	// The platform returns the id either top-level or nested under a
	// location object depending on API revision.
	var res struct {
		ID       string `json:"id"`
		Location struct {
			ID string `json:"id"`
		} `json:"location"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("failed to decode workspace response: %w", err)
	}

	locationID := res.ID
	if locationID == "" {
		locationID = res.Location.ID
	}
	if locationID == "" {
		return "", fmt.Errorf("no location id returned by platform")
	}

	return locationID, nil
}

// UploadAsset uploads a base64 data URI as a hosted media file in the
// workspace's library and returns the hosted URL. Upload failures are
// never fatal: any error degrades to an empty URL and is only logged.
func (c *Client) UploadAsset(ctx context.Context, locationID, dataURI string) string {
	url, err := c.uploadAsset(ctx, locationID, dataURI)
	if err != nil {
		c.log.Warn("Asset upload failed, continuing without asset",
			zap.String("location_id", locationID),
			zap.Error(err))
		return ""
	}

	c.log.Info("Asset uploaded",
		zap.String("location_id", locationID),
		zap.String("url", url))
	return url
}

func (c *Client) uploadAsset(ctx context.Context, locationID, dataURI string) (string, error) {
	headers, err := c.creds.Headers()
	if err != nil {
		return "", err
	}

	// Strip a data:<mime>;base64, prefix when present; the remainder is
	// the raw base64 payload.
	encoded := dataURI
	if strings.HasPrefix(encoded, "data:") {
		i := strings.Index(encoded, ",")
		if i < 0 {
			return "", fmt.Errorf("malformed data URI")
		}
		encoded = encoded[i+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode asset payload: %w", err)
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	file, err := form.CreateFormFile("file", "logo.png")
	if err != nil {
		return "", err
	}
	if _, err := file.Write(raw); err != nil {
		return "", err
	}
	if err := form.WriteField("hosted", "true"); err != nil {
		return "", err
	}
	if err := form.WriteField("locationId", locationID); err != nil {
		return "", err
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/medias/upload-file", &buf)
	if err != nil {
		return "", err
	}

	// The multipart boundary must win over the JSON content type that
	// comes with the auth header set.
	delete(headers, "Content-Type")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &RequestError{Op: "asset upload", Status: resp.StatusCode, Body: string(body)}
	}

	var res struct {
		FileURL string `json:"fileUrl"`
		URL     string `json:"url"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	if res.FileURL != "" {
		return res.FileURL, nil
	}
	return res.URL, nil
}

// CreateContact creates the owner contact inside the new workspace,
// carrying the subscription custom fields and the tier's initial
// impressions balance.
func (c *Client) CreateContact(ctx context.Context, locationID string, user domain.UserData, campaign *domain.CampaignData) (string, error) {
	headers, err := c.creds.Headers()
	if err != nil {
		return "", err
	}

	c.log.Info("Creating contact",
		zap.String("location_id", locationID),
		zap.String("email", user.Email))

	payload := map[string]interface{}{
		"locationId": locationID,
		"firstName":  user.FirstName,
		"lastName":   user.LastName,
		"email":      user.Email,
		"phone":      user.Phone,
		"tags":       []string{"adspot-onboarding", "owner"},
		"source":     "AdSpot Wizard",
		"customFields": []map[string]interface{}{
			{"key": "subscription_tier", "value": string(campaign.SubscriptionTier)},
			{"key": "billing_cycle", "value": string(campaign.BillingCycle)},
			{"key": "impressions_balance", "value": campaign.SubscriptionTier.ImpressionsBalance()},
		},
	}

	body, status, err := c.postJSON(ctx, "/contacts/", headers, payload)
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", &RequestError{Op: "contact creation", Status: status, Body: string(body)}
	}

	var res struct {
		ID      string `json:"id"`
		Contact struct {
			ID string `json:"id"`
		} `json:"contact"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("failed to decode contact response: %w", err)
	}

	contactID := res.Contact.ID
	if contactID == "" {
		contactID = res.ID
	}
	if contactID == "" {
		return "", fmt.Errorf("no contact id returned by platform")
	}

	return contactID, nil
}

// CreateCampaignRecord stores the campaign metadata as a custom object
// record associated with the owner contact. The record is terminal in the
// onboarding chain; nothing downstream consumes its result.
func (c *Client) CreateCampaignRecord(ctx context.Context, locationID, contactID string, campaign *domain.CampaignData, assetURL string) error {
	headers, err := c.creds.Headers()
	if err != nil {
		return err
	}

	c.log.Info("Creating campaign record",
		zap.String("location_id", locationID),
		zap.String("contact_id", contactID))

	payload := map[string]interface{}{
		"locationId": locationID,
		"objectKey":  "campaign",
		"properties": map[string]interface{}{
			"campaign_name":        campaign.CampaignName,
			"campaign_goal":        campaign.CampaignGoal,
			"business_type":        campaign.BusinessType,
			"experience_level":     campaign.ExperienceLevel,
			"headline":             campaign.Headline,
			"body_text":            campaign.BodyText,
			"cta":                  campaign.CallToAction,
			"destination_url":      campaign.DestinationURL,
			"brand_logo_url":       assetURL,
			"brand_voice":          campaign.Brand.BrandVoice,
			"primary_color":        campaign.Brand.PrimaryColor,
			"retargeting_pixel_id": campaign.RetargetingPixelID,
			"heatmap_id":           campaign.HeatmapID,
			"stripe_price_id":      campaign.StripePriceID,
		},
		"associations": map[string]interface{}{
			"contacts": []string{contactID},
		},
	}

	body, status, err := c.postJSON(ctx, "/objects/records", headers, payload)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return &RequestError{Op: "campaign record creation", Status: status, Body: string(body)}
	}

	return nil
}

// postJSON sends a JSON POST and returns the raw response body and status.
func (c *Client) postJSON(ctx context.Context, path string, headers map[string]string, payload interface{}) ([]byte, int, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, 0, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return body, resp.StatusCode, nil
}
