package platform

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hardcoretiff/adspot-wizard/internal/config"
	"github.com/hardcoretiff/adspot-wizard/internal/domain"
)

func testPlatformConfig(baseURL string) config.Platform {
	return config.Platform{
		BaseURL:           baseURL,
		AccessToken:       "test-token",
		CompanyID:         "comp_123",
		SnapshotTierMini:  "snap_mini",
		SnapshotTierScale: "snap_scale",
		SnapshotTierMax:   "snap_max",
	}
}

func testUser() domain.UserData {
	return domain.UserData{
		Email:     "a@b.com",
		FirstName: "A",
		LastName:  "B",
		Phone:     "+15550000000",
	}
}

func decodeBody(t *testing.T, r *http.Request) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func TestCreateWorkspace_SnapshotPerTier(t *testing.T) {
	tests := []struct {
		tier     domain.Tier
		snapshot string
	}{
		{domain.TierMini, "snap_mini"},
		{domain.TierScale, "snap_scale"},
		{domain.TierMax, "snap_max"},
		{domain.Tier(""), "snap_mini"},
		{domain.Tier("enterprise"), "snap_mini"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			var got map[string]interface{}
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/locations/", r.URL.Path)
				assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
				assert.Equal(t, apiVersion, r.Header.Get("Version"))
				got = decodeBody(t, r)
				_ = json.NewEncoder(w).Encode(map[string]string{"id": "loc_1"})
			}))
			defer srv.Close()

			client := NewClient(testPlatformConfig(srv.URL), zap.NewNop())

			locationID, err := client.CreateWorkspace(context.Background(), testUser(), tt.tier)

			assert.NoError(t, err)
			assert.Equal(t, "loc_1", locationID)
			assert.Equal(t, tt.snapshot, got["snapshotId"])
			assert.Equal(t, "comp_123", got["companyId"])
			assert.Equal(t, "123 AdSpot Way", got["address"])
			assert.Equal(t, "Digital City", got["city"])
			assert.Equal(t, "CA", got["state"])
			assert.Equal(t, "US", got["country"])
			assert.Equal(t, "US/Pacific", got["timezone"])
		})
	}
}

func TestCreateWorkspace_NameFallsBackToEmail(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = decodeBody(t, r)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "loc_1"})
	}))
	defer srv.Close()

	client := NewClient(testPlatformConfig(srv.URL), zap.NewNop())

	_, err := client.CreateWorkspace(context.Background(), testUser(), domain.TierMini)
	assert.NoError(t, err)
	assert.Equal(t, "AdSpot Client - a@b.com", got["name"])

	user := testUser()
	user.CompanyName = "Acme Co"
	_, err = client.CreateWorkspace(context.Background(), user, domain.TierMini)
	assert.NoError(t, err)
	assert.Equal(t, "Acme Co", got["name"])
}

func TestCreateWorkspace_NestedLocationID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"location":{"id":"loc_nested"}}`))
	}))
	defer srv.Close()

	client := NewClient(testPlatformConfig(srv.URL), zap.NewNop())

	locationID, err := client.CreateWorkspace(context.Background(), testUser(), domain.TierMini)

	assert.NoError(t, err)
	assert.Equal(t, "loc_nested", locationID)
}

func TestCreateWorkspace_MissingTemplate(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	cfg := testPlatformConfig(srv.URL)
	cfg.SnapshotTierMini = ""
	cfg.SnapshotTierScale = ""
	cfg.SnapshotTierMax = ""
	client := NewClient(cfg, zap.NewNop())

	_, err := client.CreateWorkspace(context.Background(), testUser(), domain.TierScale)

	var tmplErr *MissingTemplateError
	assert.ErrorAs(t, err, &tmplErr)
	assert.Equal(t, domain.TierScale, tmplErr.Tier)
	assert.Equal(t, 0, calls, "missing template must be detected before the network call")
}

func TestCreateWorkspace_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("snapshot not found"))
	}))
	defer srv.Close()

	client := NewClient(testPlatformConfig(srv.URL), zap.NewNop())

	_, err := client.CreateWorkspace(context.Background(), testUser(), domain.TierMini)

	var reqErr *RequestError
	assert.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnprocessableEntity, reqErr.Status)
	assert.Equal(t, "snapshot not found", reqErr.Body)
	assert.Contains(t, err.Error(), "snapshot not found")
}

func TestCreateWorkspace_NoCredentials(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	cfg := testPlatformConfig(srv.URL)
	cfg.AccessToken = ""
	cfg.APIKey = ""
	client := NewClient(cfg, zap.NewNop())

	_, err := client.CreateWorkspace(context.Background(), testUser(), domain.TierMini)

	assert.ErrorIs(t, err, ErrNoCredentials)
	assert.Equal(t, 0, calls)
}

func TestUploadAsset_DecodesDataURI(t *testing.T) {
	payload := []byte("fake-png-bytes")
	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/medias/upload-file", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		// The multipart boundary must not be shadowed by the JSON type.
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "true", r.FormValue("hosted"))
		assert.Equal(t, "loc_1", r.FormValue("locationId"))

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, payload, content)

		_ = json.NewEncoder(w).Encode(map[string]string{"fileUrl": "https://cdn.example.com/logo.png"})
	}))
	defer srv.Close()

	client := NewClient(testPlatformConfig(srv.URL), zap.NewNop())

	url := client.UploadAsset(context.Background(), "loc_1", dataURI)

	assert.Equal(t, "https://cdn.example.com/logo.png", url)
}

func TestUploadAsset_URLFallbackShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example.com/alt.png"})
	}))
	defer srv.Close()

	client := NewClient(testPlatformConfig(srv.URL), zap.NewNop())
	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("x"))

	url := client.UploadAsset(context.Background(), "loc_1", dataURI)

	assert.Equal(t, "https://cdn.example.com/alt.png", url)
}

func TestUploadAsset_BareBase64WithoutPrefix(t *testing.T) {
	payload := []byte("no-prefix")
	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		received, _ = io.ReadAll(file)
		_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example.com/x.png"})
	}))
	defer srv.Close()

	client := NewClient(testPlatformConfig(srv.URL), zap.NewNop())

	url := client.UploadAsset(context.Background(), "loc_1", base64.StdEncoding.EncodeToString(payload))

	assert.Equal(t, "https://cdn.example.com/x.png", url)
	assert.Equal(t, payload, received)
}

func TestUploadAsset_MalformedInputReturnsEmpty(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	client := NewClient(testPlatformConfig(srv.URL), zap.NewNop())

	assert.Equal(t, "", client.UploadAsset(context.Background(), "loc_1", "data:image/png;base64,!!not-base64!!"))
	assert.Equal(t, "", client.UploadAsset(context.Background(), "loc_1", "data:image/png;base64"))
	assert.Equal(t, 0, calls, "decode failures must not reach the network")
}

func TestUploadAsset_NonSuccessReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("missing medias.write scope"))
	}))
	defer srv.Close()

	client := NewClient(testPlatformConfig(srv.URL), zap.NewNop())
	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("x"))

	assert.Equal(t, "", client.UploadAsset(context.Background(), "loc_1", dataURI))
}

func TestUploadAsset_NoCredentialsReturnsEmpty(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	cfg := testPlatformConfig(srv.URL)
	cfg.AccessToken = ""
	cfg.APIKey = ""
	client := NewClient(cfg, zap.NewNop())
	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("x"))

	assert.Equal(t, "", client.UploadAsset(context.Background(), "loc_1", dataURI))
	assert.Equal(t, 0, calls)
}

func testCampaign(tier domain.Tier) *domain.CampaignData {
	return &domain.CampaignData{
		CampaignName:       "Launch",
		CampaignGoal:       "leads",
		BusinessType:       "ecommerce",
		ExperienceLevel:    "some",
		Headline:           "Big Sale",
		BodyText:           "Everything must go",
		CallToAction:       "Shop Now",
		DestinationURL:     "https://example.com",
		RetargetingPixelID: "ADS-4K9TQ2XB",
		HeatmapID:          "HM-7PL2M0QA",
		SubscriptionTier:   tier,
		BillingCycle:       domain.BillingMonthly,
		StripePriceID:      "price_scale_monthly_id",
		Brand: domain.BrandProfile{
			BrandVoice:   "bold",
			PrimaryColor: "#FF0000",
		},
	}
}

func customField(t *testing.T, body map[string]interface{}, key string) interface{} {
	t.Helper()
	fields, ok := body["customFields"].([]interface{})
	require.True(t, ok)
	for _, f := range fields {
		field := f.(map[string]interface{})
		if field["key"] == key {
			return field["value"]
		}
	}
	t.Fatalf("custom field %q not found", key)
	return nil
}

func TestCreateContact_BalancePerTier(t *testing.T) {
	tests := []struct {
		tier    domain.Tier
		balance float64
	}{
		{domain.TierMini, 10000},
		{domain.TierScale, 25000},
		{domain.TierMax, 100000},
		{domain.Tier(""), 10000},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			var got map[string]interface{}
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/contacts/", r.URL.Path)
				got = decodeBody(t, r)
				_, _ = w.Write([]byte(`{"contact":{"id":"contact_1"}}`))
			}))
			defer srv.Close()

			client := NewClient(testPlatformConfig(srv.URL), zap.NewNop())

			contactID, err := client.CreateContact(context.Background(), "loc_1", testUser(), testCampaign(tt.tier))

			assert.NoError(t, err)
			assert.Equal(t, "contact_1", contactID)
			assert.Equal(t, tt.balance, customField(t, got, "impressions_balance"))
			assert.Equal(t, "loc_1", got["locationId"])
			assert.Equal(t, "AdSpot Wizard", got["source"])
			assert.ElementsMatch(t, []interface{}{"adspot-onboarding", "owner"}, got["tags"])
		})
	}
}

func TestCreateContact_TopLevelIDShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"contact_flat"}`))
	}))
	defer srv.Close()

	client := NewClient(testPlatformConfig(srv.URL), zap.NewNop())

	contactID, err := client.CreateContact(context.Background(), "loc_1", testUser(), testCampaign(domain.TierMini))

	assert.NoError(t, err)
	assert.Equal(t, "contact_flat", contactID)
}

func TestCreateContact_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("missing contacts.write scope"))
	}))
	defer srv.Close()

	client := NewClient(testPlatformConfig(srv.URL), zap.NewNop())

	_, err := client.CreateContact(context.Background(), "loc_1", testUser(), testCampaign(domain.TierMini))

	var reqErr *RequestError
	assert.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
	assert.Contains(t, reqErr.Body, "contacts.write")
}

func TestCreateCampaignRecord_Payload(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/objects/records", r.URL.Path)
		got = decodeBody(t, r)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(testPlatformConfig(srv.URL), zap.NewNop())
	campaign := testCampaign(domain.TierScale)

	err := client.CreateCampaignRecord(context.Background(), "loc_1", "contact_1", campaign, "https://cdn.example.com/logo.png")

	assert.NoError(t, err)
	assert.Equal(t, "campaign", got["objectKey"])
	assert.Equal(t, "loc_1", got["locationId"])

	props := got["properties"].(map[string]interface{})
	assert.Equal(t, "Launch", props["campaign_name"])
	assert.Equal(t, "https://cdn.example.com/logo.png", props["brand_logo_url"])
	assert.Equal(t, "ADS-4K9TQ2XB", props["retargeting_pixel_id"])
	assert.Equal(t, "price_scale_monthly_id", props["stripe_price_id"])

	assoc := got["associations"].(map[string]interface{})
	assert.Equal(t, []interface{}{"contact_1"}, assoc["contacts"])
}

func TestCreateCampaignRecord_EmptyAssetURL(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = decodeBody(t, r)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(testPlatformConfig(srv.URL), zap.NewNop())

	err := client.CreateCampaignRecord(context.Background(), "loc_1", "contact_1", testCampaign(domain.TierMini), "")

	assert.NoError(t, err)
	props := got["properties"].(map[string]interface{})
	assert.Equal(t, "", props["brand_logo_url"])
}

func TestCreateCampaignRecord_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("unknown objectKey"))
	}))
	defer srv.Close()

	client := NewClient(testPlatformConfig(srv.URL), zap.NewNop())

	err := client.CreateCampaignRecord(context.Background(), "loc_1", "contact_1", testCampaign(domain.TierMini), "")

	var reqErr *RequestError
	assert.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
}

func TestCreateContact_NoCredentials(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	cfg := testPlatformConfig(srv.URL)
	cfg.AccessToken = ""
	cfg.APIKey = ""
	client := NewClient(cfg, zap.NewNop())

	_, err := client.CreateContact(context.Background(), "loc_1", testUser(), testCampaign(domain.TierMini))
	assert.ErrorIs(t, err, ErrNoCredentials)

	err = client.CreateCampaignRecord(context.Background(), "loc_1", "contact_1", testCampaign(domain.TierMini), "")
	assert.ErrorIs(t, err, ErrNoCredentials)

	assert.Equal(t, 0, calls)
}
