package domain

// UserData holds the account owner details collected at submit time.
// It is never persisted; it only travels through one onboarding run.
type UserData struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

// SocialLinks holds optional social profile URLs for a brand.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// BrandProfile holds the brand identity collected in the wizard.
// LogoURL, when set, is a base64 data URI produced by a local file read.
type BrandProfile struct {
	CompanyName        string       `json:"companyName"`
	WebsiteURL         string       `json:"websiteUrl"`
	BrandVoice         string       `json:"brandVoice"`
	PrimaryColor       string       `json:"primaryColor"`
	SecondaryColor     string       `json:"secondaryColor"`
	FontFamily         string       `json:"fontFamily"`
	LogoURL            string       `json:"logoUrl,omitempty"`
	BrandGuidelinesURL string       `json:"brandGuidelinesUrl,omitempty"`
	SocialLinks        *SocialLinks `json:"socialLinks,omitempty"`
}

// CampaignData is the accumulated wizard input for one campaign.
type CampaignData struct {
	ExperienceLevel    string       `json:"experienceLevel"`
	CampaignName       string       `json:"campaignName"`
	CampaignGoal       string       `json:"campaignGoal"`
	BusinessType       string       `json:"businessType"`
	Brand              BrandProfile `json:"brand"`
	Headline           string       `json:"headline"`
	BodyText           string       `json:"bodyText"`
	CallToAction       string       `json:"callToAction"`
	DestinationURL     string       `json:"destinationUrl"`
	RetargetingPixelID string       `json:"retargetingPixelId"`
	HeatmapID          string       `json:"heatmapId"`
	SubscriptionTier   Tier         `json:"subscriptionTier"`
	BillingCycle       BillingCycle `json:"billingCycle"`
	StripePriceID      string       `json:"stripePriceId,omitempty"`
}
