// Package progress projects the onboarding run onto the fixed six-step
// list the wizard UI renders. The projection is cosmetic: it is driven by
// a synthetic timer, not by the real platform calls (see Simulation).
package progress

// Status is the display state of a single step.
type Status string

const (
	StatusPending   Status = "pending"
	StatusLoading   Status = "loading"
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// Step ids, in display order.
const (
	StepPayment    = "payment"
	StepSubaccount = "subaccount"
	StepAssets     = "assets"
	StepContact    = "contact"
	StepCampaign   = "campaign"
	StepFinalize   = "finalize"
)

// Step is one row in the processing overlay.
type Step struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Status Status `json:"status"`
}

// InitialSteps returns the fixed ordered step list, all pending.
func InitialSteps() []Step {
	return []Step{
		{ID: StepPayment, Label: "Processing Secure Payment", Status: StatusPending},
		{ID: StepSubaccount, Label: "Creating AdSpot 2.0 Workspace", Status: StatusPending},
		{ID: StepAssets, Label: "Uploading Brand Assets & Logo", Status: StatusPending},
		{ID: StepContact, Label: "Syncing User Profile", Status: StatusPending},
		{ID: StepCampaign, Label: "Configuring Campaign Data & Pixels", Status: StatusPending},
		{ID: StepFinalize, Label: "Activating Account & Sending Welcome Email", Status: StatusPending},
	}
}
