package platform

import (
	"errors"
	"fmt"

	"github.com/hardcoretiff/adspot-wizard/internal/domain"
)

// ErrNoCredentials is returned when neither an access token nor a legacy
// API key is configured. It always fires before any network call.
var ErrNoCredentials = errors.New("no platform credentials configured")

// MissingTemplateError indicates that no snapshot id is configured for the
// requested tier. Detected before the workspace creation request is sent.
type MissingTemplateError struct {
	Tier domain.Tier
}

func (e *MissingTemplateError) Error() string {
	return fmt.Sprintf("no snapshot template configured for tier %q", e.Tier)
}

// RequestError carries a non-success response from the platform, including
// the raw response body for diagnostics.
type RequestError struct {
	Op     string
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s failed: %d - %s", e.Op, e.Status, e.Body)
}
