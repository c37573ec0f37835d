package platform

// apiVersion is the platform API version marker sent with token auth.
const apiVersion = "2021-07-28"

// Credentials holds the two supported auth secrets. AccessToken is the
// short-lived private integration token; APIKey is the long-lived legacy
// key kept for older agency accounts.
type Credentials struct {
	AccessToken string
	APIKey      string
}

// Headers resolves the auth header set, preferring the access token over
// the legacy key. The version marker accompanies token auth only. With
// neither secret configured it fails closed with ErrNoCredentials.
func (c Credentials) Headers() (map[string]string, error) {
	if c.AccessToken != "" {
		return map[string]string{
			"Authorization": "Bearer " + c.AccessToken,
			"Version":       apiVersion,
			"Content-Type":  "application/json",
		}, nil
	}
	if c.APIKey != "" {
		return map[string]string{
			"Authorization": "Bearer " + c.APIKey,
			"Content-Type":  "application/json",
		}, nil
	}
	return nil, ErrNoCredentials
}
