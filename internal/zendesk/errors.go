package zendesk

import (
	"fmt"
	"strings"
)

// ConfigurationError reports credentials missing from the environment. It is
// returned before any network traffic happens.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("zendesk credentials incomplete: missing %s", strings.Join(e.Missing, ", "))
}

// APIError reports a non-2xx response from the Zendesk API. Body carries the
// raw response payload so callers see what the remote actually said.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("zendesk API returned %d: %s", e.StatusCode, e.Body)
}
