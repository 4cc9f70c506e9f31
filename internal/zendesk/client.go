package zendesk

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"

	"github.com/zenops/zendesk-mcp/internal/logging"
)

const requestTimeout = 30 * time.Second

// Credentials is the immutable snapshot of account configuration taken at
// startup. Basic auth needs Subdomain, Email and APIToken; when OAuthToken is
// set the client authenticates with it instead and only Subdomain is required.
type Credentials struct {
	Subdomain  string
	Email      string
	APIToken   string
	OAuthToken string
}

// Missing lists the credential fields still unset for the active auth mode.
// An empty result means requests can be attempted.
func (c Credentials) Missing() []string {
	var missing []string
	if c.Subdomain == "" {
		missing = append(missing, "subdomain")
	}
	if c.OAuthToken != "" {
		return missing
	}
	if c.Email == "" {
		missing = append(missing, "email")
	}
	if c.APIToken == "" {
		missing = append(missing, "api_token")
	}
	return missing
}

// basicAuth builds the Authorization header value for Zendesk API token auth:
// base64 of "<email>/token:<api_token>".
func (c Credentials) basicAuth() string {
	pair := c.Email + "/token:" + c.APIToken
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(pair))
}

// Client issues requests against one Zendesk account. It holds no mutable
// state after construction and is safe for concurrent use.
type Client struct {
	creds   Credentials
	baseURL string // overrides the subdomain-derived URL in tests
	http    *http.Client
	logger  logging.Logger
}

// NewClient builds a Client from the credential snapshot. With an OAuth token
// present the underlying transport injects the bearer header on every request.
func NewClient(creds Credentials, logger logging.Logger) *Client {
	httpClient := &http.Client{Timeout: requestTimeout}
	if creds.OAuthToken != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.OAuthToken})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = requestTimeout
	}
	return &Client{
		creds:  creds,
		http:   httpClient,
		logger: logger,
	}
}

// BaseURL returns the account API root, https://<subdomain>.zendesk.com/api/v2.
func (c *Client) BaseURL() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return "https://" + c.creds.Subdomain + ".zendesk.com/api/v2"
}

// Request performs a single API call and returns the raw response body. The
// body is JSON-marshalled when non-nil and query parameters are appended when
// present. Incomplete credentials fail with *ConfigurationError before any
// network traffic; non-2xx responses fail with *APIError carrying status and
// payload. There are no retries.
func (c *Client) Request(ctx context.Context, method, path string, body any, query url.Values) (json.RawMessage, error) {
	if missing := c.creds.Missing(); len(missing) > 0 {
		return nil, &ConfigurationError{Missing: missing}
	}

	endpoint := c.BaseURL() + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.creds.OAuthToken == "" {
		req.Header.Set("Authorization", c.creds.basicAuth())
	}

	requestID := uuid.NewString()
	c.logger.Debug("zendesk request", "id", requestID, "method", method, "path", path)

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error(err, "zendesk request failed", "id", requestID, "method", method, "path", path, "duration", duration)
		return nil, fmt.Errorf("zendesk request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("zendesk response",
		"id", requestID,
		"status", resp.StatusCode,
		"duration", duration,
		"summary", responseSummary(raw),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	return raw, nil
}

// responseSummary picks the most telling field out of a response for debug
// logs: the collection count when listing, the error description on failures,
// otherwise just the size.
func responseSummary(raw []byte) string {
	if len(raw) == 0 {
		return "empty"
	}
	if v := gjson.GetBytes(raw, "count"); v.Exists() {
		return "count=" + v.String()
	}
	if v := gjson.GetBytes(raw, "error"); v.Exists() {
		return "error=" + v.String()
	}
	return fmt.Sprintf("%d bytes", len(raw))
}
