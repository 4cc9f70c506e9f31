package zendesk

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/zenops/zendesk-mcp/internal/logging"
)

func testCredentials() Credentials {
	return Credentials{
		Subdomain: "acme",
		Email:     "agent@example.com",
		APIToken:  "tok123",
	}
}

func testClient(creds Credentials, baseURL string) *Client {
	return &Client{
		creds:   creds,
		baseURL: baseURL,
		http:    &http.Client{},
		logger:  logging.Nop(),
	}
}

func TestClient_BaseURL(t *testing.T) {
	c := NewClient(testCredentials(), logging.Nop())
	if got := c.BaseURL(); got != "https://acme.zendesk.com/api/v2" {
		t.Errorf("Expected https://acme.zendesk.com/api/v2, got %s", got)
	}
}

func TestClient_Request_BasicAuthHeader(t *testing.T) {
	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("agent@example.com/token:tok123"))

	calls := 0
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if got := r.Header.Get("Authorization"); got != expected {
			t.Errorf("Expected Authorization %q, got %q", expected, got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %q", got)
		}
		w.Write([]byte(`{"tickets":[]}`))
	}))
	defer mockServer.Close()

	c := testClient(testCredentials(), mockServer.URL)
	raw, err := c.Request(context.Background(), http.MethodGet, "/tickets.json", nil, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(raw) != `{"tickets":[]}` {
		t.Errorf("Expected raw body passthrough, got %s", raw)
	}
	if calls != 1 {
		t.Errorf("Expected exactly 1 request, got %d", calls)
	}
}

func TestClient_Request_MissingCredentials(t *testing.T) {
	calls := 0
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer mockServer.Close()

	c := testClient(Credentials{Subdomain: "acme"}, mockServer.URL)
	_, err := c.Request(context.Background(), http.MethodGet, "/tickets.json", nil, nil)
	if err == nil {
		t.Fatal("Expected error for missing credentials")
	}

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected *ConfigurationError, got %T", err)
	}
	for _, field := range []string{"email", "api_token"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("Expected error to name %q, got %q", field, err.Error())
		}
	}
	if calls != 0 {
		t.Errorf("Expected no network traffic, got %d requests", calls)
	}
}

func TestClient_Request_APIError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"RecordNotFound"}`))
	}))
	defer mockServer.Close()

	c := testClient(testCredentials(), mockServer.URL)
	_, err := c.Request(context.Background(), http.MethodGet, "/tickets/999.json", nil, nil)
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", apiErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Expected message to contain status code, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), `{"error":"RecordNotFound"}`) {
		t.Errorf("Expected message to contain response body, got %q", err.Error())
	}
}

func TestClient_Request_TransportError(t *testing.T) {
	c := testClient(testCredentials(), "http://localhost:1")
	_, err := c.Request(context.Background(), http.MethodGet, "/tickets.json", nil, nil)
	if err == nil {
		t.Fatal("Expected error when server is unreachable")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("Transport failures must not convert to *APIError, got %v", err)
	}
}

func TestClient_Request_QueryParams(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("Expected page=2, got %q", got)
		}
		if got := r.URL.Query().Get("per_page"); got != "50" {
			t.Errorf("Expected per_page=50, got %q", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	c := testClient(testCredentials(), mockServer.URL)
	query := url.Values{}
	query.Set("page", "2")
	query.Set("per_page", "50")
	if _, err := c.Request(context.Background(), http.MethodGet, "/chats.json", nil, query); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestClient_Request_EmptyBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer mockServer.Close()

	c := testClient(testCredentials(), mockServer.URL)
	raw, err := c.Request(context.Background(), http.MethodDelete, "/tickets/1.json", nil, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(raw) != 0 {
		t.Errorf("Expected empty body, got %s", raw)
	}
}

func TestClient_Request_OAuthBearer(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer oauth-tok" {
			t.Errorf("Expected Authorization 'Bearer oauth-tok', got %q", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	c := NewClient(Credentials{Subdomain: "acme", OAuthToken: "oauth-tok"}, logging.Nop())
	c.baseURL = mockServer.URL
	if _, err := c.Request(context.Background(), http.MethodGet, "/tickets.json", nil, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestCredentials_Missing(t *testing.T) {
	if missing := testCredentials().Missing(); len(missing) != 0 {
		t.Errorf("Expected complete credentials, got missing %v", missing)
	}
	if missing := (Credentials{}).Missing(); len(missing) != 3 {
		t.Errorf("Expected 3 missing fields, got %v", missing)
	}
	oauth := Credentials{Subdomain: "acme", OAuthToken: "tok"}
	if missing := oauth.Missing(); len(missing) != 0 {
		t.Errorf("Expected OAuth credentials to be complete, got missing %v", missing)
	}
}

func TestResponseSummary(t *testing.T) {
	if got := responseSummary([]byte(`{"count":42,"tickets":[]}`)); got != "count=42" {
		t.Errorf("Expected count=42, got %q", got)
	}
	if got := responseSummary([]byte(`{"error":"RecordNotFound"}`)); got != "error=RecordNotFound" {
		t.Errorf("Expected error=RecordNotFound, got %q", got)
	}
	if got := responseSummary(nil); got != "empty" {
		t.Errorf("Expected empty, got %q", got)
	}
	if got := responseSummary([]byte(`{"ticket":{}}`)); got != "13 bytes" {
		t.Errorf("Expected 13 bytes, got %q", got)
	}
}
