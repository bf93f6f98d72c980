package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pistalo01/japanese-car-vin-decoder/internal/pricing/transport"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/logger"
)

type testConfig struct {
	baseURL string
}

func (c testConfig) GetPricingBaseURL() string        { return c.baseURL }
func (c testConfig) GetPricingUsername() string       { return "shop@example.com" }
func (c testConfig) GetPricingAPIKey() string         { return "test-key" }
func (c testConfig) GetPricingTimeout() time.Duration { return 2 * time.Second }
func (c testConfig) IsPricingEnabled() bool           { return true }

func TestSearchParts_AuthThenQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/access":
			var body struct {
				AccessType  string `json:"accessType"`
				Credentials struct {
					Username string `json:"username"`
					APIKey   string `json:"apiKey"`
				} `json:"credentials"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode auth body: %v", err)
			}
			if body.AccessType != "user" || body.Credentials.Username != "shop@example.com" {
				t.Errorf("unexpected auth body: %+v", body)
			}
			_, _ = w.Write([]byte(`{"accessToken": "tok-123"}`))
		case "/punchout/quote/create":
			if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
				t.Errorf("expected bearer token, got %q", got)
			}
			_, _ = w.Write([]byte(`{
				"sessionId": "s-1",
				"parts": [
					{"partName": "Oil Filter", "partNumber": "90915-YZZF1", "brand": "Toyota", "price": "$6.49", "inStock": true, "supplier": "WORLDPAC"}
				]
			}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(testConfig{baseURL: srv.URL}, logger.New("development"))

	parts, err := c.SearchParts(context.Background(), transport.Query{Keyword: "2AZ-FE"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 1 {
		t.Fatalf("expected 1 part, got %d", len(parts))
	}
	if parts[0].PartNumber != "90915-YZZF1" || !parts[0].InStock {
		t.Fatalf("unexpected part: %+v", parts[0])
	}
}

func TestSearchParts_AuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(testConfig{baseURL: srv.URL}, logger.New("development"))

	if _, err := c.SearchParts(context.Background(), transport.Query{VIN: "4T1BE32K25U056789"}); err == nil {
		t.Fatal("expected error on auth failure")
	}
}

func TestSearchParts_QuoteWithoutParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/access":
			_, _ = w.Write([]byte(`{"accessToken": "tok-123"}`))
		case "/punchout/quote/create":
			_, _ = w.Write([]byte(`{"sessionId": "s-2"}`))
		}
	}))
	defer srv.Close()

	c := New(testConfig{baseURL: srv.URL}, logger.New("development"))

	parts, err := c.SearchParts(context.Background(), transport.Query{Keyword: "D16W7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 0 {
		t.Fatalf("expected no parts, got %v", parts)
	}
}

func TestSearchParts_TokenReused(t *testing.T) {
	authCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/access":
			authCalls++
			_, _ = w.Write([]byte(`{"accessToken": "tok-123"}`))
		case "/punchout/quote/create":
			_, _ = w.Write([]byte(`{"sessionId": "s-3"}`))
		}
	}))
	defer srv.Close()

	c := New(testConfig{baseURL: srv.URL}, logger.New("development"))

	for i := 0; i < 3; i++ {
		if _, err := c.SearchParts(context.Background(), transport.Query{Keyword: "D16W7"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if authCalls != 1 {
		t.Fatalf("expected a single auth call, got %d", authCalls)
	}
}
