// Package client provides the HTTP client for the PartsTech pricing API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/pistalo01/japanese-car-vin-decoder/internal/pricing/transport"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/config"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/logger"
)

// tokenLifetime is slightly under the documented 60 minute expiry so a
// token is never used right at the boundary.
const tokenLifetime = 58 * time.Minute

// Client is the HTTP client for the PartsTech API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	apiKey     string
	log        *logger.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// New creates a new PartsTech API client.
func New(cfg config.PricingConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.GetPricingTimeout()},
		baseURL:    cfg.GetPricingBaseURL(),
		username:   cfg.GetPricingUsername(),
		apiKey:     cfg.GetPricingAPIKey(),
		log:        log,
	}
}

// SearchParts creates a quote for the query and returns any parts the API
// included in the response. An empty slice with nil error means the API
// answered but returned no items.
func (c *Client) SearchParts(ctx context.Context, q transport.Query) ([]transport.Part, error) {
	token, err := c.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	searchParams := map[string]string{}
	if q.VIN != "" {
		searchParams["vin"] = q.VIN
	} else {
		searchParams["keyword"] = q.Keyword
	}

	body, err := json.Marshal(map[string]any{
		"searchParams": searchParams,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal quote request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/punchout/quote/create", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("partstech", "SearchParts", err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	var payload apiQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	parts := make([]transport.Part, 0, len(payload.Parts))
	for _, p := range payload.Parts {
		parts = append(parts, transport.Part{
			PartName:   p.PartName,
			PartNumber: p.PartNumber,
			Brand:      p.Brand,
			Price:      p.Price,
			InStock:    p.InStock,
			Supplier:   p.Supplier,
		})
	}

	return parts, nil
}

func (c *Client) authenticate(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	body, err := json.Marshal(map[string]any{
		"accessType": "user",
		"credentials": map[string]string{
			"username": c.username,
			"apiKey":   c.apiKey,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal auth request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/oauth/access", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("partstech", "Authenticate", err)
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("authentication failed: status %d", resp.StatusCode)
	}

	var payload apiAccessResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("authentication response missing access token")
	}

	c.accessToken = payload.AccessToken
	c.tokenExpiry = time.Now().Add(tokenLifetime)

	return c.accessToken, nil
}

type apiAccessResponse struct {
	AccessToken string `json:"accessToken"`
}

// apiQuoteResponse is the raw quote/create response. The parts array is
// optional; quote sessions that require the punchout UI return none.
type apiQuoteResponse struct {
	SessionID string         `json:"sessionId"`
	Parts     []apiQuotePart `json:"parts"`
}

type apiQuotePart struct {
	PartName   string `json:"partName"`
	PartNumber string `json:"partNumber"`
	Brand      string `json:"brand"`
	Price      string `json:"price"`
	InStock    bool   `json:"inStock"`
	Supplier   string `json:"supplier"`
}
