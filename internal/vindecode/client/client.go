// Package client provides the HTTP client for the NHTSA vPIC API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pistalo01/japanese-car-vin-decoder/internal/vindecode/transport"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/config"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/logger"
)

// Client is the HTTP client for the NHTSA vehicle API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

// New creates a new NHTSA API client.
func New(cfg config.DecodeConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.GetNHTSATimeout()},
		baseURL:    strings.TrimRight(cfg.GetNHTSABaseURL(), "/"),
		log:        log,
	}
}

// DecodeVin decodes a VIN and returns the variable/value pairs the API
// reported. Variables with empty or "null" values are dropped, so an empty
// map means the API had nothing useful to say about this VIN.
func (c *Client) DecodeVin(ctx context.Context, vin string) (map[string]string, error) {
	reqURL := fmt.Sprintf("%s/vehicles/DecodeVin/%s?format=json", c.baseURL, url.PathEscape(vin))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("nhtsa", "DecodeVin", err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("nhtsa upstream error", "status", resp.StatusCode, "vin", vin)
		return nil, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	var payload apiDecodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Error("nhtsa decode failed", "error", err, "vin", vin)
		return nil, fmt.Errorf("decode response: %w", err)
	}

	decoded := make(map[string]string, len(payload.Results))
	for _, r := range payload.Results {
		if r.Variable == "" || r.Value == nil {
			continue
		}
		v := strings.TrimSpace(*r.Value)
		if v == "" || strings.EqualFold(v, "null") {
			continue
		}
		decoded[r.Variable] = v
	}

	return decoded, nil
}

// Recalls fetches recall campaigns for a VIN. Failures are returned to the
// caller; the service treats them as advisory.
func (c *Client) Recalls(ctx context.Context, vin string) ([]transport.Recall, error) {
	reqURL := fmt.Sprintf("%s/vehicles/GetRecallsByVehicleId?vehicleId=%s&format=json", c.baseURL, url.QueryEscape(vin))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError("nhtsa", "Recalls", err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	var payload apiRecallResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	recalls := make([]transport.Recall, 0, len(payload.Results))
	for _, r := range payload.Results {
		recalls = append(recalls, transport.Recall{
			RecallNumber: r.NHTSACampaignNumber,
			Issue:        r.Summary,
			Date:         r.ReportReceivedDate,
			Status:       r.Status,
		})
	}

	return recalls, nil
}

// apiDecodeResponse is the raw DecodeVin response from vPIC.
type apiDecodeResponse struct {
	Count   int               `json:"Count"`
	Message string            `json:"Message"`
	Results []apiDecodeResult `json:"Results"`
}

type apiDecodeResult struct {
	Variable string  `json:"Variable"`
	Value    *string `json:"Value"`
}

// apiRecallResponse is the raw GetRecallsByVehicleId response.
type apiRecallResponse struct {
	Count   int             `json:"Count"`
	Results []apiRecallItem `json:"Results"`
}

type apiRecallItem struct {
	NHTSACampaignNumber string `json:"NHTSACampaignNumber"`
	Summary             string `json:"Summary"`
	ReportReceivedDate  string `json:"ReportReceivedDate"`
	Status              string `json:"Status"`
}
