package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pistalo01/japanese-car-vin-decoder/internal/knowledge/repository"
	knowledgesvc "github.com/pistalo01/japanese-car-vin-decoder/internal/knowledge/service"
	pricingsvc "github.com/pistalo01/japanese-car-vin-decoder/internal/pricing/service"
	"github.com/pistalo01/japanese-car-vin-decoder/internal/search/service"
	vindecodesvc "github.com/pistalo01/japanese-car-vin-decoder/internal/vindecode/service"
	vintransport "github.com/pistalo01/japanese-car-vin-decoder/internal/vindecode/transport"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/logger"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/validator"
)

type fakeDecoder struct {
	decoded map[string]string
	err     error
}

func (f *fakeDecoder) DecodeVin(ctx context.Context, vin string) (map[string]string, error) {
	return f.decoded, f.err
}

func (f *fakeDecoder) Recalls(ctx context.Context, vin string) ([]vintransport.Recall, error) {
	return nil, errors.New("not implemented")
}

type decodeConfig struct{}

func (decodeConfig) GetNHTSABaseURL() string        { return "http://unused" }
func (decodeConfig) GetNHTSATimeout() time.Duration { return time.Second }
func (decodeConfig) IsRecallLookupEnabled() bool    { return false }

func newTestEngine(t *testing.T, decoder vindecodesvc.Decoder) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := repository.New()
	if err != nil {
		t.Fatalf("load knowledge base: %v", err)
	}
	log := logger.New("development")
	knowledge := knowledgesvc.New(repo, log)
	decode := vindecodesvc.New(decoder, knowledge, decodeConfig{}, log)
	pricing := pricingsvc.New(nil, false, log)
	svc := service.New(knowledge, decode, pricing, log)

	h := New(svc, validator.New())

	engine := gin.New()
	engine.POST("/search", h.Search)
	engine.POST("/decode", h.Decode)
	engine.GET("/api/engine/:engine_code", h.EngineByCode)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestSearch_EngineCode(t *testing.T) {
	engine := newTestEngine(t, &fakeDecoder{})

	rec := doJSON(t, engine, http.MethodPost, "/search", `{"search_input":"D16W73005025"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success    bool   `json:"success"`
		SearchType string `json:"search_type"`
		Data       struct {
			EngineCode string `json:"engine_code"`
			TotalParts int    `json:"total_parts"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, body: %s", rec.Body.String())
	}
	if resp.SearchType != "engine_code" {
		t.Fatalf("expected engine_code, got %q", resp.SearchType)
	}
	if resp.Data.EngineCode != "D16W7" {
		t.Fatalf("expected D16W7, got %q", resp.Data.EngineCode)
	}
	if resp.Data.TotalParts == 0 {
		t.Fatal("expected total_parts > 0")
	}
}

func TestSearch_NotFoundStaysHTTP200(t *testing.T) {
	engine := newTestEngine(t, &fakeDecoder{})

	rec := doJSON(t, engine, http.MethodPost, "/search", `{"search_input":"not-a-real-code"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("logical failures must answer 200, got %d", rec.Code)
	}

	var resp struct {
		Success    bool   `json:"success"`
		Error      string `json:"error"`
		Suggestion string `json:"suggestion"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Fatal("expected success=false")
	}
	if !strings.Contains(resp.Error, "not found") {
		t.Fatalf("expected error containing %q, got %q", "not found", resp.Error)
	}
	if resp.Suggestion == "" {
		t.Fatal("expected a suggestion")
	}
}

func TestSearch_VIN(t *testing.T) {
	decoder := &fakeDecoder{decoded: map[string]string{
		"Make":       "TOYOTA",
		"Model":      "CAMRY",
		"Model Year": "2005",
	}}
	engine := newTestEngine(t, decoder)

	rec := doJSON(t, engine, http.MethodPost, "/search", `{"search_input":"4T1BE32K25U056789"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success    bool   `json:"success"`
		SearchType string `json:"search_type"`
		Data       struct {
			VIN  string `json:"vin"`
			Make string `json:"make"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.SearchType != "vin" {
		t.Fatalf("unexpected envelope: %s", rec.Body.String())
	}
	if resp.Data.VIN != "4T1BE32K25U056789" || resp.Data.Make != "TOYOTA" {
		t.Fatalf("unexpected data: %s", rec.Body.String())
	}
}

func TestSearch_DecodeUnavailableStaysHTTP200(t *testing.T) {
	engine := newTestEngine(t, &fakeDecoder{err: errors.New("connect timeout")})

	rec := doJSON(t, engine, http.MethodPost, "/search", `{"search_input":"4T1BE32K25U056789"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success || resp.Error == "" {
		t.Fatalf("expected failure envelope, got %s", rec.Body.String())
	}
}

func TestDecode_Legacy(t *testing.T) {
	decoder := &fakeDecoder{decoded: map[string]string{
		"Make":       "HONDA",
		"Model":      "CIVIC",
		"Model Year": "2003",
	}}
	engine := newTestEngine(t, decoder)

	rec := doJSON(t, engine, http.MethodPost, "/decode", `{"vin":"1HGEM21503L043785"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success     bool `json:"success"`
		VehicleInfo struct {
			Make string `json:"make"`
		} `json:"vehicle_info"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.VehicleInfo.Make != "HONDA" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestEngineByCode_REST(t *testing.T) {
	engine := newTestEngine(t, &fakeDecoder{})

	rec := doJSON(t, engine, http.MethodGet, "/api/engine/1ZZ-FE", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success    bool `json:"success"`
		EngineData struct {
			EngineInfo struct {
				Displacement string `json:"displacement"`
			} `json:"engine_info"`
		} `json:"engine_data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got %s", rec.Body.String())
	}
	if resp.EngineData.EngineInfo.Displacement != "1.8L (1794cc)" {
		t.Fatalf("unexpected displacement: %s", rec.Body.String())
	}

	rec = doJSON(t, engine, http.MethodGet, "/api/engine/Z99XX", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown code, got %d", rec.Code)
	}
}

func TestSearch_MalformedBody(t *testing.T) {
	engine := newTestEngine(t, &fakeDecoder{})

	rec := doJSON(t, engine, http.MethodPost, "/search", `{"search_input":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", rec.Code)
	}
}
