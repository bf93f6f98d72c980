// Package transport defines the request and response envelopes for search.
package transport

import (
	"github.com/pistalo01/japanese-car-vin-decoder/internal/knowledge/repository"
	vintransport "github.com/pistalo01/japanese-car-vin-decoder/internal/vindecode/transport"
)

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	SearchInput string `json:"search_input" validate:"required,min=1,max=64"`
}

// DecodeRequest is the body of the legacy POST /decode endpoint.
type DecodeRequest struct {
	VIN string `json:"vin" validate:"required,min=1,max=32"`
}

// SearchResponse is the envelope every search outcome is reported in.
// Logical failures keep HTTP 200 and set Success false; JSON field names
// are part of the public contract.
type SearchResponse struct {
	Success    bool   `json:"success"`
	SearchType string `json:"search_type,omitempty"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// DecodeResponse is the envelope of the legacy POST /decode endpoint.
type DecodeResponse struct {
	Success     bool                      `json:"success"`
	VehicleInfo *vintransport.VehicleInfo `json:"vehicle_info,omitempty"`
	Error       string                    `json:"error,omitempty"`
	Suggestion  string                    `json:"suggestion,omitempty"`
}

// EngineResponse is the envelope of GET /api/engine/:engine_code.
type EngineResponse struct {
	Success    bool        `json:"success"`
	EngineData *EngineData `json:"engine_data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// EngineData is the engine-code search result.
type EngineData struct {
	SearchType         string                   `json:"search_type"`
	EngineCode         string                   `json:"engine_code"`
	EngineInfo         repository.EngineProfile `json:"engine_info"`
	PartsCompatibility repository.PartsCatalog  `json:"parts_compatibility"`
	TotalParts         int                      `json:"total_parts"`
	PartsCategories    []string                 `json:"parts_categories"`
}
