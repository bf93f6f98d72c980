// Package handler exposes the search endpoints over HTTP.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pistalo01/japanese-car-vin-decoder/internal/search/service"
	"github.com/pistalo01/japanese-car-vin-decoder/internal/search/transport"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/apperr"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/httpkit"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/validator"
)

// Handler handles HTTP requests for search.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new search handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Search is the unified VIN / engine-code lookup.
// POST /search
//
// Logical outcomes, including "not found", answer HTTP 200 with the
// success flag in the body; existing clients parse exactly that shape.
func (h *Handler) Search(c *gin.Context) {
	var req transport.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	searchType, data, err := h.svc.Search(c.Request.Context(), req.SearchInput)
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			c.JSON(http.StatusOK, transport.SearchResponse{
				Success:    false,
				Error:      ae.Message,
				Suggestion: ae.Suggestion,
			})
			return
		}
		httpkit.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, transport.SearchResponse{
		Success:    true,
		SearchType: searchType,
		Data:       data,
	})
}

// Decode is the legacy VIN-only endpoint.
// POST /decode
func (h *Handler) Decode(c *gin.Context) {
	var req transport.DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	info, err := h.svc.DecodeVIN(c.Request.Context(), req.VIN)
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			c.JSON(http.StatusOK, transport.DecodeResponse{
				Success:    false,
				Error:      ae.Message,
				Suggestion: ae.Suggestion,
			})
			return
		}
		httpkit.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, transport.DecodeResponse{
		Success:     true,
		VehicleInfo: info,
	})
}

// EngineByCode looks up a single engine code.
// GET /api/engine/:engine_code
func (h *Handler) EngineByCode(c *gin.Context) {
	code := c.Param("engine_code")

	data, err := h.svc.EngineByCode(c.Request.Context(), code)
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			c.JSON(http.StatusNotFound, transport.EngineResponse{
				Success:    false,
				Error:      ae.Message,
				Suggestion: ae.Suggestion,
			})
			return
		}
		httpkit.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, transport.EngineResponse{
		Success:    true,
		EngineData: data,
	})
}
