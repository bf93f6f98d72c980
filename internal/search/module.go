// Package search provides the unified search bounded context module.
package search

import (
	httpmodule "github.com/pistalo01/japanese-car-vin-decoder/internal/http"
	knowledgesvc "github.com/pistalo01/japanese-car-vin-decoder/internal/knowledge/service"
	pricingsvc "github.com/pistalo01/japanese-car-vin-decoder/internal/pricing/service"
	"github.com/pistalo01/japanese-car-vin-decoder/internal/search/handler"
	"github.com/pistalo01/japanese-car-vin-decoder/internal/search/service"
	vindecodesvc "github.com/pistalo01/japanese-car-vin-decoder/internal/vindecode/service"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/logger"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/validator"
)

// Module is the search bounded context module.
type Module struct {
	service *service.Service
	handler *handler.Handler
}

// NewModule creates and initializes the search module.
func NewModule(knowledge *knowledgesvc.Service, decode *vindecodesvc.Service, pricing *pricingsvc.Service, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(knowledge, decode, pricing, log)
	h := handler.New(svc, val)

	log.Info("search module initialized")

	return &Module{service: svc, handler: h}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "search"
}

// RegisterRoutes registers the search endpoints. The search and decode
// routes live at the root because existing clients depend on those exact
// paths; the engine lookup lives under the API group.
func (m *Module) RegisterRoutes(rc *httpmodule.RouterContext) {
	rc.Engine.POST("/search", m.handler.Search)
	rc.Engine.POST("/decode", m.handler.Decode)
	rc.API.GET("/engine/:engine_code", m.handler.EngineByCode)
}

// Service returns the search service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}
