// Package pricing provides the live parts pricing bounded context module.
package pricing

import (
	"github.com/pistalo01/japanese-car-vin-decoder/internal/pricing/client"
	"github.com/pistalo01/japanese-car-vin-decoder/internal/pricing/service"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/config"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/logger"
)

// Module is the pricing bounded context module.
type Module struct {
	service *service.Service
}

// NewModule creates and initializes the pricing module. When credentials
// are not configured the service stays wired but answers with empty
// results (graceful degradation).
func NewModule(cfg config.PricingConfig, log *logger.Logger) *Module {
	if !cfg.IsPricingEnabled() {
		log.Info("pricing module disabled: PRICING_USERNAME/PRICING_API_KEY not configured")
		return &Module{service: service.New(nil, false, log)}
	}

	apiClient := client.New(cfg, log)
	svc := service.New(apiClient, true, log)

	log.Info("pricing module initialized", "base_url", cfg.GetPricingBaseURL())

	return &Module{service: svc}
}

// Service returns the pricing service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}
