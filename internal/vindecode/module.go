// Package vindecode provides the VIN decoding bounded context module.
// This file defines the module that encapsulates all decode setup.
package vindecode

import (
	knowledgesvc "github.com/pistalo01/japanese-car-vin-decoder/internal/knowledge/service"
	"github.com/pistalo01/japanese-car-vin-decoder/internal/vindecode/client"
	"github.com/pistalo01/japanese-car-vin-decoder/internal/vindecode/service"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/config"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/logger"
)

// Module is the VIN decoding bounded context module.
type Module struct {
	service *service.Service
}

// NewModule creates and initializes the VIN decoding module.
func NewModule(cfg config.DecodeConfig, knowledge *knowledgesvc.Service, log *logger.Logger) *Module {
	apiClient := client.New(cfg, log)
	svc := service.New(apiClient, knowledge, cfg, log)

	log.Info("vin decode module initialized",
		"nhtsa_base_url", cfg.GetNHTSABaseURL(),
		"recall_lookup", cfg.IsRecallLookupEnabled())

	return &Module{service: svc}
}

// Service returns the decode service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}
