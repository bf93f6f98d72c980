// Package knowledge provides the static vehicle knowledge base module.
package knowledge

import (
	"fmt"

	"github.com/pistalo01/japanese-car-vin-decoder/internal/knowledge/repository"
	"github.com/pistalo01/japanese-car-vin-decoder/internal/knowledge/service"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/logger"
)

// Module owns the loaded knowledge base. It is not HTTP-facing; other
// modules consume its service.
type Module struct {
	repo    *repository.Repository
	service *service.Service
}

// NewModule loads the embedded knowledge base and initializes the module.
func NewModule(log *logger.Logger) (*Module, error) {
	repo, err := repository.New()
	if err != nil {
		return nil, fmt.Errorf("load knowledge base: %w", err)
	}

	log.Info("knowledge base loaded",
		"engines", repo.EngineCount(),
		"vehicleEntries", repo.VehicleEntryCount(),
	)

	return &Module{
		repo:    repo,
		service: service.New(repo, log),
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "knowledge"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the repository for direct access if needed.
func (m *Module) Repository() *repository.Repository {
	return m.repo
}

// Ready reports whether the knowledge base is usable, for health checks.
func (m *Module) Ready() error {
	if m.repo.EngineCount() == 0 {
		return fmt.Errorf("knowledge base has no engine profiles")
	}
	return nil
}
