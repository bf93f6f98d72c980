package service

import (
	"fmt"
	"strings"

	"github.com/pistalo01/japanese-car-vin-decoder/internal/knowledge/repository"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/apperr"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/logger"
)

// Service provides knowledge-base lookups and parts enrichment.
type Service struct {
	repo *repository.Repository
	log  *logger.Logger
}

// New creates a new knowledge service.
func New(repo *repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Repository exposes the underlying knowledge base for direct reads.
func (s *Service) Repository() *repository.Repository {
	return s.repo
}

// ResolveEngine looks up an engine code in the static engine table and the
// static parts table. The parts lookup is independent: engine metadata can
// exist without a parts entry, in which case the catalog is empty.
func (s *Service) ResolveEngine(code string) (repository.EngineProfile, repository.PartsCatalog, error) {
	upper := strings.ToUpper(strings.TrimSpace(code))

	profile, ok := s.repo.EngineProfile(upper)
	if !ok {
		s.log.SearchEvent("engine_code", upper, false, "engine code not in knowledge base")
		return repository.EngineProfile{}, nil, apperr.
			UnknownEngineCode(fmt.Sprintf("Engine code not found: %s", code)).
			WithSuggestion(s.EngineCodeSuggestion())
	}

	return profile, s.repo.EngineParts(upper), nil
}

// EngineCodeSuggestion builds the user-facing hint listing known codes.
func (s *Service) EngineCodeSuggestion() string {
	return "Try: " + strings.Join(s.repo.KnownEngineCodes(), ", ")
}

// EnrichVehicleParts returns the parts catalog for a decoded vehicle. A miss
// at any of the three lookup levels (make, model, year) degrades to a
// generic placeholder catalog; this never fails.
func (s *Service) EnrichVehicleParts(make, model, year string) repository.PartsCatalog {
	catalog, ok := s.repo.VehicleParts(make, model, year)
	if ok {
		return catalog
	}

	s.log.Debug("no detailed parts entry, using generic catalog", "make", make, "model", model, "year", year)
	return genericCatalog(make, model, year)
}

// MaintenanceSchedules returns the maintenance schedules for a vehicle.
func (s *Service) MaintenanceSchedules(make, model, year string) map[string]repository.MaintenanceSchedule {
	return s.repo.MaintenanceSchedules(make, model, year)
}

// Specifications returns vehicle specifications, degrading to a generic
// placeholder when no specific entry exists.
func (s *Service) Specifications(make, model, year, engineCode string) repository.VehicleSpecifications {
	specs, ok := s.repo.Specifications(make, model, year, engineCode)
	if ok {
		return specs
	}

	return repository.VehicleSpecifications{
		EngineDisplacement: "Varies by engine",
		FuelCapacity:       "Varies by model",
		OilCapacity:        "4-6 quarts",
		BrakeFluidType:     "DOT 3 or DOT 4",
		Dimensions:         map[string]string{"length": "Varies", "width": "Varies", "height": "Varies"},
	}
}

// CommonIssues returns the known issues for a vehicle.
func (s *Service) CommonIssues(make, model, year string) []string {
	return s.repo.CommonIssues(make, model, year)
}

func genericCatalog(make, model, year string) repository.PartsCatalog {
	fits := fmt.Sprintf("Fits %s %s %s", year, make, model)

	return repository.PartsCatalog{
		"engine": {
			"air_filter": {
				PartName:            "Air Filter",
				PartNumber:          "Generic",
				Brand:               "Various",
				PriceRange:          "$10-30",
				CompatibilityNotes:  fits,
				MaintenanceInterval: "Every 15,000 miles",
			},
			"oil_filter": {
				PartName:            "Oil Filter",
				PartNumber:          "Generic",
				Brand:               "Various",
				PriceRange:          "$5-20",
				CompatibilityNotes:  fits,
				MaintenanceInterval: "Every 5,000 miles",
			},
			"spark_plugs": {
				PartName:            "Spark Plugs",
				PartNumber:          "Generic",
				Brand:               "Various",
				PriceRange:          "$5-15 each",
				CompatibilityNotes:  fits,
				MaintenanceInterval: "Every 60,000 miles",
			},
		},
		"brakes": {
			"brake_pads": {
				PartName:            "Brake Pads",
				PartNumber:          "Generic",
				Brand:               "Various",
				PriceRange:          "$30-100",
				CompatibilityNotes:  fits,
				MaintenanceInterval: "Every 30,000-50,000 miles",
			},
			"brake_rotors": {
				PartName:            "Brake Rotors",
				PartNumber:          "Generic",
				Brand:               "Various",
				PriceRange:          "$50-150 each",
				CompatibilityNotes:  fits,
				MaintenanceInterval: "Every 60,000-80,000 miles",
			},
		},
	}
}
