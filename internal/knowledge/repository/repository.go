// Package repository holds the static vehicle knowledge base: engine
// profiles, parts catalogs, maintenance schedules, and specifications.
// All data is parsed once at construction and never mutated afterwards;
// callers must treat returned maps and slices as read-only.
package repository

import (
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Assets carries the raw knowledge-base documents. Zero-value fields fall
// back to the embedded defaults, which lets tests substitute single tables.
type Assets struct {
	Engines        []byte
	Fitments       []byte
	EngineParts    []byte
	VehicleParts   []byte
	Maintenance    []byte
	Specifications []byte
	Issues         []byte
}

// Repository is the loaded, immutable knowledge base.
type Repository struct {
	engines      map[string]EngineProfile
	engineOrder  []string
	engineParts  map[string]PartsCatalog
	vehicleParts map[string]map[string]map[string]PartsCatalog
	maintenance  map[string]map[string]map[string]map[string]MaintenanceSchedule
	specs        map[string]map[string]map[string]map[string]VehicleSpecifications
	issues       map[string]map[string]map[string][]string
}

// New loads the embedded knowledge base.
func New() (*Repository, error) {
	return NewFromAssets(Assets{})
}

// NewFromAssets loads a knowledge base from the given assets, falling back
// to the embedded defaults for any nil field.
func NewFromAssets(assets Assets) (*Repository, error) {
	repo := &Repository{}

	if err := repo.loadEngines(orDefault(assets.Engines, enginesYAML), orDefault(assets.Fitments, fitmentsCSV)); err != nil {
		return nil, err
	}
	if err := repo.loadEngineParts(orDefault(assets.EngineParts, enginePartsYAML)); err != nil {
		return nil, err
	}
	if err := repo.loadVehicleParts(orDefault(assets.VehicleParts, vehiclePartsYAML)); err != nil {
		return nil, err
	}
	if err := repo.loadMaintenance(orDefault(assets.Maintenance, maintenanceYAML)); err != nil {
		return nil, err
	}
	if err := repo.loadSpecifications(orDefault(assets.Specifications, specificationsYAML)); err != nil {
		return nil, err
	}
	if err := repo.loadIssues(orDefault(assets.Issues, issuesYAML)); err != nil {
		return nil, err
	}

	return repo, nil
}

func orDefault(value, fallback []byte) []byte {
	if value == nil {
		return fallback
	}
	return value
}

func (r *Repository) loadEngines(enginesDoc, fitmentsDoc []byte) error {
	var raw yaml.Node
	if err := yaml.Unmarshal(enginesDoc, &raw); err != nil {
		return fmt.Errorf("parse engines asset: %w", err)
	}

	r.engines = make(map[string]EngineProfile)
	r.engineOrder = nil

	// Walk the mapping node directly to preserve the authored ordering;
	// the suggestion string shown to users follows this order.
	if len(raw.Content) > 0 {
		mapping := raw.Content[0]
		for i := 0; i+1 < len(mapping.Content); i += 2 {
			code := strings.ToUpper(mapping.Content[i].Value)
			var profile EngineProfile
			if err := mapping.Content[i+1].Decode(&profile); err != nil {
				return fmt.Errorf("parse engine profile %q: %w", code, err)
			}
			profile.EngineCode = code
			r.engines[code] = profile
			r.engineOrder = append(r.engineOrder, code)
		}
	}

	var fitments []*VehicleFitment
	if err := gocsv.UnmarshalBytes(fitmentsDoc, &fitments); err != nil {
		return fmt.Errorf("parse fitments asset: %w", err)
	}
	for _, fitment := range fitments {
		code := strings.ToUpper(strings.TrimSpace(fitment.EngineCode))
		profile, ok := r.engines[code]
		if !ok {
			return fmt.Errorf("fitment references unknown engine code %q", fitment.EngineCode)
		}
		profile.CommonVehicles = append(profile.CommonVehicles, *fitment)
		r.engines[code] = profile
	}

	return nil
}

func (r *Repository) loadEngineParts(doc []byte) error {
	if err := yaml.Unmarshal(doc, &r.engineParts); err != nil {
		return fmt.Errorf("parse engine parts asset: %w", err)
	}
	r.engineParts = upperKeys(r.engineParts)
	return nil
}

func (r *Repository) loadVehicleParts(doc []byte) error {
	if err := yaml.Unmarshal(doc, &r.vehicleParts); err != nil {
		return fmt.Errorf("parse vehicle parts asset: %w", err)
	}
	return nil
}

func (r *Repository) loadMaintenance(doc []byte) error {
	if err := yaml.Unmarshal(doc, &r.maintenance); err != nil {
		return fmt.Errorf("parse maintenance asset: %w", err)
	}
	return nil
}

func (r *Repository) loadSpecifications(doc []byte) error {
	if err := yaml.Unmarshal(doc, &r.specs); err != nil {
		return fmt.Errorf("parse specifications asset: %w", err)
	}
	return nil
}

func (r *Repository) loadIssues(doc []byte) error {
	if err := yaml.Unmarshal(doc, &r.issues); err != nil {
		return fmt.Errorf("parse issues asset: %w", err)
	}
	return nil
}

func upperKeys(catalogs map[string]PartsCatalog) map[string]PartsCatalog {
	result := make(map[string]PartsCatalog, len(catalogs))
	for key, catalog := range catalogs {
		result[strings.ToUpper(key)] = catalog
	}
	return result
}

// EngineProfile returns the profile for an engine code (case-insensitive).
func (r *Repository) EngineProfile(code string) (EngineProfile, bool) {
	profile, ok := r.engines[strings.ToUpper(code)]
	return profile, ok
}

// HasEngine reports whether the code is a verbatim key in the engine table.
func (r *Repository) HasEngine(code string) bool {
	_, ok := r.engines[strings.ToUpper(code)]
	return ok
}

// EngineParts returns the parts catalog for an engine code. A missing entry
// yields an empty catalog: engine metadata can exist without parts data.
func (r *Repository) EngineParts(code string) PartsCatalog {
	catalog, ok := r.engineParts[strings.ToUpper(code)]
	if !ok {
		return PartsCatalog{}
	}
	return catalog
}

// VehicleParts returns the parts catalog for make/model/year. The boolean is
// false on a miss at any of the three levels.
func (r *Repository) VehicleParts(make, model, year string) (PartsCatalog, bool) {
	models, ok := r.vehicleParts[strings.ToUpper(make)]
	if !ok {
		return nil, false
	}
	years, ok := models[strings.ToUpper(model)]
	if !ok {
		return nil, false
	}
	catalog, ok := years[year]
	if !ok {
		return nil, false
	}
	return catalog, true
}

// MaintenanceSchedules returns the maintenance schedule map for a vehicle,
// or an empty map when none is known.
func (r *Repository) MaintenanceSchedules(make, model, year string) map[string]MaintenanceSchedule {
	schedules := r.maintenance[strings.ToUpper(make)][strings.ToUpper(model)][year]
	if schedules == nil {
		return map[string]MaintenanceSchedule{}
	}
	return schedules
}

// Specifications returns the specifications for make/model/year/engine.
func (r *Repository) Specifications(make, model, year, engineCode string) (VehicleSpecifications, bool) {
	specs, ok := r.specs[strings.ToUpper(make)][strings.ToUpper(model)][year][strings.ToUpper(engineCode)]
	return specs, ok
}

// CommonIssues returns known issues for a vehicle, or nil when none are known.
func (r *Repository) CommonIssues(make, model, year string) []string {
	return r.issues[strings.ToUpper(make)][strings.ToUpper(model)][year]
}

// KnownEngineCodes returns the engine codes in authored order.
func (r *Repository) KnownEngineCodes() []string {
	codes := make([]string, len(r.engineOrder))
	copy(codes, r.engineOrder)
	return codes
}

// EngineCount returns the number of engine profiles loaded.
func (r *Repository) EngineCount() int {
	return len(r.engines)
}

// VehicleEntryCount returns the number of make/model/year parts entries.
func (r *Repository) VehicleEntryCount() int {
	count := 0
	for _, models := range r.vehicleParts {
		for _, years := range models {
			count += len(years)
		}
	}
	return count
}
