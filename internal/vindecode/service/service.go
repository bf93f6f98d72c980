// Package service implements VIN validation, decoding and vehicle enrichment.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pistalo01/japanese-car-vin-decoder/internal/knowledge/repository"
	"github.com/pistalo01/japanese-car-vin-decoder/internal/vindecode/transport"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/apperr"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/config"
	"github.com/pistalo01/japanese-car-vin-decoder/platform/logger"
)

// Decoder is the upstream VIN decode API.
type Decoder interface {
	DecodeVin(ctx context.Context, vin string) (map[string]string, error)
	Recalls(ctx context.Context, vin string) ([]transport.Recall, error)
}

// Knowledge supplies the static vehicle knowledge base used to enrich
// decoded vehicles with parts, schedules and known issues.
type Knowledge interface {
	EnrichVehicleParts(make, model, year string) repository.PartsCatalog
	MaintenanceSchedules(make, model, year string) map[string]repository.MaintenanceSchedule
	Specifications(make, model, year, engineCode string) repository.VehicleSpecifications
	CommonIssues(make, model, year string) []string
}

// Service decodes VINs via the upstream API and enriches the result.
type Service struct {
	decoder   Decoder
	knowledge Knowledge
	cfg       config.DecodeConfig
	log       *logger.Logger
}

// New creates a new decode service.
func New(decoder Decoder, knowledge Knowledge, cfg config.DecodeConfig, log *logger.Logger) *Service {
	return &Service{
		decoder:   decoder,
		knowledge: knowledge,
		cfg:       cfg,
		log:       log,
	}
}

// japaneseManufacturers are the makes this tool is tuned for. Other makes
// still decode; we only log an advisory so support can spot odd traffic.
var japaneseManufacturers = map[string]struct{}{
	"TOYOTA": {}, "HONDA": {}, "NISSAN": {}, "MAZDA": {}, "MITSUBISHI": {},
	"SUBARU": {}, "SUZUKI": {}, "ISUZU": {}, "DAIHATSU": {}, "LEXUS": {},
	"ACURA": {}, "INFINITI": {}, "SCION": {}, "DATSUN": {},
}

// safetyFeatureMapping translates vPIC variable names to display names.
// Order is the order features appear in the response.
var safetyFeatureMapping = []struct {
	variable string
	display  string
}{
	{"Anti-lock Braking System (ABS)", "ABS"},
	{"Electronic Stability Control (ESC)", "ESC"},
	{"Traction Control", "Traction Control"},
	{"Tire Pressure Monitoring System (TPMS) Type", "TPMS"},
	{"Backup Camera", "Backup Camera"},
	{"Lane Departure Warning (LDW)", "Lane Departure Warning"},
	{"Forward Collision Warning (FCW)", "Forward Collision Warning"},
	{"Blind Spot Warning (BSW)", "Blind Spot Warning"},
	{"Adaptive Cruise Control (ACC)", "Adaptive Cruise Control"},
}

// Decode validates the VIN, decodes it upstream and enriches the result
// with parts, maintenance schedules, specifications and known issues.
func (s *Service) Decode(ctx context.Context, vin string) (transport.VehicleInfo, error) {
	vin = strings.ToUpper(strings.TrimSpace(vin))

	if !ValidateVIN(vin) {
		return transport.VehicleInfo{}, apperr.InvalidVin(fmt.Sprintf("Could not decode VIN: %s", vin)).
			WithSuggestion("Ensure VIN is exactly 17 characters")
	}

	decoded, err := s.decoder.DecodeVin(ctx, vin)
	if err != nil {
		return transport.VehicleInfo{}, apperr.DecodeUnavailable("VIN decode service unavailable", err)
	}
	if len(decoded) == 0 {
		return transport.VehicleInfo{}, apperr.DecodeEmpty(fmt.Sprintf("Could not decode VIN: %s", vin)).
			WithSuggestion("Ensure VIN is exactly 17 characters")
	}

	info := transport.VehicleInfo{
		VIN:              vin,
		Make:             decoded["Make"],
		Model:            decoded["Model"],
		Year:             decoded["Model Year"],
		Engine:           decoded["Engine Model"],
		EngineCode:       decoded["Engine Configuration"],
		Transmission:     decoded["Transmission Style"],
		TransmissionCode: decoded["Transmission"],
		DriveType:        decoded["Drive Type"],
		BodyStyle:        decoded["Body Class"],
		Trim:             decoded["Trim"],
		FuelType:         decoded["Fuel Type - Primary"],
		Doors:            decoded["Doors"],
		Seats:            decoded["Number of Seats"],
		SafetyFeatures:   extractSafetyFeatures(decoded),
	}

	upperMake := strings.ToUpper(info.Make)
	if _, ok := japaneseManufacturers[upperMake]; !ok && info.Make != "" {
		s.log.Warn("non-japanese manufacturer decoded", "vin", vin, "make", info.Make)
	}

	info.PartsCompatibility = s.knowledge.EnrichVehicleParts(upperMake, strings.ToUpper(info.Model), info.Year)
	info.MaintenanceSchedule = s.knowledge.MaintenanceSchedules(upperMake, strings.ToUpper(info.Model), info.Year)
	info.Specifications = s.knowledge.Specifications(upperMake, strings.ToUpper(info.Model), info.Year, info.EngineCode)
	info.CommonIssues = s.knowledge.CommonIssues(upperMake, strings.ToUpper(info.Model), info.Year)

	if s.cfg.IsRecallLookupEnabled() {
		recalls, err := s.decoder.Recalls(ctx, vin)
		if err != nil {
			s.log.UpstreamError("nhtsa", "Recalls", err)
		} else {
			info.Recalls = recalls
		}
	}

	return info, nil
}

func extractSafetyFeatures(decoded map[string]string) []string {
	features := []string{}
	for _, m := range safetyFeatureMapping {
		if decoded[m.variable] != "" {
			features = append(features, m.display)
		}
	}
	return features
}
