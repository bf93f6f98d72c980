// Package transport defines the wire types for decoded vehicles.
package transport

import (
	"github.com/pistalo01/japanese-car-vin-decoder/internal/knowledge/repository"
)

// VehicleInfo is the decoded-vehicle response shape. Field names are part of
// the public contract; clients bind to them directly.
type VehicleInfo struct {
	VIN              string `json:"vin"`
	Make             string `json:"make"`
	Model            string `json:"model"`
	Year             string `json:"year"`
	Engine           string `json:"engine"`
	EngineCode       string `json:"engine_code"`
	Transmission     string `json:"transmission"`
	TransmissionCode string `json:"transmission_code"`
	DriveType        string `json:"drive_type"`
	BodyStyle        string `json:"body_style"`
	Trim             string `json:"trim"`
	FuelType         string `json:"fuel_type"`
	Doors            string `json:"doors"`
	Seats            string `json:"seats"`

	SafetyFeatures []string `json:"safety_features"`

	Specifications      repository.VehicleSpecifications          `json:"specifications"`
	PartsCompatibility  repository.PartsCatalog                   `json:"parts_compatibility"`
	MaintenanceSchedule map[string]repository.MaintenanceSchedule `json:"maintenance_schedule"`
	CommonIssues        []string                                  `json:"common_issues,omitempty"`
	Recalls             []Recall                                  `json:"recalls,omitempty"`
}

// Recall is one NHTSA recall campaign entry.
type Recall struct {
	RecallNumber string `json:"recall_number"`
	Issue        string `json:"issue"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}
