package repository

import _ "embed"

//go:embed assets/engines.yaml
var enginesYAML []byte

//go:embed assets/fitments.csv
var fitmentsCSV []byte

//go:embed assets/engine_parts.yaml
var enginePartsYAML []byte

//go:embed assets/vehicle_parts.yaml
var vehiclePartsYAML []byte

//go:embed assets/maintenance.yaml
var maintenanceYAML []byte

//go:embed assets/specifications.yaml
var specificationsYAML []byte

//go:embed assets/issues.yaml
var issuesYAML []byte
