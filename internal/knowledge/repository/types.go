package repository

import "sort"

// PartRecord describes one replacement part. The JSON field names are part of
// the public response contract and must not change.
type PartRecord struct {
	PartName            string            `yaml:"part_name" json:"part_name"`
	PartNumber          string            `yaml:"part_number" json:"part_number"`
	Brand               string            `yaml:"brand" json:"brand"`
	PriceRange          string            `yaml:"price_range" json:"price_range"`
	CompatibilityNotes  string            `yaml:"compatibility_notes" json:"compatibility_notes"`
	Specifications      map[string]string `yaml:"specifications" json:"specifications,omitempty"`
	Alternatives        []string          `yaml:"alternatives" json:"alternatives,omitempty"`
	MaintenanceInterval string            `yaml:"maintenance_interval" json:"maintenance_interval"`
}

// PartsCatalog maps category name to part key to part record.
type PartsCatalog map[string]map[string]PartRecord

// TotalParts returns the number of part records across all categories.
func (pc PartsCatalog) TotalParts() int {
	total := 0
	for _, category := range pc {
		total += len(category)
	}
	return total
}

// Categories returns the category names in sorted order.
func (pc PartsCatalog) Categories() []string {
	names := make([]string, 0, len(pc))
	for name := range pc {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VehicleFitment is one vehicle known to carry a given engine.
type VehicleFitment struct {
	EngineCode string `csv:"engine_code" json:"-"`
	Make       string `csv:"make" json:"make"`
	Model      string `csv:"model" json:"model"`
	Years      string `csv:"years" json:"years"`
}

// EngineProfile holds the static specification of one engine.
type EngineProfile struct {
	EngineCode        string           `yaml:"-" json:"engine_code"`
	Displacement      string           `yaml:"displacement" json:"displacement"`
	Type              string           `yaml:"type" json:"type"`
	FuelSystem        string           `yaml:"fuel_system" json:"fuel_system"`
	ValvesPerCylinder int              `yaml:"valves_per_cylinder" json:"valves_per_cylinder"`
	CompressionRatio  string           `yaml:"compression_ratio" json:"compression_ratio"`
	MaxPower          string           `yaml:"max_power" json:"max_power"`
	MaxTorque         string           `yaml:"max_torque" json:"max_torque"`
	FuelType          string           `yaml:"fuel_type" json:"fuel_type"`
	CommonVehicles    []VehicleFitment `yaml:"-" json:"common_vehicles"`
}

// MaintenanceSchedule is one service interval for a vehicle.
type MaintenanceSchedule struct {
	IntervalMiles  string   `yaml:"interval_miles" json:"interval_miles"`
	IntervalMonths string   `yaml:"interval_months" json:"interval_months"`
	Services       []string `yaml:"services" json:"services"`
	PartsNeeded    []string `yaml:"parts_needed" json:"parts_needed"`
	EstimatedCost  string   `yaml:"estimated_cost" json:"estimated_cost"`
}

// VehicleSpecifications holds static make/model/year/engine specifications.
type VehicleSpecifications struct {
	EngineDisplacement        string            `yaml:"engine_displacement" json:"engine_displacement"`
	Horsepower                string            `yaml:"horsepower" json:"horsepower"`
	Torque                    string            `yaml:"torque" json:"torque"`
	FuelCapacity              string            `yaml:"fuel_capacity" json:"fuel_capacity"`
	OilCapacity               string            `yaml:"oil_capacity" json:"oil_capacity"`
	TransmissionFluidCapacity string            `yaml:"transmission_fluid_capacity" json:"transmission_fluid_capacity"`
	CoolantCapacity           string            `yaml:"coolant_capacity" json:"coolant_capacity"`
	BrakeFluidType            string            `yaml:"brake_fluid_type" json:"brake_fluid_type"`
	TireSize                  string            `yaml:"tire_size" json:"tire_size"`
	WheelSize                 string            `yaml:"wheel_size" json:"wheel_size"`
	Weight                    string            `yaml:"weight" json:"weight"`
	Dimensions                map[string]string `yaml:"dimensions" json:"dimensions,omitempty"`
	TowingCapacity            string            `yaml:"towing_capacity" json:"towing_capacity"`
	PayloadCapacity           string            `yaml:"payload_capacity" json:"payload_capacity"`
}
