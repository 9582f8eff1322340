package models

import "energy-ecosystem/internal/config"

// SimulationRequest represents the request body for running a simulation
type SimulationRequest struct {
	// ScenarioFile names a preset in the scenario directory (e.g. "1_default").
	// Params override the preset field by field.
	ScenarioFile string            `json:"scenario_file,omitempty" form:"scenario_file"`
	Params       ParamsConfig      `json:"params"`
	Options      SimulationOptions `json:"options,omitempty"`
}

// ParamsConfig carries simulation parameters. Omitted fields fall back to
// the preset (if any) and then to the default scenario.
type ParamsConfig struct {
	NumHouseholds               *int     `json:"num_households,omitempty" form:"num_households" binding:"omitempty,min=1"`
	HouseholdPVCapacityKW       *float64 `json:"household_pv_capacity_kw,omitempty" form:"household_pv_capacity_kw" binding:"omitempty,gte=0"`
	HouseholdBatteryCapacityKWh *float64 `json:"household_battery_capacity_kwh,omitempty" form:"household_battery_capacity_kwh" binding:"omitempty,gte=0"`
	SharedBatteryCapacityKWh    *float64 `json:"shared_battery_capacity_kwh,omitempty" form:"shared_battery_capacity_kwh" binding:"omitempty,gte=0"`
	FactoryLoadPattern          string   `json:"factory_load_pattern,omitempty" form:"factory_load_pattern" binding:"omitempty,oneof=A B a b"`
}

// ToScenario converts the request params into a config overlay.
func (p ParamsConfig) ToScenario() config.ScenarioConfig {
	return config.ScenarioConfig{
		NumHouseholds:               p.NumHouseholds,
		HouseholdPVCapacityKW:       p.HouseholdPVCapacityKW,
		HouseholdBatteryCapacityKWh: p.HouseholdBatteryCapacityKWh,
		SharedBatteryCapacityKWh:    p.SharedBatteryCapacityKWh,
		FactoryLoadPattern:          p.FactoryLoadPattern,
	}
}

// SimulationOptions contains optional response parameters
type SimulationOptions struct {
	IncludeHours   bool `json:"include_hours,omitempty"`   // default: false
	IncludeBalance bool `json:"include_balance,omitempty"` // default: false
}

// StreamRequest is the query string of the websocket stream endpoint
type StreamRequest struct {
	ScenarioFile string `form:"scenario_file"`
	ParamsConfig
}
