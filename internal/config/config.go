package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"energy-ecosystem/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the scenario from a preset YAML (e.g. examples/scenarios/*.yaml).
	// Fields set in Scenario override the preset.
	ScenarioFile string         `yaml:"scenario_file"`
	Scenario     ScenarioConfig `yaml:"scenario"`
}

// ScenarioConfig mirrors model.SimulationParams. Nil fields are unset and fall
// back to model.DefaultParams, so an explicit 0 (e.g. no shared battery) is
// distinguishable from an omitted field.
type ScenarioConfig struct {
	Name                        string   `yaml:"name" json:"name,omitempty"`
	NumHouseholds               *int     `yaml:"num_households" json:"num_households,omitempty"`
	HouseholdPVCapacityKW       *float64 `yaml:"household_pv_capacity_kw" json:"household_pv_capacity_kw,omitempty"`
	HouseholdBatteryCapacityKWh *float64 `yaml:"household_battery_capacity_kwh" json:"household_battery_capacity_kwh,omitempty"`
	SharedBatteryCapacityKWh    *float64 `yaml:"shared_battery_capacity_kwh" json:"shared_battery_capacity_kwh,omitempty"`
	FactoryLoadPattern          string   `yaml:"factory_load_pattern" json:"factory_load_pattern,omitempty"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.ScenarioFile != "" {
		scenarioPath := c.ScenarioFile
		if !filepath.IsAbs(scenarioPath) {
			// Prefer paths relative to the config file, fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), scenarioPath)
			if _, err := os.Stat(cand); err == nil {
				scenarioPath = cand
			}
		}
		loaded, err := LoadScenarioFile(scenarioPath)
		if err != nil {
			return nil, err
		}
		c.Scenario = MergeScenario(loaded, c.Scenario)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := c.Scenario.ToModelParams(); err != nil {
		return fmt.Errorf("scenario config invalid: %w", err)
	}
	return nil
}

// ToModelParams fills unset fields from model.DefaultParams and validates the result.
func (s ScenarioConfig) ToModelParams() (model.SimulationParams, error) {
	p := model.DefaultParams()
	if s.NumHouseholds != nil {
		p.NumHouseholds = *s.NumHouseholds
	}
	if s.HouseholdPVCapacityKW != nil {
		p.HouseholdPVCapacityKW = *s.HouseholdPVCapacityKW
	}
	if s.HouseholdBatteryCapacityKWh != nil {
		p.HouseholdBatteryCapacityKWh = *s.HouseholdBatteryCapacityKWh
	}
	if s.SharedBatteryCapacityKWh != nil {
		p.SharedBatteryCapacityKWh = *s.SharedBatteryCapacityKWh
	}
	if s.FactoryLoadPattern != "" {
		pattern, err := model.ParseFactoryPattern(s.FactoryLoadPattern)
		if err != nil {
			return model.SimulationParams{}, err
		}
		p.FactoryLoadPattern = pattern
	}
	if err := p.Validate(); err != nil {
		return model.SimulationParams{}, err
	}
	return p, nil
}

// FromModelParams is the inverse of ToModelParams with every field set.
func FromModelParams(name string, p model.SimulationParams) ScenarioConfig {
	return ScenarioConfig{
		Name:                        name,
		NumHouseholds:               &p.NumHouseholds,
		HouseholdPVCapacityKW:       &p.HouseholdPVCapacityKW,
		HouseholdBatteryCapacityKWh: &p.HouseholdBatteryCapacityKWh,
		SharedBatteryCapacityKWh:    &p.SharedBatteryCapacityKWh,
		FactoryLoadPattern:          string(p.FactoryLoadPattern),
	}
}

type scenarioFileWrapper struct {
	Scenario ScenarioConfig `yaml:"scenario"`
}

// LoadScenarioFile reads a preset of the form `scenario: {...}`.
func LoadScenarioFile(path string) (ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ScenarioConfig{}, err
	}
	var w scenarioFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ScenarioConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Scenario, nil
}

// MergeScenario overlays the set fields of override onto base.
// This is used when loading a scenario file and then applying overrides from the request.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.NumHouseholds != nil {
		out.NumHouseholds = override.NumHouseholds
	}
	if override.HouseholdPVCapacityKW != nil {
		out.HouseholdPVCapacityKW = override.HouseholdPVCapacityKW
	}
	if override.HouseholdBatteryCapacityKWh != nil {
		out.HouseholdBatteryCapacityKWh = override.HouseholdBatteryCapacityKWh
	}
	if override.SharedBatteryCapacityKWh != nil {
		out.SharedBatteryCapacityKWh = override.SharedBatteryCapacityKWh
	}
	if override.FactoryLoadPattern != "" {
		out.FactoryLoadPattern = override.FactoryLoadPattern
	}
	return out
}
