package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidParams is wrapped by every SimulationParams validation failure.
var ErrInvalidParams = errors.New("invalid simulation params")

// FactoryPattern selects one of the two factory load shapes.
type FactoryPattern string

const (
	// FactoryPatternA is the steady, around-the-clock profile.
	FactoryPatternA FactoryPattern = "A"
	// FactoryPatternB concentrates load into the solar-rich daytime hours.
	FactoryPatternB FactoryPattern = "B"
)

// FactoryPatterns lists the supported selectors in display order.
var FactoryPatterns = []FactoryPattern{FactoryPatternA, FactoryPatternB}

// ParseFactoryPattern accepts "A"/"B" in any case, with surrounding whitespace.
func ParseFactoryPattern(s string) (FactoryPattern, error) {
	switch FactoryPattern(strings.ToUpper(strings.TrimSpace(s))) {
	case FactoryPatternA:
		return FactoryPatternA, nil
	case FactoryPatternB:
		return FactoryPatternB, nil
	}
	return "", fmt.Errorf("%w: unknown factory load pattern %q", ErrInvalidParams, s)
}

func (p FactoryPattern) Valid() bool {
	return p == FactoryPatternA || p == FactoryPatternB
}

// SimulationParams is the input of one simulation run.
// Units:
// - HouseholdPVCapacityKW: kW per household
// - HouseholdBatteryCapacityKWh: kWh per household
// - SharedBatteryCapacityKWh: kWh for the single shared unit
type SimulationParams struct {
	NumHouseholds               int
	HouseholdPVCapacityKW       float64
	HouseholdBatteryCapacityKWh float64
	SharedBatteryCapacityKWh    float64
	FactoryLoadPattern          FactoryPattern
}

// DefaultParams is the reference scenario: 100 households with 15 kW of PV,
// 10 kWh batteries each and a 500 kWh shared battery.
func DefaultParams() SimulationParams {
	return SimulationParams{
		NumHouseholds:               100,
		HouseholdPVCapacityKW:       15.0,
		HouseholdBatteryCapacityKWh: 10.0,
		SharedBatteryCapacityKWh:    500.0,
		FactoryLoadPattern:          FactoryPatternA,
	}
}

// Validate rejects parameters outside the engine's input domain.
// The engine itself never calls this; it is for input layers (config, CLI, API).
func (p SimulationParams) Validate() error {
	if p.NumHouseholds < 1 {
		return fmt.Errorf("%w: num_households must be >= 1", ErrInvalidParams)
	}
	if p.HouseholdPVCapacityKW < 0 {
		return fmt.Errorf("%w: household_pv_capacity_kw must be >= 0", ErrInvalidParams)
	}
	if p.HouseholdBatteryCapacityKWh < 0 {
		return fmt.Errorf("%w: household_battery_capacity_kwh must be >= 0", ErrInvalidParams)
	}
	if p.SharedBatteryCapacityKWh < 0 {
		return fmt.Errorf("%w: shared_battery_capacity_kwh must be >= 0", ErrInvalidParams)
	}
	if !p.FactoryLoadPattern.Valid() {
		return fmt.Errorf("%w: factory_load_pattern must be %q or %q", ErrInvalidParams, FactoryPatternA, FactoryPatternB)
	}
	return nil
}

// WithPattern returns a copy of p using pattern.
func (p SimulationParams) WithPattern(pattern FactoryPattern) SimulationParams {
	p.FactoryLoadPattern = pattern
	return p
}
