package model

// InitialChargeFraction is the state of charge every battery starts a run at.
const InitialChargeFraction = 0.5

// BatteryState is the storage state threaded from hour to hour.
// Units: kWh.
type BatteryState struct {
	// Household holds one level per household battery, in a fixed order.
	Household []float64
	// Shared is the level of the single shared battery.
	Shared float64
}

// NewBatteryState returns the state at the start of a run: every battery at
// InitialChargeFraction of its capacity. A non-positive household count yields
// an empty household collection.
func NewBatteryState(numHouseholds int, householdCapacityKWh, sharedCapacityKWh float64) BatteryState {
	n := numHouseholds
	if n < 0 {
		n = 0
	}
	household := make([]float64, n)
	for i := range household {
		household[i] = householdCapacityKWh * InitialChargeFraction
	}
	return BatteryState{
		Household: household,
		Shared:    sharedCapacityKWh * InitialChargeFraction,
	}
}

// Clone returns a deep copy, so the household slice can be mutated without
// touching the receiver.
func (s BatteryState) Clone() BatteryState {
	household := make([]float64, len(s.Household))
	copy(household, s.Household)
	return BatteryState{Household: household, Shared: s.Shared}
}

// HouseholdTotal is the summed level of all household batteries.
func (s BatteryState) HouseholdTotal() float64 {
	total := 0.0
	for _, v := range s.Household {
		total += v
	}
	return total
}

// Total is HouseholdTotal plus the shared battery.
func (s BatteryState) Total() float64 {
	return s.HouseholdTotal() + s.Shared
}
