package simulation

import "energy-ecosystem/internal/model"

// Allocation is the outcome of routing one hour's surplus or shortfall through
// the household batteries, the shared battery and the grid. Units: kWh.
type Allocation struct {
	// State is the battery state after the hour.
	State model.BatteryState

	GridPurchase float64
	GridSell     float64

	HouseholdCharge    float64
	HouseholdDischarge float64
	SharedCharge       float64
	SharedDischarge    float64
}

// BatteryCharge is the energy stored this hour across all batteries.
func (a Allocation) BatteryCharge() float64 { return a.HouseholdCharge + a.SharedCharge }

// BatteryDischarge is the energy withdrawn this hour across all batteries.
func (a Allocation) BatteryDischarge() float64 { return a.HouseholdDischarge + a.SharedDischarge }

// Allocate balances one hour. A surplus (generation > load) charges household
// batteries first, then the shared battery, and the rest is sold to the grid.
// A shortfall discharges in the same order and the rest is bought from the grid.
//
// Household batteries are visited in collection order and each is offered
// remaining/len(Household), where len(Household) stays fixed for the whole pass.
// Batteries visited late can therefore pick up more than an equal share when
// earlier ones saturate. An empty collection skips the household pass.
//
// state is not modified; the returned Allocation carries a fresh copy.
func Allocate(generationKWh, loadKWh float64, state model.BatteryState, householdCapacityKWh, sharedCapacityKWh float64) Allocation {
	a := Allocation{State: state.Clone()}
	net := generationKWh - loadKWh

	switch {
	case net > 0:
		surplus := net
		if n := float64(len(a.State.Household)); n > 0 {
			for i, level := range a.State.Household {
				if surplus <= 0 {
					break
				}
				charge := max(0, min(surplus/n, householdCapacityKWh-level))
				a.State.Household[i] = level + charge
				a.HouseholdCharge += charge
				surplus -= charge
			}
		}
		if surplus > 0 {
			charge := max(0, min(surplus, sharedCapacityKWh-a.State.Shared))
			a.State.Shared += charge
			a.SharedCharge = charge
			surplus -= charge
		}
		if surplus > 0 {
			a.GridSell = surplus
		}

	case net < 0:
		shortage := -net
		if n := float64(len(a.State.Household)); n > 0 {
			for i, level := range a.State.Household {
				if shortage <= 0 {
					break
				}
				discharge := max(0, min(shortage/n, level))
				a.State.Household[i] = level - discharge
				a.HouseholdDischarge += discharge
				shortage -= discharge
			}
		}
		if shortage > 0 {
			discharge := max(0, min(shortage, a.State.Shared))
			a.State.Shared -= discharge
			a.SharedDischarge = discharge
			shortage -= discharge
		}
		if shortage > 0 {
			a.GridPurchase = shortage
		}
	}

	return a
}
