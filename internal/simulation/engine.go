package simulation

import (
	"energy-ecosystem/internal/model"
	"energy-ecosystem/internal/profile"
)

// Curves bundles the five generator outputs for one parameter set.
// Household, EV and PV are per household; Factory and Public are site totals.
type Curves struct {
	Household profile.Curve
	Factory   profile.Curve
	Public    profile.Curve
	EV        profile.Curve
	PV        profile.Curve
}

// BuildCurves evaluates every generator once for p.
func BuildCurves(p model.SimulationParams) Curves {
	return Curves{
		Household: profile.HouseholdLoad(),
		Factory:   profile.FactoryLoad(p.FactoryLoadPattern),
		Public:    profile.PublicFacilityLoad(),
		EV:        profile.EVChargingLoad(),
		PV:        profile.PVGeneration(p.HouseholdPVCapacityKW),
	}
}

// HourInputs are the aggregate figures the allocator sees for one hour.
type HourInputs struct {
	PV        float64
	Household float64
	Factory   float64
	Public    float64
	EV        float64
}

// Load is the total demand of the hour.
func (in HourInputs) Load() float64 {
	return in.Household + in.Factory + in.Public + in.EV
}

// Net is generation minus load; positive means surplus.
func (in HourInputs) Net() float64 {
	return in.PV - in.Load()
}

// At scales the per-household curves by numHouseholds for hour h.
func (c Curves) At(h, numHouseholds int) HourInputs {
	n := float64(max(numHouseholds, 0))
	return HourInputs{
		PV:        c.PV[h] * n,
		Household: c.Household[h] * n,
		Factory:   c.Factory[h],
		Public:    c.Public[h],
		EV:        c.EV[h] * n,
	}
}

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run simulates one day hour by hour. Battery state starts at half capacity and
// is carried from each hour into the next; nothing survives the call.
//
// Run does not validate p; callers are expected to reject invalid parameters
// with model.SimulationParams.Validate first. A household count below one
// simply disables the household batteries.
func (e *Engine) Run(p model.SimulationParams) *Result {
	curves := BuildCurves(p)
	state := model.NewBatteryState(p.NumHouseholds, p.HouseholdBatteryCapacityKWh, p.SharedBatteryCapacityKWh)

	res := &Result{
		Params: p,
		Hours:  make([]HourlyResult, 0, profile.Hours),
	}

	for h := 0; h < profile.Hours; h++ {
		in := curves.At(h, p.NumHouseholds)
		load := in.Load()

		alloc := Allocate(in.PV, load, state, p.HouseholdBatteryCapacityKWh, p.SharedBatteryCapacityKWh)
		state = alloc.State

		res.Hours = append(res.Hours, HourlyResult{
			Hour: h,

			PVGeneration: in.PV,
			TotalLoad:    load,

			HouseholdLoad: in.Household,
			FactoryLoad:   in.Factory,
			PublicLoad:    in.Public,
			EVLoad:        in.EV,

			NetGeneration: in.PV - load,
			Action:        model.ActionFromNetKWh(in.PV - load),

			HouseholdBatteryLevel: state.HouseholdTotal(),
			SharedBatteryLevel:    state.Shared,

			HouseholdCharge:    alloc.HouseholdCharge,
			HouseholdDischarge: alloc.HouseholdDischarge,
			SharedCharge:       alloc.SharedCharge,
			SharedDischarge:    alloc.SharedDischarge,

			GridPurchase: alloc.GridPurchase,
			GridSell:     alloc.GridSell,
		})

		res.TotalGridPurchase += alloc.GridPurchase
		res.TotalGridSell += alloc.GridSell
		res.TotalPVGeneration += in.PV
		res.TotalLoad += load
	}

	if res.TotalPVGeneration > 0 {
		res.SelfConsumptionRate = 100 * res.SelfConsumption() / res.TotalPVGeneration
	}
	return res
}
