package simulation

import "energy-ecosystem/internal/model"

// HourlyResult is one row of per-hour output.
// All energy figures are kWh for the hour; battery levels are after allocation.
type HourlyResult struct {
	Hour int

	PVGeneration float64
	TotalLoad    float64

	HouseholdLoad float64
	FactoryLoad   float64
	PublicLoad    float64
	EVLoad        float64

	NetGeneration float64
	Action        model.Action

	HouseholdBatteryLevel float64
	SharedBatteryLevel    float64

	HouseholdCharge    float64
	HouseholdDischarge float64
	SharedCharge       float64
	SharedDischarge    float64

	GridPurchase float64
	GridSell     float64
}

// BatteryLevel is the total stored energy after the hour.
func (r HourlyResult) BatteryLevel() float64 {
	return r.HouseholdBatteryLevel + r.SharedBatteryLevel
}

// BalanceError is the residual of
// pv + purchase + discharge - (load + sell + charge); zero up to rounding.
func (r HourlyResult) BalanceError() float64 {
	in := r.PVGeneration + r.GridPurchase + r.HouseholdDischarge + r.SharedDischarge
	out := r.TotalLoad + r.GridSell + r.HouseholdCharge + r.SharedCharge
	return in - out
}

// Result is the outcome of a full run.
type Result struct {
	Params model.SimulationParams
	Hours  []HourlyResult

	TotalGridPurchase float64
	TotalGridSell     float64
	TotalPVGeneration float64
	TotalLoad         float64

	// SelfConsumptionRate is the percentage of PV output not exported,
	// 0 when there was no PV output at all.
	SelfConsumptionRate float64
}

// SelfConsumption is the PV energy used on site (generation minus export).
func (r *Result) SelfConsumption() float64 {
	return r.TotalPVGeneration - r.TotalGridSell
}
