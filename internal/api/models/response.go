package models

import (
	"energy-ecosystem/internal/analysis"
	"energy-ecosystem/internal/model"
	"energy-ecosystem/internal/profile"
	"energy-ecosystem/internal/simulation"
)

// SimulationResponse represents the response from a simulation run
type SimulationResponse struct {
	ID         string            `json:"id,omitempty"`
	Status     string            `json:"status"`
	Params     ParamsView        `json:"params"`
	Summary    SimulationSummary `json:"summary"`
	Statistics StatisticsView    `json:"statistics"`
	Balance    *BalanceView      `json:"balance,omitempty"`
	Hours      []HourlyRow       `json:"hours,omitempty"`
}

// ParamsView echoes the effective parameters after defaults and presets
type ParamsView struct {
	NumHouseholds               int     `json:"num_households"`
	HouseholdPVCapacityKW       float64 `json:"household_pv_capacity_kw"`
	HouseholdBatteryCapacityKWh float64 `json:"household_battery_capacity_kwh"`
	SharedBatteryCapacityKWh    float64 `json:"shared_battery_capacity_kwh"`
	FactoryLoadPattern          string  `json:"factory_load_pattern"`
}

// SimulationSummary contains the aggregate results of a run
type SimulationSummary struct {
	TotalGridPurchase   float64 `json:"total_grid_purchase"`
	TotalGridSell       float64 `json:"total_grid_sell"`
	TotalPVGeneration   float64 `json:"total_pv_generation"`
	TotalLoad           float64 `json:"total_load"`
	SelfConsumptionRate float64 `json:"self_consumption_rate"`
}

// StatisticsView contains battery and grid statistics of a run
type StatisticsView struct {
	InitialBatteryLevel float64 `json:"initial_battery_level"`
	FinalBatteryLevel   float64 `json:"final_battery_level"`
	MinBatteryLevel     float64 `json:"min_battery_level"`
	MaxBatteryLevel     float64 `json:"max_battery_level"`
	SellHours           int     `json:"sell_hours"`
	MaxGridSell         float64 `json:"max_grid_sell"`
	PurchaseHours       int     `json:"purchase_hours"`
	MaxGridPurchase     float64 `json:"max_grid_purchase"`
}

// BalanceView describes generation vs. load before storage
type BalanceView struct {
	MinPV          float64          `json:"min_pv"`
	MaxPV          float64          `json:"max_pv"`
	MinLoad        float64          `json:"min_load"`
	MaxLoad        float64          `json:"max_load"`
	MinNet         float64          `json:"min_net"`
	MaxNet         float64          `json:"max_net"`
	SurplusHours   int              `json:"surplus_hours"`
	ShortfallHours int              `json:"shortfall_hours"`
	Notable        []HourBalanceRow `json:"notable_hours"`
}

// HourBalanceRow is one notable hour of a BalanceView
type HourBalanceRow struct {
	Hour int     `json:"hour"`
	PV   float64 `json:"pv"`
	Load float64 `json:"load"`
	Net  float64 `json:"net"`
}

// HourlyRow represents one hour in the simulation ledger
type HourlyRow struct {
	Hour                  int     `json:"hour"`
	Action                string  `json:"action"` // "CHARGING", "DISCHARGING", "IDLE"
	PVGeneration          float64 `json:"pv_generation"`
	TotalLoad             float64 `json:"total_load"`
	HouseholdLoad         float64 `json:"household_load"`
	FactoryLoad           float64 `json:"factory_load"`
	PublicLoad            float64 `json:"public_load"`
	EVLoad                float64 `json:"ev_load"`
	NetGeneration         float64 `json:"net_generation"`
	HouseholdBatteryLevel float64 `json:"household_battery_level"`
	SharedBatteryLevel    float64 `json:"shared_battery_level"`
	BatteryCharge         float64 `json:"battery_charge"`
	BatteryDischarge      float64 `json:"battery_discharge"`
	GridPurchase          float64 `json:"grid_purchase"`
	GridSell              float64 `json:"grid_sell"`
}

// LedgerResponse is returned by the cached ledger endpoint
type LedgerResponse struct {
	ID    string      `json:"id"`
	Hours []HourlyRow `json:"hours"`
}

// CompareResponse represents the response from a pattern comparison
type CompareResponse struct {
	Params                ParamsView        `json:"params"`
	PatternA              SimulationSummary `json:"pattern_a"`
	PatternB              SimulationSummary `json:"pattern_b"`
	PurchaseDiff          float64           `json:"purchase_diff"`
	SellDiff              float64           `json:"sell_diff"`
	PurchaseReductionRate float64           `json:"purchase_reduction_rate"`
}

// StreamMessage is one websocket frame of the stream endpoint
type StreamMessage struct {
	Type    string             `json:"type"` // "hour" or "summary"
	Hour    *HourlyRow         `json:"hour,omitempty"`
	Summary *SimulationSummary `json:"summary,omitempty"`
}

// PatternInfo represents information about a factory load pattern
type PatternInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ScenarioInfo represents information about a scenario preset
type ScenarioInfo struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	File   string     `json:"file"`
	Params ParamsView `json:"params"`
}

// CurvesResponse lists the generator curves
type CurvesResponse struct {
	PVCapacityKW float64   `json:"pv_capacity_kw"`
	Household    []float64 `json:"household"`
	FactoryA     []float64 `json:"factory_a"`
	FactoryB     []float64 `json:"factory_b"`
	Public       []float64 `json:"public"`
	EV           []float64 `json:"ev"`
	PV           []float64 `json:"pv"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func NewParamsView(p model.SimulationParams) ParamsView {
	return ParamsView{
		NumHouseholds:               p.NumHouseholds,
		HouseholdPVCapacityKW:       p.HouseholdPVCapacityKW,
		HouseholdBatteryCapacityKWh: p.HouseholdBatteryCapacityKWh,
		SharedBatteryCapacityKWh:    p.SharedBatteryCapacityKWh,
		FactoryLoadPattern:          string(p.FactoryLoadPattern),
	}
}

func NewSummary(res *simulation.Result) SimulationSummary {
	return SimulationSummary{
		TotalGridPurchase:   res.TotalGridPurchase,
		TotalGridSell:       res.TotalGridSell,
		TotalPVGeneration:   res.TotalPVGeneration,
		TotalLoad:           res.TotalLoad,
		SelfConsumptionRate: res.SelfConsumptionRate,
	}
}

func NewStatisticsView(s analysis.Statistics) StatisticsView {
	return StatisticsView{
		InitialBatteryLevel: s.InitialBatteryLevel,
		FinalBatteryLevel:   s.FinalBatteryLevel,
		MinBatteryLevel:     s.MinBatteryLevel,
		MaxBatteryLevel:     s.MaxBatteryLevel,
		SellHours:           s.SellHours,
		MaxGridSell:         s.MaxGridSell,
		PurchaseHours:       s.PurchaseHours,
		MaxGridPurchase:     s.MaxGridPurchase,
	}
}

func NewBalanceView(b analysis.Balance) *BalanceView {
	notable := make([]HourBalanceRow, len(b.Notable))
	for i, n := range b.Notable {
		notable[i] = HourBalanceRow{Hour: n.Hour, PV: n.PV, Load: n.Load, Net: n.Net}
	}
	return &BalanceView{
		MinPV:          b.MinPV,
		MaxPV:          b.MaxPV,
		MinLoad:        b.MinLoad,
		MaxLoad:        b.MaxLoad,
		MinNet:         b.MinNet,
		MaxNet:         b.MaxNet,
		SurplusHours:   b.SurplusHours,
		ShortfallHours: b.ShortfallHours,
		Notable:        notable,
	}
}

func NewHourlyRow(r simulation.HourlyResult) HourlyRow {
	return HourlyRow{
		Hour:                  r.Hour,
		Action:                string(r.Action),
		PVGeneration:          r.PVGeneration,
		TotalLoad:             r.TotalLoad,
		HouseholdLoad:         r.HouseholdLoad,
		FactoryLoad:           r.FactoryLoad,
		PublicLoad:            r.PublicLoad,
		EVLoad:                r.EVLoad,
		NetGeneration:         r.NetGeneration,
		HouseholdBatteryLevel: r.HouseholdBatteryLevel,
		SharedBatteryLevel:    r.SharedBatteryLevel,
		BatteryCharge:         r.HouseholdCharge + r.SharedCharge,
		BatteryDischarge:      r.HouseholdDischarge + r.SharedDischarge,
		GridPurchase:          r.GridPurchase,
		GridSell:              r.GridSell,
	}
}

func NewHourlyRows(hours []simulation.HourlyResult) []HourlyRow {
	rows := make([]HourlyRow, len(hours))
	for i, r := range hours {
		rows[i] = NewHourlyRow(r)
	}
	return rows
}

// CurveSlice converts a fixed-size curve for JSON output.
func CurveSlice(c profile.Curve) []float64 {
	out := make([]float64, len(c))
	copy(out, c[:])
	return out
}
