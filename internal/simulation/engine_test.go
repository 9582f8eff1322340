package simulation

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"os"
	"testing"

	"energy-ecosystem/internal/model"
	"energy-ecosystem/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-6

func TestRun_SmokeDefaultScenario(t *testing.T) {
	res := New().Run(model.DefaultParams())

	require.Len(t, res.Hours, 24)
	for i, r := range res.Hours {
		assert.Equal(t, i, r.Hour)
	}
	assert.Greater(t, res.TotalPVGeneration, 0.0)
	assert.Equal(t, model.DefaultParams(), res.Params)
}

func TestRun_EnergyConservedEveryHour(t *testing.T) {
	for _, p := range scenarios() {
		res := New().Run(p)
		for _, r := range res.Hours {
			assert.InDelta(t, 0, r.BalanceError(), tolerance, "pattern %s hour %d", p.FactoryLoadPattern, r.Hour)
		}
	}
}

func TestRun_BatteryLevelsFollowChargeAndDischarge(t *testing.T) {
	p := model.DefaultParams()
	res := New().Run(p)

	prevHousehold := float64(p.NumHouseholds) * p.HouseholdBatteryCapacityKWh * model.InitialChargeFraction
	prevShared := p.SharedBatteryCapacityKWh * model.InitialChargeFraction
	for _, r := range res.Hours {
		assert.InDelta(t, prevHousehold+r.HouseholdCharge-r.HouseholdDischarge, r.HouseholdBatteryLevel, tolerance, "hour %d", r.Hour)
		assert.InDelta(t, prevShared+r.SharedCharge-r.SharedDischarge, r.SharedBatteryLevel, tolerance, "hour %d", r.Hour)
		prevHousehold = r.HouseholdBatteryLevel
		prevShared = r.SharedBatteryLevel
	}
}

func TestRun_Bounds(t *testing.T) {
	for _, p := range scenarios() {
		res := New().Run(p)
		householdCap := float64(p.NumHouseholds) * p.HouseholdBatteryCapacityKWh
		for _, r := range res.Hours {
			assert.GreaterOrEqual(t, r.HouseholdBatteryLevel, 0.0)
			assert.LessOrEqual(t, r.HouseholdBatteryLevel, householdCap+tolerance)
			assert.GreaterOrEqual(t, r.SharedBatteryLevel, 0.0)
			assert.LessOrEqual(t, r.SharedBatteryLevel, p.SharedBatteryCapacityKWh+tolerance)
			assert.GreaterOrEqual(t, r.PVGeneration, 0.0)
			assert.GreaterOrEqual(t, r.TotalLoad, 0.0)
			assert.GreaterOrEqual(t, r.GridPurchase, 0.0)
			assert.GreaterOrEqual(t, r.GridSell, 0.0)
			// Never buy and sell in the same hour.
			assert.False(t, r.GridPurchase > 0 && r.GridSell > 0, "hour %d", r.Hour)
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	for _, p := range scenarios() {
		assert.Equal(t, New().Run(p), New().Run(p))
	}
}

func TestRun_SelfConsumptionRate(t *testing.T) {
	for _, p := range scenarios() {
		res := New().Run(p)
		require.Greater(t, res.TotalPVGeneration, 0.0)
		assert.GreaterOrEqual(t, res.SelfConsumptionRate, 0.0)
		assert.LessOrEqual(t, res.SelfConsumptionRate, 100.0)
		assert.InDelta(t, 100*(res.TotalPVGeneration-res.TotalGridSell)/res.TotalPVGeneration, res.SelfConsumptionRate, 1e-9)
	}
}

func TestRun_NoPVMeansZeroSelfConsumption(t *testing.T) {
	p := model.DefaultParams()
	p.HouseholdPVCapacityKW = 0

	res := New().Run(p)

	assert.Zero(t, res.TotalPVGeneration)
	assert.Zero(t, res.SelfConsumptionRate)
	assert.Zero(t, res.TotalGridSell)
}

func TestRun_ZeroHouseholdsDoesNotPanic(t *testing.T) {
	p := model.DefaultParams()
	p.NumHouseholds = 0

	var res *Result
	require.NotPanics(t, func() { res = New().Run(p) })
	require.Len(t, res.Hours, 24)
	for _, r := range res.Hours {
		assert.Zero(t, r.HouseholdBatteryLevel)
		assert.Zero(t, r.PVGeneration)
		assert.InDelta(t, r.FactoryLoad+r.PublicLoad, r.TotalLoad, 1e-9)
	}
}

func TestRun_TotalsMatchHours(t *testing.T) {
	res := New().Run(model.DefaultParams().WithPattern(model.FactoryPatternB))

	var purchase, sell, pv, load float64
	for _, r := range res.Hours {
		purchase += r.GridPurchase
		sell += r.GridSell
		pv += r.PVGeneration
		load += r.TotalLoad
	}
	assert.InDelta(t, purchase, res.TotalGridPurchase, 1e-9)
	assert.InDelta(t, sell, res.TotalGridSell, 1e-9)
	assert.InDelta(t, pv, res.TotalPVGeneration, 1e-9)
	assert.InDelta(t, load, res.TotalLoad, 1e-9)
	assert.InDelta(t, profile.PVGeneration(15).Sum()*100, res.TotalPVGeneration, 1e-6)
}

func TestRun_ActionFollowsNetGeneration(t *testing.T) {
	res := New().Run(model.DefaultParams())
	for _, r := range res.Hours {
		assert.Equal(t, model.ActionFromNetKWh(r.NetGeneration), r.Action, "hour %d", r.Hour)
	}
	// Midnight has no sun and EV charging on top of the base load.
	assert.Equal(t, model.ActionDischarging, res.Hours[0].Action)
	// Noon with 1.2 MW of PV comfortably exceeds demand.
	assert.Equal(t, model.ActionCharging, res.Hours[12].Action)
}

func TestCurves_At(t *testing.T) {
	c := BuildCurves(model.DefaultParams())
	in := c.At(22, 100)

	assert.InDelta(t, 300.0, in.EV, 1e-9)
	assert.Zero(t, in.PV)
	assert.InDelta(t, c.Household[22]*100+c.Factory[22]+c.Public[22]+300, in.Load(), 1e-9)
	assert.InDelta(t, -in.Load(), in.Net(), 1e-9)
}

func TestEncodeLedgerCSV(t *testing.T) {
	res := New().Run(model.DefaultParams())

	var buf bytes.Buffer
	require.NoError(t, EncodeLedgerCSV(&buf, res.Hours))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 25)
	assert.Equal(t, ledgerHeader, rows[0])
	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "23", rows[24][0])
	assert.Equal(t, string(res.Hours[12].Action), rows[13][1])
}

func TestWriteLedgerCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	res := New().Run(model.DefaultParams())

	require.NoError(t, WriteLedgerCSV(path, res.Hours))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "grid_purchase_kwh")
}

func scenarios() []model.SimulationParams {
	small := model.SimulationParams{
		NumHouseholds:               7,
		HouseholdPVCapacityKW:       40,
		HouseholdBatteryCapacityKWh: 13.5,
		SharedBatteryCapacityKWh:    20,
		FactoryLoadPattern:          model.FactoryPatternB,
	}
	return []model.SimulationParams{
		model.DefaultParams(),
		model.DefaultParams().WithPattern(model.FactoryPatternB),
		small,
	}
}
