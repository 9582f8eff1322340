// Package report renders simulation output for terminals.
package report

import (
	"fmt"
	"io"
	"strconv"

	"energy-ecosystem/internal/analysis"
	"energy-ecosystem/internal/profile"
	"energy-ecosystem/internal/simulation"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

// Places is the number of decimals used for every reported figure.
const Places = 2

// Fixed formats x with Places decimals, rounding half away from zero.
func Fixed(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(Places)
}

// Round rounds x to Places decimals.
func Round(x float64) float64 {
	return decimal.NewFromFloat(x).Round(Places).InexactFloat64()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	return t
}

// WriteHourly prints one row per simulated hour.
func WriteHourly(w io.Writer, res *simulation.Result) {
	t := newTable(w, []string{
		"hour", "action", "pv kWh", "load kWh", "net kWh",
		"household batt kWh", "shared batt kWh", "purchase kWh", "sell kWh",
	})
	for _, r := range res.Hours {
		t.Append([]string{
			strconv.Itoa(r.Hour),
			string(r.Action),
			Fixed(r.PVGeneration),
			Fixed(r.TotalLoad),
			Fixed(r.NetGeneration),
			Fixed(r.HouseholdBatteryLevel),
			Fixed(r.SharedBatteryLevel),
			Fixed(r.GridPurchase),
			Fixed(r.GridSell),
		})
	}
	t.Render()
}

// WriteSummary prints the run totals followed by the battery statistics.
func WriteSummary(w io.Writer, res *simulation.Result, stats analysis.Statistics) {
	p := res.Params
	fmt.Fprintf(w, "Scenario: households=%d pv=%skW battery=%skWh shared=%skWh pattern=%s\n",
		p.NumHouseholds, Fixed(p.HouseholdPVCapacityKW), Fixed(p.HouseholdBatteryCapacityKWh),
		Fixed(p.SharedBatteryCapacityKWh), p.FactoryLoadPattern)

	t := newTable(w, []string{"metric", "value"})
	t.AppendBulk([][]string{
		{"total grid purchase (kWh)", Fixed(res.TotalGridPurchase)},
		{"total grid sell (kWh)", Fixed(res.TotalGridSell)},
		{"total PV generation (kWh)", Fixed(res.TotalPVGeneration)},
		{"total load (kWh)", Fixed(res.TotalLoad)},
		{"self-consumption rate (%)", Fixed(res.SelfConsumptionRate)},
		{"initial battery level (kWh)", Fixed(stats.InitialBatteryLevel)},
		{"final battery level (kWh)", Fixed(stats.FinalBatteryLevel)},
		{"min battery level (kWh)", Fixed(stats.MinBatteryLevel)},
		{"max battery level (kWh)", Fixed(stats.MaxBatteryLevel)},
		{"hours selling to grid", strconv.Itoa(stats.SellHours)},
		{"max hourly sell (kWh)", Fixed(stats.MaxGridSell)},
		{"hours purchasing from grid", strconv.Itoa(stats.PurchaseHours)},
		{"max hourly purchase (kWh)", Fixed(stats.MaxGridPurchase)},
	})
	t.Render()
}

// WriteBalance prints generation vs. load before storage.
func WriteBalance(w io.Writer, b analysis.Balance) {
	fmt.Fprintf(w, "PV: min=%s max=%s kWh | load: min=%s max=%s kWh | net: min=%s max=%s kWh\n",
		Fixed(b.MinPV), Fixed(b.MaxPV), Fixed(b.MinLoad), Fixed(b.MaxLoad), Fixed(b.MinNet), Fixed(b.MaxNet))
	fmt.Fprintf(w, "surplus hours=%d shortfall hours=%d\n", b.SurplusHours, b.ShortfallHours)
	if len(b.Notable) == 0 {
		return
	}
	t := newTable(w, []string{"hour", "pv kWh", "load kWh", "net kWh"})
	for _, n := range b.Notable {
		t.Append([]string{strconv.Itoa(n.Hour), Fixed(n.PV), Fixed(n.Load), Fixed(n.Net)})
	}
	t.Render()
}

// WriteComparison prints pattern A and B side by side.
func WriteComparison(w io.Writer, c analysis.Comparison) {
	a, b := c.A.Result, c.B.Result
	t := newTable(w, []string{"metric", "pattern A", "pattern B", "A - B"})
	t.AppendBulk([][]string{
		{"grid purchase (kWh)", Fixed(a.TotalGridPurchase), Fixed(b.TotalGridPurchase), Fixed(c.PurchaseDiff)},
		{"grid sell (kWh)", Fixed(a.TotalGridSell), Fixed(b.TotalGridSell), Fixed(c.SellDiff)},
		{"PV generation (kWh)", Fixed(a.TotalPVGeneration), Fixed(b.TotalPVGeneration), ""},
		{"total load (kWh)", Fixed(a.TotalLoad), Fixed(b.TotalLoad), Fixed(a.TotalLoad - b.TotalLoad)},
		{"self-consumption (%)", Fixed(a.SelfConsumptionRate), Fixed(b.SelfConsumptionRate), ""},
		{"surplus hours", strconv.Itoa(c.A.Balance.SurplusHours), strconv.Itoa(c.B.Balance.SurplusHours), ""},
		{"hours selling", strconv.Itoa(c.A.Statistics.SellHours), strconv.Itoa(c.B.Statistics.SellHours), ""},
	})
	t.Render()
	fmt.Fprintf(w, "purchase reduction: %s %%\n", Fixed(c.PurchaseReductionRate))
}

// WriteCurves prints the generator curves, per household where applicable.
func WriteCurves(w io.Writer, c simulation.Curves) {
	t := newTable(w, []string{"hour", "household kW", "factory kW", "public kW", "ev kW", "pv kW"})
	for h := 0; h < profile.Hours; h++ {
		t.Append([]string{
			strconv.Itoa(h),
			Fixed(c.Household[h]),
			Fixed(c.Factory[h]),
			Fixed(c.Public[h]),
			Fixed(c.EV[h]),
			Fixed(c.PV[h]),
		})
	}
	t.Render()
}
