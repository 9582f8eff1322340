package analysis

import (
	"math"

	"energy-ecosystem/internal/simulation"
)

// Statistics are derived figures over a finished run. Battery levels are the
// household sum plus the shared battery, sampled after each hour's allocation.
type Statistics struct {
	InitialBatteryLevel float64
	FinalBatteryLevel   float64
	MinBatteryLevel     float64
	MaxBatteryLevel     float64

	SellHours   int
	MaxGridSell float64

	PurchaseHours   int
	MaxGridPurchase float64
}

func Summarize(res *simulation.Result) Statistics {
	var s Statistics
	if res == nil || len(res.Hours) == 0 {
		return s
	}

	s.InitialBatteryLevel = res.Hours[0].BatteryLevel()
	s.FinalBatteryLevel = res.Hours[len(res.Hours)-1].BatteryLevel()
	s.MinBatteryLevel = math.Inf(1)
	s.MaxBatteryLevel = math.Inf(-1)

	for _, r := range res.Hours {
		level := r.BatteryLevel()
		s.MinBatteryLevel = math.Min(s.MinBatteryLevel, level)
		s.MaxBatteryLevel = math.Max(s.MaxBatteryLevel, level)
		if r.GridSell > 0 {
			s.SellHours++
			s.MaxGridSell = math.Max(s.MaxGridSell, r.GridSell)
		}
		if r.GridPurchase > 0 {
			s.PurchaseHours++
			s.MaxGridPurchase = math.Max(s.MaxGridPurchase, r.GridPurchase)
		}
	}
	return s
}
