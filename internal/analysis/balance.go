package analysis

import (
	"math"

	"energy-ecosystem/internal/model"
	"energy-ecosystem/internal/profile"
	"energy-ecosystem/internal/simulation"
)

// NotableNetThresholdKWh marks hours whose surplus or shortfall is large enough
// to be worth listing on its own.
const NotableNetThresholdKWh = 50.0

// HourBalance is generation vs. load for one hour, before any storage.
type HourBalance struct {
	Hour int
	PV   float64
	Load float64
	Net  float64
}

// Balance summarizes the raw supply/demand picture of a parameter set. It is
// computed from the generator curves only, so it says nothing about batteries.
type Balance struct {
	MinPV   float64
	MaxPV   float64
	MinLoad float64
	MaxLoad float64
	MinNet  float64
	MaxNet  float64

	SurplusHours   int
	ShortfallHours int

	// Notable holds the hours with |net| above NotableNetThresholdKWh, in hour order.
	Notable []HourBalance
}

func ComputeBalance(p model.SimulationParams) Balance {
	curves := simulation.BuildCurves(p)

	b := Balance{
		MinPV:   math.Inf(1),
		MaxPV:   math.Inf(-1),
		MinLoad: math.Inf(1),
		MaxLoad: math.Inf(-1),
		MinNet:  math.Inf(1),
		MaxNet:  math.Inf(-1),
	}
	for h := 0; h < profile.Hours; h++ {
		in := curves.At(h, p.NumHouseholds)
		load := in.Load()
		net := in.Net()

		b.MinPV = math.Min(b.MinPV, in.PV)
		b.MaxPV = math.Max(b.MaxPV, in.PV)
		b.MinLoad = math.Min(b.MinLoad, load)
		b.MaxLoad = math.Max(b.MaxLoad, load)
		b.MinNet = math.Min(b.MinNet, net)
		b.MaxNet = math.Max(b.MaxNet, net)

		switch {
		case net > 0:
			b.SurplusHours++
		case net < 0:
			b.ShortfallHours++
		}
		if math.Abs(net) > NotableNetThresholdKWh {
			b.Notable = append(b.Notable, HourBalance{Hour: h, PV: in.PV, Load: load, Net: net})
		}
	}
	return b
}
