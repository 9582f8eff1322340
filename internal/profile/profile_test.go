package profile

import (
	"math"
	"testing"

	"energy-ecosystem/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHouseholdLoad_NormalizedToOneKW(t *testing.T) {
	c := HouseholdLoad()
	assert.InDelta(t, 1.0, c.Max(), 1e-12)

	// Evening peak dominates the morning one.
	assert.Greater(t, c[20], c[8])
	assert.Greater(t, c[8], c[4])
	for h, v := range c {
		assert.Greater(t, v, 0.0, "hour %d", h)
	}
}

func TestHouseholdLoad_MatchesClosedForm(t *testing.T) {
	raw := func(t float64) float64 {
		return 0.2 + 0.1*math.Sin(2*math.Pi*t/24) +
			0.3*math.Exp(-math.Pow((t-8)/1.5, 2)) +
			0.5*math.Exp(-math.Pow((t-20)/2, 2))
	}
	peak := 0.0
	for h := 0; h < Hours; h++ {
		peak = math.Max(peak, raw(float64(h)))
	}
	c := HouseholdLoad()
	for h := 0; h < Hours; h++ {
		assert.InDelta(t, raw(float64(h))/peak, c[h], 1e-12, "hour %d", h)
	}
}

func TestFactoryLoadSteady(t *testing.T) {
	c := FactoryLoadSteady()
	// sin(0) = 0 -> base + 200*0.5
	assert.InDelta(t, 450.0, c[0], 1e-9)
	// sin(pi/2) = 1 at hour 6 -> base + 200*0.8
	assert.InDelta(t, 510.0, c[6], 1e-9)
	// sin(3pi/2) = -1 at hour 18 -> base + 200*0.2
	assert.InDelta(t, 390.0, c[18], 1e-9)
	for h, v := range c {
		assert.GreaterOrEqual(t, v, 0.8*FactoryLoadBaseKW, "hour %d", h)
		assert.LessOrEqual(t, v, 1.1*FactoryLoadPeakKW, "hour %d", h)
	}
}

func TestFactoryLoadDaytime(t *testing.T) {
	c := FactoryLoadDaytime()
	// Full boost at 13:00 -> base + 200*(0.3+0.7)
	assert.InDelta(t, FactoryLoadPeakKW, c[13], 1e-9)
	assert.InDelta(t, FactoryLoadBaseKW+200*0.3, c[0], 1e-3)
	assert.Equal(t, 13, argmax(c))
	for h, v := range c {
		assert.GreaterOrEqual(t, v, 0.5*FactoryLoadBaseKW, "hour %d", h)
		assert.LessOrEqual(t, v, 1.2*FactoryLoadPeakKW, "hour %d", h)
	}
}

func TestFactoryLoad_Selector(t *testing.T) {
	assert.Equal(t, FactoryLoadSteady(), FactoryLoad(model.FactoryPatternA))
	assert.Equal(t, FactoryLoadDaytime(), FactoryLoad(model.FactoryPatternB))
}

func TestPublicFacilityLoad(t *testing.T) {
	c := PublicFacilityLoad()
	assert.InDelta(t, PublicFacilityLoadPeakKW, c[13], 1e-9)
	assert.Equal(t, 13, argmax(c))
	for h, v := range c {
		assert.GreaterOrEqual(t, v, PublicFacilityLoadBaseKW, "hour %d", h)
	}
}

func TestEVChargingLoad_NightWindowOnly(t *testing.T) {
	c := EVChargingLoad()
	window := map[int]bool{22: true, 23: true, 0: true, 1: true, 2: true, 3: true}
	for h, v := range c {
		if window[h] {
			assert.Equal(t, EVChargingPowerKW, v, "hour %d", h)
		} else {
			assert.Zero(t, v, "hour %d", h)
		}
	}
	assert.InDelta(t, 18.0, c.Sum(), 1e-12)
}

func TestPVGeneration(t *testing.T) {
	c := PVGeneration(15)
	assert.InDelta(t, 15*0.8, c[12], 1e-12)
	assert.InDelta(t, math.Exp(-4)*15*0.8, c[6], 1e-12)
	assert.InDelta(t, math.Exp(-4)*15*0.8, c[18], 1e-12)
	for _, h := range []int{0, 1, 2, 3, 4, 5, 19, 20, 21, 22, 23} {
		assert.Zero(t, c[h], "hour %d", h)
	}
}

func TestPVGeneration_ZeroCapacity(t *testing.T) {
	assert.Zero(t, PVGeneration(0).Sum())
}

func TestCurveHelpers(t *testing.T) {
	c := EVChargingLoad().Scale(100)
	require.InDelta(t, 300.0, c[22], 1e-12)
	assert.InDelta(t, 1800.0, c.Sum(), 1e-9)
	assert.InDelta(t, 300.0, c.Max(), 1e-12)
}

func TestGenerators_Deterministic(t *testing.T) {
	assert.Equal(t, HouseholdLoad(), HouseholdLoad())
	assert.Equal(t, FactoryLoadSteady(), FactoryLoadSteady())
	assert.Equal(t, FactoryLoadDaytime(), FactoryLoadDaytime())
	assert.Equal(t, PVGeneration(7.5), PVGeneration(7.5))
}

func argmax(c Curve) int {
	best := 0
	for h, v := range c {
		if v > c[best] {
			best = h
		}
	}
	return best
}
