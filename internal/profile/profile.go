// Package profile synthesizes the hourly load and generation curves of the
// micro-grid. Every curve is a closed-form function of the hour index and, where
// relevant, one simulation parameter; nothing here is random or stateful.
package profile

import (
	"math"

	"energy-ecosystem/internal/model"
)

// Hours is the length of every curve.
const Hours = 24

// Curve holds one value per hour of the day, index 0 = 00:00.
type Curve [Hours]float64

// Load figures in kW. Factory and public-facility figures describe the whole
// site, not a single household.
const (
	FactoryLoadBaseKW = 350.0
	FactoryLoadPeakKW = 550.0

	PublicFacilityLoadBaseKW = 70.0
	PublicFacilityLoadPeakKW = 130.0

	// EVChargingPowerKW is drawn by every household during EVChargingHours.
	EVChargingPowerKW = 3.0

	// PVPeakFactor is the share of rated PV capacity produced at solar noon.
	PVPeakFactor = 0.8

	pvFirstHour = 6
	pvLastHour  = 18
)

// EVChargingHours is the overnight charging window.
var EVChargingHours = [...]int{22, 23, 0, 1, 2, 3}

// gauss returns exp(-((t-center)/width)^2).
func gauss(t, center, width float64) float64 {
	x := (t - center) / width
	return math.Exp(-x * x)
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// HouseholdLoad is the per-household demand shape with a morning and an
// evening peak, rescaled so its maximum is exactly 1 kW.
func HouseholdLoad() Curve {
	var c Curve
	peak := 0.0
	for h := range c {
		t := float64(h)
		base := 0.2 + 0.1*math.Sin(2*math.Pi*t/Hours)
		morning := 0.3 * gauss(t, 8, 1.5)
		evening := 0.5 * gauss(t, 20, 2)
		c[h] = base + morning + evening
		peak = math.Max(peak, c[h])
	}
	for h := range c {
		c[h] /= peak
	}
	return c
}

// FactoryLoadSteady is factory pattern A: a near-flat profile with a gentle
// daily swing.
func FactoryLoadSteady() Curve {
	var c Curve
	span := FactoryLoadPeakKW - FactoryLoadBaseKW
	for h := range c {
		t := float64(h)
		v := FactoryLoadBaseKW + span*(0.5+0.3*math.Sin(2*math.Pi*t/Hours))
		c[h] = clamp(v, 0.8*FactoryLoadBaseKW, 1.1*FactoryLoadPeakKW)
	}
	return c
}

// FactoryLoadDaytime is factory pattern B: load shifted towards 13:00, where
// PV output is highest.
func FactoryLoadDaytime() Curve {
	var c Curve
	span := FactoryLoadPeakKW - FactoryLoadBaseKW
	for h := range c {
		boost := gauss(float64(h), 13, 3)
		v := FactoryLoadBaseKW + span*(0.3+0.7*boost)
		c[h] = clamp(v, 0.5*FactoryLoadBaseKW, 1.2*FactoryLoadPeakKW)
	}
	return c
}

// FactoryLoad dispatches on the pattern selector. Anything other than
// FactoryPatternB yields the steady profile.
func FactoryLoad(pattern model.FactoryPattern) Curve {
	if pattern == model.FactoryPatternB {
		return FactoryLoadDaytime()
	}
	return FactoryLoadSteady()
}

// PublicFacilityLoad peaks at 13:00 and is not clamped.
func PublicFacilityLoad() Curve {
	var c Curve
	span := PublicFacilityLoadPeakKW - PublicFacilityLoadBaseKW
	for h := range c {
		c[h] = PublicFacilityLoadBaseKW + span*gauss(float64(h), 13, 4)
	}
	return c
}

// EVChargingLoad is the per-household EV draw: EVChargingPowerKW inside
// EVChargingHours, zero otherwise.
func EVChargingLoad() Curve {
	var c Curve
	for _, h := range EVChargingHours {
		c[h] = EVChargingPowerKW
	}
	return c
}

// PVGeneration is the per-household PV output for a system rated at
// pvCapacityKW. Generation is confined to [06:00, 18:00] and centred on noon.
func PVGeneration(pvCapacityKW float64) Curve {
	var c Curve
	for h := pvFirstHour; h <= pvLastHour; h++ {
		c[h] = gauss(float64(h), 12, 3) * pvCapacityKW * PVPeakFactor
	}
	return c
}

// Sum adds all hourly values.
func (c Curve) Sum() float64 {
	total := 0.0
	for _, v := range c {
		total += v
	}
	return total
}

// Max returns the largest hourly value.
func (c Curve) Max() float64 {
	m := c[0]
	for _, v := range c[1:] {
		m = math.Max(m, v)
	}
	return m
}

// Scale returns c multiplied by k, used to aggregate per-household curves.
func (c Curve) Scale(k float64) Curve {
	var out Curve
	for h, v := range c {
		out[h] = v * k
	}
	return out
}
