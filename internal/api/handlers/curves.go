package handlers

import (
	"net/http"
	"strconv"

	"energy-ecosystem/internal/api/models"
	"energy-ecosystem/internal/model"
	"energy-ecosystem/internal/profile"

	"github.com/gin-gonic/gin"
)

// GetCurves handles GET /api/v1/curves?pv=15
// Household, EV and PV values are per household; factory and public are site totals.
func GetCurves(c *gin.Context) {
	pv := model.DefaultParams().HouseholdPVCapacityKW
	if raw := c.Query("pv"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			respondError(c, http.StatusBadRequest, "INVALID_PARAMS", "pv must be a number >= 0")
			return
		}
		pv = v
	}

	c.JSON(http.StatusOK, models.CurvesResponse{
		PVCapacityKW: pv,
		Household:    models.CurveSlice(profile.HouseholdLoad()),
		FactoryA:     models.CurveSlice(profile.FactoryLoadSteady()),
		FactoryB:     models.CurveSlice(profile.FactoryLoadDaytime()),
		Public:       models.CurveSlice(profile.PublicFacilityLoad()),
		EV:           models.CurveSlice(profile.EVChargingLoad()),
		PV:           models.CurveSlice(profile.PVGeneration(pv)),
	})
}
