package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"energy-ecosystem/internal/analysis"
	"energy-ecosystem/internal/api/models"
	"energy-ecosystem/internal/config"
	"energy-ecosystem/internal/model"
	"energy-ecosystem/internal/simulation"
	"energy-ecosystem/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// errScenarioNotFound is returned when a request names a missing preset.
var errScenarioNotFound = errors.New("scenario preset not found")

// SimulationHandler handles simulation-related requests
type SimulationHandler struct {
	engine      *simulation.Engine
	cache       *store.ResultCache
	scenarioDir string
	upgrader    websocket.Upgrader
	log         *slog.Logger
}

// NewSimulationHandler creates a new simulation handler
// allowedOrigins applies to the websocket endpoint; "*" allows any origin.
func NewSimulationHandler(engine *simulation.Engine, cache *store.ResultCache, scenarioDir string, allowedOrigins []string, log *slog.Logger) *SimulationHandler {
	return &SimulationHandler{
		engine:      engine,
		cache:       cache,
		scenarioDir: scenarioDir,
		upgrader:    newUpgrader(allowedOrigins),
		log:         log,
	}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req models.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	params, ok := h.resolveParams(c, req.ScenarioFile, req.Params)
	if !ok {
		return
	}

	result := h.engine.Run(params)
	id := h.cache.Put(result)

	h.log.Info("simulation completed",
		"id", id,
		"households", params.NumHouseholds,
		"pattern", params.FactoryLoadPattern,
		"grid_purchase_kwh", result.TotalGridPurchase,
		"grid_sell_kwh", result.TotalGridSell,
		"self_consumption_pct", result.SelfConsumptionRate,
	)

	response := models.SimulationResponse{
		ID:         id,
		Status:     "completed",
		Params:     models.NewParamsView(params),
		Summary:    models.NewSummary(result),
		Statistics: models.NewStatisticsView(analysis.Summarize(result)),
	}
	if req.Options.IncludeBalance {
		response.Balance = models.NewBalanceView(analysis.ComputeBalance(params))
	}
	if req.Options.IncludeHours {
		response.Hours = models.NewHourlyRows(result.Hours)
	}
	c.JSON(http.StatusOK, response)
}

// GetHours handles GET /api/v1/simulations/:id/hours
func (h *SimulationHandler) GetHours(c *gin.Context) {
	id := c.Param("id")
	entry, ok := h.cache.Get(id)
	if !ok {
		respondError(c, http.StatusNotFound, "NOT_FOUND",
			fmt.Sprintf("simulation %q not found or expired", id))
		return
	}
	c.JSON(http.StatusOK, models.LedgerResponse{
		ID:    entry.ID,
		Hours: models.NewHourlyRows(entry.Result.Hours),
	})
}

// ComparePatterns handles POST /api/v1/simulate/compare
func (h *SimulationHandler) ComparePatterns(c *gin.Context) {
	var req models.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	params, ok := h.resolveParams(c, req.ScenarioFile, req.Params)
	if !ok {
		return
	}

	cmp := analysis.Compare(h.engine, params)
	h.log.Info("pattern comparison completed",
		"households", params.NumHouseholds,
		"purchase_diff_kwh", cmp.PurchaseDiff,
		"purchase_reduction_pct", cmp.PurchaseReductionRate,
	)

	c.JSON(http.StatusOK, models.CompareResponse{
		Params:                models.NewParamsView(params),
		PatternA:              models.NewSummary(cmp.A.Result),
		PatternB:              models.NewSummary(cmp.B.Result),
		PurchaseDiff:          cmp.PurchaseDiff,
		SellDiff:              cmp.SellDiff,
		PurchaseReductionRate: cmp.PurchaseReductionRate,
	})
}

// resolveParams merges preset and request params and validates the result.
// On failure it writes the error response and returns false.
func (h *SimulationHandler) resolveParams(c *gin.Context, scenarioFile string, overrides models.ParamsConfig) (model.SimulationParams, bool) {
	params, err := h.buildParams(scenarioFile, overrides)
	switch {
	case err == nil:
		return params, true
	case errors.Is(err, errScenarioNotFound):
		respondError(c, http.StatusNotFound, "SCENARIO_NOT_FOUND", err.Error())
	case errors.Is(err, model.ErrInvalidParams):
		respondError(c, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
	default:
		respondError(c, http.StatusBadRequest, "INVALID_SCENARIO", err.Error())
	}
	return model.SimulationParams{}, false
}

func (h *SimulationHandler) buildParams(scenarioFile string, overrides models.ParamsConfig) (model.SimulationParams, error) {
	sc := overrides.ToScenario()
	if scenarioFile != "" {
		path := config.ResolvePreset(h.scenarioDir, scenarioFile)
		loaded, err := config.LoadScenarioFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return model.SimulationParams{}, fmt.Errorf("%w: %s", errScenarioNotFound, scenarioFile)
			}
			h.log.Warn("failed to load scenario file", "path", path, "error", err)
			return model.SimulationParams{}, err
		}
		sc = config.MergeScenario(loaded, sc)
	}
	return sc.ToModelParams()
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
