package handlers

import (
	"log/slog"
	"net/http"
	"os"

	"energy-ecosystem/internal/api/models"
	"energy-ecosystem/internal/config"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler handles scenario preset requests
type ScenarioHandler struct {
	scenarioDir string
	log         *slog.Logger
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler(scenarioDir string, log *slog.Logger) *ScenarioHandler {
	log.Info("using scenario directory", "dir", scenarioDir)
	return &ScenarioHandler{scenarioDir: scenarioDir, log: log}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios := []models.ScenarioInfo{}

	presets, skipped, err := config.ListPresets(h.scenarioDir)
	if err != nil {
		if os.IsNotExist(err) {
			h.log.Warn("scenario directory does not exist", "dir", h.scenarioDir)
		} else {
			h.log.Error("failed to read scenario directory", "dir", h.scenarioDir, "error", err)
		}
		c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
		return
	}
	for name, err := range skipped {
		h.log.Warn("skipping invalid scenario file", "file", name, "error", err)
	}

	for _, p := range presets {
		params, err := p.Scenario.ToModelParams()
		if err != nil {
			h.log.Warn("skipping invalid scenario", "id", p.ID, "error", err)
			continue
		}
		name := p.Scenario.Name
		if name == "" {
			name = p.ID
		}
		scenarios = append(scenarios, models.ScenarioInfo{
			ID:     p.ID,
			Name:   name,
			File:   p.Path,
			Params: models.NewParamsView(params),
		})
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}
