package handlers

import (
	"net/http"

	"energy-ecosystem/internal/api/models"
	"energy-ecosystem/internal/model"

	"github.com/gin-gonic/gin"
)

var patternCatalog = map[model.FactoryPattern]models.PatternInfo{
	model.FactoryPatternA: {
		ID:          string(model.FactoryPatternA),
		Name:        "steady",
		Description: "Normal operation. Near-flat factory load with a gentle daily swing, independent of daylight.",
	},
	model.FactoryPatternB: {
		ID:          string(model.FactoryPatternB),
		Name:        "daytime-concentrated",
		Description: "Factory load shifted towards 13:00 to coincide with peak PV output.",
	},
}

// ListPatterns handles GET /api/v1/patterns
func ListPatterns(c *gin.Context) {
	patterns := make([]models.PatternInfo, 0, len(model.FactoryPatterns))
	for _, p := range model.FactoryPatterns {
		patterns = append(patterns, patternCatalog[p])
	}
	c.JSON(http.StatusOK, gin.H{"patterns": patterns})
}
