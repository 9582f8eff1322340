package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"energy-ecosystem/internal/api/handlers"
	"energy-ecosystem/internal/api/middleware"
	"energy-ecosystem/internal/simulation"
	"energy-ecosystem/internal/store"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the HTTP router is built from.
type Deps struct {
	Engine         *simulation.Engine
	Cache          *store.ResultCache
	ScenarioDir    string
	StaticDir      string // optional; SPA assets are served when it exists
	AllowedOrigins []string
	Log            *slog.Logger
}

// NewRouter wires middleware, API routes and optional static file serving.
func NewRouter(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	if d.Engine == nil {
		d.Engine = simulation.New()
	}
	if d.Cache == nil {
		d.Cache = store.NewResultCache(0)
	}

	router := gin.New()
	router.Use(middleware.CORS(d.AllowedOrigins))
	router.Use(middleware.Logger(d.Log))
	router.Use(middleware.ErrorHandler(d.Log))

	simulationHandler := handlers.NewSimulationHandler(d.Engine, d.Cache, d.ScenarioDir, d.AllowedOrigins, d.Log)
	scenarioHandler := handlers.NewScenarioHandler(d.ScenarioDir, d.Log)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulationHandler.RunSimulation)
		api.POST("/simulate/compare", simulationHandler.ComparePatterns)
		api.GET("/simulate/stream", simulationHandler.StreamSimulation)
		api.GET("/simulations/:id/hours", simulationHandler.GetHours)

		api.GET("/patterns", handlers.ListPatterns)
		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/curves", handlers.GetCurves)
	}

	serveStatic(router, d.StaticDir, d.Log)
	return router
}

func serveStatic(router *gin.Engine, staticDir string, log *slog.Logger) {
	if staticDir == "" {
		return
	}
	if _, err := os.Stat(staticDir); err != nil {
		log.Info("static directory not found, skipping static file serving", "dir", staticDir)
		return
	}

	router.Static("/assets", filepath.Join(staticDir, "assets"))
	router.StaticFile("/favicon.ico", filepath.Join(staticDir, "favicon.ico"))

	// SPA routing: unknown non-API paths get index.html.
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	})
	log.Info("serving static files", "dir", staticDir)
}
