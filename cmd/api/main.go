package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"energy-ecosystem/internal/api"
	"energy-ecosystem/internal/config"
	"energy-ecosystem/internal/logging"
	"energy-ecosystem/internal/simulation"
	"energy-ecosystem/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.FromEnv(os.Getenv)

	log, err := logging.Init(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	if wd, err := os.Getwd(); err == nil {
		log.Info("working directory", "dir", wd)
	}
	if info, err := os.Stat(cfg.ScenarioDir); err != nil || !info.IsDir() {
		log.Warn("scenario directory not found", "dir", cfg.ScenarioDir, "error", err)
	}

	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache := store.NewResultCache(cfg.ResultCacheTTL)
	go cache.Run(ctx, cfg.ResultCacheTTL/4)

	router := api.NewRouter(api.Deps{
		Engine:         simulation.New(),
		Cache:          cache,
		ScenarioDir:    cfg.ScenarioDir,
		StaticDir:      cfg.StaticDir,
		AllowedOrigins: cfg.AllowedOrigins,
		Log:            log,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting API server", "addr", srv.Addr, "production", cfg.Production)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
