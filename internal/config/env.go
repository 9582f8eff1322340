package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"energy-ecosystem/internal/logging"
)

// ServerConfig is the HTTP server configuration, read from the environment.
type ServerConfig struct {
	Port           string
	Production     bool
	ScenarioDir    string
	StaticDir      string
	ResultCacheTTL time.Duration
	AllowedOrigins []string
	Log            logging.Config
}

// FromEnv reads ServerConfig using getenv (os.Getenv in production).
func FromEnv(getenv func(string) string) ServerConfig {
	if getenv == nil {
		getenv = os.Getenv
	}
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := ServerConfig{
		Port:           get("API_PORT", "8080"),
		Production:     get("API_ENV", "") == "production",
		ScenarioDir:    get("SCENARIO_DIR", DefaultScenarioDir()),
		StaticDir:      get("STATIC_DIR", "./web/dist"),
		ResultCacheTTL: time.Hour,
		AllowedOrigins: splitList(get("CORS_ALLOWED_ORIGINS", "*")),
		Log:            logging.DefaultConfig(),
	}
	if ttl, err := time.ParseDuration(getenv("RESULT_CACHE_TTL")); err == nil && ttl > 0 {
		cfg.ResultCacheTTL = ttl
	}

	cfg.Log.Level = get("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = get("LOG_FORMAT", cfg.Log.Format)
	cfg.Log.Output = get("LOG_OUTPUT", cfg.Log.Output)
	cfg.Log.FilePath = get("LOG_FILE", cfg.Log.FilePath)
	if n, err := strconv.Atoi(getenv("LOG_MAX_SIZE_MB")); err == nil && n > 0 {
		cfg.Log.MaxSizeMB = n
	}
	return cfg
}

// DefaultScenarioDir is examples/scenarios under the working directory.
func DefaultScenarioDir() string {
	dir := filepath.Join("examples", "scenarios")
	if wd, err := os.Getwd(); err == nil {
		dir = filepath.Join(wd, dir)
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
