// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/fantasy.
package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Dataset registry — the four public feeds of the fantasy game
// --------------------------------------------------------------------------

// Dataset names double as snapshot directory names.
const (
	DatasetRiders       = "rider"
	DatasetConstructors = "constructor"
	DatasetTeams        = "team"
	DatasetWeekends     = "weekend"
)

// Datasets lists every dataset in presentation order.
var Datasets = []string{DatasetRiders, DatasetConstructors, DatasetTeams, DatasetWeekends}

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Feed endpoints (supplied by the deployment, one per dataset)
	RidersURL       string
	ConstructorsURL string
	SquadsURL       string
	EventsURL       string

	// Snapshot store
	SnapshotDir string

	// Outbound fetch politeness
	FetchRequestsPerMinute int

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// The four feed URLs have no defaults: the public endpoints move between
// seasons, so the deployment must pin them.
func Load() (*Config, error) {
	cfg := &Config{
		RidersURL:       os.Getenv("RIDERS_URL"),
		ConstructorsURL: os.Getenv("CONSTRUCTORS_URL"),
		SquadsURL:       os.Getenv("SQUADS_URL"),
		EventsURL:       os.Getenv("EVENTS_URL"),

		SnapshotDir: envOr("SNAPSHOT_DIR", "data"),

		FetchRequestsPerMinute: envInt("FETCH_REQUESTS_PER_MINUTE", 30),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:8501",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,
	}

	var missing []string
	for name, v := range map[string]string{
		"RIDERS_URL":       cfg.RidersURL,
		"CONSTRUCTORS_URL": cfg.ConstructorsURL,
		"SQUADS_URL":       cfg.SquadsURL,
		"EVENTS_URL":       cfg.EventsURL,
	} {
		if v == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// EndpointFor returns the configured feed URL for a dataset name.
func (c *Config) EndpointFor(dataset string) (string, error) {
	switch dataset {
	case DatasetRiders:
		return c.RidersURL, nil
	case DatasetConstructors:
		return c.ConstructorsURL, nil
	case DatasetTeams:
		return c.SquadsURL, nil
	case DatasetWeekends:
		return c.EventsURL, nil
	default:
		return "", fmt.Errorf("unknown dataset %q", dataset)
	}
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
