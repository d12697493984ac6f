package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/fantasymotogp/fantasy-data/internal/api/handler"
	"github.com/fantasymotogp/fantasy-data/internal/config"
	"github.com/fantasymotogp/fantasy-data/internal/dataset"
)

// NewRouter creates and configures the Chi router with all middleware and
// routes. This is the whole contract the dashboard depends on.
func NewRouter(svc *dataset.Service, store handler.SnapshotStats, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(svc, store, logger)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/snapshots", h.HealthCheckSnapshots)
	})

	// Metrics
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI over the embedded OpenAPI document.
	r.Get("/docs/doc.json", serveOpenAPIDoc)
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Curated views first so the generic route cannot shadow them.
		r.Get("/riders/full", h.GetRiderFullData)

		// Dataset views: info, basic, stats, history, events, all
		r.Get("/{dataset}/{view}", h.GetDatasetView)
	})

	return r
}
