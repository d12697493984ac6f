// Package handler provides HTTP handlers for all API endpoints. Handlers
// read the dataset facades through the aggregate Service and pass the
// resulting tables through as JSON — no extra view layer.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fantasymotogp/fantasy-data/internal/api/respond"
	"github.com/fantasymotogp/fantasy-data/internal/dataset"
)

// SnapshotStats reports per-dataset snapshot file counts. Satisfied by
// *snapshot.Store.
type SnapshotStats interface {
	Stats() map[string]int
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	svc    *dataset.Service
	store  SnapshotStats
	logger *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(svc *dataset.Service, store SnapshotStats, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, store: store, logger: logger}
}

// Root serves API info at /.
// @Summary API root info
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"name":     "Fantasy MotoGP Data API",
		"version":  "1.0.0",
		"status":   "running",
		"docs":     "/docs",
		"datasets": []string{"riders", "constructors", "teams", "weekends"},
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckSnapshots reports how many snapshot files each dataset holds.
// @Summary Snapshot store health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/snapshots [get]
func (h *Handler) HealthCheckSnapshots(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"snapshots": h.store.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetDatasetView serves one dataset view as a JSON table.
// @Summary Dataset view
// @Description Returns one tabular view (info, basic, stats, history, events, all) of a dataset.
// @Tags datasets
// @Produce json
// @Param dataset path string true "Dataset" Enums(riders, constructors, teams, weekends)
// @Param view path string true "View" Enums(info, basic, stats, history, events, all)
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /api/v1/{dataset}/{view} [get]
func (h *Handler) GetDatasetView(w http.ResponseWriter, r *http.Request) {
	ds := chi.URLParam(r, "dataset")
	view := chi.URLParam(r, "view")

	t, err := h.svc.ViewFor(r.Context(), ds, view)
	if err != nil {
		h.writeViewError(w, ds, view, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, t)
}

// GetRiderFullData serves the riders all_data view enriched with constructor
// and team names.
// @Summary Riders full data
// @Tags datasets
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} respond.ErrorResponse
// @Router /api/v1/riders/full [get]
func (h *Handler) GetRiderFullData(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.RiderFullData(r.Context())
	if err != nil {
		h.writeViewError(w, "riders", "full", err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, t)
}

func (h *Handler) writeViewError(w http.ResponseWriter, ds, view string, err error) {
	if errors.Is(err, dataset.ErrUnknownDataset) || errors.Is(err, dataset.ErrUnknownView) {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	// A failed build affects this dataset only; other sections stay up.
	h.logger.Error("Dataset view unavailable", "dataset", ds, "view", view, "error", err)
	respond.WriteErrorDetail(w, http.StatusServiceUnavailable,
		"DATASET_UNAVAILABLE", "Dataset could not be loaded", err.Error())
}
