package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/albapepper/drawcert/internal/api/respond"
	"github.com/albapepper/drawcert/internal/cache"
	"github.com/albapepper/drawcert/internal/store"
)

// CreateRun validates a submitted draw and persists the outcome.
// @Summary Record a validation run
// @Description Validates the submission like /validate, then stores the report for audit.
// @Tags runs
// @Accept json
// @Produce json
// @Param submission body handler.submission true "Clubs, draw, and optional format override"
// @Success 201 {object} store.Run
// @Failure 400 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /runs [post]
func (h *Handler) CreateRun(w http.ResponseWriter, r *http.Request) {
	if h.pool == nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "DB_UNAVAILABLE",
			"Run storage is not configured")
		return
	}

	d, v, err := h.decodeSubmission(r)
	if err != nil {
		h.metrics.ObserveImportFailure()
		respond.WriteErrorDetail(w, http.StatusBadRequest, "IMPORT_FAILED",
			"Could not parse submission", err.Error())
		return
	}

	start := time.Now()
	report := v.Validate(d)
	elapsed := time.Since(start)
	h.metrics.ObserveValidation(report.Valid, elapsed)

	run := &store.Run{
		ID:         uuid.New(),
		Season:     d.Season(),
		Clubs:      len(d.Clubs()),
		Matches:    d.MatchCount(),
		Valid:      report.Valid,
		Errors:     report.Errors,
		Warnings:   report.Warnings,
		DurationMS: elapsed.Milliseconds(),
	}
	if err := store.InsertRun(r.Context(), h.pool, run); err != nil {
		slog.Error("Failed to insert run", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "STORAGE_FAILED",
			"Failed to record validation run")
		return
	}

	h.cache.Invalidate("runs:list:")
	slog.Info("Recorded validation run",
		"run_id", run.ID, "season", run.Season, "valid", run.Valid)

	respond.WriteJSONObject(w, http.StatusCreated, run)
}

// ListRuns returns recent validation runs, newest first.
// @Summary List validation runs
// @Description Returns persisted runs, optionally filtered by season.
// @Tags runs
// @Produce json
// @Param limit query int false "Maximum runs to return (1-200, default 50)"
// @Param season query string false "Filter by season label"
// @Success 200 {array} store.Run
// @Failure 400 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /runs [get]
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	limit := store.DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > store.MaxListLimit {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_LIMIT",
				fmt.Sprintf("Limit must be an integer between 1 and %d", store.MaxListLimit))
			return
		}
		limit = n
	}
	season := r.URL.Query().Get("season")

	if h.pool == nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "DB_UNAVAILABLE",
			"Run storage is not configured")
		return
	}

	cacheKey := fmt.Sprintf("runs:list:%s:%d", season, limit)
	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLRunList, true)
		return
	}

	runs, err := store.ListRuns(r.Context(), h.pool, season, limit)
	if err != nil {
		slog.Error("Failed to list runs", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "QUERY_FAILED",
			"Failed to list validation runs")
		return
	}

	data, err := json.Marshal(runs)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODING_FAILED",
			"Failed to encode runs")
		return
	}

	etag := h.cache.Set(cacheKey, data, cache.TTLRunList)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, cache.TTLRunList, false)
}

// GetRun returns one persisted validation run.
// @Summary Get a validation run
// @Description Returns a single run by id.
// @Tags runs
// @Produce json
// @Param runID path string true "Run id (UUID)"
// @Success 200 {object} store.Run
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /runs/{runID} [get]
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(chi.URLParam(r, "runID"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_RUN_ID",
			"Run id must be a UUID")
		return
	}
	if h.pool == nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "DB_UNAVAILABLE",
			"Run storage is not configured")
		return
	}

	cacheKey := "runs:id:" + runID.String()
	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLRun, true)
		return
	}

	run, err := store.GetRun(r.Context(), h.pool, runID)
	if err != nil {
		slog.Error("Failed to get run", "run_id", runID, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "QUERY_FAILED",
			"Failed to fetch validation run")
		return
	}
	if run == nil {
		respond.WriteError(w, http.StatusNotFound, "RUN_NOT_FOUND",
			"No validation run with that id")
		return
	}

	data, err := json.Marshal(run)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODING_FAILED",
			"Failed to encode run")
		return
	}

	etag := h.cache.Set(cacheKey, data, cache.TTLRun)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, cache.TTLRun, false)
}
