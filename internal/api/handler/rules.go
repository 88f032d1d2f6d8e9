package handler

import (
	"encoding/json"
	"net/http"

	"github.com/albapepper/drawcert/internal/api/respond"
	"github.com/albapepper/drawcert/internal/cache"
	"github.com/albapepper/drawcert/internal/rules"
)

// GetRules lists the rule catalog.
// @Summary List rules
// @Description Returns the rulebook in evaluation order, optionally filtered by severity.
// @Tags catalog
// @Produce json
// @Param severity query string false "Filter by severity" Enums(hard, soft)
// @Success 200 {array} rules.Info
// @Failure 400 {object} respond.ErrorResponse
// @Router /rules [get]
func (h *Handler) GetRules(w http.ResponseWriter, r *http.Request) {
	severity := r.URL.Query().Get("severity")

	var rs []rules.Rule
	switch severity {
	case "":
		rs = h.validator.Rules().Rules()
	case string(rules.SeverityHard), string(rules.SeveritySoft):
		rs = h.validator.Rules().BySeverity(rules.Severity(severity))
	default:
		respond.WriteError(w, http.StatusBadRequest, "INVALID_SEVERITY",
			"Severity must be hard or soft")
		return
	}

	cacheKey := "rules:" + severity
	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLCatalog, true)
		return
	}

	data, err := json.Marshal(rules.Describe(rs))
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODING_FAILED",
			"Failed to encode rule catalog")
		return
	}

	etag := h.cache.Set(cacheKey, data, cache.TTLCatalog)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, cache.TTLCatalog, false)
}

// GetFormat returns the tournament format the server validates against.
// @Summary Tournament format
// @Description Returns the active tournament format: pots, quotas, and limits.
// @Tags catalog
// @Produce json
// @Success 200 {object} tournament.Format
// @Router /format [get]
func (h *Handler) GetFormat(w http.ResponseWriter, r *http.Request) {
	cacheKey := "format"
	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLCatalog, true)
		return
	}

	data, err := json.Marshal(h.validator.Format())
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODING_FAILED",
			"Failed to encode format")
		return
	}

	etag := h.cache.Set(cacheKey, data, cache.TTLCatalog)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, cache.TTLCatalog, false)
}
