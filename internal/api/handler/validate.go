package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/drawcert/internal/api/respond"
	"github.com/albapepper/drawcert/internal/draw"
	"github.com/albapepper/drawcert/internal/loader"
	"github.com/albapepper/drawcert/internal/tournament"
	"github.com/albapepper/drawcert/internal/validate"
)

// maxSubmissionBytes caps request bodies. A full 36-club draw is around
// 30 KB, so 4 MB leaves generous headroom.
const maxSubmissionBytes = 4 << 20

// submission is the request body shared by the validation endpoints. Clubs
// and Draw use the import formats of internal/loader; Format optionally
// overrides the server's tournament format for this call only.
type submission struct {
	Clubs  json.RawMessage    `json:"clubs" swaggertype:"object"`
	Draw   json.RawMessage    `json:"draw" swaggertype:"object"`
	Format *tournament.Format `json:"format,omitempty"`
}

// ValidationResponse is the outcome of one validation call.
type ValidationResponse struct {
	Season  string `json:"season"`
	Clubs   int    `json:"clubs"`
	Matches int    `json:"matches"`
	validate.Report
}

// decodeSubmission parses the request body into a draw plus the validator to
// judge it with. The handler's validator is used unless the submission
// carries its own format.
func (h *Handler) decodeSubmission(r *http.Request) (*draw.Draw, *validate.Validator, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxSubmissionBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("reading body: %w", err)
	}

	var sub submission
	if err := json.Unmarshal(body, &sub); err != nil {
		return nil, nil, fmt.Errorf("decoding submission: %w", err)
	}
	if len(sub.Clubs) == 0 {
		return nil, nil, fmt.Errorf("submission has no clubs section")
	}
	if len(sub.Draw) == 0 {
		return nil, nil, fmt.Errorf("submission has no draw section")
	}

	v := h.validator
	if sub.Format != nil {
		if err := sub.Format.Validate(); err != nil {
			return nil, nil, fmt.Errorf("inconsistent format: %w", err)
		}
		v = validate.New(*sub.Format)
	}

	clubs, err := loader.ParseClubs(sub.Clubs)
	if err != nil {
		return nil, nil, err
	}
	d, err := loader.ParseDraw(sub.Draw, clubs, v.Format())
	if err != nil {
		return nil, nil, err
	}
	return d, v, nil
}

// ValidateDraw certifies a submitted draw against the rulebook.
// @Summary Validate a draw
// @Description Runs structural checks, hard rules, and soft rules over a submitted fixture list and returns the full report.
// @Tags validation
// @Accept json
// @Produce json
// @Param submission body handler.submission true "Clubs, draw, and optional format override"
// @Success 200 {object} handler.ValidationResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /validate [post]
func (h *Handler) ValidateDraw(w http.ResponseWriter, r *http.Request) {
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

	slog.Info("Validated draw",
		"season", d.Season(),
		"matches", d.MatchCount(),
		"valid", report.Valid,
		"errors", len(report.Errors),
		"warnings", len(report.Warnings),
	)

	respond.WriteJSONObject(w, http.StatusOK, ValidationResponse{
		Season:  d.Season(),
		Clubs:   len(d.Clubs()),
		Matches: d.MatchCount(),
		Report:  report,
	})
}

// DrawStatistics computes descriptive statistics for a submitted draw.
// @Summary Draw statistics
// @Description Returns per-club and aggregate counts for a submitted fixture list without judging it.
// @Tags validation
// @Accept json
// @Produce json
// @Param submission body handler.submission true "Clubs, draw, and optional format override"
// @Success 200 {object} draw.Statistics
// @Failure 400 {object} respond.ErrorResponse
// @Router /statistics [post]
func (h *Handler) DrawStatistics(w http.ResponseWriter, r *http.Request) {
	d, _, err := h.decodeSubmission(r)
	if err != nil {
		h.metrics.ObserveImportFailure()
		respond.WriteErrorDetail(w, http.StatusBadRequest, "IMPORT_FAILED",
			"Could not parse submission", err.Error())
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, d.Statistics())
}
