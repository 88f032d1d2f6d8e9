package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/drawcert/internal/api/respond"
	"github.com/albapepper/drawcert/internal/cache"
	"github.com/albapepper/drawcert/internal/drawtest"
	"github.com/albapepper/drawcert/internal/rules"
	"github.com/albapepper/drawcert/internal/tournament"
)

// testRouter wires the handler set without a database. Endpoints that need
// Postgres answer 503, everything else runs in memory.
func testRouter() *chi.Mux {
	h := New(nil, cache.New(true), tournament.Default(), nil)

	r := chi.NewRouter()
	r.Get("/", h.Root)
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/validate", h.ValidateDraw)
		r.Post("/statistics", h.DrawStatistics)
		r.Get("/rules", h.GetRules)
		r.Get("/format", h.GetFormat)
		r.Post("/runs", h.CreateRun)
		r.Get("/runs", h.ListRuns)
		r.Get("/runs/{runID}", h.GetRun)
	})
	return r
}

type clubDoc struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Pot     int    `json:"pot"`
}

type matchDoc struct {
	HomeID   string `json:"home_id"`
	AwayID   string `json:"away_id"`
	Matchday int    `json:"matchday"`
}

// leaguePayload renders the synthetic compliant league as a submission body.
func leaguePayload(t *testing.T, format *tournament.Format) []byte {
	t.Helper()
	d := drawtest.LeagueDraw()

	clubs := make([]clubDoc, 0, len(d.Clubs()))
	for _, c := range d.Clubs() {
		clubs = append(clubs, clubDoc{ID: c.ID, Name: c.Name, Country: c.Country, Pot: int(c.Pot)})
	}
	matches := make([]matchDoc, 0, d.MatchCount())
	for _, m := range d.Matches() {
		matches = append(matches, matchDoc{HomeID: m.Home.ID, AwayID: m.Away.ID, Matchday: m.Matchday})
	}

	doc := map[string]any{
		"clubs": clubs,
		"draw": map[string]any{
			"season":  d.Season(),
			"matches": matches,
		},
	}
	if format != nil {
		doc["format"] = format
	}

	body, err := json.Marshal(doc)
	require.NoError(t, err)
	return body
}

func doRequest(t *testing.T, router http.Handler, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp respond.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestValidateFullLeague(t *testing.T) {
	router := testRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/validate", leaguePayload(t, nil), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ValidationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Equal(t, "2025-26", resp.Season)
	assert.Equal(t, 36, resp.Clubs)
	assert.Equal(t, 144, resp.Matches)
	assert.Empty(t, resp.Errors)
	assert.Empty(t, resp.Warnings)
}

func TestValidateAcceptsFormatOverride(t *testing.T) {
	router := testRouter()
	format := tournament.Default()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/validate", leaguePayload(t, &format), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ValidationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
}

func TestValidateRejectsIncoherentFormat(t *testing.T) {
	router := testRouter()
	format := tournament.Default()
	format.Matchdays = 10

	rec := doRequest(t, router, http.MethodPost, "/api/v1/validate", leaguePayload(t, &format), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "IMPORT_FAILED", errorCode(t, rec))
	assert.Contains(t, rec.Body.String(), "inconsistent format")
}

func TestValidateRejectsMalformedBody(t *testing.T) {
	router := testRouter()

	cases := map[string]string{
		"truncated json": `{`,
		"empty object":   `{}`,
		"empty sections": `{"clubs": [], "draw": {}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/v1/validate", []byte(body), nil)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "IMPORT_FAILED", errorCode(t, rec))
		})
	}
}

func TestValidateReportsUnknownClub(t *testing.T) {
	router := testRouter()
	body := []byte(`{
		"clubs": [
			{"id": "AAA", "name": "Alpha", "country": "FRA", "pot": 1},
			{"id": "BBB", "name": "Beta", "country": "GER", "pot": 2}
		],
		"draw": {"matches": [{"home_id": "ZZZ", "away_id": "BBB", "matchday": 1}]}
	}`)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/validate", body, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp respond.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "IMPORT_FAILED", resp.Error.Code)
	assert.Contains(t, resp.Error.Detail, `unknown home club "ZZZ"`)
}

func TestStatisticsEndpoint(t *testing.T) {
	router := testRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/statistics", leaguePayload(t, nil), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.EqualValues(t, 36, stats["club_count"])
	assert.EqualValues(t, 144, stats["match_count"])
}

func TestRulesCatalog(t *testing.T) {
	router := testRouter()

	rec := doRequest(t, router, http.MethodGet, "/api/v1/rules", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))

	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	var infos []rules.Info
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &infos))
	require.Len(t, infos, 8)
	assert.Equal(t, "total_matches", infos[0].Name)

	// Conditional request returns 304, plain repeat is served from cache.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/rules", nil, map[string]string{"If-None-Match": etag})
	assert.Equal(t, http.StatusNotModified, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/rules", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
}

func TestRulesSeverityFilter(t *testing.T) {
	router := testRouter()

	rec := doRequest(t, router, http.MethodGet, "/api/v1/rules?severity=soft", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var infos []rules.Info
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "no_consecutive_matches", infos[0].Name)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/rules?severity=medium", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_SEVERITY", errorCode(t, rec))
}

func TestFormatEndpoint(t *testing.T) {
	router := testRouter()

	rec := doRequest(t, router, http.MethodGet, "/api/v1/format", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var format tournament.Format
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &format))
	assert.Equal(t, tournament.Default(), format)
}

func TestRunEndpointsWithoutDatabase(t *testing.T) {
	router := testRouter()

	rec := doRequest(t, router, http.MethodPost, "/api/v1/runs", leaguePayload(t, nil), nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "DB_UNAVAILABLE", errorCode(t, rec))

	rec = doRequest(t, router, http.MethodGet, "/api/v1/runs", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/runs/not-a-uuid", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_RUN_ID", errorCode(t, rec))

	rec = doRequest(t, router, http.MethodGet, "/api/v1/runs/"+uuid.NewString(), nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestListRunsRejectsBadLimit(t *testing.T) {
	router := testRouter()

	for _, q := range []string{"limit=0", "limit=201", "limit=ten"} {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/runs?"+q, nil, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code, q)
		assert.Equal(t, "INVALID_LIMIT", errorCode(t, rec))
	}
}

func TestHealthEndpoints(t *testing.T) {
	router := testRouter()

	rec := doRequest(t, router, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")

	rec = doRequest(t, router, http.MethodGet, "/health/db", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/health/cache", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "total_keys")
}

func TestRootEndpoint(t *testing.T) {
	router := testRouter()

	rec := doRequest(t, router, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Drawcert API")
}
