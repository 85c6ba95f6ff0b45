// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package api

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pcdlite/pcdlite/internal/catalog"
	"github.com/pcdlite/pcdlite/internal/config"
	"github.com/pcdlite/pcdlite/internal/events"
	"github.com/pcdlite/pcdlite/internal/metrics"
	"github.com/pcdlite/pcdlite/internal/middleware"
	"github.com/pcdlite/pcdlite/internal/models"
	"github.com/pcdlite/pcdlite/internal/query"
	"github.com/pcdlite/pcdlite/internal/recommend"
	"github.com/pcdlite/pcdlite/internal/validation"
	"github.com/pcdlite/pcdlite/internal/voice"
)

// Version is the reported API version.
const Version = "1.0.0"

// Handler holds the wired pipeline components and serves all routes.
type Handler struct {
	catalog *catalog.Snapshot
	parser  *query.Parser
	mapper  *query.Mapper
	voice   *voice.Processor
	engine  *recommend.Engine
	store   *events.Store
	cfg     config.APIConfig
	logger  zerolog.Logger
	started time.Time

	// lastQuery caches debug info for the most recent search. It lives
	// here so the pipeline components stay stateless.
	lastQueryMu sync.RWMutex
	lastQuery   *DebugInfo
}

// NewHandler wires the pipeline components into a request handler.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(snap *catalog.Snapshot, engine *recommend.Engine, store *events.Store, cfg config.APIConfig, logger zerolog.Logger) *Handler {
	return &Handler{
		catalog: snap,
		parser:  query.NewParser(),
		mapper:  query.NewMapper(),
		voice:   voice.NewProcessor(),
		engine:  engine,
		store:   store,
		cfg:     cfg,
		logger:  logger.With().Str("component", "api").Logger(),
		started: time.Now(),
	}
}

// Search runs the discovery pipeline for one natural language query.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())

	// Fault injection for demo and test tooling.
	if r.URL.Query().Get("fail") == "1" {
		respondError(w, http.StatusInternalServerError, "SIMULATED_ERROR", "Simulated server error for testing")
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	queryType := models.QueryType(req.QueryType)
	if req.QueryType == "" {
		queryType = models.QueryTypeText
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	processedQuery := req.Query
	var voiceResult *voice.Result
	if queryType == models.QueryTypeVoice {
		result := h.voice.Process(req.Query)
		voiceResult = &result
		processedQuery = result.CorrectedQuery
	}

	filters := h.parser.Parse(processedQuery, queryType)
	normalized := h.mapper.Normalize(filters)
	variant := recommend.AssignStrategy(sessionID)

	recommendations, err := h.engine.Recommend(&filters, variant, h.cfg.RecommendationLimit)
	if err != nil {
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("recommendation failed")
		respondError(w, http.StatusInternalServerError, "RECOMMENDATION_ERROR", "Failed to compute recommendations")
		return
	}

	for i := range recommendations {
		err := h.store.LogImpression(r.Context(), sessionID, variant, recommendations[i].ID, i+1, &filters, requestID)
		if err != nil {
			metrics.EventWriteErrors.Inc()
			h.logger.Warn().Err(err).Str("request_id", requestID).Msg("impression log failed")
		}
	}

	elapsed := time.Since(start)
	metrics.RecordSearch(string(variant), string(queryType), elapsed)
	processingMS := float64(elapsed.Microseconds()) / 1000

	h.lastQueryMu.Lock()
	h.lastQuery = &DebugInfo{
		LastQuery:        req.Query,
		ParsedFilters:    filters,
		Variant:          variant,
		ResultCount:      len(recommendations),
		ProcessingTimeMS: processingMS,
		Timestamp:        time.Now(),
	}
	h.lastQueryMu.Unlock()

	debug := map[string]interface{}{
		"normalized_filters": normalized,
		"query_type":         string(queryType),
	}
	if voiceResult != nil {
		debug["voice_processing"] = voiceResult
	}

	respondData(w, http.StatusOK, &SearchResult{
		RequestID:        requestID,
		SessionID:        sessionID,
		Variant:          variant,
		ParsedFilters:    filters,
		Recommendations:  recommendations,
		TotalResults:     len(recommendations),
		ProcessingTimeMS: processingMS,
		DebugInfo:        debug,
	})
}

// Click records a click on a recommended item.
func (h *Handler) Click(w http.ResponseWriter, r *http.Request) {
	var req ClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
		return
	}
	if err := validation.ValidateStruct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	variant := models.Strategy(req.Variant)
	err := h.store.LogClick(r.Context(), req.SessionID, variant, req.MovieID, req.Position, req.RequestID)
	if err != nil {
		metrics.EventWriteErrors.Inc()
		h.logger.Error().Err(err).Str("request_id", req.RequestID).Msg("click log failed")
		respondData(w, http.StatusOK, &ClickResult{Success: false, Message: "Failed to track click"})
		return
	}

	metrics.ClicksTotal.WithLabelValues(req.Variant).Inc()
	respondData(w, http.StatusOK, &ClickResult{Success: true, Message: "Click tracked successfully"})
}

// Health reports liveness and process uptime.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondData(w, http.StatusOK, &HealthResult{
		Status:        "healthy",
		Timestamp:     time.Now(),
		Version:       Version,
		UptimeSeconds: time.Since(h.started).Seconds(),
	})
}

// Root serves API information.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	respondData(w, http.StatusOK, map[string]interface{}{
		"message": "PCD-Lite API - Personalized Content Discovery Prototype",
		"version": Version,
		"health":  "/health",
		"endpoints": map[string]string{
			"search":    "/search",
			"click":     "/click",
			"debug":     "/debug/last-query",
			"analytics": "/analytics",
			"catalog":   "/catalog",
		},
	})
}

// LastQuery serves the cached debug snapshot, 404 until a query has
// been processed.
func (h *Handler) LastQuery(w http.ResponseWriter, _ *http.Request) {
	h.lastQueryMu.RLock()
	last := h.lastQuery
	h.lastQueryMu.RUnlock()

	if last == nil {
		respondError(w, http.StatusNotFound, "NO_QUERIES", "No queries have been processed yet")
		return
	}
	respondData(w, http.StatusOK, last)
}

// Analytics serves aggregate metrics over a trailing window of days.
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	days, ok := daysParam(w, r)
	if !ok {
		return
	}

	m, err := h.store.AnalyticsMetrics(r.Context(), days)
	if err != nil {
		h.logger.Error().Err(err).Msg("analytics query failed")
		respondError(w, http.StatusInternalServerError, "ANALYTICS_ERROR", "Failed to compute analytics")
		return
	}
	respondData(w, http.StatusOK, map[string]interface{}{
		"period_days": days,
		"metrics":     m,
	})
}

// AnalyticsVariants serves the per-variant A/B comparison.
func (h *Handler) AnalyticsVariants(w http.ResponseWriter, r *http.Request) {
	days, ok := daysParam(w, r)
	if !ok {
		return
	}

	perf, err := h.store.VariantPerformance(r.Context(), days)
	if err != nil {
		h.logger.Error().Err(err).Msg("variant performance query failed")
		respondError(w, http.StatusInternalServerError, "ANALYTICS_ERROR", "Failed to compute variant performance")
		return
	}
	respondData(w, http.StatusOK, map[string]interface{}{
		"period_days": days,
		"performance": perf,
	})
}

// SessionEvents lists every logged event for one session.
func (h *Handler) SessionEvents(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	evs, err := h.store.SessionEvents(r.Context(), sessionID)
	if err != nil {
		h.logger.Error().Err(err).Str("session_id", sessionID).Msg("session events query failed")
		respondError(w, http.StatusInternalServerError, "EVENTS_ERROR", "Failed to load session events")
		return
	}
	if evs == nil {
		evs = []models.Event{}
	}
	respondData(w, http.StatusOK, map[string]interface{}{
		"session_id":  sessionID,
		"event_count": len(evs),
		"events":      evs,
	})
}

// VoiceSuggestions serves canned voice query starters.
func (h *Handler) VoiceSuggestions(w http.ResponseWriter, r *http.Request) {
	partial := r.URL.Query().Get("partial_query")
	respondData(w, http.StatusOK, map[string]interface{}{
		"partial_query": partial,
		"suggestions":   h.voice.Suggestions(partial),
	})
}

// Catalog lists catalog items up to a limit (default 20, max 100).
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 100 {
			respondError(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be an integer between 1 and 100")
			return
		}
		limit = v
	}

	movies := h.catalog.All()
	returned := movies
	if limit < len(returned) {
		returned = returned[:limit]
	}
	respondData(w, http.StatusOK, map[string]interface{}{
		"total_movies":    len(movies),
		"returned_movies": len(returned),
		"movies":          returned,
	})
}

// daysParam parses the ?days= query parameter (default 7, range 1-30).
// It writes the error response itself and reports ok=false on failure.
func daysParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 30 {
			respondError(w, http.StatusBadRequest, "INVALID_DAYS", "days must be an integer between 1 and 30")
			return 0, false
		}
		days = v
	}
	return days, true
}
