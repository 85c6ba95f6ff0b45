// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package api

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/pcdlite/pcdlite/internal/logging"
	"github.com/pcdlite/pcdlite/internal/models"
)

// APIResponse is the envelope every endpoint responds with.
type APIResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  *APIError   `json:"error,omitempty"`
}

// APIError carries a machine-readable code and a human-readable message.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SearchResult is the payload of POST /search.
type SearchResult struct {
	RequestID        string                 `json:"request_id"`
	SessionID        string                 `json:"session_id"`
	Variant          models.Strategy        `json:"variant"`
	ParsedFilters    models.ParsedFilters   `json:"parsed_filters"`
	Recommendations  []models.Movie         `json:"recommendations"`
	TotalResults     int                    `json:"total_results"`
	ProcessingTimeMS float64                `json:"processing_time_ms"`
	DebugInfo        map[string]interface{} `json:"debug_info,omitempty"`
}

// ClickResult is the payload of POST /click.
type ClickResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResult is the payload of GET /health.
type HealthResult struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Version       string    `json:"version"`
	UptimeSeconds float64   `json:"uptime_seconds"`
}

// DebugInfo is the cached snapshot of the last served query.
type DebugInfo struct {
	LastQuery        string               `json:"last_query"`
	ParsedFilters    models.ParsedFilters `json:"parsed_filters"`
	Variant          models.Strategy      `json:"variant"`
	ResultCount      int                  `json:"result_count"`
	ProcessingTimeMS float64              `json:"processing_time_ms"`
	Timestamp        time.Time            `json:"timestamp"`
}

// respondJSON writes the envelope as JSON with the given status code.
func respondJSON(w http.ResponseWriter, status int, response *APIResponse) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("marshal response failed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("write response failed")
	}
}

// respondData writes a success envelope around the payload.
func respondData(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, &APIResponse{Status: "success", Data: data})
}

// respondError writes an error envelope.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, &APIResponse{
		Status: "error",
		Error:  &APIError{Code: code, Message: message},
	})
}
