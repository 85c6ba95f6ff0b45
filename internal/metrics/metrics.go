// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts API requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes API request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// SearchRequestsTotal counts search queries by variant and query type.
	SearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of search queries by A/B variant and query type",
		},
		[]string{"variant", "query_type"},
	)

	// SearchDuration observes the full search pipeline latency.
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_duration_seconds",
			Help:    "Duration of the search pipeline in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	// ClicksTotal counts click events by variant.
	ClicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clicks_total",
			Help: "Total number of click events by A/B variant",
		},
		[]string{"variant"},
	)

	// EventWriteErrors counts failed event store writes.
	EventWriteErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "event_write_errors_total",
			Help: "Total number of failed event store writes",
		},
	)

	// CatalogSize reports the number of loaded catalog items.
	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Number of items in the loaded catalog",
		},
	)
)

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordSearch records one completed search pipeline run.
func RecordSearch(variant, queryType string, duration time.Duration) {
	SearchRequestsTotal.WithLabelValues(variant, queryType).Inc()
	SearchDuration.Observe(duration.Seconds())
}
