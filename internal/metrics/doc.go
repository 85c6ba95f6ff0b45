// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

// Package metrics registers the Prometheus instruments for the service.
// All collectors are created with promauto against the default registry
// and exposed on GET /metrics.
package metrics
