// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

// Package middleware provides HTTP middleware shared across the API:
// request-ID propagation and Prometheus request instrumentation. Both
// are standard net/http middleware and compose with chi's router.
package middleware
