// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

// Package validation provides struct validation using
// go-playground/validator v10 through a thread-safe singleton instance.
//
// Request types declare constraints as struct tags:
//
//	type SearchRequest struct {
//	    Query     string `validate:"required,max=500"`
//	    SessionID string `validate:"required,max=128"`
//	}
//
// ValidateStruct returns a *ValidationErrors whose message lists every
// failed field, suitable for inclusion in an error response.
package validation
