// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package api

// SearchRequest is the body of POST /search. QueryType defaults to
// "text" when absent; SessionID is generated when absent.
type SearchRequest struct {
	Query     string `json:"query" validate:"required,max=500"`
	QueryType string `json:"query_type" validate:"omitempty,oneof=text voice"`
	SessionID string `json:"session_id" validate:"omitempty,max=128"`
	UserID    string `json:"user_id" validate:"omitempty,max=128"`
}

// ClickRequest is the body of POST /click.
type ClickRequest struct {
	RequestID string `json:"request_id" validate:"required,max=128"`
	SessionID string `json:"session_id" validate:"required,max=128"`
	MovieID   int    `json:"movie_id" validate:"required,min=1"`
	Position  int    `json:"position" validate:"required,min=1"`
	Variant   string `json:"variant" validate:"required,oneof=A B"`
}
