// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package validation

import (
	"errors"
	"strings"
	"testing"
)

type sampleRequest struct {
	Query     string `validate:"required,max=10"`
	SessionID string `validate:"required"`
	Limit     int    `validate:"min=1,max=100"`
	QueryType string `validate:"omitempty,oneof=text voice"`
}

func TestValidateStructValid(t *testing.T) {
	req := sampleRequest{Query: "hi", SessionID: "s", Limit: 5, QueryType: "text"}
	if err := ValidateStruct(&req); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidateStructCollectsAllFailures(t *testing.T) {
	req := sampleRequest{Limit: 0}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verrs *ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected *ValidationErrors, got %T", err)
	}
	if len(verrs.Fields()) != 3 {
		t.Errorf("got %d field errors, want 3: %v", len(verrs.Fields()), verrs.Fields())
	}
	if !strings.Contains(err.Error(), "Query is required") {
		t.Errorf("missing required message: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "Limit must be at least 1") {
		t.Errorf("missing min message: %q", err.Error())
	}
}

func TestValidateStructOneOf(t *testing.T) {
	req := sampleRequest{Query: "hi", SessionID: "s", Limit: 1, QueryType: "shout"}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error for bad query type")
	}
	if !strings.Contains(err.Error(), "QueryType must be one of") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
