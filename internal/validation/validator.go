// PCD-Lite - Personalized Content Discovery Service
// Copyright 2026 PCD-Lite Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pcdlite/pcdlite

package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationErrors aggregates per-field validation failures.
type ValidationErrors struct {
	fields []string
}

// Error returns a human-readable summary of all failed fields.
func (e *ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(e.fields, "; ")
}

// Fields returns the per-field failure messages.
func (e *ValidationErrors) Fields() []string {
	return e.fields
}

// instance returns the singleton validator, creating it on first use.
// The validator caches struct metadata, so sharing one instance avoids
// repeated reflection.
func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct validates a struct against its `validate` tags. It
// returns nil when valid and a *ValidationErrors otherwise.
func ValidateStruct(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("invalid validation target: %w", err)
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate struct: %w", err)
	}

	out := &ValidationErrors{fields: make([]string, 0, len(verrs))}
	for _, fe := range verrs {
		out.fields = append(out.fields, describe(fe))
	}
	return out
}

// describe renders one field error as "Field: constraint".
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
