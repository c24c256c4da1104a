// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation and enforcement of business
// rules across the application.
//
// Two implementations of Validator are provided:
//   - RequestValidator checks request DTOs against their `validate` struct
//     tags using go-playground/validator. Field-level scoping maps to
//     partial struct validation.
//   - UserValidator enforces cross-field user rules (join date against
//     date of birth, weekend join dates, admin location).
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
