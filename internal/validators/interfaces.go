// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the form rules for the account screens and API:
// registration, login, profile edits and password changes.
//
// The same rules run in the HTTP handlers and in the terminal forms, so bad
// input is rejected with a display-ready message before it reaches the
// account service.
package validators

import "context"

// Validator checks one form value. When fields are given only the rules for
// those fields run (see the Field* constants); otherwise every rule for the
// value's type runs and the first failure is returned.
type Validator interface {
	Validate(ctx context.Context, form any, fields ...string) error
}
