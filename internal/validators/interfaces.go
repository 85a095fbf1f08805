// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming request parts (bodies, headers, path
// parameters and query strings) before they reach a handler.
//
// Every Validator dispatches on the concrete request type and reports
// failures as [FieldErrors], a field → messages map that the HTTP layer
// renders as a 400 response.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
