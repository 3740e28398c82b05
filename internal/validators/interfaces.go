// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the field rules of records and auth requests
// before they reach a store or the network.
//
// Rules are declared as `validate` struct tags on the models and checked by
// go-playground/validator. Failures are reported as a single [*FieldError]
// naming the offending field by its JSON name, so the same error can be
// shown in a form, returned by an HTTP handler or mapped to a client error
// kind.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate returns nil when obj satisfies every rule, a [*FieldError]
	// for the first violated rule, or [ErrUnsupportedType] when obj is not
	// a struct.
	Validate(ctx context.Context, obj any) error
}
