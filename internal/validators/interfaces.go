// Package validators checks request payloads before they reach the
// services.
//
// A failed check returns a [*ValidationError] listing every offending field.
// It matches [ErrValidation] with errors.Is, so transport code can answer
// 400 without looking at the details.
package validators

import "context"

// Validator checks a request payload. Naming fields narrows the check for
// payload types that support it; other types ignore them.
type Validator interface {
	Validate(ctx context.Context, payload any, fields ...string) error
}
