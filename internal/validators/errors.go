package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/brand-showcase/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrValidation      = errors.New("invalid data")
)

// ValidationError carries field-level details of a failed validation.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match [ErrValidation].
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// fieldErrors accumulates problems while a value is being checked.
type fieldErrors []models.FieldError

func (f *fieldErrors) add(field, message string) {
	*f = append(*f, models.FieldError{Field: field, Message: message})
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}
