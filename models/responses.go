package models

// MessageResponse is the generic `{ "message": ... }` body used for
// confirmations and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// FieldError describes one invalid field of a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of 4xx/5xx responses. Errors is only set for
// validation failures.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// LogoUploadResponse is returned after a logo upload.
type LogoUploadResponse struct {
	LogoURL  string        `json:"logoUrl"`
	Settings BrandSettings `json:"settings"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
