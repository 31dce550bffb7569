package utils

import "github.com/google/uuid"

// NewUploadKey returns a fresh identifier for a stored upload. Keys are
// UUIDv7 so that a directory listing sorts roughly by upload time; a random
// v4 is used if the v7 clock source fails.
func NewUploadKey() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}
