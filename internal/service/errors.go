package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUsernameTaken        = errors.New("username is already taken")
	ErrRegistrationDisabled = errors.New("registration is disabled")

	// ErrSessionInvalid covers missing, expired and tampered session cookies
	// as well as sessions whose user is gone or inactive.
	ErrSessionInvalid = errors.New("session is invalid")

	ErrNotFound      = errors.New("not found")
	ErrInvalidImage  = errors.New("invalid image")
	ErrNoFilesToSave = errors.New("no files uploaded")

	// ErrStorage marks failures of the backing stores. Handlers answer
	// these with 500.
	ErrStorage = errors.New("storage failure")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
