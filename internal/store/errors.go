package store

import "errors"

// Lookup and uniqueness failures. Services match these with errors.Is and
// translate them into their own errors.
var (
	// ErrLoginAlreadyExists means the username is taken.
	ErrLoginAlreadyExists = errors.New("login already exists")
	// ErrNoUserWasFound means no user has the given username or id.
	ErrNoUserWasFound = errors.New("no user was found")
	// ErrSessionNotFound means no session row has the given token digest.
	ErrSessionNotFound = errors.New("session was not found")
	// ErrImageNotFound covers both gallery rows and stored image objects.
	ErrImageNotFound = errors.New("image was not found")
	// ErrAboutContentNotFound means the about page has never been saved.
	ErrAboutContentNotFound = errors.New("about content was not found")
)

// SQL plumbing failures. The driver error is wrapped alongside, so both
// the stage and the cause survive.
var (
	ErrBuildingSQLQuery      = errors.New("error building sql query")
	ErrExecutingQuery        = errors.New("error executing sql query")
	ErrExecutingStatement    = errors.New("error executing sql statement")
	ErrScanningRow           = errors.New("failed to scan row")
	ErrScanningRows          = errors.New("failed to scan rows")
	ErrBeginningTransaction  = errors.New("failed to begin transaction")
	ErrCommittingTransaction = errors.New("failed to commit transaction")
)

// ErrInvalidImageKey is returned for image keys that are empty or would
// resolve outside the storage root.
var ErrInvalidImageKey = errors.New("invalid image key")
