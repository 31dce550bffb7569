package models

import "time"

// LoginOutcome is the externally visible result of a login attempt.
type LoginOutcome int

const (
	// LoginSucceeded means credentials were valid and a session was established.
	LoginSucceeded LoginOutcome = iota
	// LoginRateLimited means the client address or username is locked out.
	LoginRateLimited
	// LoginRejected means the credentials were not accepted.
	LoginRejected
)

// String implements fmt.Stringer.
func (o LoginOutcome) String() string {
	switch o {
	case LoginSucceeded:
		return "succeeded"
	case LoginRateLimited:
		return "rate_limited"
	case LoginRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// RejectReason tells why credentials were rejected. It is for logs only and
// must never be reflected in a response.
type RejectReason string

const (
	RejectNone          RejectReason = ""
	RejectUnknownUser   RejectReason = "unknown_user"
	RejectWrongPassword RejectReason = "wrong_password"
	RejectInactive      RejectReason = "inactive_account"
)

// LoginRequest is a login attempt as seen by the authenticator.
type LoginRequest struct {
	Credentials

	// ClientAddress is the network address of the caller.
	ClientAddress string
}

// LoginResult is returned by the authenticator for every attempt that did
// not fail on storage.
type LoginResult struct {
	Outcome LoginOutcome

	// User and Session are set only when Outcome is LoginSucceeded.
	User    PublicUser
	Session Session

	// RetryAfter is set when Outcome is LoginRateLimited.
	RetryAfter time.Duration

	// Reason is set when Outcome is LoginRejected.
	Reason RejectReason
}
