package models

import "time"

// Session is a server-side login session.
//
// ID is the raw random identifier; it is only ever handed to the client
// inside the signed Token and is stored hashed (see Digest).
type Session struct {
	// ID is the opaque random session identifier.
	ID string `json:"-"`

	// Digest is the keyed hash of ID used as the primary key of the
	// sessions table.
	Digest string `json:"-"`

	// Token is the signed cookie value referencing ID.
	Token string `json:"-"`

	// UserID references the authenticated user.
	UserID int64 `json:"-"`

	// ExpiresAt is the absolute expiry; the session is invalid at or after it.
	ExpiresAt time.Time `json:"-"`

	// CreatedAt is when the session was established.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// IsExpired reports whether the session is no longer valid at now.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
