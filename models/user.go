package models

import "time"

// Role names a permission level of an account. It is an open string so new
// roles can be stored without a schema migration.
type Role string

// RoleAdmin is the only role the site grants today.
const RoleAdmin Role = "admin"

var knownRoles = map[Role]struct{}{
	RoleAdmin: {},
}

// IsKnown reports whether r is one of the roles the application understands.
func (r Role) IsKnown() bool {
	_, ok := knownRoles[r]
	return ok
}

// User represents an account entity used for authentication and authorization.
// PasswordHash is derived secret material and must never leave the
// store/service boundary; use [User.Public] for anything sent to clients.
type User struct {
	// ID is the immutable identity assigned by the database.
	ID int64 `json:"id"`

	// Username is the unique, case-sensitive login name.
	Username string `json:"username"`

	// PasswordHash stores "<hex key>.<hex salt>" as produced by the password hasher.
	PasswordHash string `json:"-"`

	// Role is the permission level of the account.
	Role Role `json:"role"`

	// IsActive is false for deactivated accounts, which never authenticate.
	IsActive bool `json:"isActive"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasRole reports whether the user holds role.
func (u User) HasRole(role Role) bool {
	return u.Role == role
}

// Public returns the projection of u that is safe to send to clients.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

// PublicUser is the minimal user projection returned by the auth endpoints.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Credentials is the body of the login and register endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
