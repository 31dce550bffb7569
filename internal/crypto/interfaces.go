// Package crypto derives and verifies password hashes for stored credentials.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted, slow-to-compute
// hashes and checks candidates against them.
//
// Encoded hashes have the form "<hex derived key>.<hex salt>".
type PasswordHasher interface {
	// Hash derives a new encoded hash for password using a fresh random salt.
	// Two calls with the same password never return the same string.
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash. A malformed
	// encodedHash yields false together with [ErrMalformedHash]; callers
	// must treat any error as "not verified".
	Verify(password, encodedHash string) (bool, error)
}
