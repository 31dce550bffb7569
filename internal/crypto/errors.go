package crypto

import "errors"

var (
	// ErrMalformedHash is returned by Verify when the stored value is not a
	// "<hex key>.<hex salt>" pair.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrSaltGeneration is returned by Hash when the CSPRNG cannot be read.
	ErrSaltGeneration = errors.New("failed to generate salt")
)
