package throttle

import "time"

//go:generate mockgen -source=interfaces.go -destination=../mock/throttle_mock.go -package=mock

// LoginThrottle decides whether an identity may try to log in again.
//
// Identity keys are opaque strings; callers namespace them (see [AddressKey]
// and [UsernameKey]) so different dimensions cannot collide.
type LoginThrottle interface {
	// MayAttempt reports whether key is currently allowed to attempt a login.
	// A record whose last failure is older than the window is discarded.
	MayAttempt(key string) bool

	// RecordFailure counts one failed attempt against key.
	RecordFailure(key string)

	// Clear forgets every failure recorded for key.
	Clear(key string)

	// RetryAfter returns how long key stays locked. Zero means unlocked.
	RetryAfter(key string) time.Duration
}
