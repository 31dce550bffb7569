// Package throttle holds the in-process limiters that protect the
// authentication endpoints.
//
// [LoginThrottle] counts failed logins per identity key (client address or
// username) inside a fixed window and refuses further attempts once the
// budget is spent. [RequestLimiter] is a per-key token bucket used to pace
// account registration.
//
// Both keep their state in process memory. Restarting the server resets
// them, and several server replicas do not share counters.
package throttle
