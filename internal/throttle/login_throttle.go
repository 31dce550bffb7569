// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package throttle

import (
	"sync"
	"time"
)

const (
	DefaultMaxAttempts   = 5
	DefaultLockoutWindow = 15 * time.Minute
)

type attemptRecord struct {
	count       int
	lastAttempt time.Time
}

// MemoryLoginThrottle is a [LoginThrottle] backed by a mutex-guarded map.
//
// A key is locked once it has maxAttempts failures and its most recent
// failure is no older than window. Records are evicted lazily when they are
// read after the window has elapsed; Sweep drops them eagerly.
type MemoryLoginThrottle struct {
	mu          sync.Mutex
	attempts    map[string]attemptRecord
	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

// NewMemoryLoginThrottle builds a throttle. Non-positive arguments fall back
// to DefaultMaxAttempts and DefaultLockoutWindow.
func NewMemoryLoginThrottle(maxAttempts int, window time.Duration) *MemoryLoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if window <= 0 {
		window = DefaultLockoutWindow
	}

	return &MemoryLoginThrottle{
		attempts:    make(map[string]attemptRecord),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (t *MemoryLoginThrottle) WithClock(now func() time.Time) *MemoryLoginThrottle {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = now
	return t
}

func (t *MemoryLoginThrottle) MayAttempt(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.liveRecord(key, t.now())
	if !ok {
		return true
	}
	return rec.count < t.maxAttempts
}

func (t *MemoryLoginThrottle) RecordFailure(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	rec, _ := t.liveRecord(key, now)
	rec.count++
	rec.lastAttempt = now
	t.attempts[key] = rec
}

func (t *MemoryLoginThrottle) Clear(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.attempts, key)
}

func (t *MemoryLoginThrottle) RetryAfter(key string) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	rec, ok := t.liveRecord(key, now)
	if !ok || rec.count < t.maxAttempts {
		return 0
	}
	return rec.lastAttempt.Add(t.window).Sub(now)
}

// Sweep removes every record whose window has elapsed and returns how many
// were dropped.
func (t *MemoryLoginThrottle) Sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	removed := 0
	for key, rec := range t.attempts {
		if now.Sub(rec.lastAttempt) > t.window {
			delete(t.attempts, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (t *MemoryLoginThrottle) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.attempts)
}

// liveRecord returns the record for key, deleting it first if the window
// has passed. Caller must hold t.mu.
func (t *MemoryLoginThrottle) liveRecord(key string, now time.Time) (attemptRecord, bool) {
	rec, ok := t.attempts[key]
	if !ok {
		return attemptRecord{}, false
	}
	if now.Sub(rec.lastAttempt) > t.window {
		delete(t.attempts, key)
		return attemptRecord{}, false
	}
	return rec, true
}
