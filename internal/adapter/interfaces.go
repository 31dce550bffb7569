// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the brand-showcase HTTP API.
//
// The primary abstraction is [SiteClient]. Its HTTP implementation keeps the
// session cookie in a per-client cookie jar, so a successful Login or
// Register authenticates every following call of the same client.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so that callers can use [errors.Is] (e.g. [ErrUnauthorized] for
// 401, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/brand-showcase/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/site_client_mock.go -package=mock

// SiteClient talks to a running brand-showcase server.
type SiteClient interface {
	// Login opens a session for creds and returns the authenticated user.
	Login(ctx context.Context, creds models.Credentials) (models.PublicUser, error)

	// Register creates an account and opens a session for it.
	Register(ctx context.Context, creds models.Credentials) (models.PublicUser, error)

	// CurrentUser returns the user of the current session. It returns
	// [ErrUnauthorized] when no session is open.
	CurrentUser(ctx context.Context) (models.PublicUser, error)

	// Logout closes the current session. Closing an absent session is not an
	// error.
	Logout(ctx context.Context) error

	// BrandSettings fetches the public brand settings.
	BrandSettings(ctx context.Context) (models.BrandSettings, error)

	// Health reports the server health. A 503 answer is returned as a value
	// together with [ErrServiceUnavailable].
	Health(ctx context.Context) (models.HealthResponse, error)
}
