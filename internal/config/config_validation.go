// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every violated group is reported; the returned error matches the
// corresponding sentinel from errors.go via errors.Is.
func (cfg *StructuredConfig) validate() error {
	errs := cfg.storageErrors()

	if len(cfg.Auth.SessionSecret) < MinSessionSecretLength {
		errs = append(errs, fmt.Errorf("%w: session secret must be at least %d bytes", ErrInvalidAuthConfigs, MinSessionSecretLength))
	}
	if cfg.Auth.SessionTTL <= 0 || cfg.Auth.LockoutWindow <= 0 || cfg.Auth.MaxLoginAttempts <= 0 {
		errs = append(errs, fmt.Errorf("%w: session ttl, lockout window and max attempts must be positive", ErrInvalidAuthConfigs))
	}
	if cfg.Auth.RegisterRatePerMinute <= 0 || cfg.Auth.RegisterBurst <= 0 {
		errs = append(errs, fmt.Errorf("%w: registration rate and burst must be positive", ErrInvalidAuthConfigs))
	}
	switch cfg.Auth.CookieSameSite {
	case SameSiteStrict, SameSiteLax:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown cookie samesite mode %q", ErrInvalidAuthConfigs, cfg.Auth.CookieSameSite))
	}
	if cfg.Auth.CookieName == "" || cfg.Auth.SessionIssuer == "" {
		errs = append(errs, fmt.Errorf("%w: cookie name and session issuer are required", ErrInvalidAuthConfigs))
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs))
	}

	if cfg.Workers.SessionSweepInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: session sweep interval must be positive", ErrInvalidWorkerConfigs))
	}

	return errors.Join(errs...)
}

// validateStorage checks only the storage section. Tools that talk to the
// database directly use it instead of validate.
func (cfg *StructuredConfig) validateStorage() error {
	return errors.Join(cfg.storageErrors()...)
}

func (cfg *StructuredConfig) storageErrors() []error {
	var errs []error

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown db driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs))
	}

	switch cfg.Storage.Images.Backend {
	case ImagesBackendFiles:
		if cfg.Storage.Images.Dir == "" {
			errs = append(errs, fmt.Errorf("%w: images directory is required", ErrInvalidStorageConfigs))
		}
	case ImagesBackendMinIO:
		m := cfg.Storage.Images.MinIO
		if m.Endpoint == "" || m.AccessKey == "" || m.SecretKey == "" || m.Bucket == "" {
			errs = append(errs, fmt.Errorf("%w: minio endpoint, credentials and bucket are required", ErrInvalidStorageConfigs))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown images backend %q", ErrInvalidStorageConfigs, cfg.Storage.Images.Backend))
	}

	return errs
}
