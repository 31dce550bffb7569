package service

import (
	"context"
	"io"

	"github.com/MKhiriev/brand-showcase/internal/store"
	"github.com/MKhiriev/brand-showcase/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService runs login attempts and registrations.
type AuthService interface {
	// Login passes the attempt through throttle, lookup, verification and
	// session establishment in that order. Expected denials are reported
	// through the result; only storage failures are returned as errors.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	// Register creates an active admin account and logs it in.
	Register(ctx context.Context, creds models.Credentials) (models.User, models.Session, error)
}

// SessionService manages server-side sessions referenced by signed cookies.
type SessionService interface {
	// Establish persists a new session for user and returns it with its
	// signed token. The token is only returned once the row exists.
	Establish(ctx context.Context, user models.User) (models.Session, error)

	// Resolve returns the active user behind token. Any reason the token
	// does not lead to an active user yields [ErrSessionInvalid].
	Resolve(ctx context.Context, token string) (models.User, error)

	// Destroy deletes the session behind token. Unknown or invalid tokens
	// are ignored.
	Destroy(ctx context.Context, token string) error

	// PurgeExpired deletes expired session rows.
	PurgeExpired(ctx context.Context) (int64, error)
}

// ContentService reads and edits the site content.
type ContentService interface {
	GetBrandSettings(ctx context.Context) (models.BrandSettings, error)
	UpdateBrandSettings(ctx context.Context, upd models.BrandSettingsUpdate) (models.BrandSettings, error)

	ListTshirtImages(ctx context.Context, includeInactive bool) ([]models.TshirtImage, error)
	UpdateTshirtImage(ctx context.Context, id int64, upd models.TshirtImageUpdate) (models.TshirtImage, error)
	ReorderTshirtImages(ctx context.Context, ids []int64) error

	ListSocialLinks(ctx context.Context, includeInactive bool) ([]models.SocialLink, error)
	ReplaceSocialLinks(ctx context.Context, links []models.SocialLink) ([]models.SocialLink, error)

	GetCopyrightSettings(ctx context.Context) (models.CopyrightSettings, error)
	UpdateCopyrightSettings(ctx context.Context, text string) (models.CopyrightSettings, error)

	// GetAboutContent returns nil when the about page was never saved.
	GetAboutContent(ctx context.Context) (*models.AboutContent, error)
	SaveAboutContent(ctx context.Context, about models.AboutContent) (models.AboutContent, error)
}

// ImageService stores uploaded images and the gallery entries built on them.
type ImageService interface {
	UploadLogo(ctx context.Context, file models.UploadedFile) (models.LogoUploadResponse, error)
	UploadTshirtImages(ctx context.Context, files []models.UploadedFile) ([]models.TshirtImage, error)
	DeleteTshirtImage(ctx context.Context, id int64) error
	OpenImage(ctx context.Context, key string) (io.ReadCloser, store.ImageInfo, error)
}

// AppInfoService reports the application version and health.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// Health reports "ok" when the database answers and "unavailable"
	// otherwise.
	Health(ctx context.Context) models.HealthResponse
}

// Pinger checks that a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
