package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/brand-showcase/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// SessionRepository persists login sessions keyed by the digest of their id.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	FindSession(ctx context.Context, digest string) (models.Session, error)
	DeleteSession(ctx context.Context, digest string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// ContentRepository persists the editable site content.
type ContentRepository interface {
	// GetBrandSettings returns the brand settings row, creating it with
	// default values when the table is empty.
	GetBrandSettings(ctx context.Context) (models.BrandSettings, error)
	UpdateBrandSettings(ctx context.Context, upd models.BrandSettingsUpdate) (models.BrandSettings, error)

	ListTshirtImages(ctx context.Context, activeOnly bool) ([]models.TshirtImage, error)
	GetTshirtImage(ctx context.Context, id int64) (models.TshirtImage, error)
	// CreateTshirtImage appends img to the end of the gallery.
	CreateTshirtImage(ctx context.Context, img models.TshirtImage) (models.TshirtImage, error)
	UpdateTshirtImage(ctx context.Context, id int64, upd models.TshirtImageUpdate) (models.TshirtImage, error)
	// DeleteTshirtImage removes the entry and returns it as it was stored.
	DeleteTshirtImage(ctx context.Context, id int64) (models.TshirtImage, error)
	// ReorderTshirtImages assigns positions 1..n following ids, atomically.
	ReorderTshirtImages(ctx context.Context, ids []int64) error

	ListSocialLinks(ctx context.Context, activeOnly bool) ([]models.SocialLink, error)
	// ReplaceSocialLinks swaps the whole set of links in one transaction.
	ReplaceSocialLinks(ctx context.Context, links []models.SocialLink) ([]models.SocialLink, error)

	GetCopyrightSettings(ctx context.Context) (models.CopyrightSettings, error)
	UpdateCopyrightSettings(ctx context.Context, text string) (models.CopyrightSettings, error)

	GetAboutContent(ctx context.Context) (models.AboutContent, error)
	SaveAboutContent(ctx context.Context, about models.AboutContent) (models.AboutContent, error)
}

// ImageStorage keeps uploaded image bytes under flat keys.
type ImageStorage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, ImageInfo, error)
	Delete(ctx context.Context, key string) error
}

// ImageInfo describes a stored image.
type ImageInfo struct {
	Size        int64
	ContentType string
	ModTime     time.Time
}
