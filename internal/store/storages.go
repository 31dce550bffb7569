package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/brand-showcase/internal/config"
	"github.com/MKhiriev/brand-showcase/internal/logger"
)

// Storages bundles every repository and the image store of the application
// over one database connection.
type Storages struct {
	DB                *DB
	UserRepository    UserRepository
	SessionRepository SessionRepository
	ContentRepository ContentRepository
	ImageStorage      ImageStorage
}

// NewStorages connects to the configured database, applies migrations and
// opens the configured image store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := Connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	images, err := NewImageStorage(ctx, cfg.Images, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, images, log), nil
}

// NewStoragesFromDB wires repositories over an already migrated database.
func NewStoragesFromDB(db *DB, images ImageStorage, log *logger.Logger) *Storages {
	return &Storages{
		DB:                db,
		UserRepository:    NewUserRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		ContentRepository: NewContentRepository(db, log),
		ImageStorage:      images,
	}
}

// Connect opens the database selected by cfg.Driver.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// NewImageStorage opens the image store selected by cfg.Backend.
func NewImageStorage(ctx context.Context, cfg config.Images, log *logger.Logger) (ImageStorage, error) {
	switch cfg.Backend {
	case config.ImagesBackendFiles:
		return NewFileImageStorage(cfg.Dir, log)
	case config.ImagesBackendMinIO:
		return NewMinIOImageStorage(ctx, cfg.MinIO, log)
	default:
		return nil, fmt.Errorf("unsupported images backend %q", cfg.Backend)
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
