package service

import (
	"github.com/MKhiriev/brand-showcase/internal/config"
	"github.com/MKhiriev/brand-showcase/internal/crypto"
	"github.com/MKhiriev/brand-showcase/internal/imaging"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/store"
	"github.com/MKhiriev/brand-showcase/internal/throttle"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	ContentService ContentService
	ImageService   ImageService
	AppInfoService AppInfoService
}

// NewServices wires every service over storages. The login throttle is
// passed in so callers decide its lifetime and sharing.
func NewServices(storages *store.Storages, loginThrottle throttle.LoginThrottle, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, storages.DB, logger)
	if err != nil {
		return nil, err
	}

	sessions := NewSessionService(storages.SessionRepository, storages.UserRepository, cfg.Auth, logger)

	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			sessions,
			crypto.NewPasswordHasher(),
			loginThrottle,
			cfg.Auth.DisableRegistration,
			logger,
		),
		SessionService: sessions,
		ContentService: NewContentService(storages.ContentRepository, logger),
		ImageService:   NewImageService(storages.ContentRepository, storages.ImageStorage, imaging.NewProcessor(), logger),
		AppInfoService: appInfo,
	}, nil
}
