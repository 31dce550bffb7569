package http

import (
	"time"

	"github.com/MKhiriev/brand-showcase/internal/config"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/service"
	"github.com/MKhiriev/brand-showcase/internal/throttle"
	"github.com/MKhiriev/brand-showcase/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// registerLimiter is a per-address token bucket in front of /api/register.
	registerLimiter *throttle.RequestLimiter

	cookies cookiePolicy

	trustProxy     bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		validator:       validators.NewSiteValidator(),
		registerLimiter: throttle.NewRequestLimiter(cfg.Auth.RegisterRatePerMinute, cfg.Auth.RegisterBurst),
		cookies:         newCookiePolicy(cfg.Auth),
		trustProxy:      cfg.Server.TrustProxy,
		requestTimeout:  cfg.Server.RequestTimeout,
		logger:          logger,
	}
}
