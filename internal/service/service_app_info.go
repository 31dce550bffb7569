package service

import (
	"context"
	"time"

	"github.com/MKhiriev/brand-showcase/internal/config"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/models"
)

// Health statuses.
const (
	HealthOK          = "ok"
	HealthUnavailable = "unavailable"
)

// healthPingTimeout caps how long a health probe waits on the database.
const healthPingTimeout = 2 * time.Second

type appInfoService struct {
	appVersion string
	db         Pinger

	logger *logger.Logger
}

// NewAppInfoService requires a version; db may be nil, in which case the
// service always reports healthy.
func NewAppInfoService(cfg config.App, db Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		db:         db,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	resp := models.HealthResponse{Status: HealthOK, Version: s.appVersion}
	if s.db == nil {
		return resp
	}

	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	if err := s.db.PingContext(pingCtx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.Health").Msg("database ping failed")
		resp.Status = HealthUnavailable
	}
	return resp
}
