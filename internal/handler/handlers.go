package handler

import (
	"github.com/MKhiriev/brand-showcase/internal/config"
	"github.com/MKhiriev/brand-showcase/internal/handler/http"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/service"
)

// Handlers groups the transports the server exposes. The site only speaks
// HTTP.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Debug().Str("func", "NewHandlers").Str("address", cfg.Server.HTTPAddress).Msg("building http handlers")

	if cfg.Server.HTTPAddress == "" {
		return nil, ErrNoListenAddress
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
