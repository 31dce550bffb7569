package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/utils"
	"github.com/MKhiriev/brand-showcase/models"
)

type httpSiteClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPSiteClient constructs an HTTP implementation of [SiteClient] bound
// to address. A missing scheme defaults to http.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPSiteClient(address string, timeout time.Duration, logger *logger.Logger) (SiteClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpSiteClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSiteClient) Login(ctx context.Context, creds models.Credentials) (models.PublicUser, error) {
	return h.authenticate(ctx, "/api/login", creds)
}

func (h *httpSiteClient) Register(ctx context.Context, creds models.Credentials) (models.PublicUser, error) {
	return h.authenticate(ctx, "/api/register", creds)
}

func (h *httpSiteClient) authenticate(ctx context.Context, path string, creds models.Credentials) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&user).
		Post(path)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg("authentication rejected")
		return models.PublicUser{}, err
	}

	return user, nil
}

func (h *httpSiteClient) CurrentUser(ctx context.Context) (models.PublicUser, error) {
	var user models.PublicUser

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&user).
		Get("/api/user")
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

func (h *httpSiteClient) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpSiteClient) BrandSettings(ctx context.Context) (models.BrandSettings, error) {
	var settings models.BrandSettings

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&settings).
		Get("/api/brand-settings")
	if err != nil {
		return models.BrandSettings{}, fmt.Errorf("brand settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BrandSettings{}, err
	}

	return settings, nil
}

func (h *httpSiteClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		SetError(&health).
		Get("/healthz")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}

	return health, mapHTTPError(resp)
}
