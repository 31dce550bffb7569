package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/store"
	"github.com/MKhiriev/brand-showcase/models"
)

type contentService struct {
	contentRepository store.ContentRepository
	logger            *logger.Logger
}

func NewContentService(contentRepository store.ContentRepository, logger *logger.Logger) ContentService {
	return &contentService{
		contentRepository: contentRepository,
		logger:            logger,
	}
}

func (s *contentService) GetBrandSettings(ctx context.Context) (models.BrandSettings, error) {
	settings, err := s.contentRepository.GetBrandSettings(ctx)
	return settings, storageError(err)
}

func (s *contentService) UpdateBrandSettings(ctx context.Context, upd models.BrandSettingsUpdate) (models.BrandSettings, error) {
	settings, err := s.contentRepository.UpdateBrandSettings(ctx, upd)
	if err != nil {
		return models.BrandSettings{}, storageError(err)
	}
	logger.FromContext(ctx).Info().Str("func", "*contentService.UpdateBrandSettings").Msg("brand settings updated")
	return settings, nil
}

func (s *contentService) ListTshirtImages(ctx context.Context, includeInactive bool) ([]models.TshirtImage, error) {
	images, err := s.contentRepository.ListTshirtImages(ctx, !includeInactive)
	return images, storageError(err)
}

func (s *contentService) UpdateTshirtImage(ctx context.Context, id int64, upd models.TshirtImageUpdate) (models.TshirtImage, error) {
	if id <= 0 || upd.IsEmpty() {
		return models.TshirtImage{}, ErrInvalidDataProvided
	}
	img, err := s.contentRepository.UpdateTshirtImage(ctx, id, upd)
	return img, storageError(err)
}

func (s *contentService) ReorderTshirtImages(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return ErrInvalidDataProvided
	}
	return storageError(s.contentRepository.ReorderTshirtImages(ctx, ids))
}

func (s *contentService) ListSocialLinks(ctx context.Context, includeInactive bool) ([]models.SocialLink, error) {
	links, err := s.contentRepository.ListSocialLinks(ctx, !includeInactive)
	return links, storageError(err)
}

func (s *contentService) ReplaceSocialLinks(ctx context.Context, links []models.SocialLink) ([]models.SocialLink, error) {
	saved, err := s.contentRepository.ReplaceSocialLinks(ctx, links)
	return saved, storageError(err)
}

func (s *contentService) GetCopyrightSettings(ctx context.Context) (models.CopyrightSettings, error) {
	settings, err := s.contentRepository.GetCopyrightSettings(ctx)
	return settings, storageError(err)
}

func (s *contentService) UpdateCopyrightSettings(ctx context.Context, text string) (models.CopyrightSettings, error) {
	if text == "" {
		return models.CopyrightSettings{}, ErrInvalidDataProvided
	}
	settings, err := s.contentRepository.UpdateCopyrightSettings(ctx, text)
	return settings, storageError(err)
}

func (s *contentService) GetAboutContent(ctx context.Context) (*models.AboutContent, error) {
	about, err := s.contentRepository.GetAboutContent(ctx)
	if errors.Is(err, store.ErrAboutContentNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storageError(err)
	}
	return &about, nil
}

func (s *contentService) SaveAboutContent(ctx context.Context, about models.AboutContent) (models.AboutContent, error) {
	saved, err := s.contentRepository.SaveAboutContent(ctx, about)
	return saved, storageError(err)
}

// storageError maps repository errors onto the service taxonomy: missing
// rows become ErrNotFound, everything else ErrStorage.
func storageError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrImageNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
}
