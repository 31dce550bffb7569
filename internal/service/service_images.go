package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/brand-showcase/internal/imaging"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/store"
	"github.com/MKhiriev/brand-showcase/internal/utils"
	"github.com/MKhiriev/brand-showcase/models"
)

// UploadsPathPrefix is the public URL prefix of stored images.
const UploadsPathPrefix = "/uploads/"

type imageService struct {
	contentRepository store.ContentRepository
	imageStorage      store.ImageStorage
	processor         imaging.Processor
	newID             func() string
	logger            *logger.Logger
}

func NewImageService(contentRepository store.ContentRepository, imageStorage store.ImageStorage, processor imaging.Processor, logger *logger.Logger) ImageService {
	return &imageService{
		contentRepository: contentRepository,
		imageStorage:      imageStorage,
		processor:         processor,
		newID:             utils.NewUploadKey,
		logger:            logger,
	}
}

// UploadLogo stores the resized logo and points the brand settings at it.
// The previous uploaded logo is removed best-effort.
func (s *imageService) UploadLogo(ctx context.Context, file models.UploadedFile) (models.LogoUploadResponse, error) {
	log := logger.FromContext(ctx)

	data, err := s.processor.Logo(file.Data)
	if err != nil {
		log.Warn().Err(err).Str("func", "*imageService.UploadLogo").Str("filename", file.Filename).Msg("logo rejected")
		return models.LogoUploadResponse{}, imageError(err)
	}

	previous, err := s.contentRepository.GetBrandSettings(ctx)
	if err != nil {
		return models.LogoUploadResponse{}, storageError(err)
	}

	key := "logo-" + s.newID() + ".png"
	if err = s.imageStorage.Put(ctx, key, bytes.NewReader(data), int64(len(data)), "image/png"); err != nil {
		log.Err(err).Str("func", "*imageService.UploadLogo").Msg("error storing logo")
		return models.LogoUploadResponse{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	url := UploadsPathPrefix + key
	settings, err := s.contentRepository.UpdateBrandSettings(ctx, models.BrandSettingsUpdate{LogoURL: &url})
	if err != nil {
		s.removeBestEffort(ctx, url)
		return models.LogoUploadResponse{}, storageError(err)
	}

	if previous.LogoURL != url {
		s.removeBestEffort(ctx, previous.LogoURL)
	}

	return models.LogoUploadResponse{LogoURL: url, Settings: settings}, nil
}

// UploadTshirtImages converts every file before storing any of them, so a
// bad file rejects the whole batch.
func (s *imageService) UploadTshirtImages(ctx context.Context, files []models.UploadedFile) ([]models.TshirtImage, error) {
	log := logger.FromContext(ctx)

	if len(files) == 0 {
		return nil, ErrNoFilesToSave
	}

	converted := make([][]byte, 0, len(files))
	for _, file := range files {
		data, err := s.processor.Gallery(file.Data)
		if err != nil {
			log.Warn().Err(err).Str("func", "*imageService.UploadTshirtImages").Str("filename", file.Filename).Msg("image rejected")
			return nil, imageError(err)
		}
		converted = append(converted, data)
	}

	images := make([]models.TshirtImage, 0, len(converted))
	for _, data := range converted {
		key := "tshirt-" + s.newID() + ".jpg"
		if err := s.imageStorage.Put(ctx, key, bytes.NewReader(data), int64(len(data)), "image/jpeg"); err != nil {
			log.Err(err).Str("func", "*imageService.UploadTshirtImages").Msg("error storing image")
			return nil, fmt.Errorf("%w: %w", ErrStorage, err)
		}

		img, err := s.contentRepository.CreateTshirtImage(ctx, models.TshirtImage{
			ImageURL: UploadsPathPrefix + key,
			Alt:      models.DefaultImageAlt,
			IsActive: true,
		})
		if err != nil {
			s.removeBestEffort(ctx, UploadsPathPrefix+key)
			return nil, storageError(err)
		}
		images = append(images, img)
	}

	log.Info().Str("func", "*imageService.UploadTshirtImages").Int("count", len(images)).Msg("gallery images uploaded")
	return images, nil
}

func (s *imageService) DeleteTshirtImage(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidDataProvided
	}

	img, err := s.contentRepository.DeleteTshirtImage(ctx, id)
	if err != nil {
		return storageError(err)
	}

	s.removeBestEffort(ctx, img.ImageURL)
	return nil
}

func (s *imageService) OpenImage(ctx context.Context, key string) (io.ReadCloser, store.ImageInfo, error) {
	rc, info, err := s.imageStorage.Get(ctx, key)
	switch {
	case errors.Is(err, store.ErrImageNotFound), errors.Is(err, store.ErrInvalidImageKey):
		return nil, store.ImageInfo{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	case err != nil:
		return nil, store.ImageInfo{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return rc, info, nil
}

// removeBestEffort deletes the stored file behind an uploads URL. External
// URLs and failures are ignored.
func (s *imageService) removeBestEffort(ctx context.Context, url string) {
	key, ok := strings.CutPrefix(url, UploadsPathPrefix)
	if !ok || key == "" {
		return
	}
	if err := s.imageStorage.Delete(ctx, key); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*imageService.removeBestEffort").Str("key", key).Msg("error removing stored image")
	}
}

func imageError(err error) error {
	if errors.Is(err, imaging.ErrUnsupportedImage) || errors.Is(err, imaging.ErrImageTooLarge) {
		return fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	return err
}
