package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/brand-showcase/internal/logger"
)

// fileImageStorage keeps images as plain files in one directory.
type fileImageStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileImageStorage returns an [ImageStorage] rooted at dir, creating the
// directory if it does not exist.
func NewFileImageStorage(dir string, log *logger.Logger) (ImageStorage, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("images directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating images directory: %w", err)
	}
	log.Debug().Str("dir", dir).Msg("creating file image storage")
	return &fileImageStorage{dir: dir, logger: log}, nil
}

// Put writes to a temporary file first so readers never see a partial image.
func (s *fileImageStorage) Put(ctx context.Context, key string, r io.Reader, _ int64, _ string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing image: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error writing image: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error storing image: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("func", "*fileImageStorage.Put").Str("key", key).Msg("image stored")
	return nil
}

func (s *fileImageStorage) Get(_ context.Context, key string) (io.ReadCloser, ImageInfo, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, ImageInfo{}, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ImageInfo{}, ErrImageNotFound
	}
	if err != nil {
		return nil, ImageInfo{}, fmt.Errorf("error opening image: %w", err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ImageInfo{}, fmt.Errorf("error reading image: %w", err)
	}

	return f, ImageInfo{
		Size:        st.Size(),
		ContentType: mime.TypeByExtension(filepath.Ext(key)),
		ModTime:     st.ModTime(),
	}, nil
}

// Delete removes the image. A missing file is not an error.
func (s *fileImageStorage) Delete(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error deleting image: %w", err)
	}
	return nil
}

func (s *fileImageStorage) path(key string) (string, error) {
	if err := validateImageKey(key); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, key), nil
}

// validateImageKey accepts only flat, visible file names.
func validateImageKey(key string) error {
	if key == "" || key != filepath.Base(key) || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidImageKey, key)
	}
	return nil
}
