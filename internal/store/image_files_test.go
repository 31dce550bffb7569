package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/brand-showcase/internal/config"
	"github.com/MKhiriev/brand-showcase/internal/logger"
)

func TestFileImageStorage_PutGetDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := NewFileImageStorage(dir, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "logo-1.png", strings.NewReader("png-bytes"), 9, "image/png"))

	rc, info, err := s.Get(ctx, "logo-1.png")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, int64(9), info.Size)
	assert.Equal(t, "image/png", info.ContentType)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")

	require.NoError(t, s.Delete(ctx, "logo-1.png"))
	require.NoError(t, s.Delete(ctx, "logo-1.png"), "deleting twice is fine")

	_, _, err = s.Get(ctx, "logo-1.png")
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestFileImageStorage_RejectsUnsafeKeys(t *testing.T) {
	s, err := NewFileImageStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"", "../secret", "a/b.png", `a\b.png`, ".hidden", ".."} {
		t.Run(key, func(t *testing.T) {
			assert.ErrorIs(t, s.Put(ctx, key, strings.NewReader("x"), 1, ""), ErrInvalidImageKey)
			_, _, err := s.Get(ctx, key)
			assert.ErrorIs(t, err, ErrInvalidImageKey)
			assert.ErrorIs(t, s.Delete(ctx, key), ErrInvalidImageKey)
		})
	}
}

func TestNewFileImageStorage_EmptyDir(t *testing.T) {
	_, err := NewFileImageStorage("  ", logger.Nop())
	assert.Error(t, err)
}

func TestNewImageStorage_Selection(t *testing.T) {
	ctx := context.Background()

	s, err := NewImageStorage(ctx, config.Images{Backend: config.ImagesBackendFiles, Dir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &fileImageStorage{}, s)

	_, err = NewImageStorage(ctx, config.Images{Backend: "ftp"}, logger.Nop())
	assert.Error(t, err)

	_, err = NewImageStorage(ctx, config.Images{Backend: config.ImagesBackendMinIO}, logger.Nop())
	assert.ErrorContains(t, err, "endpoint")
}

func TestConnect_UnknownDriver(t *testing.T) {
	_, err := Connect(context.Background(), config.DB{Driver: "oracle"}, logger.Nop())
	assert.ErrorContains(t, err, "unsupported database driver")
}
