package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/mock"
	"github.com/MKhiriev/brand-showcase/internal/store"
	"github.com/MKhiriev/brand-showcase/models"
)

func newTestContentSvc(t *testing.T) (ContentService, *mock.MockContentRepository) {
	t.Helper()
	repo := mock.NewMockContentRepository(gomock.NewController(t))
	return NewContentService(repo, logger.Nop()), repo
}

func TestListTshirtImages_PublicSeesActiveOnly(t *testing.T) {
	svc, repo := newTestContentSvc(t)
	ctx := context.Background()

	repo.EXPECT().ListTshirtImages(ctx, true).Return([]models.TshirtImage{{ID: 1, IsActive: true}}, nil)
	images, err := svc.ListTshirtImages(ctx, false)
	require.NoError(t, err)
	assert.Len(t, images, 1)

	repo.EXPECT().ListTshirtImages(ctx, false).Return(nil, nil)
	_, err = svc.ListTshirtImages(ctx, true)
	require.NoError(t, err)
}

func TestListSocialLinks_ActiveFlag(t *testing.T) {
	svc, repo := newTestContentSvc(t)

	repo.EXPECT().ListSocialLinks(gomock.Any(), true).Return(nil, nil)
	_, err := svc.ListSocialLinks(context.Background(), false)
	require.NoError(t, err)
}

func TestUpdateTshirtImage(t *testing.T) {
	title := "Night sky"

	t.Run("ok", func(t *testing.T) {
		svc, repo := newTestContentSvc(t)
		upd := models.TshirtImageUpdate{Title: &title}
		repo.EXPECT().UpdateTshirtImage(gomock.Any(), int64(7), upd).Return(models.TshirtImage{ID: 7, Title: title}, nil)

		img, err := svc.UpdateTshirtImage(context.Background(), 7, upd)
		require.NoError(t, err)
		assert.Equal(t, title, img.Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, repo := newTestContentSvc(t)
		repo.EXPECT().UpdateTshirtImage(gomock.Any(), int64(99), gomock.Any()).Return(models.TshirtImage{}, store.ErrImageNotFound)

		_, err := svc.UpdateTshirtImage(context.Background(), 99, models.TshirtImageUpdate{Title: &title})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty update", func(t *testing.T) {
		svc, _ := newTestContentSvc(t)
		_, err := svc.UpdateTshirtImage(context.Background(), 7, models.TshirtImageUpdate{})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("bad id", func(t *testing.T) {
		svc, _ := newTestContentSvc(t)
		_, err := svc.UpdateTshirtImage(context.Background(), 0, models.TshirtImageUpdate{Title: &title})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestReorderTshirtImages(t *testing.T) {
	svc, repo := newTestContentSvc(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.ReorderTshirtImages(ctx, nil), ErrInvalidDataProvided)

	repo.EXPECT().ReorderTshirtImages(ctx, []int64{3, 1, 2}).Return(nil)
	assert.NoError(t, svc.ReorderTshirtImages(ctx, []int64{3, 1, 2}))

	repo.EXPECT().ReorderTshirtImages(ctx, []int64{5}).Return(store.ErrImageNotFound)
	assert.ErrorIs(t, svc.ReorderTshirtImages(ctx, []int64{5}), ErrNotFound)
}

func TestUpdateCopyrightSettings(t *testing.T) {
	svc, repo := newTestContentSvc(t)
	ctx := context.Background()

	_, err := svc.UpdateCopyrightSettings(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	repo.EXPECT().UpdateCopyrightSettings(ctx, "© 2026").Return(models.CopyrightSettings{ID: 1, Text: "© 2026"}, nil)
	settings, err := svc.UpdateCopyrightSettings(ctx, "© 2026")
	require.NoError(t, err)
	assert.Equal(t, "© 2026", settings.Text)
}

func TestGetAboutContent(t *testing.T) {
	t.Run("absent is nil", func(t *testing.T) {
		svc, repo := newTestContentSvc(t)
		repo.EXPECT().GetAboutContent(gomock.Any()).Return(models.AboutContent{}, store.ErrAboutContentNotFound)

		about, err := svc.GetAboutContent(context.Background())
		require.NoError(t, err)
		assert.Nil(t, about)
	})

	t.Run("present", func(t *testing.T) {
		svc, repo := newTestContentSvc(t)
		repo.EXPECT().GetAboutContent(gomock.Any()).Return(models.AboutContent{ID: 1, Title: "About"}, nil)

		about, err := svc.GetAboutContent(context.Background())
		require.NoError(t, err)
		require.NotNil(t, about)
		assert.Equal(t, "About", about.Title)
	})

	t.Run("storage error", func(t *testing.T) {
		svc, repo := newTestContentSvc(t)
		repo.EXPECT().GetAboutContent(gomock.Any()).Return(models.AboutContent{}, errors.New("broken"))

		_, err := svc.GetAboutContent(context.Background())
		assert.ErrorIs(t, err, ErrStorage)
	})
}

func TestGetBrandSettings_StorageError(t *testing.T) {
	svc, repo := newTestContentSvc(t)
	repo.EXPECT().GetBrandSettings(gomock.Any()).Return(models.BrandSettings{}, errors.New("broken"))

	_, err := svc.GetBrandSettings(context.Background())
	assert.ErrorIs(t, err, ErrStorage)
}
