package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/brand-showcase/internal/app"
	"github.com/MKhiriev/brand-showcase/internal/service"
	"github.com/MKhiriev/brand-showcase/models"
)

// ─────────────────────────────────────────────
// public
// ─────────────────────────────────────────────

func TestPublicContent(t *testing.T) {
	h, d := newTestHandler(t)

	d.content.EXPECT().GetBrandSettings(gomock.Any()).Return(models.BrandSettings{ID: 1, Name: models.DefaultBrandName}, nil)
	rec := serve(h, http.MethodGet, "/api/brand-settings", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.DefaultBrandName, decodeBody[models.BrandSettings](t, rec).Name)

	d.content.EXPECT().ListTshirtImages(gomock.Any(), false).Return(nil, nil)
	rec = serve(h, http.MethodGet, "/api/tshirt-images", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	d.content.EXPECT().ListSocialLinks(gomock.Any(), false).Return([]models.SocialLink{{ID: 1, Platform: models.PlatformInstagram, URL: "https://instagram.com/x", IsActive: true}}, nil)
	rec = serve(h, http.MethodGet, "/api/social-links", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.SocialLink](t, rec), 1)

	d.content.EXPECT().GetCopyrightSettings(gomock.Any()).Return(models.CopyrightSettings{ID: 1, Text: models.DefaultCopyrightText}, nil)
	rec = serve(h, http.MethodGet, "/api/copyright-settings", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetAboutContent_NullWhenAbsent(t *testing.T) {
	h, d := newTestHandler(t)
	d.content.EXPECT().GetAboutContent(gomock.Any()).Return(nil, nil)

	rec := serve(h, http.MethodGet, "/api/about-content", nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
}

func TestPublicContent_StorageError(t *testing.T) {
	h, d := newTestHandler(t)
	d.content.EXPECT().GetBrandSettings(gomock.Any()).Return(models.BrandSettings{}, service.ErrStorage)

	rec := serve(h, http.MethodGet, "/api/brand-settings", nil, false)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// admin
// ─────────────────────────────────────────────

// asAdmin makes the next session lookup resolve to the admin user.
func asAdmin(d testDeps) {
	d.sessions.EXPECT().Resolve(gomock.Any(), testToken).Return(adminUser, nil)
}

func TestUpdateBrandSettings(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)
	name := "New name"
	d.content.EXPECT().UpdateBrandSettings(gomock.Any(), models.BrandSettingsUpdate{Name: &name}).
		Return(models.BrandSettings{ID: 1, Name: name}, nil)

	rec := serve(h, http.MethodPut, "/api/admin/brand-settings", strings.NewReader(`{"name":"New name"}`), true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, name, decodeBody[models.BrandSettings](t, rec).Name)
}

func TestUpdateBrandSettings_Validation(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)

	rec := serve(h, http.MethodPut, "/api/admin/brand-settings", strings.NewReader(`{"name":"","logoUrl":"javascript:alert(1)"}`), true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[models.ErrorResponse](t, rec)
	assert.Equal(t, app.MsgInvalidData, resp.Message)
	assert.NotEmpty(t, resp.Errors)
}

func TestUpdateTshirtImage(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h, d := newTestHandler(t)
		asAdmin(d)
		d.content.EXPECT().UpdateTshirtImage(gomock.Any(), int64(3), gomock.Any()).
			Return(models.TshirtImage{ID: 3, Title: "Sky"}, nil)

		rec := serve(h, http.MethodPut, "/api/admin/tshirt-images/3", strings.NewReader(`{"title":"Sky"}`), true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Sky", decodeBody[models.TshirtImage](t, rec).Title)
	})

	t.Run("invalid id", func(t *testing.T) {
		h, d := newTestHandler(t)
		asAdmin(d)

		rec := serve(h, http.MethodPut, "/api/admin/tshirt-images/abc", strings.NewReader(`{"title":"Sky"}`), true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgInvalidImageID, messageOf(t, rec))
	})

	t.Run("unknown id", func(t *testing.T) {
		h, d := newTestHandler(t)
		asAdmin(d)
		d.content.EXPECT().UpdateTshirtImage(gomock.Any(), int64(99), gomock.Any()).
			Return(models.TshirtImage{}, service.ErrNotFound)

		rec := serve(h, http.MethodPut, "/api/admin/tshirt-images/99", strings.NewReader(`{"title":"Sky"}`), true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, app.MsgImageNotFound, messageOf(t, rec))
	})

	t.Run("empty update", func(t *testing.T) {
		h, d := newTestHandler(t)
		asAdmin(d)

		rec := serve(h, http.MethodPut, "/api/admin/tshirt-images/3", strings.NewReader(`{}`), true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReorderTshirtImages(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)
	d.content.EXPECT().ReorderTshirtImages(gomock.Any(), []int64{3, 1, 2}).Return(nil)

	rec := serve(h, http.MethodPut, "/api/admin/tshirt-images/reorder", strings.NewReader(`{"imageIds":[3,1,2]}`), true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgImagesReordered, messageOf(t, rec))
}

func TestReorderTshirtImages_Empty(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)

	rec := serve(h, http.MethodPut, "/api/admin/tshirt-images/reorder", strings.NewReader(`{"imageIds":[]}`), true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteTshirtImage(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)
	d.images.EXPECT().DeleteTshirtImage(gomock.Any(), int64(5)).Return(nil)

	rec := serve(h, http.MethodDelete, "/api/admin/tshirt-images/5", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgImageDeleted, messageOf(t, rec))
}

func TestGetAllTshirtImages_IncludesInactive(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)
	d.content.EXPECT().ListTshirtImages(gomock.Any(), true).
		Return([]models.TshirtImage{{ID: 1, IsActive: true}, {ID: 2}}, nil)

	rec := serve(h, http.MethodGet, "/api/admin/tshirt-images", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.TshirtImage](t, rec), 2)
}

func TestReplaceSocialLinks(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)
	links := []models.SocialLink{{Platform: models.PlatformTelegram, URL: "https://t.me/brand", IsActive: true}}
	d.content.EXPECT().ReplaceSocialLinks(gomock.Any(), links).
		Return([]models.SocialLink{{ID: 7, Platform: models.PlatformTelegram, URL: "https://t.me/brand", IsActive: true}}, nil)

	rec := serve(h, http.MethodPut, "/api/admin/social-links", jsonBody(t, links), true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), decodeBody[[]models.SocialLink](t, rec)[0].ID)
}

func TestReplaceSocialLinks_UnknownPlatform(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)

	rec := serve(h, http.MethodPut, "/api/admin/social-links", strings.NewReader(`[{"platform":"myspace","url":"https://myspace.com/x"}]`), true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCopyrightSettings(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)
	d.content.EXPECT().UpdateCopyrightSettings(gomock.Any(), "© 2026 Brand").
		Return(models.CopyrightSettings{ID: 1, Text: "© 2026 Brand"}, nil)

	rec := serve(h, http.MethodPut, "/api/admin/copyright-settings", strings.NewReader(`{"text":"© 2026 Brand"}`), true)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSaveAboutContent(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)
	about := models.AboutContent{Title: "About us", ContactEmail: "hi@example.com"}
	d.content.EXPECT().SaveAboutContent(gomock.Any(), about).Return(models.AboutContent{ID: 1, Title: "About us"}, nil)

	rec := serve(h, http.MethodPut, "/api/admin/about-content", jsonBody(t, about), true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), decodeBody[models.AboutContent](t, rec).ID)
}
