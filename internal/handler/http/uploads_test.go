package http

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/brand-showcase/internal/app"
	"github.com/MKhiriev/brand-showcase/internal/service"
	"github.com/MKhiriev/brand-showcase/internal/store"
	"github.com/MKhiriev/brand-showcase/models"
)

type filePart struct {
	field, filename, contentType string
	data                         []byte
}

func multipartRequest(t *testing.T, path string, parts ...filePart) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, p.field, p.filename))
		h.Set("Content-Type", p.contentType)
		w, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = w.Write(p.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: "sid", Value: testToken})
	return req
}

func serveRequest(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// upload-logo
// ─────────────────────────────────────────────

func TestUploadLogo(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)
	d.images.EXPECT().UploadLogo(gomock.Any(), models.UploadedFile{Filename: "logo.png", ContentType: "image/png", Data: []byte("png-bytes")}).
		Return(models.LogoUploadResponse{LogoURL: "/uploads/logo-1.png", Settings: models.BrandSettings{ID: 1, LogoURL: "/uploads/logo-1.png"}}, nil)

	req := multipartRequest(t, "/api/admin/upload-logo",
		filePart{"note", "readme.txt", "text/plain", []byte("ignored")},
		filePart{"logo", "logo.png", "image/png", []byte("png-bytes")},
	)
	rec := serveRequest(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/uploads/logo-1.png", decodeBody[models.LogoUploadResponse](t, rec).LogoURL)
}

func TestUploadLogo_NonImageSkipped(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)

	req := multipartRequest(t, "/api/admin/upload-logo", filePart{"logo", "logo.exe", "application/octet-stream", []byte("MZ")})
	rec := serveRequest(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgNoFileUploaded, messageOf(t, rec))
}

func TestUploadLogo_NotMultipart(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)

	rec := serve(h, http.MethodPost, "/api/admin/upload-logo", strings.NewReader(`{}`), true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadLogo_TooLarge(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)

	req := multipartRequest(t, "/api/admin/upload-logo", filePart{"logo", "big.png", "image/png", bytes.Repeat([]byte{1}, maxUploadFileSize+1)})
	rec := serveRequest(h, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestUploadLogo_UndecodableImage(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)
	d.images.EXPECT().UploadLogo(gomock.Any(), gomock.Any()).Return(models.LogoUploadResponse{}, service.ErrInvalidImage)

	req := multipartRequest(t, "/api/admin/upload-logo", filePart{"logo", "logo.png", "image/png", []byte("not really")})
	rec := serveRequest(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidImageFile, messageOf(t, rec))
}

// ─────────────────────────────────────────────
// upload-tshirt-images
// ─────────────────────────────────────────────

func TestUploadTshirtImages(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)
	d.images.EXPECT().UploadTshirtImages(gomock.Any(), gomock.Len(2)).
		Return([]models.TshirtImage{{ID: 1}, {ID: 2}}, nil)

	req := multipartRequest(t, "/api/admin/upload-tshirt-images",
		filePart{"images", "a.jpg", "image/jpeg", []byte("a")},
		filePart{"images", "b.webp", "image/webp", []byte("b")},
		filePart{"images", "c.txt", "text/plain", []byte("c")},
	)
	rec := serveRequest(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.TshirtImage](t, rec), 2)
}

func TestUploadTshirtImages_TooMany(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)

	parts := make([]filePart, 0, maxGalleryFiles+1)
	for i := 0; i <= maxGalleryFiles; i++ {
		parts = append(parts, filePart{"images", fmt.Sprintf("%d.png", i), "image/png", []byte{byte(i)}})
	}
	rec := serveRequest(h, multipartRequest(t, "/api/admin/upload-tshirt-images", parts...))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgTooManyFiles, messageOf(t, rec))
}

func TestUploadTshirtImages_None(t *testing.T) {
	h, d := newTestHandler(t)
	asAdmin(d)

	rec := serveRequest(h, multipartRequest(t, "/api/admin/upload-tshirt-images"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgNoFilesUploaded, messageOf(t, rec))
}

// ─────────────────────────────────────────────
// /uploads/{name}
// ─────────────────────────────────────────────

// seekCloser is what the file and MinIO backends hand back.
type seekCloser struct{ *bytes.Reader }

func (seekCloser) Close() error { return nil }

func TestServeUpload(t *testing.T) {
	modTime := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("seekable", func(t *testing.T) {
		h, d := newTestHandler(t)
		d.images.EXPECT().OpenImage(gomock.Any(), "logo-1.png").
			Return(seekCloser{bytes.NewReader([]byte("png"))}, store.ImageInfo{Size: 3, ContentType: "image/png", ModTime: modTime}, nil)

		rec := serve(h, http.MethodGet, "/uploads/logo-1.png", nil, false)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "png", rec.Body.String())
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, modTime.Format(http.TimeFormat), rec.Header().Get("Last-Modified"))
		assert.Contains(t, rec.Header().Get("Cache-Control"), "immutable")
	})

	t.Run("stream", func(t *testing.T) {
		h, d := newTestHandler(t)
		d.images.EXPECT().OpenImage(gomock.Any(), "tshirt-1.jpg").
			Return(io.NopCloser(strings.NewReader("jpeg")), store.ImageInfo{Size: 4, ContentType: "image/jpeg"}, nil)

		rec := serve(h, http.MethodGet, "/uploads/tshirt-1.jpg", nil, false)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "jpeg", rec.Body.String())
		assert.Equal(t, "4", rec.Header().Get("Content-Length"))
	})

	t.Run("missing", func(t *testing.T) {
		h, d := newTestHandler(t)
		d.images.EXPECT().OpenImage(gomock.Any(), "nope.png").Return(nil, store.ImageInfo{}, service.ErrNotFound)

		rec := serve(h, http.MethodGet, "/uploads/nope.png", nil, false)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
