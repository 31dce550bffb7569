package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/brand-showcase/internal/app"
	"github.com/MKhiriev/brand-showcase/internal/service"
	"github.com/MKhiriev/brand-showcase/internal/utils"
	"github.com/MKhiriev/brand-showcase/models"
)

func guardedProbe(t *testing.T, called *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		user, ok := utils.GetUserFromContext(r.Context())
		require.True(t, ok)
		w.Header().Set("X-User", user.Username)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestGuards(t *testing.T) {
	tests := []struct {
		name        string
		admin       bool
		resolveUser models.User
		resolveErr  error
		wantStatus  int
		wantCalled  bool
	}{
		{name: "authenticated: live session", resolveUser: editorUser, wantStatus: http.StatusNoContent, wantCalled: true},
		{name: "authenticated: no session", resolveErr: service.ErrSessionInvalid, wantStatus: http.StatusUnauthorized},
		{name: "authenticated: store down", resolveErr: service.ErrStorage, wantStatus: http.StatusInternalServerError},
		{name: "admin: admin user", admin: true, resolveUser: adminUser, wantStatus: http.StatusNoContent, wantCalled: true},
		{name: "admin: other role", admin: true, resolveUser: editorUser, wantStatus: http.StatusForbidden},
		{name: "admin: no session", admin: true, resolveErr: service.ErrSessionInvalid, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, d := newTestHandler(t)
			d.sessions.EXPECT().Resolve(gomock.Any(), testToken).Return(tt.resolveUser, tt.resolveErr)

			var called bool
			guard := h.requireAuthenticated
			if tt.admin {
				guard = h.requireAdmin
			}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: "sid", Value: testToken})
			rec := httptest.NewRecorder()
			guard(guardedProbe(t, &called)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestGuards_Messages(t *testing.T) {
	h, d := newTestHandler(t)

	d.sessions.EXPECT().Resolve(gomock.Any(), "").Return(models.User{}, service.ErrSessionInvalid)
	rec := serve(h, http.MethodGet, "/api/admin/tshirt-images", nil, false)
	assert.Equal(t, app.MsgLoginRequired, messageOf(t, rec))

	d.sessions.EXPECT().Resolve(gomock.Any(), testToken).Return(editorUser, nil)
	rec = serve(h, http.MethodGet, "/api/admin/tshirt-images", nil, true)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, app.MsgAdminOnly, messageOf(t, rec))
}

// Every admin route must be refused before its handler touches a service.
func TestAdminRoutesRequireSession(t *testing.T) {
	routes := []struct{ method, path string }{
		{http.MethodPut, "/api/admin/brand-settings"},
		{http.MethodPost, "/api/admin/upload-logo"},
		{http.MethodPost, "/api/admin/upload-tshirt-images"},
		{http.MethodGet, "/api/admin/tshirt-images"},
		{http.MethodPut, "/api/admin/tshirt-images/reorder"},
		{http.MethodPut, "/api/admin/tshirt-images/1"},
		{http.MethodDelete, "/api/admin/tshirt-images/1"},
		{http.MethodPut, "/api/admin/social-links"},
		{http.MethodPut, "/api/admin/copyright-settings"},
		{http.MethodPut, "/api/admin/about-content"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			h, d := newTestHandler(t)
			// only the session lookup is expected; content mocks fail on any call
			d.sessions.EXPECT().Resolve(gomock.Any(), "").Return(models.User{}, service.ErrSessionInvalid)

			rec := serve(h, rt.method, rt.path, nil, false)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestResponseFromError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, responseFromError(errors.Join(service.ErrNotFound, errors.New("id 3"))).status)
	assert.Equal(t, http.StatusBadRequest, responseFromError(ErrInvalidID).status)
	assert.Equal(t, http.StatusInternalServerError, responseFromError(errors.New("unknown")).status)
}
