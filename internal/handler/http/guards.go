// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/brand-showcase/internal/app"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/service"
	"github.com/MKhiriev/brand-showcase/internal/utils"
	"github.com/MKhiriev/brand-showcase/models"
)

// authenticated resolves the session cookie and stores the user in the
// request context. Requests without a valid session are answered with 401
// and unauthorizedMessage before next runs.
//
// The guard only reads session state; it neither extends nor deletes
// sessions and never touches the login throttle.
func (h *Handler) authenticated(unauthorizedMessage string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromRequest(r)

			user, err := h.services.SessionService.Resolve(ctx, h.cookies.token(r))
			if errors.Is(err, service.ErrSessionInvalid) {
				writeMessage(w, unauthorizedMessage, http.StatusUnauthorized)
				return
			}
			if err != nil {
				writeError(w, r, err)
				return
			}

			log.Debug().Int64("user_id", user.ID).Msg("session resolved")
			next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
		})
	}
}

// requireAuthenticated lets only requests with a live session through.
func (h *Handler) requireAuthenticated(next http.Handler) http.Handler {
	return h.authenticated(app.MsgLoginRequired)(next)
}

// requireAdmin implies requireAuthenticated and additionally answers 403
// for users without the admin role.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return h.requireAuthenticated(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		if !ok || !user.HasRole(models.RoleAdmin) {
			logger.FromRequest(r).Warn().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("admin route refused")
			writeMessage(w, app.MsgAdminOnly, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}))
}
