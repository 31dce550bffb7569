package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/brand-showcase/internal/app"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.trustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/healthz", h.healthz)
	router.Get("/api/version", h.getServerVersion)
	router.Get("/uploads/{name}", h.serveUpload)

	// session endpoints
	router.Group(func(r chi.Router) {
		r.Post("/api/login", h.login)
		r.With(h.withRegisterRateLimit).Post("/api/register", h.register)
		r.Post("/api/logout", h.logout)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.authenticated(app.MsgNotLoggedIn))
		r.Get("/api/user", h.currentUser)
		r.Get("/api/auth/user", h.currentUser)
	})

	// public content
	router.Group(func(r chi.Router) {
		r.Get("/api/brand-settings", h.getBrandSettings)
		r.Get("/api/tshirt-images", h.getTshirtImages)
		r.Get("/api/social-links", h.getSocialLinks)
		r.Get("/api/copyright-settings", h.getCopyrightSettings)
		r.Get("/api/about-content", h.getAboutContent)
	})

	// admin content
	router.Group(func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Put("/api/admin/brand-settings", h.updateBrandSettings)
		r.Post("/api/admin/upload-logo", h.uploadLogo)
		r.Post("/api/admin/upload-tshirt-images", h.uploadTshirtImages)
		r.Get("/api/admin/tshirt-images", h.getAllTshirtImages)
		r.Put("/api/admin/tshirt-images/reorder", h.reorderTshirtImages)
		r.Put("/api/admin/tshirt-images/{id}", h.updateTshirtImage)
		r.Delete("/api/admin/tshirt-images/{id}", h.deleteTshirtImage)
		r.Put("/api/admin/social-links", h.replaceSocialLinks)
		r.Put("/api/admin/copyright-settings", h.updateCopyrightSettings)
		r.Put("/api/admin/about-content", h.saveAboutContent)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
