package http

import (
	"net/http"

	"github.com/MKhiriev/brand-showcase/internal/service"
	"github.com/MKhiriev/brand-showcase/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// healthz reports 503 while the database cannot be reached.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	health := h.services.AppInfoService.Health(r.Context())

	status := http.StatusOK
	if health.Status != service.HealthOK {
		status = http.StatusServiceUnavailable
	}
	utils.WriteJSON(w, health, status)
}
