package http

import (
	"net/http"

	"github.com/MKhiriev/brand-showcase/internal/app"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/utils"
)

// withRegisterRateLimit spends one token of the client's bucket per
// registration attempt.
func (h *Handler) withRegisterRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr := utils.ClientAddress(r)
		if !h.registerLimiter.Allow(addr) {
			logger.FromRequest(r).Warn().Str("client", addr).Msg("registration rate limited")
			w.Header().Set("Retry-After", "60")
			writeMessage(w, app.MsgTooManyRegistrations, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
