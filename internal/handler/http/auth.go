package http

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/brand-showcase/internal/app"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/utils"
	"github.com/MKhiriev/brand-showcase/models"
)

// maxJSONBodySize caps every JSON request body.
const maxJSONBodySize = 1 << 20

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, creds); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.AuthService.Login(ctx, models.LoginRequest{
		Credentials:   creds,
		ClientAddress: utils.ClientAddress(r),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	switch result.Outcome {
	case models.LoginRateLimited:
		w.Header().Set("Retry-After", retryAfterSeconds(result.RetryAfter))
		writeMessage(w, app.MsgTooManyAttempts, http.StatusTooManyRequests)
	case models.LoginRejected:
		writeMessage(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
	case models.LoginSucceeded:
		h.cookies.set(w, result.Session)
		log.Debug().Int64("user_id", result.User.ID).Msg("session cookie issued")
		utils.WriteJSON(w, result.User, http.StatusOK)
	default:
		writeError(w, r, fmt.Errorf("unexpected login outcome %s", result.Outcome))
	}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, creds); err != nil {
		writeError(w, r, err)
		return
	}

	user, session, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.cookies.set(w, session)
	utils.WriteJSON(w, user.Public(), http.StatusCreated)
}

// logout destroys the session named by the cookie, if any, and always
// clears the cookie.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SessionService.Destroy(r.Context(), h.cookies.token(r)); err != nil {
		writeError(w, r, err)
		return
	}

	h.cookies.clear(w)
	writeMessage(w, app.MsgLoggedOut, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeMessage(w, app.MsgNotLoggedIn, http.StatusUnauthorized)
		return
	}
	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// retryAfterSeconds formats d for the Retry-After header, rounding up so
// a client never retries early.
func retryAfterSeconds(d time.Duration) string {
	secs := int64(math.Ceil(d.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.FormatInt(secs, 10)
}
