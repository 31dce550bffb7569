package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/brand-showcase/internal/app"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/service"
	"github.com/MKhiriev/brand-showcase/internal/utils"
	"github.com/MKhiriev/brand-showcase/internal/validators"
	"github.com/MKhiriev/brand-showcase/models"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap is checked in order; the first matching sentinel wins.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidData}},
	{ErrInvalidID, errorResponse{http.StatusBadRequest, app.MsgInvalidImageID}},
	{ErrNoFileUploaded, errorResponse{http.StatusBadRequest, app.MsgNoFileUploaded}},
	{ErrTooManyFiles, errorResponse{http.StatusBadRequest, app.MsgTooManyFiles}},
	{ErrFileTooLarge, errorResponse{http.StatusRequestEntityTooLarge, app.MsgFileTooLarge}},

	{validators.ErrValidation, errorResponse{http.StatusBadRequest, app.MsgInvalidData}},

	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidData}},
	{service.ErrUsernameTaken, errorResponse{http.StatusBadRequest, app.MsgUsernameTaken}},
	{service.ErrRegistrationDisabled, errorResponse{http.StatusForbidden, app.MsgRegistrationDisabled}},
	{service.ErrSessionInvalid, errorResponse{http.StatusUnauthorized, app.MsgLoginRequired}},
	{service.ErrNotFound, errorResponse{http.StatusNotFound, app.MsgImageNotFound}},
	{service.ErrInvalidImage, errorResponse{http.StatusBadRequest, app.MsgInvalidImageFile}},
	{service.ErrNoFilesToSave, errorResponse{http.StatusBadRequest, app.MsgNoFilesUploaded}},
	{service.ErrStorage, errorResponse{http.StatusInternalServerError, app.MsgInternalError}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalError}
}

// writeError maps err to a status and a JSON body. Validation errors carry
// their field detail; nothing else from err reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	resp := responseFromError(err)

	body := models.ErrorResponse{Message: resp.message}
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		body.Errors = vErr.Fields
	}

	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	utils.WriteJSON(w, body, resp.status)
}

// writeMessage writes a {"message": ...} body.
func writeMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
