package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/brand-showcase/internal/app"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/utils"
	"github.com/MKhiriev/brand-showcase/models"
)

// ── public ──────────────────────────────────────────────────────────────────

func (h *Handler) getBrandSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.ContentService.GetBrandSettings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) getTshirtImages(w http.ResponseWriter, r *http.Request) {
	h.listTshirtImages(w, r, false)
}

func (h *Handler) getSocialLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.services.ContentService.ListSocialLinks(r.Context(), false)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(links), http.StatusOK)
}

func (h *Handler) getCopyrightSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.ContentService.GetCopyrightSettings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, settings, http.StatusOK)
}

// getAboutContent answers JSON null while the page has never been saved.
func (h *Handler) getAboutContent(w http.ResponseWriter, r *http.Request) {
	about, err := h.services.ContentService.GetAboutContent(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, about, http.StatusOK)
}

// ── admin ───────────────────────────────────────────────────────────────────

func (h *Handler) updateBrandSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var upd models.BrandSettingsUpdate
	if err := decodeJSON(w, r, &upd); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, upd); err != nil {
		writeError(w, r, err)
		return
	}

	settings, err := h.services.ContentService.UpdateBrandSettings(ctx, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) getAllTshirtImages(w http.ResponseWriter, r *http.Request) {
	h.listTshirtImages(w, r, true)
}

func (h *Handler) listTshirtImages(w http.ResponseWriter, r *http.Request, includeInactive bool) {
	images, err := h.services.ContentService.ListTshirtImages(r.Context(), includeInactive)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(images), http.StatusOK)
}

func (h *Handler) updateTshirtImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := imageID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var upd models.TshirtImageUpdate
	if err = decodeJSON(w, r, &upd); err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.validator.Validate(ctx, upd); err != nil {
		writeError(w, r, err)
		return
	}

	img, err := h.services.ContentService.UpdateTshirtImage(ctx, id, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, img, http.StatusOK)
}

func (h *Handler) reorderTshirtImages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ReorderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.ContentService.ReorderTshirtImages(ctx, req.ImageIDs); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, app.MsgImagesReordered, http.StatusOK)
}

func (h *Handler) deleteTshirtImage(w http.ResponseWriter, r *http.Request) {
	id, err := imageID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ImageService.DeleteTshirtImage(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("image_id", id).Msg("gallery image deleted")
	writeMessage(w, app.MsgImageDeleted, http.StatusOK)
}

func (h *Handler) replaceSocialLinks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var links []models.SocialLink
	if err := decodeJSON(w, r, &links); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, links); err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := h.services.ContentService.ReplaceSocialLinks(ctx, links)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, nonNil(saved), http.StatusOK)
}

func (h *Handler) updateCopyrightSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.CopyrightSettings
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	settings, err := h.services.ContentService.UpdateCopyrightSettings(ctx, req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) saveAboutContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var about models.AboutContent
	if err := decodeJSON(w, r, &about); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, about); err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := h.services.ContentService.SaveAboutContent(ctx, about)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, saved, http.StatusOK)
}

func imageID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
