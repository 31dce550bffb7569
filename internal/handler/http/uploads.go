// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/brand-showcase/internal/app"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/internal/utils"
	"github.com/MKhiriev/brand-showcase/models"
)

const (
	// maxUploadFileSize is the limit for a single uploaded image.
	maxUploadFileSize = 5 << 20

	// maxGalleryFiles is the number of images one gallery upload may carry.
	maxGalleryFiles = 10

	logoFormField    = "logo"
	galleryFormField = "images"
)

func (h *Handler) uploadLogo(w http.ResponseWriter, r *http.Request) {
	files, err := readImageParts(w, r, logoFormField, 1)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(files) == 0 {
		writeMessage(w, app.MsgNoFileUploaded, http.StatusBadRequest)
		return
	}

	resp, err := h.services.ImageService.UploadLogo(r.Context(), files[0])
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("logo_url", resp.LogoURL).Msg("logo uploaded")
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) uploadTshirtImages(w http.ResponseWriter, r *http.Request) {
	files, err := readImageParts(w, r, galleryFormField, maxGalleryFiles)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(files) == 0 {
		writeMessage(w, app.MsgNoFilesUploaded, http.StatusBadRequest)
		return
	}

	images, err := h.services.ImageService.UploadTshirtImages(r.Context(), files)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, images, http.StatusOK)
}

// serveUpload streams a stored image. Seekable backends go through
// http.ServeContent so conditional and range requests work.
func (h *Handler) serveUpload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	rc, info, err := h.services.ImageService.OpenImage(r.Context(), name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer rc.Close()

	if info.ContentType != "" {
		w.Header().Set("Content-Type", info.ContentType)
	}
	// keys are never reused, so the bytes behind a URL never change
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if rs, ok := rc.(io.ReadSeeker); ok {
		http.ServeContent(w, r, name, info.ModTime, rs)
		return
	}

	if info.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err = io.Copy(w, rc); err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("name", name).Msg("error streaming upload")
	}
}

// readImageParts reads up to maxFiles image parts named field from a
// multipart body. Parts with another name or a non-image content type are
// skipped.
func readImageParts(w http.ResponseWriter, r *http.Request, field string, maxFiles int) ([]models.UploadedFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxFiles*maxUploadFileSize+maxJSONBodySize))

	mr, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoFileUploaded, err)
	}

	var files []models.UploadedFile
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, uploadReadError(err)
		}

		contentType := part.Header.Get("Content-Type")
		if part.FormName() != field || part.FileName() == "" || !strings.HasPrefix(contentType, "image/") {
			continue
		}
		if len(files) == maxFiles {
			return nil, ErrTooManyFiles
		}

		data, err := io.ReadAll(io.LimitReader(part, maxUploadFileSize+1))
		if err != nil {
			return nil, uploadReadError(err)
		}
		if len(data) > maxUploadFileSize {
			return nil, fmt.Errorf("%w: %s", ErrFileTooLarge, part.FileName())
		}

		files = append(files, models.UploadedFile{
			Filename:    part.FileName(),
			ContentType: contentType,
			Data:        data,
		})
	}

	return files, nil
}

func uploadReadError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: %w", ErrFileTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrNoFileUploaded, err)
}
