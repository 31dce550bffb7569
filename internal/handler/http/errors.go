// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while decoding requests, before the service layer
// is reached.
var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when a {id} path parameter is not a positive integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrNoFileUploaded is returned when a multipart request carries no
	// acceptable image part.
	ErrNoFileUploaded = errors.New("no file uploaded")

	// ErrTooManyFiles is returned when a gallery upload exceeds maxGalleryFiles.
	ErrTooManyFiles = errors.New("too many files")

	// ErrFileTooLarge is returned when a single part exceeds maxUploadFileSize.
	ErrFileTooLarge = errors.New("file too large")
)
