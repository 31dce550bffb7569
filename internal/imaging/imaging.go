// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	// registered decoders
	_ "image/gif"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

//go:generate mockgen -source=imaging.go -destination=../mock/imaging_mock.go -package=mock

// Output geometry.
const (
	LogoSize      = 200
	GalleryWidth  = 800
	GalleryHeight = 600
	JPEGQuality   = 85

	// maxPixels bounds decoded images at 40 megapixels.
	maxPixels = 40_000_000
)

// Processor turns raw uploads into the formats the site serves.
type Processor interface {
	// Logo fits the image into a LogoSize square on a transparent canvas
	// and encodes it as PNG.
	Logo(data []byte) ([]byte, error)
	// Gallery scales and centre-crops the image to GalleryWidth x
	// GalleryHeight and encodes it as JPEG.
	Gallery(data []byte) ([]byte, error)
}

type processor struct {
	scaler draw.Scaler
}

// NewProcessor returns a [Processor] using Catmull-Rom resampling.
func NewProcessor() Processor {
	return &processor{scaler: draw.CatmullRom}
}

func (p *processor) Logo(data []byte) ([]byte, error) {
	src, err := decode(data)
	if err != nil {
		return nil, err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, LogoSize, LogoSize))
	p.scaler.Scale(dst, containRect(src.Bounds(), dst.Bounds()), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err = png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("error encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *processor) Gallery(data []byte) ([]byte, error) {
	src, err := decode(data)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, GalleryWidth, GalleryHeight))
	// jpeg has no alpha: flatten onto white
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	p.scaler.Scale(dst, dst.Bounds(), src, coverRect(src.Bounds(), GalleryWidth, GalleryHeight), draw.Over, nil)

	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("error encoding jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, ErrUnsupportedImage
		}
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrUnsupportedImage
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return nil, ErrImageTooLarge
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}
	return img, nil
}

// containRect returns the largest rectangle with src's aspect ratio that
// fits in box, centred.
func containRect(src, box image.Rectangle) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	bw, bh := box.Dx(), box.Dy()

	w, h := bw, sh*bw/sw
	if h > bh {
		w, h = sw*bh/sh, bh
	}
	w, h = max(w, 1), max(h, 1)

	x := box.Min.X + (bw-w)/2
	y := box.Min.Y + (bh-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// coverRect returns the centred region of src with the aspect ratio
// w:h that covers as much of src as possible.
func coverRect(src image.Rectangle, w, h int) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()

	cw, ch := sw, sw*h/w
	if ch > sh {
		cw, ch = sh*w/h, sh
	}
	cw, ch = max(cw, 1), max(ch, 1)

	x := src.Min.X + (sw-cw)/2
	y := src.Min.Y + (sh-ch)/2
	return image.Rect(x, y, x+cw, y+ch)
}
