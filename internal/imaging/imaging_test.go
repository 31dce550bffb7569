package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLogo_FitsOnTransparentSquare(t *testing.T) {
	data := encodePNG(t, solid(400, 100, color.NRGBA{R: 255, A: 255}))

	out, err := NewProcessor().Logo(data)
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, image.Rect(0, 0, LogoSize, LogoSize), img.Bounds())

	// 400x100 becomes 200x50 centred: top rows stay transparent
	_, _, _, a := img.At(100, 0).RGBA()
	assert.Zero(t, a)
	r, _, _, a := img.At(100, 100).RGBA()
	assert.NotZero(t, a)
	assert.NotZero(t, r)
}

func TestGallery_CoverCropsToJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, solid(300, 300, color.NRGBA{B: 255, A: 255}), nil))

	out, err := NewProcessor().Gallery(buf.Bytes())
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, GalleryWidth, cfg.Width)
	assert.Equal(t, GalleryHeight, cfg.Height)
}

func TestGallery_AcceptsJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, solid(1600, 900, color.NRGBA{G: 200, A: 255}), nil))

	_, err := NewProcessor().Gallery(buf.Bytes())
	assert.NoError(t, err)
}

func TestDecode_RejectsGarbage(t *testing.T) {
	_, err := NewProcessor().Logo([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = NewProcessor().Gallery(nil)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestContainRect(t *testing.T) {
	box := image.Rect(0, 0, 200, 200)
	assert.Equal(t, image.Rect(0, 75, 200, 125), containRect(image.Rect(0, 0, 400, 100), box))
	assert.Equal(t, image.Rect(75, 0, 125, 200), containRect(image.Rect(0, 0, 100, 400), box))
	assert.Equal(t, box, containRect(image.Rect(0, 0, 50, 50), box))
}

func TestCoverRect(t *testing.T) {
	// wide source: crop the sides
	assert.Equal(t, image.Rect(200, 0, 1000, 600), coverRect(image.Rect(0, 0, 1200, 600), 800, 600))
	// tall source: crop top and bottom
	assert.Equal(t, image.Rect(0, 125, 400, 425), coverRect(image.Rect(0, 0, 400, 550), 800, 600))
}
