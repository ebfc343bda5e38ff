package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDownscaleKeepsAspectRatio(t *testing.T) {
	out, err := Downscale(pngBytes(t, 400, 200), "image/png", &ResizeConfig{MaxDimension: 100})
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, "image/png", out.MediaType)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestDownscaleLeavesSmallImages(t *testing.T) {
	data := pngBytes(t, 40, 30)
	out, err := Downscale(data, "image/png", &ResizeConfig{MaxDimension: 100})
	require.NoError(t, err)
	assert.False(t, out.Changed)
	assert.Equal(t, data, out.Data)
}

func TestDownscaleDisabled(t *testing.T) {
	out, err := Downscale([]byte("not an image"), "image/jpeg", &ResizeConfig{})
	require.NoError(t, err)
	assert.False(t, out.Changed)
	assert.Equal(t, "image/jpeg", out.MediaType)
}

func TestDownscaleToJPEG(t *testing.T) {
	out, err := Downscale(pngBytes(t, 300, 600), "image/png", &ResizeConfig{MaxDimension: 60, OutputFormat: "jpeg"})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", out.MediaType)
	assert.Equal(t, "image/jpeg", DetectMediaType(out.Data))
}

func TestDownscaleRejectsGarbage(t *testing.T) {
	_, err := Downscale([]byte("garbage"), "image/png", &ResizeConfig{MaxDimension: 10})
	assert.ErrorIs(t, err, ErrUndecodable)
}

func TestDetectMediaType(t *testing.T) {
	assert.Equal(t, "image/png", DetectMediaType(pngBytes(t, 2, 2)))
	assert.False(t, IsImage(DetectMediaType([]byte("plain text here"))))
	assert.True(t, IsImage("IMAGE/JPEG"))
	assert.True(t, IsImage("image/webp; q=1"))
	assert.False(t, IsImage("application/pdf"))
}
