package imageutil

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	// registered for image.Decode
	_ "image/gif"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrUndecodable is returned when the photo format has no registered decoder
var ErrUndecodable = errors.New("failed to decode image")

// ResizeConfig holds configuration for shrinking shelf photos before upload
type ResizeConfig struct {
	MaxDimension int    // Longest edge in pixels; 0 disables resizing
	Quality      int    // JPEG quality 1-100 (default 85)
	OutputFormat string // "png", "jpeg" or "" to keep the source format
}

// DefaultConfig returns default resize configuration
func DefaultConfig() *ResizeConfig {
	return &ResizeConfig{
		MaxDimension: 2048,
		Quality:      85,
	}
}

// Resized is the outcome of a downscale
type Resized struct {
	Data      []byte
	MediaType string
	Changed   bool
}

// Downscale shrinks a photo so its longest edge fits MaxDimension, keeping the
// aspect ratio. Photos that already fit, or a disabled config, come back untouched.
func Downscale(data []byte, mediaType string, config *ResizeConfig) (*Resized, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.MaxDimension <= 0 {
		return &Resized{Data: data, MediaType: mediaType}, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= config.MaxDimension && height <= config.MaxDimension {
		return &Resized{Data: data, MediaType: mediaType}, nil
	}

	newWidth, newHeight := fitWithin(width, height, config.MaxDimension)
	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	outputFormat := config.OutputFormat
	if outputFormat == "" {
		outputFormat = format
	}

	var buf bytes.Buffer
	switch outputFormat {
	case "jpeg", "jpg":
		quality := config.Quality
		if quality <= 0 || quality > 100 {
			quality = 85
		}
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality})
		mediaType = "image/jpeg"
	default:
		// gif and webp sources are re-encoded as png
		err = png.Encode(&buf, dst)
		mediaType = "image/png"
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode resized image: %w", err)
	}

	return &Resized{Data: buf.Bytes(), MediaType: mediaType, Changed: true}, nil
}

func fitWithin(width, height, max int) (int, int) {
	if width > height {
		h := int(float64(height) * float64(max) / float64(width))
		if h < 1 {
			h = 1
		}
		return max, h
	}
	w := int(float64(width) * float64(max) / float64(height))
	if w < 1 {
		w = 1
	}
	return w, max
}
