package imageutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DetectMediaType sniffs the media type of in-memory content
func DetectMediaType(data []byte) string {
	return mimetype.Detect(data).String()
}

// DetectFile sniffs the media type of a file on disk
func DetectFile(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to detect media type of %s: %w", path, err)
	}
	return mt.String(), nil
}

// DetectReader sniffs the media type from the head of r
func DetectReader(r io.Reader) (string, error) {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to detect media type: %w", err)
	}
	return mt.String(), nil
}

// IsImage reports whether a media type names an image, ignoring parameters
func IsImage(mediaType string) bool {
	base, _, _ := strings.Cut(mediaType, ";")
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(base)), "image/")
}
