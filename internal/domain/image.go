package domain

import "strings"

// UploadsPrefix is the path under which the backend serves stored photos
const UploadsPrefix = "uploads/"

// ImageURL resolves an item's opaque image path to a URL the viewer can load.
// Absolute URLs pass through; relative keys are served from /uploads/.
func ImageURL(imagePath string) string {
	switch {
	case imagePath == "":
		return ""
	case strings.HasPrefix(imagePath, "http://"), strings.HasPrefix(imagePath, "https://"):
		return imagePath
	case strings.HasPrefix(imagePath, UploadsPrefix):
		return "/" + imagePath
	default:
		return "/" + UploadsPrefix + imagePath
	}
}
