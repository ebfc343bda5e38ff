// Package upload holds the photo selection and the sequential extraction batch.
package upload

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ridwanfathin/shelf-price-monitor/internal/imageutil"
)

// File is one candidate photo. Content is opened lazily so a selection of
// on-disk files holds no data until the batch reaches it.
type File struct {
	Name      string
	MediaType string
	Size      int64

	open func() (io.ReadCloser, error)
}

// Open returns the file content
func (f File) Open() (io.ReadCloser, error) {
	if f.open == nil {
		return nil, fmt.Errorf("file %q has no content", f.Name)
	}
	return f.open()
}

// FromPath builds a candidate from a file on disk, sniffing its media type
func FromPath(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%s is a directory", path)
	}

	mediaType, err := imageutil.DetectFile(path)
	if err != nil {
		return File{}, err
	}

	return File{
		Name:      filepath.Base(path),
		MediaType: mediaType,
		Size:      info.Size(),
		open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// FromBytes builds a candidate from in-memory content. An empty mediaType is
// sniffed from the data.
func FromBytes(name string, data []byte, mediaType string) File {
	if mediaType == "" {
		mediaType = imageutil.DetectMediaType(data)
	}
	return File{
		Name:      name,
		MediaType: mediaType,
		Size:      int64(len(data)),
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}
