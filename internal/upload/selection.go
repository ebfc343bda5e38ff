package upload

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ridwanfathin/shelf-price-monitor/internal/imageutil"
)

// ErrSelectionFull is returned when an add would push the selection past its file limit
var ErrSelectionFull = errors.New("selection is full")

const (
	DefaultMaxFiles     = 10
	DefaultMaxFileBytes = 10 << 20
)

// Limits bounds what a selection accepts
type Limits struct {
	MaxFiles     int
	MaxFileBytes int64
}

// DefaultLimits returns the stock limits: ten photos of at most 10 MiB each
func DefaultLimits() Limits {
	return Limits{MaxFiles: DefaultMaxFiles, MaxFileBytes: DefaultMaxFileBytes}
}

// AddResult reports how an add was filtered
type AddResult struct {
	Accepted int
	Rejected []string
}

// Selection is the ordered set of photos waiting to be submitted
type Selection struct {
	mu     sync.Mutex
	limits Limits
	files  []File
}

// NewSelection creates an empty selection; zero limits fall back to the defaults
func NewSelection(limits Limits) *Selection {
	def := DefaultLimits()
	if limits.MaxFiles <= 0 {
		limits.MaxFiles = def.MaxFiles
	}
	if limits.MaxFileBytes <= 0 {
		limits.MaxFileBytes = def.MaxFileBytes
	}
	return &Selection{limits: limits}
}

// Limits returns the active limits
func (s *Selection) Limits() Limits {
	return s.limits
}

// Accepts reports whether a single candidate passes the type and size checks
func (s *Selection) Accepts(f File) bool {
	return imageutil.IsImage(f.MediaType) && f.Size <= s.limits.MaxFileBytes
}

// Add filters candidates by type and size, then appends them. When the
// survivors would overflow MaxFiles nothing is added and ErrSelectionFull is returned.
func (s *Selection) Add(candidates ...File) (AddResult, error) {
	var (
		result   AddResult
		accepted []File
	)
	for _, f := range candidates {
		if !s.Accepts(f) {
			result.Rejected = append(result.Rejected, f.Name)
			continue
		}
		accepted = append(accepted, f)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.files)+len(accepted) > s.limits.MaxFiles {
		return result, fmt.Errorf("%w: at most %d photos per batch", ErrSelectionFull, s.limits.MaxFiles)
	}

	s.files = append(s.files, accepted...)
	result.Accepted = len(accepted)
	return result, nil
}

// Remove drops the file at index; out of range indexes are ignored
func (s *Selection) Remove(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.files) {
		return false
	}
	s.files = append(s.files[:index], s.files[index+1:]...)
	return true
}

// Clear empties the selection
func (s *Selection) Clear() {
	s.mu.Lock()
	s.files = nil
	s.mu.Unlock()
}

// Files returns a copy of the selected files in order
func (s *Selection) Files() []File {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]File(nil), s.files...)
}

// Len returns the number of selected files
func (s *Selection) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}
