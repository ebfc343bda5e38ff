// Package gallery holds the circular cursor state behind the inline slideshow
// and the full-screen image viewer.
package gallery

// Direction moves a cursor backward or forward
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// Slide is one image of the ordered sequence as the viewer renders it
type Slide struct {
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

// Cursor is a circular position over an ordered sequence of image paths.
// The index is always within [0, len-1] when the sequence is non-empty.
type Cursor struct {
	paths []string
	index int
}

// NewCursor starts a cursor at the first image.
// The paths slice is copied; the cursor never aliases caller data.
func NewCursor(paths []string) *Cursor {
	c := &Cursor{}
	c.Reset(paths, 0)
	return c
}

// Reset replaces the sequence and moves the cursor to start, clamped into range
func (c *Cursor) Reset(paths []string, start int) {
	c.paths = append([]string(nil), paths...)
	c.index = 0
	if start > 0 && start < len(c.paths) {
		c.index = start
	}
}

// Len returns the number of images
func (c *Cursor) Len() int {
	return len(c.paths)
}

// Advance moves the cursor with wraparound in both directions.
// It is a no-op on an empty sequence.
func (c *Cursor) Advance(d Direction) {
	n := len(c.paths)
	if n == 0 {
		return
	}
	c.index = ((c.index+int(d))%n + n) % n
}

// Index returns the cursor position; ok is false when the sequence is empty
func (c *Cursor) Index() (index int, ok bool) {
	if len(c.paths) == 0 {
		return 0, false
	}
	return c.index, true
}

// Current returns the path under the cursor
func (c *Cursor) Current() (string, bool) {
	i, ok := c.Index()
	if !ok {
		return "", false
	}
	return c.paths[i], true
}

// Counter returns the 1-based position and the total for display
func (c *Cursor) Counter() (position, total int) {
	if len(c.paths) == 0 {
		return 0, 0
	}
	return c.index + 1, len(c.paths)
}

// Slides returns the sequence with exactly one slide marked active
func (c *Cursor) Slides() []Slide {
	slides := make([]Slide, len(c.paths))
	for i, p := range c.paths {
		slides[i] = Slide{Path: p, Active: i == c.index}
	}
	return slides
}

// Clone returns an independent cursor at the same position
func (c *Cursor) Clone() *Cursor {
	return &Cursor{paths: append([]string(nil), c.paths...), index: c.index}
}

// Paths returns a copy of the ordered sequence
func (c *Cursor) Paths() []string {
	return append([]string(nil), c.paths...)
}

// IndexOf returns the position of path in the sequence, or -1
func (c *Cursor) IndexOf(path string) int {
	for i, p := range c.paths {
		if p == path {
			return i
		}
	}
	return -1
}
