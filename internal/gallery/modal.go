package gallery

// ScrollLocker blocks and restores scrolling of whatever sits behind the viewer
type ScrollLocker interface {
	LockScroll()
	UnlockScroll()
}

// Modal is the full-screen viewer. Its sequence is rebuilt on every open
// from the image set current at that moment.
type Modal struct {
	cursor Cursor
	open   bool
	lock   ScrollLocker
}

// NewModal creates a closed viewer; lock may be nil
func NewModal(lock ScrollLocker) *Modal {
	return &Modal{lock: lock}
}

// Open shows path from images. When path is no longer part of images the
// cursor starts at fallbackIndex, or at the first image if that is out of range.
func (m *Modal) Open(images []string, path string, fallbackIndex int) {
	m.cursor.Reset(images, 0)
	if i := m.cursor.IndexOf(path); i >= 0 {
		m.cursor.index = i
	} else {
		m.cursor.Reset(images, fallbackIndex)
	}

	if !m.open && m.lock != nil {
		m.lock.LockScroll()
	}
	m.open = true
}

// Close hides the viewer and restores background scrolling
func (m *Modal) Close() {
	if !m.open {
		return
	}
	m.open = false
	if m.lock != nil {
		m.lock.UnlockScroll()
	}
}

// IsOpen reports whether the viewer is shown
func (m *Modal) IsOpen() bool {
	return m.open
}

// Advance moves the viewer's cursor; it does nothing while closed
func (m *Modal) Advance(d Direction) {
	if !m.open {
		return
	}
	m.cursor.Advance(d)
}

// Cursor exposes the viewer's position
func (m *Modal) Cursor() *Cursor {
	return &m.cursor
}
