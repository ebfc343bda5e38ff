package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceWrapsForward(t *testing.T) {
	c := NewCursor([]string{"a", "b", "c"})
	c.Advance(Forward)
	c.Advance(Forward)

	i, ok := c.Index()
	require.True(t, ok)
	assert.Equal(t, 2, i)

	c.Advance(Forward)
	i, _ = c.Index()
	assert.Equal(t, 0, i)
}

func TestAdvanceWrapsBackward(t *testing.T) {
	c := NewCursor([]string{"a", "b", "c", "d"})
	c.Advance(Backward)

	i, ok := c.Index()
	require.True(t, ok)
	assert.Equal(t, 3, i)

	cur, _ := c.Current()
	assert.Equal(t, "d", cur)
}

func TestAdvanceEmptyIsNoop(t *testing.T) {
	c := NewCursor(nil)
	c.Advance(Forward)
	c.Advance(Backward)

	_, ok := c.Index()
	assert.False(t, ok)
	_, ok = c.Current()
	assert.False(t, ok)

	pos, total := c.Counter()
	assert.Equal(t, 0, pos)
	assert.Equal(t, 0, total)
	assert.Empty(t, c.Slides())
}

func TestCursorStaysInRange(t *testing.T) {
	for n := 1; n <= 6; n++ {
		paths := make([]string, n)
		for i := range paths {
			paths[i] = string(rune('a' + i))
		}
		c := NewCursor(paths)
		moves := []Direction{Forward, Backward, Backward, Forward, Backward, Backward, Backward, Forward}
		for _, d := range moves {
			c.Advance(d)
			i, ok := c.Index()
			require.True(t, ok)
			require.GreaterOrEqual(t, i, 0)
			require.Less(t, i, n)
		}
	}
}

func TestSlidesMarkExactlyOneActive(t *testing.T) {
	c := NewCursor([]string{"a", "b", "c"})
	c.Advance(Forward)

	active := 0
	for i, s := range c.Slides() {
		if s.Active {
			active++
			assert.Equal(t, 1, i)
		}
	}
	assert.Equal(t, 1, active)

	pos, total := c.Counter()
	assert.Equal(t, 2, pos)
	assert.Equal(t, 3, total)
}

func TestCloneIsIndependent(t *testing.T) {
	c := NewCursor([]string{"a", "b", "c"})
	c.Advance(Forward)

	cp := c.Clone()
	c.Advance(Forward)

	i, _ := cp.Index()
	assert.Equal(t, 1, i)
	i, _ = c.Index()
	assert.Equal(t, 2, i)
	assert.Equal(t, c.Paths(), cp.Paths())
}

func TestNewCursorCopiesInput(t *testing.T) {
	paths := []string{"a", "b"}
	c := NewCursor(paths)
	paths[0] = "z"

	cur, _ := c.Current()
	assert.Equal(t, "a", cur)
}

type fakeLock struct {
	locked, unlocked int
}

func (f *fakeLock) LockScroll()   { f.locked++ }
func (f *fakeLock) UnlockScroll() { f.unlocked++ }

func TestModalOpensAtPath(t *testing.T) {
	lock := &fakeLock{}
	m := NewModal(lock)
	m.Open([]string{"p", "q", "r"}, "q", 0)

	require.True(t, m.IsOpen())
	cur, _ := m.Cursor().Current()
	assert.Equal(t, "q", cur)
	assert.Equal(t, 1, lock.locked)

	m.Close()
	assert.False(t, m.IsOpen())
	assert.Equal(t, 1, lock.unlocked)

	m.Close()
	assert.Equal(t, 1, lock.unlocked)
}

func TestModalFallsBackWhenPathMissing(t *testing.T) {
	m := NewModal(nil)
	m.Open([]string{"p", "q", "r"}, "gone", 2)
	i, _ := m.Cursor().Index()
	assert.Equal(t, 2, i)

	m.Open([]string{"p", "q", "r"}, "gone", 9)
	i, _ = m.Cursor().Index()
	assert.Equal(t, 0, i)
}

func TestModalRecomputesSequenceOnEachOpen(t *testing.T) {
	m := NewModal(nil)
	m.Open([]string{"p", "q"}, "q", 0)
	m.Close()

	m.Open([]string{"n", "p", "q"}, "q", 0)
	i, _ := m.Cursor().Index()
	assert.Equal(t, 2, i)
	_, total := m.Cursor().Counter()
	assert.Equal(t, 3, total)
}

func TestModalAdvanceIndependentOfInline(t *testing.T) {
	images := []string{"p", "q", "r"}
	inline := NewCursor(images)
	m := NewModal(nil)
	m.Open(images, "p", 0)

	m.Advance(Backward)
	mi, _ := m.Cursor().Index()
	ii, _ := inline.Index()
	assert.Equal(t, 2, mi)
	assert.Equal(t, 0, ii)
}

func TestModalAdvanceWhileClosed(t *testing.T) {
	m := NewModal(nil)
	m.Open([]string{"p", "q"}, "p", 0)
	m.Close()
	m.Advance(Forward)

	i, _ := m.Cursor().Index()
	assert.Equal(t, 0, i)
}
