package checkbox

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"duskline/style"
)

func TestToggleTracksPickedIndependentlyOfFocus(t *testing.T) {
	c := New([]string{"a", "b", "c"}, false)
	c.Toggle()
	c.Forward()
	c.Toggle()
	assert.Equal(t, []int{0, 1}, c.PickedIndexes())
}

func TestToggleTwiceUnpicks(t *testing.T) {
	c := New([]string{"a", "b"}, false)
	c.Toggle()
	c.Toggle()
	assert.Empty(t, c.PickedIndexes())
}

func TestNewWithCheckedPrePicks(t *testing.T) {
	c := NewWithChecked([]string{"a", "b", "c"}, false, []int{0, 2})
	assert.Equal(t, []int{0, 2}, c.PickedIndexes())
	assert.Equal(t, []string{"a", "c"}, c.PickedItems())
}

func TestRenderMarksCheckedPrefix(t *testing.T) {
	c := New([]string{"a", "b"}, false)
	c.Toggle()
	p := c.Render(10, style.Style{}, style.Style{}, "[x] ", "[ ] ")
	assert.Equal(t, "[x] a", p.Layout[0].String())
	assert.Equal(t, "[ ] b", p.Layout[1].String())
}
