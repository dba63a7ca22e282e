package listbox

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"duskline/style"
)

func TestGetReturnsCurrentItem(t *testing.T) {
	l := New([]string{"a", "b", "c"}, false)
	assert.Equal(t, "a", l.Get())
	l.Forward()
	assert.Equal(t, "b", l.Get())
}

func TestGetOnEmptyListIsBlank(t *testing.T) {
	l := New(nil, false)
	assert.Equal(t, "", l.Get())
}

func TestNonCyclicBoundsRespected(t *testing.T) {
	l := New([]string{"a", "b"}, false)
	assert.False(t, l.Backward())
	l.MoveToTail()
	assert.False(t, l.Forward())
}

func TestRenderHighlightsSelected(t *testing.T) {
	l := New([]string{"a", "b", "c"}, false)
	l.Forward()
	p := l.Render(10, style.Style{}, style.Style{Bold: true})
	assert.Len(t, p.Layout, 3)
	assert.True(t, p.Layout[1][0].Style.Bold)
	assert.False(t, p.Layout[0][0].Style.Bold)
}

func TestRenderClipsToHeight(t *testing.T) {
	l := New([]string{"a", "b", "c", "d", "e"}, false)
	p := l.Render(2, style.Style{}, style.Style{})
	assert.Len(t, p.Layout, 2)
}
