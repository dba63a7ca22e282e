package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type intSlice []int

func (s intSlice) Len() int { return len(s) }

func TestCyclicForwardWrapsAround(t *testing.T) {
	c := New[intSlice]([]int{1, 2, 3}, true)
	c.MoveToTail()
	assert.True(t, c.Forward())
	assert.Equal(t, 0, c.Position())
}

func TestCyclicBackwardWrapsAround(t *testing.T) {
	c := New[intSlice]([]int{1, 2, 3}, true)
	assert.True(t, c.Backward())
	assert.Equal(t, 2, c.Position())
}

func TestNonCyclicForwardStopsAtTail(t *testing.T) {
	c := New[intSlice]([]int{1, 2, 3}, false)
	c.MoveToTail()
	assert.False(t, c.Forward())
	assert.Equal(t, 2, c.Position())
}

func TestNonCyclicBackwardStopsAtHead(t *testing.T) {
	c := New[intSlice]([]int{1, 2, 3}, false)
	assert.False(t, c.Backward())
	assert.Equal(t, 0, c.Position())
}

func TestNonCyclicForwardSucceedsMidRange(t *testing.T) {
	c := New[intSlice]([]int{1, 2, 3}, false)
	assert.True(t, c.Forward())
	assert.Equal(t, 1, c.Position())
}

func TestIsHeadIsTail(t *testing.T) {
	c := New[intSlice]([]int{1, 2, 3}, false)
	assert.True(t, c.IsHead())
	assert.False(t, c.IsTail())
	c.MoveToTail()
	assert.True(t, c.IsTail())
}

func TestMoveToRejectsOutOfRange(t *testing.T) {
	c := New[intSlice]([]int{1, 2, 3}, false)
	assert.False(t, c.MoveTo(3))
	assert.False(t, c.MoveTo(-1))
	assert.True(t, c.MoveTo(2))
}

func TestViewportRangeClampsToBounds(t *testing.T) {
	c := New[intSlice]([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, false)
	c.MoveTo(0)
	start, end := c.ViewportRange(3)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	c.MoveTo(9)
	start, end = c.ViewportRange(3)
	assert.Equal(t, 7, start)
	assert.Equal(t, 10, end)
}

func TestViewportRangeTallerThanContent(t *testing.T) {
	c := New[intSlice]([]int{0, 1, 2}, false)
	start, end := c.ViewportRange(10)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
}
