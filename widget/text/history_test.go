package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackwardRecallsMostRecentFirst(t *testing.T) {
	h := NewHistory(0)
	h.Insert("one")
	h.Insert("two")
	line, ok := h.Backward()
	assert.True(t, ok)
	assert.Equal(t, "two", line)
}

func TestForwardPastLastReachesNewInputSlot(t *testing.T) {
	h := NewHistory(0)
	h.Insert("one")
	h.Backward()
	line, ok := h.Forward()
	assert.True(t, ok)
	assert.Equal(t, "", line)
	assert.True(t, h.AtNewInput())
}

func TestInsertDuplicateMovesToTailInsteadOfDuplicating(t *testing.T) {
	h := NewHistory(0)
	h.Insert("one")
	h.Insert("two")
	h.Insert("one")
	assert.Equal(t, 2, h.Len())
	line, _ := h.Backward()
	assert.Equal(t, "one", line)
}

func TestInsertRespectsLimit(t *testing.T) {
	h := NewHistory(2)
	h.Insert("one")
	h.Insert("two")
	h.Insert("three")
	assert.Equal(t, 2, h.Len())
	line, _ := h.Backward()
	assert.Equal(t, "three", line)
}

func TestBackwardAtHeadFails(t *testing.T) {
	h := NewHistory(0)
	h.Insert("one")
	h.Backward()
	_, ok := h.Backward()
	assert.False(t, ok)
}
