package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertAndText(t *testing.T) {
	e := New()
	e.InsertString("hello")
	assert.Equal(t, "hello", e.Text())
	assert.Equal(t, 5, e.Position())
}

func TestBackspaceRemovesPrecedingRune(t *testing.T) {
	e := New()
	e.InsertString("hello")
	e.Backspace()
	assert.Equal(t, "hell", e.Text())
}

func TestBackspaceAtHeadIsNoOp(t *testing.T) {
	e := New()
	assert.False(t, e.Backspace())
}

func TestOverwriteModeReplacesInPlace(t *testing.T) {
	e := New()
	e.InsertString("abc")
	e.MoveToHead()
	e.Mode = Overwrite
	e.InsertChar('X')
	assert.Equal(t, "Xbc", e.Text())
}

func TestInsertModeShiftsRight(t *testing.T) {
	e := New()
	e.InsertString("abc")
	e.MoveToHead()
	e.InsertChar('X')
	assert.Equal(t, "Xabc", e.Text())
}

func TestDeleteRemovesUnderCaret(t *testing.T) {
	e := New()
	e.InsertString("abc")
	e.MoveToHead()
	e.Delete()
	assert.Equal(t, "bc", e.Text())
}

func TestResetClearsBuffer(t *testing.T) {
	e := New()
	e.InsertString("abc")
	e.Reset()
	assert.Equal(t, "", e.Text())
	assert.Equal(t, 0, e.Position())
}

func TestMaskHidesDisplayedCharsNotText(t *testing.T) {
	e := New()
	e.Mask = '*'
	e.InsertString("pw")
	p := e.Render(10)
	assert.Contains(t, p.Layout[0].String(), "**")
	assert.Equal(t, "pw", e.Text())
}

func TestRenderIncludesCaretCellAtEnd(t *testing.T) {
	e := New()
	e.InsertString("hi")
	p := e.Render(10)
	assert.Equal(t, "hi ", p.Layout[0].String())
}

func TestMoveToPreviousNearestJumpsToWordStart(t *testing.T) {
	e := New()
	e.InsertString("foo bar baz")
	assert.True(t, e.MoveToPreviousNearest(" "))
	assert.Equal(t, 8, e.Position()) // start of "baz"
	assert.True(t, e.MoveToPreviousNearest(" "))
	assert.Equal(t, 4, e.Position()) // start of "bar"
	assert.True(t, e.MoveToPreviousNearest(" "))
	assert.Equal(t, 0, e.Position()) // start of "foo"
	assert.False(t, e.MoveToPreviousNearest(" "))
}

func TestMoveToNextNearestJumpsToWordEnd(t *testing.T) {
	e := New()
	e.InsertString("foo bar baz")
	e.MoveToHead()
	assert.True(t, e.MoveToNextNearest(" "))
	assert.Equal(t, 3, e.Position()) // end of "foo"
	assert.True(t, e.MoveToNextNearest(" "))
	assert.Equal(t, 7, e.Position()) // end of "bar"
	assert.True(t, e.MoveToNextNearest(" "))
	assert.Equal(t, 11, e.Position()) // end of buffer
	assert.False(t, e.MoveToNextNearest(" "))
}

func TestEraseToPreviousNearestDeletesLastWord(t *testing.T) {
	e := New()
	e.InsertString("foo bar baz")
	assert.True(t, e.EraseToPreviousNearest(" "))
	assert.Equal(t, "foo bar ", e.Text())
}

func TestEraseToNextNearestDeletesWordUnderCaret(t *testing.T) {
	e := New()
	e.InsertString("foo bar baz")
	e.MoveToHead()
	assert.True(t, e.EraseToNextNearest(" "))
	assert.Equal(t, " bar baz", e.Text())
}

func TestEraseAllClearsBuffer(t *testing.T) {
	e := New()
	e.InsertString("abc")
	e.EraseAll()
	assert.Equal(t, "", e.Text())
	assert.Equal(t, 0, e.Position())
}

func TestMaskingSwitchesDisplayMask(t *testing.T) {
	e := New()
	e.InsertString("pw")
	e.Masking('*')
	assert.Contains(t, e.Render(10).Layout[0].String(), "**")
	assert.Equal(t, "pw", e.TextWithoutCursor())
}
