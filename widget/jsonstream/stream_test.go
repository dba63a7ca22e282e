package jsonstream

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"duskline/style"
)

const sample = `{"a": 1, "b": {"c": 2, "d": 3}, "e": []}`

func TestParseBuildsPairedOpenClose(t *testing.T) {
	s, err := Parse([]byte(sample))
	assert.NoError(t, err)
	rows := s.Rows()
	assert.Equal(t, KindOpen, rows[0].Kind)
	assert.Equal(t, rows[0].CloseIndex, len(rows)-1)
	assert.Equal(t, KindClose, rows[len(rows)-1].Kind)
}

func TestParsePreservesSourceOrderNotAlphabetical(t *testing.T) {
	// The literal scenario: "object" precedes "after" in the source, but
	// "after" < "object" alphabetically. Row 1 (index 1, right after the
	// root Open) must be the nested "object" Open, not the "after" leaf.
	s, err := Parse([]byte(`{"object":{"a":1,"b":2},"after":"value"}`))
	assert.NoError(t, err)
	rows := s.Rows()
	assert.Equal(t, "object", rows[1].Key)
	assert.Equal(t, KindOpen, rows[1].Kind)
}

func TestParseEmptyContainerIsSingleRow(t *testing.T) {
	s, err := Parse([]byte(sample))
	assert.NoError(t, err)
	found := false
	for _, r := range s.Rows() {
		if r.Kind == KindEmpty && r.Key == "e" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCursorNavigatesAllRowsWhenExpanded(t *testing.T) {
	s, _ := Parse([]byte(sample))
	c := NewCursor(s)
	count := 1
	for c.Down() {
		count++
	}
	assert.Equal(t, len(s.Rows()), count)
}

func TestToggleCollapsesNestedObject(t *testing.T) {
	s, _ := Parse([]byte(sample))
	c := NewCursor(s)
	// Move to the "b" object's Open row.
	for c.Current().Key != "b" || c.Current().Kind != KindOpen {
		assert.True(t, c.Down())
	}
	before := len(c.proj)
	c.Toggle()
	assert.Less(t, len(c.proj), before)
	assert.Equal(t, "b", c.Current().Key)
	assert.True(t, c.Current().Collapsed)
}

func TestToggleOnCloseRowJumpsCursorToOpen(t *testing.T) {
	s, _ := Parse([]byte(sample))
	c := NewCursor(s)
	for c.Current().Key != "b" || c.Current().Kind != KindOpen {
		assert.True(t, c.Down())
	}
	openRowIdx := c.CurrentRowIndex()
	// Walk forward to the matching Close row of "b".
	for c.Current().Kind != KindClose || c.Current().OpenIndex != openRowIdx {
		assert.True(t, c.Down())
	}
	c.Toggle()
	assert.Equal(t, openRowIdx, c.CurrentRowIndex())
	assert.Equal(t, KindOpen, c.Current().Kind)
}

func TestRenderShowsEllipsisWhenCollapsed(t *testing.T) {
	s, _ := Parse([]byte(sample))
	c := NewCursor(s)
	for c.Current().Key != "b" || c.Current().Kind != KindOpen {
		c.Down()
	}
	c.Toggle()
	p := c.Render(10, style.Style{}, style.Style{}, 2)
	joined := ""
	for _, row := range p.Layout {
		joined += row.String() + "\n"
	}
	assert.Contains(t, joined, "…")
}

func TestFormatRawJSONIndentsAndSortsKeys(t *testing.T) {
	out, err := FormatRawJSON([]byte(`{"b":1,"a":2}`))
	assert.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 2,\n  \"b\": 1\n}", out)
}

func TestSetRowsVisibilityCollapsesEverything(t *testing.T) {
	s, _ := Parse([]byte(sample))
	c := NewCursor(s)
	c.SetRowsVisibility(true)
	count := 1
	for c.Down() {
		count++
	}
	assert.Less(t, count, len(s.Rows()))
}
