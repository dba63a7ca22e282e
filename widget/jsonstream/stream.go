package jsonstream

import (
	"bytes"
	"encoding/json"
	"strings"

	"duskline/grapheme"
	"duskline/pane"
	"duskline/style"
)

// projection maps visible-row position to the underlying flat row
// index, recomputed whenever a container's collapsed flag changes.
type projection []int

// Cursor tracks focus within a Stream's currently-visible rows.
type Cursor struct {
	stream *Stream
	proj   projection
	pos    int
}

// NewCursor builds a Cursor over s, starting at the first row.
func NewCursor(s *Stream) *Cursor {
	c := &Cursor{stream: s}
	c.refresh()
	return c
}

func (c *Cursor) refresh() {
	var proj projection
	rows := c.stream.rows
	for i := 0; i < len(rows); i++ {
		proj = append(proj, i)
		if rows[i].Kind == KindOpen && rows[i].Collapsed {
			i = rows[i].CloseIndex // skip straight past the hidden interior and its Close
		}
	}
	c.proj = proj
	if c.pos >= len(proj) {
		c.pos = len(proj) - 1
	}
	if c.pos < 0 {
		c.pos = 0
	}
}

// Position returns the visible-row index currently focused.
func (c *Cursor) Position() int { return c.pos }

// CurrentRowIndex returns the underlying flat row index of the focused
// row.
func (c *Cursor) CurrentRowIndex() int {
	if len(c.proj) == 0 {
		return -1
	}
	return c.proj[c.pos]
}

// Current returns the focused row.
func (c *Cursor) Current() Row {
	return c.stream.rows[c.CurrentRowIndex()]
}

// Up moves focus to the previous visible row.
func (c *Cursor) Up() bool {
	if c.pos == 0 {
		return false
	}
	c.pos--
	return true
}

// Down moves focus to the next visible row.
func (c *Cursor) Down() bool {
	if c.pos >= len(c.proj)-1 {
		return false
	}
	c.pos++
	return true
}

// Head moves focus to the first visible row.
func (c *Cursor) Head() { c.pos = 0 }

// Tail moves focus to the last visible row.
func (c *Cursor) Tail() { c.pos = len(c.proj) - 1 }

// Toggle flips the collapsed state of the container the focused row
// belongs to (whether that row is itself the Open or the matching
// Close), then refreshes the projection. If the toggle collapses the
// container and the cursor was sitting on the now-hidden Close row,
// focus jumps to the Open row, which remains visible.
func (c *Cursor) Toggle() {
	row := c.Current()
	var openIdx int
	switch row.Kind {
	case KindOpen:
		openIdx = c.CurrentRowIndex()
	case KindClose:
		openIdx = row.OpenIndex
	default:
		return
	}
	open := &c.stream.rows[openIdx]
	open.Collapsed = !open.Collapsed
	c.refresh()
	c.jumpToRowIndex(openIdx)
}

func (c *Cursor) jumpToRowIndex(rowIdx int) {
	for i, idx := range c.proj {
		if idx == rowIdx {
			c.pos = i
			return
		}
	}
}

// SetRowsVisibility collapses or expands every container at once,
// matching jsonz's set_rows_visibility.
func (c *Cursor) SetRowsVisibility(collapsed bool) {
	for i := range c.stream.rows {
		if c.stream.rows[i].Kind == KindOpen {
			c.stream.rows[i].Collapsed = collapsed
		}
	}
	c.refresh()
}

// Render lays the currently-visible rows out into a Pane sized to
// height, indenting by depth and showing an ellipsis marker on
// collapsed containers.
func (c *Cursor) Render(height int, normal, selected style.Style, indentWidth int) pane.Pane {
	start := c.pos - height/2
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > len(c.proj) {
		end = len(c.proj)
		start = end - height
		if start < 0 {
			start = 0
		}
	}
	out := make([]grapheme.Sequence, 0, end-start)
	for i := start; i < end; i++ {
		row := c.stream.rows[c.proj[i]]
		st := normal
		if i == c.pos {
			st = selected
		}
		out = append(out, grapheme.FromString(renderLine(row, indentWidth), st))
	}
	return pane.New(out, 0)
}

func renderLine(row Row, indentWidth int) string {
	indent := strings.Repeat(" ", row.Depth*indentWidth)
	prefix := ""
	if row.Key != "" {
		prefix = row.Key + ": "
	}
	switch row.Kind {
	case KindOpen:
		open, close := "{", "}"
		if row.Container == Array {
			open, close = "[", "]"
		}
		if row.Collapsed {
			return indent + prefix + open + "…" + close
		}
		return indent + prefix + open
	case KindClose:
		if row.Container == Array {
			return indent + "]"
		}
		return indent + "}"
	case KindEmpty:
		open, close := "{}", ""
		if row.Container == Array {
			open, close = "[]", ""
		}
		return indent + prefix + open + close
	default:
		return indent + prefix + row.Value
	}
}

// FormatRawJSON re-serializes raw as an indented, key-sorted JSON
// document. Collapsed containers have no bearing here — this renders
// the full, uncollapsed value, e.g. for a "view raw" pane alongside the
// collapsible tree.
func FormatRawJSON(raw []byte) (string, error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
