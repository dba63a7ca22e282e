// Package listbox implements a scrollable, single-selection list of
// styled lines: the basis for the listbox preset and, combined with a
// picked-index set, the checkbox widget.
//
// Grounded on original_source/promkit/src/core/listbox.rs (referenced
// from checkbox.rs and tree.rs, both built atop the same cursor-over-
// items shape).
package listbox

import (
	"duskline/cursor"
	"duskline/grapheme"
	"duskline/pane"
	"duskline/style"
)

// items adapts a []string to cursor.Lenable.
type items []string

func (s items) Len() int { return len(s) }

// Listbox is a cursor over a fixed list of text items.
type Listbox struct {
	cur *cursor.Cursor[items]
}

// New builds a Listbox over lines, cyclic or not.
func New(lines []string, cyclic bool) *Listbox {
	return &Listbox{cur: cursor.New[items](items(lines), cyclic)}
}

// Items returns every line.
func (l *Listbox) Items() []string {
	return []string(l.cur.Contents)
}

// Position returns the index of the currently selected line.
func (l *Listbox) Position() int {
	return l.cur.Position()
}

// Get returns the currently selected line, or "" if the list is empty.
func (l *Listbox) Get() string {
	items := l.cur.Contents
	if len(items) == 0 {
		return ""
	}
	return items[l.cur.Position()]
}

// Backward/Forward/MoveToHead/MoveToTail delegate straight to the
// underlying cursor.
func (l *Listbox) Backward() bool   { return l.cur.Backward() }
func (l *Listbox) Forward() bool    { return l.cur.Forward() }
func (l *Listbox) MoveToHead()      { l.cur.MoveToHead() }
func (l *Listbox) MoveToTail()      { l.cur.MoveToTail() }
func (l *Listbox) IsHead() bool     { return l.cur.IsHead() }
func (l *Listbox) IsTail() bool     { return l.cur.IsTail() }

// ViewportRange exposes the underlying cursor's visible window so
// composite widgets (checkbox, tree) can render consistently with it.
func (l *Listbox) ViewportRange(height int) (start, end int) {
	return l.cur.ViewportRange(height)
}

// Render lays the list out into a Pane sized to height, highlighting the
// selected line with selected and leaving others in normal style. The
// viewport follows the cursor via Cursor.ViewportRange.
func (l *Listbox) Render(height int, normal, selected style.Style) pane.Pane {
	items := l.cur.Contents
	start, end := l.cur.ViewportRange(height)
	rows := make([]grapheme.Sequence, 0, end-start)
	for i := start; i < end; i++ {
		st := normal
		if i == l.cur.Position() {
			st = selected
		}
		rows = append(rows, grapheme.FromString(items[i], st))
	}
	return pane.New(rows, 0)
}
