package preset

import (
	"strings"

	"duskline/event"
	"duskline/grapheme"
	"duskline/pane"
	"duskline/signals"
	"duskline/snapshot"
	"duskline/style"
	"duskline/term"
	"duskline/widget/listbox"
	"duskline/widget/text"
)

// QuerySelector combines a text editor with a listbox that live-filters
// as the query changes, grounded on
// original_source/promkit/src/preset/query_selector.rs.
//
// The live "N matches" counter is derived with duskline/signals rather
// than recomputed imperatively on every keystroke: it's a read-only
// value layered on top of the editor's state, not part of the display
// coordinator's own versioned redraw contract, so the narrower reactive
// primitive fits without contradicting that contract.
type QuerySelector struct {
	editor *text.Editor
	all    []string

	query    *signals.Signal[string]
	filtered *signals.Computed[[]string]
	matchCnt *signals.Computed[int]
	box      *listbox.Listbox
	answer   string

	// qtext tracks the editor's query text across Init/Before/After so
	// refilter only rebuilds the listbox when the text actually
	// changed, and Esc can revert to the text the query held before
	// the most recent edit.
	qtext snapshot.Snapshot[string]
}

// NewQuerySelector builds a QuerySelector over items.
func NewQuerySelector(items []string) *QuerySelector {
	q := &QuerySelector{all: items}
	q.editor = text.New()
	q.editor.Prefix = "> "
	q.editor.CursorStyle = style.Style{Reverse: true}

	q.query = signals.New("")
	q.filtered = signals.NewComputed(func() []string {
		query := strings.ToLower(q.query.Get())
		if query == "" {
			return items
		}
		var out []string
		for _, it := range items {
			if strings.Contains(strings.ToLower(it), query) {
				out = append(out, it)
			}
		}
		return out
	})
	q.matchCnt = signals.NewComputed(func() int {
		return len(q.filtered.Get())
	})
	q.box = listbox.New(items, false)
	q.qtext = snapshot.New("")
	return q
}

// refilter advances the query snapshot to the editor's current text and
// only rebuilds the filtered listbox when that text actually changed,
// rather than on every event regardless of whether the query moved.
func (q *QuerySelector) refilter() {
	q.qtext.Advance(q.editor.Text())
	if q.qtext.Before == q.qtext.After {
		return
	}
	q.query.Set(q.qtext.After)
	q.box = listbox.New(q.filtered.Get(), false)
}

// revertQuery undoes the most recent query edit, restoring both the
// editor text and the filtered listbox to the snapshot's prior
// generation, e.g. for an Esc-to-undo keybinding.
func (q *QuerySelector) revertQuery() {
	q.editor.SetText(q.qtext.Before)
	q.refilter()
}

func (q *QuerySelector) renderPane() pane.Pane {
	p := q.editor.Render(80)
	listPane := q.box.Render(10, style.Style{}, style.Style{Reverse: true})
	p.Layout = append(p.Layout, listPane.Layout...)
	p.Layout = append(p.Layout, grapheme.FromString(matchLabel(q.matchCnt.Get()), style.Style{Dim: true}))
	return p
}

func matchLabel(n int) string {
	if n == 1 {
		return "1 match"
	}
	return itoa(n) + " matches"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

func (q *QuerySelector) handle(we event.WrappedEvent) (bool, error) {
	switch we.Kind {
	case event.KeyBuffer:
		q.editor.InsertString(string(we.Chars))
		q.refilter()
	case event.VerticalCursorBuffer:
		for i := 0; i < we.Up; i++ {
			q.box.Backward()
		}
		for i := 0; i < we.Down; i++ {
			q.box.Forward()
		}
	case event.Others:
		switch we.Event.Key {
		case term.KeyBackspace:
			for i := 0; i < we.Count; i++ {
				q.editor.Backspace()
			}
			q.refilter()
		case term.KeyEnter:
			q.answer = q.box.Get()
			return true, nil
		case term.KeyEsc:
			q.revertQuery()
		default:
			if applyWordEditingKey(q.editor, we.Event) {
				q.refilter()
			}
		}
	}
	return false, nil
}

// Run displays the prompt and returns the selected item.
func (q *QuerySelector) Run() (string, error) {
	p := New(q.renderPane, q.handle)
	if err := p.Run(); err != nil {
		return "", err
	}
	return q.answer, nil
}
