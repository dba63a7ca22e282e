package preset

import (
	"strings"

	"duskline/event"
	"duskline/grapheme"
	"duskline/pane"
	"duskline/style"
	"duskline/term"
	"duskline/widget/text"
)

// Readline is a single-line free-text prompt with history recall on
// Up/Down, grounded on original_source/promkit/src/preset/readline.rs.
type Readline struct {
	editor  *text.Editor
	history *text.History
	// Validate, if set, rejects Enter until it returns "".
	Validate func(string) string
	lastErr  string
	answer   string
	prompt   *Prompt

	// searching/searchQuery/searchMatch back the Ctrl+R
	// reverse-history-search mode: a second named handler registered
	// with the Prompt's keymap.Keymap and switched into on Ctrl+R,
	// switched back out of on Enter or Esc.
	searching   bool
	searchQuery string
	searchMatch string
}

const searchMode = "search"

// NewReadline builds a Readline with the given label prefix.
func NewReadline(label string) *Readline {
	e := text.New()
	e.Prefix = label
	e.PrefixStyle = style.Style{Bold: true}
	e.CursorStyle = style.Style{Reverse: true}
	return &Readline{editor: e, history: text.NewHistory(100)}
}

func (r *Readline) renderPane() pane.Pane {
	if r.searching {
		line := "(reverse-i-search)`" + r.searchQuery + "': " + r.searchMatch
		return pane.New([]grapheme.Sequence{grapheme.FromString(line, style.Style{Dim: true})}, 0)
	}
	p := r.editor.Render(80)
	if r.lastErr != "" {
		p.Layout = append(p.Layout, grapheme.FromString(r.lastErr, style.Style{Color: style.ColorCode("red")}))
	}
	return p
}

func (r *Readline) handle(we event.WrappedEvent) (bool, error) {
	switch we.Kind {
	case event.KeyBuffer:
		r.editor.InsertString(string(we.Chars))
	case event.HorizontalCursorBuffer:
		for i := 0; i < we.Left; i++ {
			r.editor.MoveLeft()
		}
		for i := 0; i < we.Right; i++ {
			r.editor.MoveRight()
		}
	case event.VerticalCursorBuffer:
		for i := 0; i < we.Up; i++ {
			if line, ok := r.history.Backward(); ok {
				r.editor.SetText(line)
			}
		}
		for i := 0; i < we.Down; i++ {
			if line, ok := r.history.Forward(); ok {
				r.editor.SetText(line)
			}
		}
	case event.Others:
		switch {
		case we.Event.Key == term.KeyEnter:
			text := r.editor.Text()
			if r.Validate != nil {
				if msg := r.Validate(text); msg != "" {
					r.lastErr = msg
					return false, nil
				}
			}
			r.answer = text
			r.history.Insert(text)
			r.editor.Reset()
			return true, nil
		case we.Event.Key == term.KeyBackspace:
			for i := 0; i < we.Count; i++ {
				r.editor.Backspace()
			}
		case we.Event.Key == term.KeyDelete:
			for i := 0; i < we.Count; i++ {
				r.editor.Delete()
			}
		case we.Event.Key == term.KeyChar && we.Event.Mod == term.ModCtrl && we.Event.Rune == 'r':
			r.enterSearch()
		default:
			applyWordEditingKey(r.editor, we.Event)
		}
	}
	return false, nil
}

// enterSearch switches the Prompt into the "search" handler, matching
// readline's Ctrl+R reverse-i-search affordance.
func (r *Readline) enterSearch() {
	r.searching = true
	r.searchQuery = ""
	r.searchMatch = ""
	if r.prompt != nil {
		r.prompt.SwitchMode(searchMode)
	}
}

func (r *Readline) exitSearch(accept bool) {
	r.searching = false
	if accept && r.searchMatch != "" {
		r.editor.SetText(r.searchMatch)
	}
	if r.prompt != nil {
		r.prompt.SwitchMode(defaultMode)
	}
}

// handleSearch is the "search" mode's handler: typed characters narrow
// a substring search over history, Enter accepts the current match into
// the editor, Esc or Ctrl+G cancels back to the unmodified editor text.
func (r *Readline) handleSearch(we event.WrappedEvent) (bool, error) {
	switch we.Kind {
	case event.KeyBuffer:
		r.searchQuery += string(we.Chars)
		r.rematch()
	case event.Others:
		switch {
		case we.Event.Key == term.KeyBackspace:
			if n := len(r.searchQuery); n > 0 {
				r.searchQuery = r.searchQuery[:n-1]
				r.rematch()
			}
		case we.Event.Key == term.KeyEnter:
			r.exitSearch(true)
		case we.Event.Key == term.KeyEsc:
			r.exitSearch(false)
		case we.Event.Key == term.KeyChar && we.Event.Mod == term.ModCtrl && we.Event.Rune == 'g':
			r.exitSearch(false)
		}
	}
	return false, nil
}

func (r *Readline) rematch() {
	r.searchMatch = ""
	if r.searchQuery == "" {
		return
	}
	entries := r.history.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if strings.Contains(entries[i], r.searchQuery) {
			r.searchMatch = entries[i]
			return
		}
	}
}

// Run displays the prompt and returns the submitted line.
func (r *Readline) Run() (string, error) {
	r.prompt = New(r.renderPane, r.handle)
	r.prompt.RegisterMode(searchMode, r.handleSearch)
	if err := r.prompt.Run(); err != nil {
		return "", err
	}
	return r.answer, nil
}
