package preset

import (
	"duskline/event"
	"duskline/pane"
	"duskline/style"
	"duskline/term"
	"duskline/widget/jsonstream"
)

// JSON lets the user browse a parsed JSON document, collapsing and
// expanding containers, grounded on
// original_source/promkit/src/preset/json.rs / promkit/src/jsonz.rs.
type JSON struct {
	cursor *jsonstream.Cursor
	raw    []byte
}

// NewJSON parses raw and builds a JSON preset over it.
func NewJSON(raw []byte) (*JSON, error) {
	s, err := jsonstream.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &JSON{cursor: jsonstream.NewCursor(s), raw: raw}, nil
}

func (j *JSON) renderPane() pane.Pane {
	return j.cursor.Render(20, style.Style{}, style.Style{Reverse: true}, 2)
}

func (j *JSON) handle(we event.WrappedEvent) (bool, error) {
	switch we.Kind {
	case event.VerticalCursorBuffer:
		for i := 0; i < we.Up; i++ {
			j.cursor.Up()
		}
		for i := 0; i < we.Down; i++ {
			j.cursor.Down()
		}
	case event.Others:
		switch we.Event.Key {
		case term.KeyMouseScrollUp:
			j.cursor.Up()
		case term.KeyMouseScrollDown:
			j.cursor.Down()
		case term.KeySpace:
			j.cursor.Toggle()
		case term.KeyEnter:
			return true, nil
		case term.KeyHome:
			j.cursor.Head()
		case term.KeyEnd:
			j.cursor.Tail()
		}
	}
	return false, nil
}

// RawFormatted returns the full document re-serialized with sorted keys
// and 2-space indentation, ignoring any collapse state — a "view raw"
// companion to the interactive tree.
func (j *JSON) RawFormatted() (string, error) {
	return jsonstream.FormatRawJSON(j.raw)
}

// Run displays the prompt and returns once the user presses Enter.
func (j *JSON) Run() error {
	p := New(j.renderPane, j.handle)
	return p.Run()
}
