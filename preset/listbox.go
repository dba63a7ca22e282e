package preset

import (
	"duskline/event"
	"duskline/pane"
	"duskline/style"
	"duskline/term"
	"duskline/widget/listbox"
)

// Listbox lets the user pick exactly one line from a fixed set,
// grounded on original_source/promkit/src/preset/listbox.rs.
type Listbox struct {
	box    *listbox.Listbox
	answer string
}

// NewListbox builds a Listbox over items.
func NewListbox(items []string, cyclic bool) *Listbox {
	return &Listbox{box: listbox.New(items, cyclic)}
}

func (l *Listbox) renderPane() pane.Pane {
	return l.box.Render(12, style.Style{}, style.Style{Reverse: true})
}

func (l *Listbox) handle(we event.WrappedEvent) (bool, error) {
	switch we.Kind {
	case event.VerticalCursorBuffer:
		for i := 0; i < we.Up; i++ {
			l.box.Backward()
		}
		for i := 0; i < we.Down; i++ {
			l.box.Forward()
		}
	case event.Others:
		switch we.Event.Key {
		case term.KeyEnter:
			l.answer = l.box.Get()
			return true, nil
		case term.KeyHome:
			l.box.MoveToHead()
		case term.KeyEnd:
			l.box.MoveToTail()
		case term.KeyMouseScrollUp:
			l.box.Backward()
		case term.KeyMouseScrollDown:
			l.box.Forward()
		}
	}
	return false, nil
}

// Run displays the prompt and returns the selected line.
func (l *Listbox) Run() (string, error) {
	p := New(l.renderPane, l.handle)
	if err := p.Run(); err != nil {
		return "", err
	}
	return l.answer, nil
}
