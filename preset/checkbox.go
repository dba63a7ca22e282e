package preset

import (
	"duskline/event"
	"duskline/pane"
	"duskline/style"
	"duskline/term"
	"duskline/widget/checkbox"
)

// Checkbox lets the user pick any subset of lines, grounded on
// original_source/promkit/src/preset/checkbox.rs /
// promkit/src/core/checkbox.rs.
type Checkbox struct {
	box     *checkbox.Checkbox
	answers []string
}

// NewCheckbox builds a Checkbox over items.
func NewCheckbox(items []string, cyclic bool) *Checkbox {
	return &Checkbox{box: checkbox.New(items, cyclic)}
}

func (c *Checkbox) renderPane() pane.Pane {
	return c.box.Render(12, style.Style{}, style.Style{Reverse: true}, "[x] ", "[ ] ")
}

func (c *Checkbox) handle(we event.WrappedEvent) (bool, error) {
	switch we.Kind {
	case event.VerticalCursorBuffer:
		for i := 0; i < we.Up; i++ {
			c.box.Backward()
		}
		for i := 0; i < we.Down; i++ {
			c.box.Forward()
		}
	case event.Others:
		switch we.Event.Key {
		case term.KeySpace:
			c.box.Toggle()
		case term.KeyEnter:
			c.answers = c.box.PickedItems()
			return true, nil
		case term.KeyMouseScrollUp:
			c.box.Backward()
		case term.KeyMouseScrollDown:
			c.box.Forward()
		}
	}
	return false, nil
}

// Run displays the prompt and returns every picked line.
func (c *Checkbox) Run() ([]string, error) {
	p := New(c.renderPane, c.handle)
	if err := p.Run(); err != nil {
		return nil, err
	}
	return c.answers, nil
}
