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

// Confirm is a yes/no prompt that accepts free text but only finishes
// on an unambiguous y/yes/n/no (case-insensitive), reprompting
// otherwise — grounded on
// original_source/promkit/src/preset/confirm.rs.
type Confirm struct {
	editor  *text.Editor
	answer  bool
	lastErr string
}

// NewConfirm builds a Confirm with the given label prefix, e.g.
// "Continue? (y/n) ".
func NewConfirm(label string) *Confirm {
	e := text.New()
	e.Prefix = label
	e.PrefixStyle = style.Style{Bold: true}
	e.CursorStyle = style.Style{Reverse: true}
	return &Confirm{editor: e}
}

func (c *Confirm) renderPane() pane.Pane {
	p := c.editor.Render(80)
	if c.lastErr != "" {
		p.Layout = append(p.Layout, grapheme.FromString(c.lastErr, style.Style{Color: style.ColorCode("red")}))
	}
	return p
}

func (c *Confirm) handle(we event.WrappedEvent) (bool, error) {
	switch we.Kind {
	case event.KeyBuffer:
		c.editor.InsertString(string(we.Chars))
	case event.Others:
		switch we.Event.Key {
		case term.KeyEnter:
			answer := strings.ToLower(strings.TrimSpace(c.editor.Text()))
			switch answer {
			case "y", "yes":
				c.answer = true
				return true, nil
			case "n", "no":
				c.answer = false
				return true, nil
			default:
				c.lastErr = "please answer y or n"
				c.editor.Reset()
			}
		case term.KeyBackspace:
			for i := 0; i < we.Count; i++ {
				c.editor.Backspace()
			}
		default:
			applyWordEditingKey(c.editor, we.Event)
		}
	}
	return false, nil
}

// Run displays the prompt and returns the confirmed boolean.
func (c *Confirm) Run() (bool, error) {
	p := New(c.renderPane, c.handle)
	if err := p.Run(); err != nil {
		return false, err
	}
	return c.answer, nil
}
