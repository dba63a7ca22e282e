package preset

import (
	"duskline/event"
	"duskline/pane"
	"duskline/style"
	"duskline/term"
	"duskline/widget/text"
)

// Password is a readline variant that masks typed characters with '*'
// and never records entries to history, grounded on
// original_source/promkit/src/preset/password.rs.
type Password struct {
	editor *text.Editor
	answer string
}

// NewPassword builds a Password prompt with the given label prefix.
func NewPassword(label string) *Password {
	e := text.New()
	e.Prefix = label
	e.PrefixStyle = style.Style{Bold: true}
	e.CursorStyle = style.Style{Reverse: true}
	e.Mask = '*'
	return &Password{editor: e}
}

func (pw *Password) renderPane() pane.Pane {
	return pw.editor.Render(80)
}

func (pw *Password) handle(we event.WrappedEvent) (bool, error) {
	switch we.Kind {
	case event.KeyBuffer:
		pw.editor.InsertString(string(we.Chars))
	case event.HorizontalCursorBuffer:
		for i := 0; i < we.Left; i++ {
			pw.editor.MoveLeft()
		}
		for i := 0; i < we.Right; i++ {
			pw.editor.MoveRight()
		}
	case event.Others:
		switch we.Event.Key {
		case term.KeyEnter:
			pw.answer = pw.editor.Text()
			pw.editor.Reset()
			return true, nil
		case term.KeyBackspace:
			for i := 0; i < we.Count; i++ {
				pw.editor.Backspace()
			}
		default:
			applyWordEditingKey(pw.editor, we.Event)
		}
	}
	return false, nil
}

// Run displays the prompt and returns the entered secret.
func (pw *Password) Run() (string, error) {
	p := New(pw.renderPane, pw.handle)
	if err := p.Run(); err != nil {
		return "", err
	}
	return pw.answer, nil
}
