package preset

import (
	"duskline/event"
	"duskline/grapheme"
	"duskline/pane"
	"duskline/signals"
	"duskline/style"
	"duskline/term"
	"duskline/widget/text"
)

// FormField is one labeled line of a Form.
type FormField struct {
	Label    string
	Validate func(string) string
	editor   *text.Editor
	valid    *signals.Signal[bool]
}

// Form steps through a fixed sequence of fields (Tab to move between
// them), each validated independently, and finishes once every field is
// valid and the user presses Enter on the last one.
//
// Grounded on original_source/promkit/src/preset/form.rs. The
// aggregate "every field valid" flag is a duskline/signals Computed
// over each field's own valid signal, the same derived-value niche as
// the query selector's match counter.
type Form struct {
	fields    []*FormField
	focus     int
	allValid  *signals.Computed[bool]
	answers   map[string]string
}

// NewForm builds a Form over fields, in order.
func NewForm(fields []FormField) *Form {
	f := &Form{answers: make(map[string]string)}
	for _, field := range fields {
		field := field
		e := text.New()
		e.Prefix = field.Label
		e.PrefixStyle = style.Style{Bold: true}
		e.CursorStyle = style.Style{Reverse: true}
		field.editor = e
		field.valid = signals.New(field.Validate == nil)
		f.fields = append(f.fields, &field)
	}
	f.allValid = signals.NewComputed(func() bool {
		for _, fld := range f.fields {
			if !fld.valid.Get() {
				return false
			}
		}
		return true
	})
	return f
}

func (f *Form) current() *FormField {
	return f.fields[f.focus]
}

func (f *Form) revalidate(fld *FormField) {
	if fld.Validate == nil {
		return
	}
	fld.valid.Set(fld.Validate(fld.editor.Text()) == "")
}

func (f *Form) renderPane() pane.Pane {
	var rows []grapheme.Sequence
	for i, fld := range f.fields {
		row := fld.editor.Render(80).Layout[0]
		if i == f.focus {
			row = grapheme.Concat(grapheme.FromString("> ", style.Style{Bold: true}), row)
		} else {
			row = grapheme.Concat(grapheme.FromString("  ", style.Style{}), row)
		}
		rows = append(rows, row)
	}
	if !f.allValid.Get() {
		rows = append(rows, grapheme.FromString("(fix highlighted fields)", style.Style{Dim: true}))
	}
	return pane.New(rows, 0)
}

func (f *Form) handle(we event.WrappedEvent) (bool, error) {
	fld := f.current()
	switch we.Kind {
	case event.KeyBuffer:
		fld.editor.InsertString(string(we.Chars))
		f.revalidate(fld)
	case event.HorizontalCursorBuffer:
		for i := 0; i < we.Left; i++ {
			fld.editor.MoveLeft()
		}
		for i := 0; i < we.Right; i++ {
			fld.editor.MoveRight()
		}
	case event.Others:
		switch we.Event.Key {
		case term.KeyTab:
			f.focus = (f.focus + 1) % len(f.fields)
		case term.KeyBackspace:
			for i := 0; i < we.Count; i++ {
				fld.editor.Backspace()
			}
			f.revalidate(fld)
		case term.KeyEnter:
			if f.focus < len(f.fields)-1 {
				f.focus++
				return false, nil
			}
			if !f.allValid.Get() {
				return false, nil
			}
			for _, field := range f.fields {
				f.answers[field.Label] = field.editor.Text()
			}
			return true, nil
		default:
			if applyWordEditingKey(fld.editor, we.Event) {
				f.revalidate(fld)
			}
		}
	}
	return false, nil
}

// Run displays the prompt and returns every field's answer, keyed by
// label.
func (f *Form) Run() (map[string]string, error) {
	p := New(f.renderPane, f.handle)
	if err := p.Run(); err != nil {
		return nil, err
	}
	return f.answers, nil
}
