// Package preset assembles the lower-level packages (term, renderer,
// event, widget/*) into the runnable prompts a caller actually invokes:
// readline, confirm, password, listbox, checkbox, tree, json,
// queryselector and form.
//
// Grounded on the run-loop shape threaded through
// original_source/src/lib.rs and the preset modules under
// original_source/promkit/src/preset/, adapted to Go's channel/select
// idiom per the display coordinator's own contract rather than the
// original's async runtime.
package preset

import (
	"errors"
	"os"

	"duskline/event"
	"duskline/keymap"
	"duskline/pane"
	"duskline/renderer"
	"duskline/term"
)

// ErrInterrupted is returned when the user cancels with Ctrl-C.
var ErrInterrupted = errors.New("preset: interrupted")

// Handler reacts to one coalesced input event, mutating widget state and
// returning (done, error). When done is true the run loop exits and
// Prompt.Run returns whatever the caller's result accessor reports.
type Handler func(ev event.WrappedEvent) (done bool, err error)

const defaultMode = "default"

// Prompt drives a single interactive widget to completion: render,
// read input, coalesce it, dispatch to the active handler, repeat
// until a handler reports done.
//
// Dispatch goes through a keymap.Keymap rather than holding a single
// bare Handler, so a preset can register extra named modes (e.g.
// Readline's Ctrl+R history search) and switch into and out of them
// without the run loop itself knowing about the distinction.
type Prompt struct {
	terminal *term.Terminal
	renderer *renderer.Renderer
	render   func() pane.Pane // produces the current frame for key "body"
	keys     *keymap.Keymap[Handler]
	height   int
}

// New builds a Prompt with a single "default" handler active. render is
// called after every handled event to recompute the single pane drawn;
// handle applies one coalesced event to the underlying widget state.
func New(render func() pane.Pane, handle Handler) *Prompt {
	return &Prompt{
		terminal: term.NewTerminal(os.Stdout),
		renderer: renderer.New(),
		render:   render,
		keys:     keymap.New(map[string]Handler{defaultMode: handle}, defaultMode),
		height:   24,
	}
}

// RegisterMode adds a named handler a preset can later switch into,
// e.g. a reverse-history-search mode entered on Ctrl+R.
func (p *Prompt) RegisterMode(name string, handle Handler) {
	p.keys.Register(name, handle)
}

// SwitchMode changes which registered handler is active, reporting
// whether name was known.
func (p *Prompt) SwitchMode(name string) bool {
	return p.keys.Switch(name)
}

// Run enters raw mode, redraws once up front, then processes coalesced
// input events until handle reports done or an error/interrupt occurs.
func (p *Prompt) Run() error {
	if cols, rows, err := term.Size(os.Stdout); err == nil {
		_ = cols
		p.height = rows
	}

	state, err := term.EnableRawMode(os.Stdin)
	if err != nil {
		return err
	}
	defer term.DisableRawMode(os.Stdin, state)

	p.renderer.Update("body", p.render())
	panes, _ := p.renderer.Snapshot()
	p.terminal.StartSession(panes)
	p.terminal.Draw(panes, p.height)
	defer p.terminal.EndSession()

	done := make(chan struct{})
	raw := term.StartInput(done)
	defer close(done)

	wrapped := make(chan []event.WrappedEvent)
	go event.Run(raw, wrapped)

	for batch := range wrapped {
		for _, we := range batch {
			if isInterrupt(we) {
				return ErrInterrupted
			}
			if we.Kind == event.Others && we.Event.Key == term.KeyResize {
				p.height = we.Event.Rows
				panes, _ := p.renderer.Snapshot()
				p.terminal.Draw(panes, p.height)
				continue
			}
			handle, _ := p.keys.Active()
			finished, err := handle(we)
			if err != nil {
				return err
			}
			p.renderer.Update("body", p.render())
			panes, changed := p.renderer.Snapshot()
			if changed {
				p.terminal.Draw(panes, p.height)
			}
			if finished {
				return nil
			}
		}
	}
	return nil
}

func isInterrupt(we event.WrappedEvent) bool {
	return we.Kind == event.Others && we.Event.Key == term.KeyChar &&
		we.Event.Rune == 'c' && we.Event.Mod == term.ModCtrl
}
