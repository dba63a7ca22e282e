package preset

import (
	"context"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"duskline/display"
	"duskline/grapheme"
	"duskline/pane"
	"duskline/renderer"
	"duskline/style"
	"duskline/term"
)

// spinnerFrames are the glyphs cycled while a JSON document is still
// being read.
var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// RunJSONStreamFromReader reads an entire JSON document from src on a
// background goroutine while a spinner animates in the foreground, then
// hands off to a JSON preset over the bytes read.
//
// The spinner is driven by display.Coordinator rather than Prompt's own
// synchronous run loop: no input is being read yet (there's no widget
// to dispatch events to until the document arrives), so the versioned,
// tick-driven redraw the coordinator provides is the one place in
// duskline this asynchronous flow actually belongs.
//
// Grounded on original_source/promkit-async/src/display_coordinator.rs'
// background-task-plus-spinner flow, adapted from its async runtime to
// an errgroup.Group supervising the coordinator goroutine and the
// reader goroutine: the reader cancels the shared context once it's
// done so the coordinator's select loop unwinds, and Wait reports
// whichever error (if any) either goroutine returned.
func RunJSONStreamFromReader(src io.Reader) (*JSON, error) {
	r := renderer.New()
	t := term.NewTerminal(os.Stdout)
	height := 24
	if _, rows, err := term.Size(os.Stdout); err == nil {
		height = rows
	}
	coord := display.New(r, t, height)
	coord.SpinnerInterval = 90 * time.Millisecond

	frame := 0
	coord.OnTick(func() {
		frame = (frame + 1) % len(spinnerFrames)
		label := string(spinnerFrames[frame]) + " loading…"
		r.Update("body", pane.New([]grapheme.Sequence{grapheme.FromString(label, style.Style{Dim: true})}, 0))
	})

	state, rawErr := term.EnableRawMode(os.Stdin)
	if rawErr == nil {
		defer term.DisableRawMode(os.Stdin, state)
	}
	t.StartSession(nil)
	defer t.EndSession()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	updates := make(chan display.PaneUpdate)
	resizes := make(chan term.Event)

	g.Go(func() error {
		coord.Run(gctx, updates, resizes)
		return nil
	})

	var raw []byte
	g.Go(func() error {
		defer cancel() // stop the coordinator once the read finishes
		b, err := io.ReadAll(src)
		raw = b
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return NewJSON(raw)
}
