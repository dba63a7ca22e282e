// Package display runs the asynchronous, versioned redraw loop that
// lets a long-running widget (e.g. a spinner, a streaming JSON viewer)
// keep animating while user input keeps arriving, without ever drawing
// a stale frame over a newer one.
//
// Grounded on original_source/promkit-async/src/display_coordinator.rs.
// The original keys its panes by index into a fixed Vec; this
// generalizes that to a string-keyed registry so a preset can mount an
// arbitrary named set of widgets, matching SPEC_FULL.md's renderer
// registry.
package display

import (
	"context"
	"time"

	"duskline/pane"
	"duskline/renderer"
	"duskline/term"
)

// PaneUpdate is a versioned pane replacement for one key. Version must
// be monotonically increasing per key; updates whose Version is lower
// than the highest already applied for that key are dropped rather than
// drawn, so a slow producer can never clobber a newer frame.
type PaneUpdate struct {
	Key     string
	Pane    pane.Pane
	Version uint64
}

// Coordinator owns the draw loop: it merges versioned pane updates,
// spinner ticks, and terminal resize events into redraws of a shared
// Renderer/Terminal pair.
type Coordinator struct {
	renderer *renderer.Renderer
	terminal *term.Terminal

	versions map[string]uint64
	height   int

	// SpinnerInterval is how often a redraw is forced purely to advance
	// an animated widget (e.g. a spinner glyph) even with no new pane
	// update. Zero disables spinner ticking.
	SpinnerInterval time.Duration
	onTick          func() // invoked once per spinner tick, before redraw
}

// New builds a Coordinator drawing into term, using height as the
// initial viewport height (updated live via resize events).
func New(r *renderer.Renderer, t *term.Terminal, height int) *Coordinator {
	return &Coordinator{
		renderer: r,
		terminal: t,
		versions: make(map[string]uint64),
		height:   height,
	}
}

// OnTick sets the callback invoked on every spinner tick, before the
// forced redraw. Typically advances an animation frame counter that a
// widget's render step reads.
func (c *Coordinator) OnTick(fn func()) {
	c.onTick = fn
}

// Run drives the coordinator until ctx is canceled or updates is
// closed. resizes carries terminal resize events (Rows/Cols); a nil
// channel means resize is never observed here (the caller handles it
// elsewhere).
func (c *Coordinator) Run(ctx context.Context, updates <-chan PaneUpdate, resizes <-chan term.Event) {
	var tick <-chan time.Time
	var ticker *time.Ticker
	if c.SpinnerInterval > 0 {
		ticker = time.NewTicker(c.SpinnerInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return

		case u, ok := <-updates:
			if !ok {
				return
			}
			if u.Version < c.versions[u.Key] {
				// Stale: a newer version for this key was already
				// applied, so this update is dropped.
				continue
			}
			c.versions[u.Key] = u.Version
			c.renderer.Update(u.Key, u.Pane)
			c.redraw()

		case ev, ok := <-resizes:
			if !ok {
				resizes = nil
				continue
			}
			if ev.Key == term.KeyResize {
				c.height = ev.Rows
				c.redraw()
			}

		case <-tick:
			if c.onTick != nil {
				c.onTick()
			}
			c.redraw()
		}
	}
}

// redraw takes a snapshot and draws only if something actually changed,
// mirroring the original's dirty-flag short circuit.
func (c *Coordinator) redraw() {
	panes, changed := c.renderer.Snapshot()
	if !changed {
		return
	}
	c.terminal.Draw(panes, c.height)
}
