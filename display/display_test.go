package display

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"duskline/grapheme"
	"duskline/pane"
	"duskline/renderer"
	"duskline/style"
	"duskline/term"
)

func row(s string) pane.Pane {
	return pane.New([]grapheme.Sequence{grapheme.FromString(s, style.Style{})}, 0)
}

func TestRunAppliesNewerVersionAndDrawsIt(t *testing.T) {
	var buf bytes.Buffer
	r := renderer.New()
	tm := term.NewTerminal(&buf)
	c := New(r, tm, 10)

	updates := make(chan PaneUpdate, 2)
	updates <- PaneUpdate{Key: "body", Pane: row("v1"), Version: 1}
	updates <- PaneUpdate{Key: "body", Pane: row("v2"), Version: 2}
	close(updates)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	c.Run(ctx, updates, nil)

	assert.Contains(t, buf.String(), "v2")
}

func TestRunDropsStaleVersion(t *testing.T) {
	var buf bytes.Buffer
	r := renderer.New()
	tm := term.NewTerminal(&buf)
	c := New(r, tm, 10)

	updates := make(chan PaneUpdate, 2)
	updates <- PaneUpdate{Key: "body", Pane: row("v2"), Version: 2}
	updates <- PaneUpdate{Key: "body", Pane: row("v1-late"), Version: 1}
	close(updates)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	c.Run(ctx, updates, nil)

	assert.NotContains(t, buf.String(), "v1-late")
}

func TestRunRespondsToResize(t *testing.T) {
	var buf bytes.Buffer
	r := renderer.New()
	tm := term.NewTerminal(&buf)
	c := New(r, tm, 10)
	r.Update("body", row("hi"))

	resizes := make(chan term.Event, 1)
	resizes <- term.Event{Key: term.KeyResize, Rows: 20, Cols: 80}
	close(resizes)

	// updates stays open: a closed updates channel would let Run return
	// before it has taken the resize event.
	updates := make(chan PaneUpdate)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	c.Run(ctx, updates, resizes)

	assert.Equal(t, 20, c.height)
}

func TestSpinnerTickInvokesCallbackAndRedraws(t *testing.T) {
	var buf bytes.Buffer
	r := renderer.New()
	tm := term.NewTerminal(&buf)
	c := New(r, tm, 10)
	c.SpinnerInterval = 5 * time.Millisecond

	frame := 0
	c.OnTick(func() {
		frame++
		r.Update("spinner", row("frame"))
	})

	updates := make(chan PaneUpdate)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	c.Run(ctx, updates, nil)

	assert.Greater(t, frame, 0)
	assert.Contains(t, buf.String(), "frame")
}
