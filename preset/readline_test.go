package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"duskline/event"
	"duskline/term"
)

func TestReadlineTypesAndSubmits(t *testing.T) {
	r := NewReadline("> ")
	done, err := r.handle(event.WrappedEvent{Kind: event.KeyBuffer, Chars: []rune("hi")})
	assert.NoError(t, err)
	assert.False(t, done)
	done, err = r.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyEnter}, Count: 1})
	assert.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, "hi", r.answer)
}

func TestReadlineValidationBlocksSubmit(t *testing.T) {
	r := NewReadline("> ")
	r.Validate = func(s string) string {
		if s == "" {
			return "required"
		}
		return ""
	}
	done, _ := r.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyEnter}})
	assert.False(t, done)
	assert.Equal(t, "required", r.lastErr)
}

func TestReadlineHistoryRecall(t *testing.T) {
	r := NewReadline("> ")
	r.handle(event.WrappedEvent{Kind: event.KeyBuffer, Chars: []rune("first")})
	r.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyEnter}})
	r.handle(event.WrappedEvent{Kind: event.KeyBuffer, Chars: []rune("second")})
	r.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyEnter}})
	r.handle(event.WrappedEvent{Kind: event.VerticalCursorBuffer, Up: 1})
	assert.Equal(t, "second", r.editor.Text())
}

func TestReadlineWordNavigationBindings(t *testing.T) {
	r := NewReadline("> ")
	r.handle(event.WrappedEvent{Kind: event.KeyBuffer, Chars: []rune("foo bar")})
	r.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyChar, Rune: 'b', Mod: term.ModAlt}})
	assert.Equal(t, 4, r.editor.Position())
	r.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyChar, Rune: 'a', Mod: term.ModCtrl}})
	assert.Equal(t, 0, r.editor.Position())
	r.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyChar, Rune: 'e', Mod: term.ModCtrl}})
	assert.Equal(t, 7, r.editor.Position())
	r.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyChar, Rune: 'u', Mod: term.ModCtrl}})
	assert.Equal(t, "", r.editor.Text())
}

func TestReadlineCtrlRSearchesHistoryAndAcceptsOnEnter(t *testing.T) {
	r := NewReadline("> ")
	r.handle(event.WrappedEvent{Kind: event.KeyBuffer, Chars: []rune("alpha")})
	r.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyEnter}})
	r.handle(event.WrappedEvent{Kind: event.KeyBuffer, Chars: []rune("beta")})
	r.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyEnter}})

	r.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyChar, Rune: 'r', Mod: term.ModCtrl}})
	assert.True(t, r.searching)
	r.handleSearch(event.WrappedEvent{Kind: event.KeyBuffer, Chars: []rune("alp")})
	assert.Equal(t, "alpha", r.searchMatch)
	r.handleSearch(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyEnter}})
	assert.False(t, r.searching)
	assert.Equal(t, "alpha", r.editor.Text())
}
