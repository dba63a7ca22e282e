package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"duskline/event"
	"duskline/term"
)

func TestListboxMouseWheelMovesFocusAndSubmits(t *testing.T) {
	l := NewListbox([]string{"red", "green", "blue"}, false)
	l.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyMouseScrollDown}})
	l.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyMouseScrollDown}})
	l.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyMouseScrollUp}})
	done, _ := l.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyEnter}})
	assert.True(t, done)
	assert.Equal(t, "green", l.answer)
}
