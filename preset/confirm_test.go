package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"duskline/event"
	"duskline/term"
)

func TestConfirmAcceptsYes(t *testing.T) {
	c := NewConfirm("? ")
	c.handle(event.WrappedEvent{Kind: event.KeyBuffer, Chars: []rune("yes")})
	done, _ := c.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyEnter}})
	assert.True(t, done)
	assert.True(t, c.answer)
}

func TestConfirmRejectsAmbiguousAnswer(t *testing.T) {
	c := NewConfirm("? ")
	c.handle(event.WrappedEvent{Kind: event.KeyBuffer, Chars: []rune("maybe")})
	done, _ := c.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyEnter}})
	assert.False(t, done)
	assert.NotEmpty(t, c.lastErr)
}

func TestConfirmAcceptsNo(t *testing.T) {
	c := NewConfirm("? ")
	c.handle(event.WrappedEvent{Kind: event.KeyBuffer, Chars: []rune("n")})
	done, _ := c.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyEnter}})
	assert.True(t, done)
	assert.False(t, c.answer)
}
