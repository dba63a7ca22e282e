package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"duskline/event"
	"duskline/term"
)

func TestQuerySelectorFiltersAsQueryChanges(t *testing.T) {
	q := NewQuerySelector([]string{"apple", "banana", "cherry"})
	q.handle(event.WrappedEvent{Kind: event.KeyBuffer, Chars: []rune("an")})
	assert.Equal(t, 1, q.matchCnt.Get())
	assert.Equal(t, "banana", q.filtered.Get()[0])
}

func TestQuerySelectorEscRevertsLastEdit(t *testing.T) {
	q := NewQuerySelector([]string{"apple", "banana", "cherry"})
	q.handle(event.WrappedEvent{Kind: event.KeyBuffer, Chars: []rune("an")})
	q.handle(event.WrappedEvent{Kind: event.KeyBuffer, Chars: []rune("ana")})
	assert.Equal(t, "anana", q.editor.Text())

	q.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyEsc}})
	assert.Equal(t, "an", q.editor.Text())
	assert.Equal(t, 1, q.matchCnt.Get())
}

func TestQuerySelectorWordEditingKeyRefilters(t *testing.T) {
	q := NewQuerySelector([]string{"apple", "banana", "cherry"})
	q.handle(event.WrappedEvent{Kind: event.KeyBuffer, Chars: []rune("an")})
	q.handle(event.WrappedEvent{Kind: event.Others, Event: term.Event{Key: term.KeyChar, Rune: 'u', Mod: term.ModCtrl}})
	assert.Equal(t, "", q.editor.Text())
	assert.Equal(t, 3, q.matchCnt.Get())
}
