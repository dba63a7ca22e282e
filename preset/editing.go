package preset

import (
	"duskline/term"
	"duskline/widget/text"
)

// wordBreak is the set of characters Alt/Ctrl word-motion and
// word-erase bindings stop at.
const wordBreak = " "

// applyWordEditingKey recognizes the emacs-style line-editing keys
// every text.Editor-backed preset shares (Ctrl+A/E/U/W, Alt+B/F/D) and
// applies the matching one to e, reporting whether ev matched.
func applyWordEditingKey(e *text.Editor, ev term.Event) bool {
	if ev.Key != term.KeyChar {
		return false
	}
	switch {
	case ev.Mod == term.ModCtrl && ev.Rune == 'a':
		e.MoveToHead()
	case ev.Mod == term.ModCtrl && ev.Rune == 'e':
		e.MoveToTail()
	case ev.Mod == term.ModCtrl && ev.Rune == 'u':
		e.EraseAll()
	case ev.Mod == term.ModCtrl && ev.Rune == 'w':
		e.EraseToPreviousNearest(wordBreak)
	case ev.Mod == term.ModAlt && ev.Rune == 'b':
		e.MoveToPreviousNearest(wordBreak)
	case ev.Mod == term.ModAlt && ev.Rune == 'f':
		e.MoveToNextNearest(wordBreak)
	case ev.Mod == term.ModAlt && ev.Rune == 'd':
		e.EraseToNextNearest(wordBreak)
	default:
		return false
	}
	return true
}
