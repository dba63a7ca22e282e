// Package text implements the single-line (optionally wrapped) text
// editor widget shared by the readline, password and query-selector
// presets, plus its paired input History.
//
// Grounded on original_source/src/components/text_editor.rs, adapted
// from promkit-widgets-era APIs (a plain []rune buffer with an explicit
// caret index takes the place of the older crate's Cursor<Vec<char>>,
// since insertion/deletion need direct index manipulation that
// duskline/cursor's shift-only API doesn't offer).
package text

import (
	"strings"

	"duskline/grapheme"
	"duskline/pane"
	"duskline/style"
)

// Mode selects how typing a character behaves relative to the caret.
type Mode int

const (
	Insert Mode = iota
	Overwrite
)

// Editor is a single logical line of editable text with a caret.
type Editor struct {
	buffer []rune
	caret  int

	Prefix      string
	PrefixStyle style.Style
	Style       style.Style
	CursorStyle style.Style
	Mode        Mode

	// Mask, if non-zero, replaces every displayed character with this
	// rune (e.g. '*' for a password prompt). It never affects Text().
	Mask rune

	// LineBudget caps how many wrapped rows Render ever returns; 0
	// means unlimited.
	LineBudget int
}

// New builds an empty Editor.
func New() *Editor {
	return &Editor{}
}

// Text returns the unmasked, un-prefixed buffer contents.
func (e *Editor) Text() string {
	return string(e.buffer)
}

// Position returns the caret's index into the buffer, in runes.
func (e *Editor) Position() int {
	return e.caret
}

// InsertChar types r at the caret. In Overwrite mode it replaces the
// rune under the caret instead of shifting the rest of the buffer
// right, unless the caret is already at the end.
func (e *Editor) InsertChar(r rune) {
	if e.Mode == Overwrite && e.caret < len(e.buffer) {
		e.buffer[e.caret] = r
		e.caret++
		return
	}
	e.buffer = append(e.buffer[:e.caret], append([]rune{r}, e.buffer[e.caret:]...)...)
	e.caret++
}

// InsertString types every rune of s starting at the caret.
func (e *Editor) InsertString(s string) {
	for _, r := range s {
		e.InsertChar(r)
	}
}

// Backspace deletes the rune before the caret, reporting whether
// anything was deleted.
func (e *Editor) Backspace() bool {
	if e.caret == 0 {
		return false
	}
	e.buffer = append(e.buffer[:e.caret-1], e.buffer[e.caret:]...)
	e.caret--
	return true
}

// Delete removes the rune under the caret, reporting whether anything
// was deleted.
func (e *Editor) Delete() bool {
	if e.caret >= len(e.buffer) {
		return false
	}
	e.buffer = append(e.buffer[:e.caret], e.buffer[e.caret+1:]...)
	return true
}

// MoveLeft/MoveRight shift the caret by one rune, reporting whether it
// moved.
func (e *Editor) MoveLeft() bool {
	if e.caret == 0 {
		return false
	}
	e.caret--
	return true
}

func (e *Editor) MoveRight() bool {
	if e.caret >= len(e.buffer) {
		return false
	}
	e.caret++
	return true
}

// MoveToHead/MoveToTail jump the caret to either end.
func (e *Editor) MoveToHead() { e.caret = 0 }
func (e *Editor) MoveToTail() { e.caret = len(e.buffer) }

// Reset clears the buffer and caret back to empty, e.g. after a preset
// consumes the final answer. Mirrors text_editor.rs's postrun.
func (e *Editor) Reset() {
	e.buffer = nil
	e.caret = 0
}

// SetText replaces the buffer wholesale, moving the caret to the end —
// used to recall a History entry into the live editor.
func (e *Editor) SetText(s string) {
	e.buffer = []rune(s)
	e.caret = len(e.buffer)
}

// EraseAll clears the buffer and caret, e.g. for Ctrl+U.
func (e *Editor) EraseAll() {
	e.buffer = nil
	e.caret = 0
}

// Masking sets Mask, e.g. to switch a live editor into password display.
func (e *Editor) Masking(mask rune) {
	e.Mask = mask
}

// TextWithoutCursor returns the buffer contents with no cursor styling
// applied — identical to Text(), named separately so callers mirroring
// the word-navigation operations below read uniformly.
func (e *Editor) TextWithoutCursor() string {
	return e.Text()
}

func runeSet(chars string) map[rune]bool {
	set := make(map[rune]bool, len(chars))
	for _, r := range chars {
		set[r] = true
	}
	return set
}

// MoveToPreviousNearest moves the caret left past any run of chars
// immediately behind it, then past the following run of non-chars,
// landing just after the nearest earlier occurrence of a rune in
// chars (or at the head if none exists) — an Alt+B "back one word"
// step when chars is whitespace. Reports whether the caret moved.
func (e *Editor) MoveToPreviousNearest(chars string) bool {
	if e.caret == 0 {
		return false
	}
	set := runeSet(chars)
	i := e.caret
	for i > 0 && set[e.buffer[i-1]] {
		i--
	}
	for i > 0 && !set[e.buffer[i-1]] {
		i--
	}
	if i == e.caret {
		return false
	}
	e.caret = i
	return true
}

// MoveToNextNearest is MoveToPreviousNearest's mirror, e.g. Alt+F
// "forward one word".
func (e *Editor) MoveToNextNearest(chars string) bool {
	if e.caret >= len(e.buffer) {
		return false
	}
	set := runeSet(chars)
	i := e.caret
	for i < len(e.buffer) && set[e.buffer[i]] {
		i++
	}
	for i < len(e.buffer) && !set[e.buffer[i]] {
		i++
	}
	if i == e.caret {
		return false
	}
	e.caret = i
	return true
}

// EraseToPreviousNearest deletes from the caret back to where
// MoveToPreviousNearest would land, e.g. Ctrl+W.
func (e *Editor) EraseToPreviousNearest(chars string) bool {
	start := e.caret
	if !e.MoveToPreviousNearest(chars) {
		return false
	}
	e.buffer = append(e.buffer[:e.caret], e.buffer[start:]...)
	return true
}

// EraseToNextNearest deletes from the caret forward to where
// MoveToNextNearest would land, e.g. Alt+D.
func (e *Editor) EraseToNextNearest(chars string) bool {
	start := e.caret
	if !e.MoveToNextNearest(chars) {
		return false
	}
	end := e.caret
	e.caret = start
	e.buffer = append(e.buffer[:start], e.buffer[end:]...)
	return true
}

func (e *Editor) displayRunes() []rune {
	if e.Mask == 0 {
		return e.buffer
	}
	out := make([]rune, len(e.buffer))
	for i := range out {
		out[i] = e.Mask
	}
	return out
}

// Render lays the prefix, buffer (masked if Mask is set) and a
// highlighted caret cell out into a Pane wrapped to width.
func (e *Editor) Render(width int) pane.Pane {
	prefix := grapheme.FromString(e.Prefix, e.PrefixStyle)
	body := grapheme.FromString(string(e.displayRunes()), e.Style)

	// A trailing space grapheme stands in for the caret when it sits
	// past the last character, so the cursor is always visible even on
	// an empty or fully-typed line.
	if e.caret >= len(body) {
		body = append(body, grapheme.NewGrapheme(' ', e.Style))
	}
	body = body.ApplyStyleAt(e.caret, e.CursorStyle)

	full := grapheme.Concat(prefix, body)
	height := e.LineBudget
	if height <= 0 {
		height = len(full)
	}
	rows, _ := full.Matrixify(width, height, 0)
	return pane.New(rows, 0)
}

// Lines splits Text() on "\n" without changing this widget's
// single-caret model.
func (e *Editor) Lines() []string {
	return strings.Split(e.Text(), "\n")
}
