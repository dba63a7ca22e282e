// Package term drives the actual terminal: raw-mode toggling, the byte
// parser that turns stdin into typed events, and the anchor-based
// redraw algorithm that prints panes without disturbing scrollback.
//
// Grounded on _examples/AhnafCodes-basementui/go/tui/{key,term,input}.go
// for the key/raw-mode/input-loop machinery, extended with mouse wheel
// and resize events per spec.md §6, and on
// original_source/promkit/src/terminal.rs for the draw algorithm.
package term

// Key identifies a special key or the "this is a plain character" case.
type Key int

const (
	KeyNull Key = iota
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEsc
	KeySpace

	KeyArrowUp
	KeyArrowDown
	KeyArrowRight
	KeyArrowLeft

	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyDelete
	KeyInsert

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyMouseScrollUp and KeyMouseScrollDown are reported for wheel
	// events so widgets can move their cursor without requiring a
	// keypress, per the SUPPLEMENTED FEATURES mouse scroll decision.
	KeyMouseScrollUp
	KeyMouseScrollDown

	// KeyResize carries no rune; Rows/Cols on the owning Event describe
	// the new terminal size.
	KeyResize

	// KeyChar is a plain rune key, found in the Rune field.
	KeyChar
)

// Mod is a bitset of modifier keys held during an Event.
type Mod int

const (
	ModNone  Mod = 0
	ModCtrl  Mod = 1 << 0
	ModAlt   Mod = 1 << 1
	ModShift Mod = 1 << 2
)

// Event is any input the terminal driver can produce: a keypress, a
// mouse wheel tick, or a resize.
type Event struct {
	Key  Key
	Rune rune
	Mod  Mod

	// Rows/Cols are populated only for KeyResize events.
	Rows int
	Cols int
}
