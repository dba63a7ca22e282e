// Package event batches a burst of raw terminal events into coarser
// WrappedEvents so a preset only re-renders once per user action instead
// of once per keystroke. A classifier runs a single deterministic pass
// over the buffered events, binning adjacent same-kind events together.
//
// Grounded on original_source/promkit-async/src/event_buffer.rs.
package event

import "duskline/term"

// Kind discriminates the coalesced event shapes.
type Kind int

const (
	// KeyBuffer groups consecutive plain character keys typed together,
	// e.g. fast typing, so they can be applied to a text buffer in one
	// shot.
	KeyBuffer Kind = iota
	// VerticalCursorBuffer groups consecutive Up/Down presses, recording
	// how many of each occurred consecutively.
	VerticalCursorBuffer
	// HorizontalCursorBuffer groups consecutive Left/Right presses the
	// same way.
	HorizontalCursorBuffer
	// Others groups consecutive repeats of any other single event
	// (Enter, Ctrl-combinations, resize, etc.) with a repeat count.
	Others
)

// WrappedEvent is one coalesced bin.
type WrappedEvent struct {
	Kind Kind

	// Chars holds the runs of characters for KeyBuffer.
	Chars []rune

	// Up/Down hold counts for VerticalCursorBuffer.
	Up, Down int

	// Left/Right hold counts for HorizontalCursorBuffer.
	Left, Right int

	// Event and Count describe an Others run: the representative raw
	// event and how many consecutive times it occurred.
	Event term.Event
	Count int
}

func isVertical(e term.Event) bool {
	return e.Key == term.KeyArrowUp || e.Key == term.KeyArrowDown
}

func isHorizontal(e term.Event) bool {
	return e.Key == term.KeyArrowLeft || e.Key == term.KeyArrowRight
}

func isChar(e term.Event) bool {
	return e.Key == term.KeyChar && e.Mod == term.ModNone
}

// sameOthersKind reports whether two non-char, non-directional events
// belong in the same Others run: same Key, Rune and Mod.
func sameOthersKind(a, b term.Event) bool {
	return a.Key == b.Key && a.Rune == b.Rune && a.Mod == b.Mod
}

// Coalesce runs the single-pass bin-classification algorithm over a
// buffered run of events (already collected within one idle window by
// the caller) and returns the resulting WrappedEvent sequence in order.
func Coalesce(events []term.Event) []WrappedEvent {
	var out []WrappedEvent
	i := 0
	for i < len(events) {
		e := events[i]
		switch {
		case isChar(e):
			j := i
			var chars []rune
			for j < len(events) && isChar(events[j]) {
				chars = append(chars, events[j].Rune)
				j++
			}
			out = append(out, WrappedEvent{Kind: KeyBuffer, Chars: chars})
			i = j
		case isVertical(e):
			j := i
			up, down := 0, 0
			for j < len(events) && isVertical(events[j]) {
				if events[j].Key == term.KeyArrowUp {
					up++
				} else {
					down++
				}
				j++
			}
			out = append(out, WrappedEvent{Kind: VerticalCursorBuffer, Up: up, Down: down})
			i = j
		case isHorizontal(e):
			j := i
			left, right := 0, 0
			for j < len(events) && isHorizontal(events[j]) {
				if events[j].Key == term.KeyArrowLeft {
					left++
				} else {
					right++
				}
				j++
			}
			out = append(out, WrappedEvent{Kind: HorizontalCursorBuffer, Left: left, Right: right})
			i = j
		default:
			j := i + 1
			for j < len(events) && sameOthersKind(events[j], e) {
				j++
			}
			out = append(out, WrappedEvent{Kind: Others, Event: e, Count: j - i})
			i = j
		}
	}
	return out
}
