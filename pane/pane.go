// Package pane implements the scrollable rectangle of already-laid-out
// rows each widget renders into before the terminal driver draws it.
//
// Grounded on original_source/promkit-core/src/pane.rs.
package pane

import "duskline/grapheme"

// Pane is a bounded, independently-scrollable block of rows. Layout is
// produced once by a widget's render step; Extract reads Offset to pick
// the window of rows for a given viewport height, without changing Offset
// or re-laying anything out.
type Pane struct {
	Layout []grapheme.Sequence
	Offset int
}

// New wraps layout rows at the given scroll offset.
func New(layout []grapheme.Sequence, offset int) Pane {
	return Pane{Layout: layout, Offset: offset}
}

// IsEmpty reports whether the pane has no rows to draw.
func (p Pane) IsEmpty() bool {
	return len(p.Layout) == 0
}

// VisibleRowCount returns how many rows the pane occupies once clipped to
// viewportHeight.
func (p Pane) VisibleRowCount(viewportHeight int) int {
	if len(p.Layout) < viewportHeight {
		return len(p.Layout)
	}
	return viewportHeight
}

// Extract returns the window of rows the terminal should draw for this
// pane, given the space it has been allotted. It never leaves the window
// short by scrolling past the end: if offset pushes the window past
// len(Layout), the window slides back to show the last viewportHeight
// rows instead.
func (p Pane) Extract(viewportHeight int) []grapheme.Sequence {
	lines := len(p.Layout)
	if viewportHeight < lines {
		lines = viewportHeight
	}
	start := p.Offset
	end := start + lines
	if end > len(p.Layout) {
		end = len(p.Layout)
		start = end - lines
		if start < 0 {
			start = 0
		}
	}
	out := make([]grapheme.Sequence, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, p.Layout[i])
	}
	return out
}
