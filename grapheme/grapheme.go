// Package grapheme implements the display-layer primitives spec'd in
// spec.md §3/§4.1: a styled character carrying its own Unicode display
// width, and an ordered sequence of them supporting the matrixify/trim/
// highlight contracts the rest of the toolkit is built on.
//
// Grounded on original_source/promkit/src/grapheme.rs and
// promkit/src/grapheme/styled.rs; display width is computed with
// github.com/mattn/go-runewidth rather than a hand-rolled table.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"duskline/style"
)

// Grapheme is a single character carrying its own display width and
// style. Zero-width graphemes (width 0) are retained in a sequence but
// never contribute to layout math.
type Grapheme struct {
	Char  rune
	Width int
	Style style.Style
}

// NewGrapheme builds a Grapheme, computing its display width from
// Unicode width tables.
func NewGrapheme(ch rune, st style.Style) Grapheme {
	return Grapheme{Char: ch, Width: runewidth.RuneWidth(ch), Style: st}
}

// Sequence is an ordered, mutable sequence of styled graphemes. The
// invariant maintained throughout this package: Widths() always equals
// the sum of each element's Width field — no element is ever split.
type Sequence []Grapheme

// FromString builds a Sequence with one Grapheme per rune of s, all
// sharing st.
func FromString(s string, st style.Style) Sequence {
	runes := []rune(s)
	seq := make(Sequence, len(runes))
	for i, r := range runes {
		seq[i] = NewGrapheme(r, st)
	}
	return seq
}

// Concat flattens a list of sequences into one, in order. Grounded on
// StyledGraphemes's FromIterator<StyledGraphemes> impl.
func Concat(seqs ...Sequence) Sequence {
	total := 0
	for _, s := range seqs {
		total += len(s)
	}
	out := make(Sequence, 0, total)
	for _, s := range seqs {
		out = append(out, s...)
	}
	return out
}

// String renders the sequence's characters without any styling.
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, g := range s {
		b.WriteRune(g.Char)
	}
	return b.String()
}

// Widths returns the total display-column cost of the sequence.
func (s Sequence) Widths() int {
	total := 0
	for _, g := range s {
		total += g.Width
	}
	return total
}

// Clone returns an independent copy; mutating one leaves the other
// untouched.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// ApplyStyle returns a copy with st applied to every grapheme.
func (s Sequence) ApplyStyle(st style.Style) Sequence {
	out := s.Clone()
	for i := range out {
		out[i].Style = st
	}
	return out
}

// ApplyStyleAt returns a copy with st applied to the grapheme at idx, if
// idx is in range; otherwise it is a no-op copy.
func (s Sequence) ApplyStyleAt(idx int, st style.Style) Sequence {
	out := s.Clone()
	if idx >= 0 && idx < len(out) {
		out[idx].Style = st
	}
	return out
}

// ApplyAttribute ORs a single boolean attribute (selected via fn) onto
// every grapheme's style, returning a copy.
func ApplyAttribute(s Sequence, fn func(*style.Style)) Sequence {
	out := s.Clone()
	for i := range out {
		fn(&out[i].Style)
	}
	return out
}

// ReplaceRange replaces s[start:end] with the graphemes of replacement,
// in place.
func (s *Sequence) ReplaceRange(start, end int, replacement string, st style.Style) {
	if start < 0 {
		start = 0
	}
	if end > len(*s) {
		end = len(*s)
	}
	if start > end {
		start = end
	}
	repl := FromString(replacement, st)
	tail := append(Sequence{}, (*s)[end:]...)
	*s = append((*s)[:start], append(repl, tail...)...)
}

// FindAll returns every start index at which query matches character by
// character, including overlapping matches (it advances one position
// after every hit, not past the match). An empty query yields no
// matches.
func (s Sequence) FindAll(query string) []int {
	q := []rune(query)
	if len(q) == 0 {
		return nil
	}
	var out []int
	for pos := 0; pos+len(q) <= len(s); pos++ {
		matched := true
		for i, qc := range q {
			if s[pos+i].Char != qc {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, pos)
		}
	}
	return out
}

// Highlight applies st to every occurrence of query (per FindAll),
// returning the modified copy and true. If query is empty or has no
// match, it returns the receiver unchanged and false so callers can skip
// a clone.
func (s Sequence) Highlight(query string, st style.Style) (Sequence, bool) {
	indices := s.FindAll(query)
	if len(indices) == 0 {
		return s, false
	}
	qlen := len([]rune(query))
	out := s.Clone()
	for _, start := range indices {
		for i := start; i < start+qlen && i < len(out); i++ {
			out[i].Style = st
		}
	}
	return out, true
}

// Trim returns the longest prefix of s whose cumulative width never
// exceeds width. No ellipsis is added.
func (s Sequence) Trim(width int) Sequence {
	total := 0
	cut := len(s)
	for i, g := range s {
		if total+g.Width > width {
			cut = i
			break
		}
		total += g.Width
	}
	return s[:cut].Clone()
}

// Matrixify splits s into rows no wider than width, then pages those rows
// by height, selecting the page containing offset. It returns the rows of
// the selected page and the offset reduced modulo height — the local
// scroll position within that page.
//
// A grapheme wider than width is dropped rather than split, so a single
// over-wide grapheme can never force an infinite loop. Fails gracefully
// on empty input: returns (nil, 0).
func (s Sequence) Matrixify(width, height, offset int) (rows []Sequence, localOffset int) {
	var all []Sequence
	var row Sequence
	for _, g := range s {
		current := row.Widths()
		if len(row) > 0 && width < current+g.Width {
			all = append(all, row)
			row = nil
		}
		if g.Width <= width {
			row = append(row, g)
		}
	}
	if len(row) > 0 {
		all = append(all, row)
	}
	if len(all) == 0 {
		return nil, 0
	}

	pageCount := (len(all) + height - 1) / height
	pageIndex := offset / height
	if pageIndex > pageCount-1 {
		pageIndex = pageCount - 1
	}
	if pageIndex < 0 {
		pageIndex = 0
	}

	start := pageIndex * height
	end := start + height
	if end > len(all) {
		end = len(all)
	}

	return append([]Sequence{}, all[start:end]...), offset % height
}
