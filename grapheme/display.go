package grapheme

import "strings"

// StyledDisplay renders s as a string with embedded ANSI escapes, resetting
// the style between graphemes whose style differs from the previous one.
// supportsItalic/supportsStrike let the caller degrade gracefully on
// terminals that lack those SGR codes, mirroring the teacher's Screen
// capability probe.
func (s Sequence) StyledDisplay(supportsItalic, supportsStrike bool) string {
	var b strings.Builder
	active := false
	var last Grapheme
	for _, g := range s {
		if !active || g.Style != last.Style {
			if active {
				b.WriteString(Reset)
			}
			if sgr := g.Style.SGR(supportsItalic, supportsStrike); sgr != "" {
				b.WriteString(sgr)
				active = true
			} else {
				active = false
			}
			last = g
		}
		b.WriteRune(g.Char)
	}
	if active {
		b.WriteString(Reset)
	}
	return b.String()
}

// Reset is re-exported here so callers of this package don't need to
// import duskline/style just to terminate a styled run.
const Reset = "\x1b[0m"
