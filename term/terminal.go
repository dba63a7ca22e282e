package term

import (
	"fmt"
	"io"
	"strings"

	"duskline/pane"
)

// Terminal redraws a set of panes in place using an anchor position
// rather than a full-screen alternate buffer, so scrollback above the
// prompt is never touched.
//
// Grounded on original_source/promkit/src/terminal.rs: start_session
// reserves vertical space once, then draw() repeatedly returns to that
// anchor and reprints, scrolling the anchor down a line at a time only
// when a pane needs more room than was reserved.
type Terminal struct {
	out io.Writer
	// anchorRows is how many screen rows are currently occupied below
	// the anchor, i.e. how far draw must move up before reprinting.
	anchorRows int
}

// NewTerminal wraps the writer draw sessions print to (normally
// os.Stdout).
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{out: w}
}

// StartSession reserves enough lines for every row of every pane,
// starting at the cursor's line, and leaves the cursor back on that
// first line, without disturbing anything already printed above it.
func (t *Terminal) StartSession(panes []pane.Pane) {
	n := 0
	for _, p := range panes {
		n += len(p.Layout)
	}
	if n > 1 {
		fmt.Fprint(t.out, strings.Repeat("\n", n-1))
		fmt.Fprintf(t.out, "\x1b[%dA", n-1)
	}
	t.anchorRows = 0
}

// Draw returns to the anchor and reprints every pane, each clipped to
// its fair share of height. Panes drawn earlier are squeezed so later
// panes always get at least one row; if height is smaller than the
// number of visible panes, only a warning line is printed: no pane is
// drawn and the anchor is left as it was.
func (t *Terminal) Draw(panes []pane.Pane, height int) {
	viewable := nonEmptyIndices(panes)
	if len(viewable) > 0 && height < len(viewable) {
		fmt.Fprintln(t.out, "\x1b[2Kwarning: terminal too short to display all panes")
		return
	}

	if t.anchorRows > 0 {
		fmt.Fprintf(t.out, "\x1b[%dA", t.anchorRows)
	}
	fmt.Fprint(t.out, "\r")

	used := 0
	for i, idx := range viewable {
		remainingAfter := len(viewable) - 1 - i
		maxRows := height - used - remainingAfter
		if maxRows < 1 {
			maxRows = 1
		}
		rows := panes[idx].Extract(maxRows)
		for _, row := range rows {
			fmt.Fprint(t.out, "\x1b[2K")
			fmt.Fprint(t.out, row.StyledDisplay(true, true))
			fmt.Fprint(t.out, "\r\n")
			used++
		}
	}

	if used < t.anchorRows {
		extra := t.anchorRows - used
		for i := 0; i < extra; i++ {
			fmt.Fprint(t.out, "\x1b[2K\r\n")
		}
		fmt.Fprintf(t.out, "\x1b[%dA", extra)
	}
	t.anchorRows = used
}

// EndSession moves the cursor past the anchored block, so subsequent
// normal output (or program exit) doesn't overwrite it.
func (t *Terminal) EndSession() {
	if t.anchorRows > 0 {
		fmt.Fprintf(t.out, "\x1b[%dB", t.anchorRows)
	}
	fmt.Fprint(t.out, "\r")
}

func nonEmptyCount(panes []pane.Pane) int {
	n := 0
	for _, p := range panes {
		if !p.IsEmpty() {
			n++
		}
	}
	return n
}

func nonEmptyIndices(panes []pane.Pane) []int {
	var out []int
	for i, p := range panes {
		if !p.IsEmpty() {
			out = append(out, i)
		}
	}
	return out
}
