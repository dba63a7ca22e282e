package term

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"duskline/grapheme"
	"duskline/pane"
	"duskline/style"
)

func seqRows(lines ...string) []grapheme.Sequence {
	out := make([]grapheme.Sequence, len(lines))
	for i, l := range lines {
		out[i] = grapheme.FromString(l, style.Style{})
	}
	return out
}

func TestStartSessionReservesLinesForNonEmptyPanes(t *testing.T) {
	var buf bytes.Buffer
	tm := NewTerminal(&buf)
	panes := []pane.Pane{
		pane.New(seqRows("a"), 0),
		pane.New(seqRows("b", "c"), 0),
	}
	tm.StartSession(panes)
	assert.Equal(t, 0, tm.anchorRows)
	assert.Contains(t, buf.String(), "\n\n")
}

func TestDrawWritesEachVisiblePane(t *testing.T) {
	var buf bytes.Buffer
	tm := NewTerminal(&buf)
	panes := []pane.Pane{pane.New(seqRows("hello"), 0)}
	tm.Draw(panes, 10)
	assert.Contains(t, buf.String(), "hello")
	assert.Equal(t, 1, tm.anchorRows)
}

func TestDrawSkipsEmptyPanes(t *testing.T) {
	var buf bytes.Buffer
	tm := NewTerminal(&buf)
	panes := []pane.Pane{pane.New(nil, 0), pane.New(seqRows("visible"), 0)}
	tm.Draw(panes, 10)
	assert.Contains(t, buf.String(), "visible")
}

func TestDrawWarnsWhenTooShort(t *testing.T) {
	var buf bytes.Buffer
	tm := NewTerminal(&buf)
	panes := []pane.Pane{
		pane.New(seqRows("alpha"), 0),
		pane.New(seqRows("beta"), 0),
	}
	// Prime the anchor with a prior, successful draw so we can assert
	// the too-short Draw below leaves it untouched.
	tm.Draw(panes, 10)
	buf.Reset()
	tm.anchorRows = 7

	tm.Draw(panes, 1)
	assert.Contains(t, buf.String(), "warning")
	assert.NotContains(t, buf.String(), "alpha")
	assert.NotContains(t, buf.String(), "beta")
	assert.Equal(t, 7, tm.anchorRows)
}

func TestDrawShrinksAnchorWhenContentGetsShorter(t *testing.T) {
	var buf bytes.Buffer
	tm := NewTerminal(&buf)
	tm.Draw([]pane.Pane{pane.New(seqRows("one", "two", "three"), 0)}, 10)
	assert.Equal(t, 3, tm.anchorRows)
	buf.Reset()
	tm.Draw([]pane.Pane{pane.New(seqRows("one"), 0)}, 10)
	assert.Equal(t, 1, tm.anchorRows)
}
