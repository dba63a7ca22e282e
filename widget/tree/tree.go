// Package tree implements a collapsible tree widget: a cursor over the
// flattened list of currently-visible rows, recomputed whenever a branch
// is toggled.
//
// Grounded on original_source/promkit/src/core/tree.rs: Tree{root,
// cursor: Cursor<Vec<Kind>>}, where Kind there is the path-addressed
// flattened projection this package builds fresh on each structural
// change rather than keeping incrementally in sync.
package tree

import (
	"strings"

	"duskline/cursor"
	"duskline/grapheme"
	"duskline/pane"
	"duskline/style"
)

type rows []row

func (r rows) Len() int { return len(r) }

// Tree is a cursor over the currently-visible projection of a Node tree.
type Tree struct {
	root *Node
	cur  *cursor.Cursor[rows]
}

// New builds a Tree rooted at root.
func New(root *Node) *Tree {
	t := &Tree{root: root}
	t.refresh()
	return t
}

func (t *Tree) refresh() {
	var out []row
	visibleRows(t.root, 0, nil, &out)
	pos := 0
	if t.cur != nil {
		pos = t.cur.Position()
	}
	t.cur = cursor.New[rows](rows(out), false)
	if pos < len(out) {
		t.cur.MoveTo(pos)
	}
}

// Position returns the index of the focused row within the current
// visible projection.
func (t *Tree) Position() int { return t.cur.Position() }

// Current returns the node currently focused.
func (t *Tree) Current() *Node {
	if len(t.cur.Contents) == 0 {
		return nil
	}
	return t.cur.Contents[t.cur.Position()].node
}

// Get returns the path of ancestor ids ending in the focused node's
// own id, root first. Walks the focused row's recorded child-index
// path from t.root rather than storing ids on row directly.
func (t *Tree) Get() []string {
	if len(t.cur.Contents) == 0 {
		return nil
	}
	r := t.cur.Contents[t.cur.Position()]
	ids := make([]string, 0, len(r.path)+1)
	n := t.root
	ids = append(ids, n.ID)
	for _, idx := range r.path {
		n = n.Children[idx]
		ids = append(ids, n.ID)
	}
	return ids
}

// Toggle flips Expanded on the focused branch and recomputes the
// visible projection, preserving focus on the same row index (the
// toggled node itself never moves, only what follows it changes).
func (t *Tree) Toggle() {
	n := t.Current()
	if n == nil || n.IsLeaf() {
		return
	}
	n.Expanded = !n.Expanded
	t.refresh()
}

// Backward/Forward walk the visible projection.
func (t *Tree) Backward() bool { return t.cur.Backward() }
func (t *Tree) Forward() bool  { return t.cur.Forward() }
func (t *Tree) MoveToHead()    { t.cur.MoveToHead() }
func (t *Tree) MoveToTail()    { t.cur.MoveToTail() }

// Render lays the visible projection out into a Pane, indenting by
// depth*indentWidth spaces and marking collapsed/expanded branches with
// collapsedMark/expandedMark.
func (t *Tree) Render(height int, normal, selected style.Style, indentWidth int, collapsedMark, expandedMark string) pane.Pane {
	start, end := t.cur.ViewportRange(height)
	out := make([]grapheme.Sequence, 0, end-start)
	for i := start; i < end; i++ {
		r := t.cur.Contents[i]
		mark := ""
		if !r.node.IsLeaf() {
			if r.node.Expanded {
				mark = expandedMark
			} else {
				mark = collapsedMark
			}
		}
		line := strings.Repeat(" ", r.depth*indentWidth) + mark + r.node.Label
		st := normal
		if i == t.cur.Position() {
			st = selected
		}
		out = append(out, grapheme.FromString(line, st))
	}
	return pane.New(out, 0)
}
