package preset

import (
	"duskline/event"
	"duskline/pane"
	"duskline/style"
	"duskline/term"
	"duskline/widget/tree"
)

// Tree lets the user navigate and collapse a tree of nodes, picking one
// leaf or branch label, grounded on
// original_source/promkit/src/preset/tree.rs /
// promkit/src/core/tree.rs.
type Tree struct {
	t      *tree.Tree
	answer string
}

// NewTree builds a Tree preset rooted at root.
func NewTree(root *tree.Node) *Tree {
	return &Tree{t: tree.New(root)}
}

func (t *Tree) renderPane() pane.Pane {
	return t.t.Render(14, style.Style{}, style.Style{Reverse: true}, 2, "▸ ", "▾ ")
}

func (t *Tree) handle(we event.WrappedEvent) (bool, error) {
	switch we.Kind {
	case event.VerticalCursorBuffer:
		for i := 0; i < we.Up; i++ {
			t.t.Backward()
		}
		for i := 0; i < we.Down; i++ {
			t.t.Forward()
		}
	case event.HorizontalCursorBuffer:
		for i := 0; i < we.Left+we.Right; i++ {
			t.t.Toggle()
		}
	case event.Others:
		switch we.Event.Key {
		case term.KeyEnter:
			t.answer = t.t.Current().Label
			return true, nil
		case term.KeyHome:
			t.t.MoveToHead()
		case term.KeyEnd:
			t.t.MoveToTail()
		case term.KeyMouseScrollUp:
			t.t.Backward()
		case term.KeyMouseScrollDown:
			t.t.Forward()
		}
	}
	return false, nil
}

// Run displays the prompt and returns the selected node's label.
func (t *Tree) Run() (string, error) {
	p := New(t.renderPane, t.handle)
	if err := p.Run(); err != nil {
		return "", err
	}
	return t.answer, nil
}
