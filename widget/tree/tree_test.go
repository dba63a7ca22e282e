package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"duskline/style"
)

func sampleTree() *Node {
	return NewNode("root",
		NewNode("a", NewNode("a1"), NewNode("a2")),
		NewNode("b"),
	)
}

func TestVisibleRowsIncludesAllWhenExpanded(t *testing.T) {
	tr := New(sampleTree())
	p := tr.Render(10, style.Style{}, style.Style{}, 2, "- ", "+ ")
	assert.Len(t, p.Layout, 5) // root, a, a1, a2, b
}

func TestToggleCollapsesChildren(t *testing.T) {
	tr := New(sampleTree())
	tr.Forward() // focus "a"
	assert.Equal(t, "a", tr.Current().Label)
	tr.Toggle()
	p := tr.Render(10, style.Style{}, style.Style{}, 2, "- ", "+ ")
	// root, a (collapsed), b -- a1/a2 hidden
	assert.Len(t, p.Layout, 3)
}

func TestToggleOnLeafIsNoOp(t *testing.T) {
	tr := New(sampleTree())
	tr.Forward()
	tr.Forward() // focus "a1", a leaf
	assert.Equal(t, "a1", tr.Current().Label)
	tr.Toggle()
	assert.Equal(t, "a1", tr.Current().Label)
}

func TestForwardSkipsNothingWhenExpanded(t *testing.T) {
	tr := New(sampleTree())
	labels := []string{}
	for {
		labels = append(labels, tr.Current().Label)
		if !tr.Forward() {
			break
		}
	}
	assert.Equal(t, []string{"root", "a", "a1", "a2", "b"}, labels)
}

func TestGetReturnsAncestorIDPath(t *testing.T) {
	root := sampleTree()
	tr := New(root)
	tr.Forward() // "a"
	tr.Forward() // "a1"
	ids := tr.Get()
	assert.Equal(t, []string{root.ID, root.Children[0].ID, root.Children[0].Children[0].ID}, ids)
}

func TestForwardSkipsCollapsedInterior(t *testing.T) {
	tr := New(sampleTree())
	tr.Forward() // "a"
	tr.Toggle()  // collapse a
	labels := []string{}
	tr.MoveToHead()
	for {
		labels = append(labels, tr.Current().Label)
		if !tr.Forward() {
			break
		}
	}
	assert.Equal(t, []string{"root", "a", "b"}, labels)
}
