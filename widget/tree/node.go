package tree

import "github.com/google/uuid"

// Node is one entry in a rooted, collapsible tree: a file in a
// directory tree, a key in a nested object, etc. ID is minted once at
// construction and never changes, so a node can be re-identified after
// its siblings are reordered or its ancestors collapse/expand.
//
// Grounded on original_source/promkit/src/core/tree.rs's Node type.
type Node struct {
	ID       string
	Label    string
	Children []*Node
	Expanded bool
}

// NewNode builds a leaf or branch node. Branches start expanded so a
// freshly built tree shows everything, matching the teacher's default.
func NewNode(label string, children ...*Node) *Node {
	return &Node{ID: uuid.NewString(), Label: label, Children: children, Expanded: true}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// row is one flattened, visible line: the node itself plus its nesting
// depth and the path of ancestor indexes that reaches it (walked by
// Tree.Get).
type row struct {
	node  *Node
	depth int
	path  []int
}

// visibleRows walks n depth-first, emitting a row for n itself and,
// if n.Expanded (or n has no children), recursing into its children.
// Collapsed branches contribute only their own row.
func visibleRows(n *Node, depth int, path []int, out *[]row) {
	*out = append(*out, row{node: n, depth: depth, path: append([]int{}, path...)})
	if !n.Expanded {
		return
	}
	for i, child := range n.Children {
		visibleRows(child, depth+1, append(path, i), out)
	}
}
