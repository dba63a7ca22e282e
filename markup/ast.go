// Package markup parses the lightweight markdown-like label syntax used
// for widget titles, help text and listbox items (headers, bold/italic/
// underline/strikethrough spans, named-color spans, lists, blockquotes,
// fenced code blocks) and renders it straight to grapheme.Sequence rows.
//
// Grounded on _examples/AhnafCodes-basementui/go/basement/{ast,parser}.go:
// the %v placeholder/hole mechanism is dropped (labels here are static
// text, not printf-style templates); everything else carries over.
package markup

import "duskline/style"

// NodeType identifies the shape of a Node.
type NodeType int

const (
	NodeRoot NodeType = iota
	NodeText
	NodeStyle
	NodeBlock     // a plain paragraph line
	NodeHeader    // a "#"-prefixed line
	NodeList      // a list container
	NodeListItem  // one list entry
	NodeCodeBlock // a fenced ``` block
	NodeHR        // a "---" horizontal rule
	NodeQuote     // a ">"-prefixed line
)

// Node is one element of the parsed markup tree.
type Node struct {
	Type     NodeType
	Content  string // raw text for NodeText/NodeCodeBlock
	Lang     string // fence language tag for NodeCodeBlock
	Style    style.Style
	Children []*Node
}

// NewNode builds an empty Node of the given type.
func NewNode(typ NodeType) *Node {
	return &Node{Type: typ}
}

// AddChild appends child to n's children.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}
