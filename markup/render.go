package markup

import (
	"strings"

	"duskline/grapheme"
	"duskline/style"
)

// Render walks the AST rooted at root and produces one grapheme.Sequence
// per visual line, ready to hand to a pane.
func Render(root *Node, width int) []grapheme.Sequence {
	var rows []grapheme.Sequence
	for _, child := range root.Children {
		rows = append(rows, renderBlock(child, style.Style{}, width)...)
	}
	return rows
}

func renderBlock(n *Node, inherited style.Style, width int) []grapheme.Sequence {
	switch n.Type {
	case NodeText:
		if n.Content == "" {
			return []grapheme.Sequence{{}}
		}
		return []grapheme.Sequence{grapheme.FromString(n.Content, style.Merge(inherited, n.Style))}

	case NodeHeader, NodeBlock:
		return []grapheme.Sequence{renderInline(n.Children, style.Merge(inherited, n.Style))}

	case NodeQuote:
		line := grapheme.Concat(
			grapheme.FromString("> ", inherited),
			renderInline(n.Children, inherited),
		)
		return []grapheme.Sequence{line}

	case NodeHR:
		return []grapheme.Sequence{grapheme.FromString(strings.Repeat("─", width), inherited)}

	case NodeList:
		var rows []grapheme.Sequence
		for _, item := range n.Children {
			line := grapheme.Concat(
				grapheme.FromString("- ", inherited),
				renderInline(item.Children, inherited),
			)
			rows = append(rows, line)
		}
		return rows

	case NodeCodeBlock:
		var rows []grapheme.Sequence
		spans := Highlight(strings.TrimSuffix(n.Content, "\n"), n.Lang)
		var line grapheme.Sequence
		for _, span := range spans {
			for _, part := range strings.Split(span.Text, "\n") {
				line = append(line, grapheme.FromString(part, span.Style)...)
				if strings.Contains(span.Text, "\n") {
					rows = append(rows, line)
					line = nil
				}
			}
		}
		if len(line) > 0 || len(rows) == 0 {
			rows = append(rows, line)
		}
		return rows

	default:
		return nil
	}
}

func renderInline(nodes []*Node, inherited style.Style) grapheme.Sequence {
	var out grapheme.Sequence
	for _, n := range nodes {
		switch n.Type {
		case NodeStyle:
			out = append(out, renderInline(n.Children, style.Merge(inherited, n.Style))...)
		default:
			out = append(out, grapheme.FromString(n.Content, inherited)...)
		}
	}
	return out
}
