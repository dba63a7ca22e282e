package markup

import (
	"regexp"
	"strings"

	"duskline/style"
)

var (
	headerBlockRe = regexp.MustCompile(`^(\#{1,6})[ \t]+(.+)`)
	hrBlockRe     = regexp.MustCompile(`^(\*{3,}|-{3,}|_{3,})$`)
	listBlockRe   = regexp.MustCompile(`^([ \t]*)([*+-]|\d+\.)[ \t]+(.+)`)
	quoteBlockRe  = regexp.MustCompile(`^>[ \t]*(.+)`)
	codeFenceRe   = regexp.MustCompile("^```(.*)")

	inlineTokenRe = regexp.MustCompile(`(\*\*.+?\*\*)|(\*.+?\*)|(__.+?__)|(~~.+?~~)|(!?#[a-zA-Z0-9]{3,8}\(.+?\))`)
)

// Parse parses input into an AST rooted at NodeRoot.
func Parse(input string) *Node {
	root := NewNode(NodeRoot)
	lines := strings.Split(input, "\n")

	var currentList *Node
	var inCodeBlock bool
	var codeBlockLang string
	var codeBlockContent strings.Builder

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if matches := codeFenceRe.FindStringSubmatch(trimmed); matches != nil {
			if inCodeBlock {
				node := NewNode(NodeCodeBlock)
				node.Content = codeBlockContent.String()
				node.Lang = codeBlockLang
				root.AddChild(node)
				codeBlockContent.Reset()
				inCodeBlock = false
				codeBlockLang = ""
			} else {
				inCodeBlock = true
				codeBlockLang = strings.TrimSpace(matches[1])
			}
			continue
		}
		if inCodeBlock {
			codeBlockContent.WriteString(line + "\n")
			continue
		}

		if matches := listBlockRe.FindStringSubmatch(line); matches != nil {
			if currentList == nil {
				currentList = NewNode(NodeList)
				root.AddChild(currentList)
			}
			item := NewNode(NodeListItem)
			item.Children = parseInline(matches[3])
			currentList.AddChild(item)
			continue
		} else if trimmed != "" {
			currentList = nil
		}

		if matches := headerBlockRe.FindStringSubmatch(line); matches != nil {
			level := len(matches[1])
			content := matches[2]

			st := style.Style{Bold: true}
			if level == 1 {
				st.Reverse = true
			} else if level == 2 {
				st.Underline = true
			}

			node := NewNode(NodeHeader)
			node.Style = st
			node.Children = parseInline(content)
			root.AddChild(node)
			continue
		}

		if hrBlockRe.MatchString(trimmed) {
			root.AddChild(NewNode(NodeHR))
			continue
		}

		if matches := quoteBlockRe.FindStringSubmatch(line); matches != nil {
			node := NewNode(NodeQuote)
			node.Children = parseInline(matches[1])
			root.AddChild(node)
			continue
		}

		if trimmed == "" {
			root.AddChild(NewNode(NodeText))
			continue
		}

		node := NewNode(NodeBlock)
		node.Children = parseInline(line)
		root.AddChild(node)
	}

	return root
}

func parseInline(text string) []*Node {
	var nodes []*Node

	lastIndex := 0
	matches := inlineTokenRe.FindAllStringIndex(text, -1)

	for _, match := range matches {
		start, end := match[0], match[1]

		if start > lastIndex {
			nodes = append(nodes, &Node{Type: NodeText, Content: text[lastIndex:start]})
		}

		token := text[start:end]

		switch {
		case strings.HasPrefix(token, "**"):
			styleNode := NewNode(NodeStyle)
			styleNode.Style = style.Style{Bold: true}
			styleNode.Children = parseInline(token[2 : len(token)-2])
			nodes = append(nodes, styleNode)
		case strings.HasPrefix(token, "__"):
			styleNode := NewNode(NodeStyle)
			styleNode.Style = style.Style{Underline: true}
			styleNode.Children = parseInline(token[2 : len(token)-2])
			nodes = append(nodes, styleNode)
		case strings.HasPrefix(token, "~~"):
			styleNode := NewNode(NodeStyle)
			styleNode.Style = style.Style{Strike: true}
			styleNode.Children = parseInline(token[2 : len(token)-2])
			nodes = append(nodes, styleNode)
		case strings.HasPrefix(token, "*"):
			styleNode := NewNode(NodeStyle)
			styleNode.Style = style.Style{Italic: true}
			styleNode.Children = parseInline(token[1 : len(token)-1])
			nodes = append(nodes, styleNode)
		case strings.Contains(token, "#"):
			isBg := strings.HasPrefix(token, "!")
			startParen := strings.Index(token, "(")
			endParen := strings.LastIndex(token, ")")
			if startParen > -1 && endParen > startParen {
				colorName := token[1:startParen]
				if isBg {
					colorName = token[2:startParen]
				}
				content := token[startParen+1 : endParen]

				styleNode := NewNode(NodeStyle)
				if isBg {
					styleNode.Style = style.Style{BgColor: style.BgColorCode(colorName)}
				} else {
					styleNode.Style = style.Style{Color: style.ColorCode(colorName)}
				}
				styleNode.Children = parseInline(content)
				nodes = append(nodes, styleNode)
			} else {
				nodes = append(nodes, &Node{Type: NodeText, Content: token})
			}
		}

		lastIndex = end
	}

	if lastIndex < len(text) {
		nodes = append(nodes, &Node{Type: NodeText, Content: text[lastIndex:]})
	}

	return nodes
}
