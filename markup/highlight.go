package markup

import (
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"

	"duskline/style"
)

// Span is one run of code text sharing a single style, as produced by a
// lexer pass over a fenced code block.
type Span struct {
	Text  string
	Style style.Style
}

// Highlight tokenizes code as lang (falling back to a generic lexer if
// lang is empty or unknown) and maps each token's category to a fixed
// ANSI color, rather than trying to approximate chroma's RGB theme
// colors in a 16-color terminal.
//
// Grounded on
// _examples/AhnafCodes-basementui/go/tui/highlight_chroma.go (there
// built behind a "chroma" build tag; promoted here to the default path
// since fenced code blocks are now a first-class part of the markup
// language).
func Highlight(code, lang string) []Span {
	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return []Span{{Text: code, Style: style.Style{Dim: true}}}
	}

	_ = styles.Fallback // style theme selection left to the category map below

	var spans []Span
	for _, token := range iterator.Tokens() {
		bs := style.Style{}
		switch token.Type.Category() {
		case chroma.Keyword:
			bs.Color = style.ColorCode("magenta")
			bs.Bold = true
		case chroma.Name:
			bs.Color = style.ColorCode("white")
		case chroma.LiteralString:
			bs.Color = style.ColorCode("green")
		case chroma.LiteralNumber:
			bs.Color = style.ColorCode("cyan")
		case chroma.Comment:
			bs.Color = style.ColorCode("grey")
			bs.Dim = true
		case chroma.Operator, chroma.Punctuation:
			bs.Color = style.ColorCode("white")
		}
		spans = append(spans, Span{Text: token.Value, Style: bs})
	}
	return spans
}
