package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHeaderLevelOneIsReversed(t *testing.T) {
	root := Parse("# Title")
	assert.Len(t, root.Children, 1)
	assert.Equal(t, NodeHeader, root.Children[0].Type)
	assert.True(t, root.Children[0].Style.Reverse)
}

func TestParseBoldSpan(t *testing.T) {
	root := Parse("this is **bold** text")
	block := root.Children[0]
	assert.Equal(t, NodeBlock, block.Type)
	var found bool
	for _, c := range block.Children {
		if c.Type == NodeStyle && c.Style.Bold {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParseListItems(t *testing.T) {
	root := Parse("- one\n- two")
	assert.Len(t, root.Children, 1)
	assert.Equal(t, NodeList, root.Children[0].Type)
	assert.Len(t, root.Children[0].Children, 2)
}

func TestParseCodeFence(t *testing.T) {
	root := Parse("```go\nfmt.Println(1)\n```")
	assert.Equal(t, NodeCodeBlock, root.Children[0].Type)
	assert.Equal(t, "go", root.Children[0].Lang)
}

func TestParseHorizontalRule(t *testing.T) {
	root := Parse("---")
	assert.Equal(t, NodeHR, root.Children[0].Type)
}

func TestParseColorSpan(t *testing.T) {
	root := Parse("#red(alert)")
	block := root.Children[0]
	found := false
	for _, c := range block.Children {
		if c.Type == NodeStyle && c.Style.Color != "" {
			found = true
		}
	}
	assert.True(t, found)
}
