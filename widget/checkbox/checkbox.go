// Package checkbox layers a picked-index set on top of a listbox, so
// navigation and "is this one checked" are independent concerns.
//
// Grounded on original_source/promkit/src/core/checkbox.rs: Checkbox
// wraps a Listbox plus a HashSet<usize> of picked indexes.
package checkbox

import (
	"duskline/grapheme"
	"duskline/pane"
	"duskline/style"
	"duskline/widget/listbox"
)

// Checkbox is a listbox where any subset of items can be picked
// independently of which one is currently focused.
type Checkbox struct {
	list   *listbox.Listbox
	picked map[int]struct{}
}

// New builds a Checkbox over lines with nothing picked.
func New(lines []string, cyclic bool) *Checkbox {
	return &Checkbox{list: listbox.New(lines, cyclic), picked: make(map[int]struct{})}
}

// NewWithChecked builds a Checkbox with the given indexes pre-picked.
func NewWithChecked(lines []string, cyclic bool, checked []int) *Checkbox {
	c := New(lines, cyclic)
	for _, i := range checked {
		c.picked[i] = struct{}{}
	}
	return c
}

// Items returns every line.
func (c *Checkbox) Items() []string { return c.list.Items() }

// Position returns the index of the currently focused line.
func (c *Checkbox) Position() int { return c.list.Position() }

// Toggle flips the picked state of the currently focused line.
func (c *Checkbox) Toggle() {
	pos := c.list.Position()
	if _, ok := c.picked[pos]; ok {
		delete(c.picked, pos)
	} else {
		c.picked[pos] = struct{}{}
	}
}

// PickedIndexes returns every picked index, in ascending order.
func (c *Checkbox) PickedIndexes() []int {
	out := make([]int, 0, len(c.picked))
	for i := range c.picked {
		out = append(out, i)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// PickedItems returns the text of every picked line, in index order.
func (c *Checkbox) PickedItems() []string {
	items := c.Items()
	out := make([]string, 0, len(c.picked))
	for _, i := range c.PickedIndexes() {
		out = append(out, items[i])
	}
	return out
}

// Backward/Forward/MoveToHead/MoveToTail delegate to the underlying
// listbox; picked state is unaffected by focus movement.
func (c *Checkbox) Backward() bool { return c.list.Backward() }
func (c *Checkbox) Forward() bool  { return c.list.Forward() }
func (c *Checkbox) MoveToHead()    { c.list.MoveToHead() }
func (c *Checkbox) MoveToTail()    { c.list.MoveToTail() }

// Render lays the checkbox out, prefixing each line with a mark
// reflecting its picked state, highlighting the focused line with
// selected.
func (c *Checkbox) Render(height int, normal, selected style.Style, checkedPrefix, uncheckedPrefix string) pane.Pane {
	items := c.list.Items()
	start, end := c.list.ViewportRange(height)
	rows := make([]grapheme.Sequence, 0, end-start)
	for i := start; i < end; i++ {
		prefix := uncheckedPrefix
		if _, ok := c.picked[i]; ok {
			prefix = checkedPrefix
		}
		st := normal
		if i == c.Position() {
			st = selected
		}
		rows = append(rows, grapheme.FromString(prefix+items[i], st))
	}
	return pane.New(rows, 0)
}
