// Package cursor implements a generic position over an indexable
// collection, with optional wraparound.
//
// Grounded on original_source/promkit-widgets/src/cursor.rs.
package cursor

// Lenable is any collection a Cursor can walk: it only needs to report
// how many positions it has.
type Lenable interface {
	Len() int
}

// Cursor tracks a position within a Lenable collection of type C. When
// Cyclic is true, shifting past either end wraps around; otherwise a
// shift that would move out of bounds is rejected and the position is
// left unchanged.
type Cursor[C Lenable] struct {
	Contents C
	position int
	Cyclic   bool
}

// New builds a Cursor at position 0, whether or not contents is empty.
func New[C Lenable](contents C, cyclic bool) *Cursor[C] {
	c := &Cursor[C]{Contents: contents, Cyclic: cyclic}
	if n := contents.Len(); n > 0 {
		c.position = 0
	}
	return c
}

// Position returns the current index.
func (c *Cursor[C]) Position() int {
	return c.position
}

// IsHead reports whether the cursor sits at index 0.
func (c *Cursor[C]) IsHead() bool {
	return c.position == 0
}

// IsTail reports whether the cursor sits at the last valid index.
func (c *Cursor[C]) IsTail() bool {
	n := c.Contents.Len()
	if n == 0 {
		return true
	}
	return c.position == n-1
}

// MoveToHead resets the position to 0.
func (c *Cursor[C]) MoveToHead() {
	c.position = 0
}

// MoveToTail moves the position to the last valid index.
func (c *Cursor[C]) MoveToTail() {
	if n := c.Contents.Len(); n > 0 {
		c.position = n - 1
	} else {
		c.position = 0
	}
}

// MoveTo jumps directly to pos if it is within range, reporting whether
// the move happened.
func (c *Cursor[C]) MoveTo(pos int) bool {
	n := c.Contents.Len()
	if pos < 0 || (n > 0 && pos >= n) || (n == 0 && pos != 0) {
		return false
	}
	c.position = pos
	return true
}

// Shift moves backward positions back and then forward positions
// forward. In cyclic mode this always succeeds, wrapping modulo the
// collection length. In non-cyclic mode it fails (leaving position
// untouched) if the backward step would go below 0 or the forward step
// would reach or pass the end.
func (c *Cursor[C]) Shift(backward, forward int) bool {
	n := c.Contents.Len()
	if n == 0 {
		return false
	}
	if c.Cyclic {
		delta := forward - backward
		next := ((c.position+delta)%n + n) % n
		c.position = next
		return true
	}
	if backward > c.position {
		return false
	}
	next := c.position - backward
	if next+forward >= n {
		return false
	}
	c.position = next + forward
	return true
}

// Backward moves one position back.
func (c *Cursor[C]) Backward() bool {
	return c.Shift(1, 0)
}

// Forward moves one position ahead.
func (c *Cursor[C]) Forward() bool {
	return c.Shift(0, 1)
}

// ViewportRange returns the [start, end) window of height positions
// centered so the cursor stays visible, clamped to the collection's
// bounds. Used by widgets to compute which slice of Contents to hand to
// a pane.
func (c *Cursor[C]) ViewportRange(height int) (start, end int) {
	n := c.Contents.Len()
	if height <= 0 || n == 0 {
		return 0, 0
	}
	if n <= height {
		return 0, n
	}
	start = c.position - height/2
	if start < 0 {
		start = 0
	}
	end = start + height
	if end > n {
		end = n
		start = end - height
	}
	return start, end
}
