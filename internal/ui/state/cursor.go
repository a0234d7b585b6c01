package state

// Cursor tracks the selected row and viewport offset of the entry list.
type Cursor struct {
	Pos            int
	ViewportOffset int
}

// Clamp constrains the cursor to a list of n rows.
func (c *Cursor) Clamp(n int) {
	if n <= 0 {
		c.Pos = 0
		c.ViewportOffset = 0
		return
	}
	if c.Pos < 0 {
		c.Pos = 0
	}
	if c.Pos >= n {
		c.Pos = n - 1
	}
}

// Move shifts the cursor by delta within a list of n rows and reports
// whether it moved.
func (c *Cursor) Move(delta, n int) bool {
	if n <= 0 {
		c.Pos = 0
		return false
	}
	old := c.Pos
	c.Clamp(n)
	c.Pos += delta
	if c.Pos < 0 {
		c.Pos = 0
	}
	if c.Pos >= n {
		c.Pos = n - 1
	}
	return c.Pos != old
}

// Home moves the cursor to the first row.
func (c *Cursor) Home(n int) bool {
	if n <= 0 {
		c.Pos = 0
		return false
	}
	old := c.Pos
	c.Pos = 0
	return old != c.Pos
}

// End moves the cursor to the last row.
func (c *Cursor) End(n int) bool {
	if n <= 0 {
		c.Pos = 0
		return false
	}
	old := c.Pos
	c.Pos = n - 1
	return old != c.Pos
}

// EnsureVisible adjusts the viewport offset so the cursor stays on screen
// given maxVisible rows.
func (c *Cursor) EnsureVisible(n, maxVisible int) {
	if n <= 0 {
		c.Pos = 0
		c.ViewportOffset = 0
		return
	}
	c.Clamp(n)
	if maxVisible <= 0 {
		c.ViewportOffset = 0
		return
	}
	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.ViewportOffset > maxOffset {
		c.ViewportOffset = maxOffset
	}
	if c.ViewportOffset < 0 {
		c.ViewportOffset = 0
	}
	if c.Pos < c.ViewportOffset {
		c.ViewportOffset = c.Pos
	}
	if upper := c.ViewportOffset + maxVisible - 1; c.Pos > upper {
		c.ViewportOffset = c.Pos - maxVisible + 1
		if c.ViewportOffset > maxOffset {
			c.ViewportOffset = maxOffset
		}
		if c.ViewportOffset < 0 {
			c.ViewportOffset = 0
		}
	}
}
