package parser

// Cursor is an explicit position over the input lines. It replaces the shared
// index the scanner would otherwise mutate across nested loops, so transitions
// can be exercised in isolation.
type Cursor struct {
	lines []string
	pos   int
}

// NewCursor wraps an in-memory line sequence.
func NewCursor(lines []string) *Cursor {
	return &Cursor{lines: lines}
}

// Next returns the current line and advances. The second return is false once
// the input is exhausted.
func (c *Cursor) Next() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	line := c.lines[c.pos]
	c.pos++
	return line, true
}

// Peek returns the current line without advancing.
func (c *Cursor) Peek() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	return c.lines[c.pos], true
}

// Pos reports the zero-based index of the next line to be read.
func (c *Cursor) Pos() int {
	return c.pos
}
