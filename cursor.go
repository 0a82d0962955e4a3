package hashcsv

import "unicode/utf8"

// cursor walks the input a rune at a time. It never copies the input: pos is a
// byte index into text, and tokenStart marks where the token being scanned
// began.
type cursor struct {
	text       string
	pos        int
	tokenStart int
}

func newCursor(text string) cursor {
	return cursor{text: text}
}

// peekFirst returns the next rune without consuming it.
func (c *cursor) peekFirst() (rune, bool) {
	if c.pos >= len(c.text) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.text[c.pos:])
	return r, true
}

// peekSecond returns the rune after the next one without consuming anything.
func (c *cursor) peekSecond() (rune, bool) {
	if c.pos >= len(c.text) {
		return 0, false
	}
	_, w := utf8.DecodeRuneInString(c.text[c.pos:])
	if c.pos+w >= len(c.text) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.text[c.pos+w:])
	return r, true
}

// eatChar consumes the next rune. Invalid UTF-8 is consumed a byte at a time,
// so the token length always matches the bytes of the original text.
func (c *cursor) eatChar() (rune, bool) {
	if c.pos >= len(c.text) {
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(c.text[c.pos:])
	c.pos += w
	return r, true
}

// tokenLen is the number of bytes consumed since the last resetTokenLen.
func (c *cursor) tokenLen() int {
	return c.pos - c.tokenStart
}

func (c *cursor) resetTokenLen() {
	c.tokenStart = c.pos
}

// isLineEnd reports whether the cursor sits on a line terminator: "\n", or a
// "\r" immediately followed by "\n". A lone "\r" is ordinary text wherever it
// turns up.
func (c *cursor) isLineEnd() bool {
	r, ok := c.peekFirst()
	if !ok {
		return false
	}
	switch r {
	case '\n':
		return true
	case '\r':
		next, ok := c.peekSecond()
		return ok && next == '\n'
	}
	return false
}
