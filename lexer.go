package hashcsv

// Lexer splits text into tokens. Create with NewLexer.
type Lexer struct {
	c cursor
}

// NewLexer creates a Lexer over text. The text is not copied.
func NewLexer(text string) *Lexer {
	return &Lexer{c: newCursor(text)}
}

// Tokenize returns every token in text, in order. Empty text gives no tokens.
func Tokenize(text string) []Token {
	var tokens []Token
	lx := NewLexer(text)
	for {
		tok, ok := lx.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token, or false once the input is exhausted. The lexer
// never fails: an unterminated quoted value just runs to the end of the input.
func (lx *Lexer) Next() (Token, bool) {
	first, ok := lx.c.eatChar()
	if !ok {
		return Token{}, false
	}

	var kind TokenKind
	switch first {
	case '#':
		kind = lx.eatComment()
	case ',':
		kind = Comma
	case '\n':
		kind = Newline
	case '"':
		kind = lx.eatQuoted()
	case '\r':
		if r, ok := lx.c.peekFirst(); ok && r == '\n' {
			lx.c.eatChar()
			kind = Newline
			break
		}
		// A lone \r starts a bare value like any other character
		kind = lx.eatBare()
	default:
		kind = lx.eatBare()
	}

	tok := Token{Len: lx.c.tokenLen(), Kind: kind}
	lx.c.resetTokenLen()
	return tok, true
}

func (lx *Lexer) eatComment() TokenKind {
	for {
		if _, ok := lx.c.peekFirst(); !ok || lx.c.isLineEnd() {
			return Comment
		}
		lx.c.eatChar()
	}
}

func (lx *Lexer) eatQuoted() TokenKind {
	for {
		r, ok := lx.c.eatChar()
		if !ok {
			return QuotedValue
		}
		if r != '"' {
			continue
		}
		// Either the closing quote or the first half of an escaped pair
		if next, ok := lx.c.peekFirst(); ok && next == '"' {
			lx.c.eatChar()
			continue
		}
		return QuotedValue
	}
}

func (lx *Lexer) eatBare() TokenKind {
	for {
		r, ok := lx.c.peekFirst()
		if !ok || r == ',' || r == '#' || lx.c.isLineEnd() {
			return BareValue
		}
		lx.c.eatChar()
	}
}
