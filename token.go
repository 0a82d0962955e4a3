package hashcsv

// Token is one lexeme. Len is its length in bytes of the input text, not in
// runes.
type Token struct {
	Len  int
	Kind TokenKind
}

//go:generate stringer -type TokenKind,ValueKind -output tokenkind_string.go

// TokenKind classifies a Token.
type TokenKind byte

const (
	// Comma is a field separator ",".
	Comma TokenKind = iota
	// Comment runs from "#" up to, but not including, the end of the line.
	Comment
	// Newline is "\n" or "\r\n".
	Newline
	// QuotedValue is a field wrapped in double quotes, quotes included.
	QuotedValue
	// BareValue is an unquoted field.
	BareValue
)

// ValueKind distinguishes the two kinds of value token.
type ValueKind byte

const (
	Quoted ValueKind = iota
	Bare
)

// IsValue reports whether the token carries a field value.
func (k TokenKind) IsValue() bool {
	return k == QuotedValue || k == BareValue
}

// ValueKind returns the kind of value a value token holds. It is only
// meaningful when IsValue is true.
func (k TokenKind) ValueKind() ValueKind {
	if k == QuotedValue {
		return Quoted
	}
	return Bare
}
