package hashcsv

import "strings"

type unescapeState byte

const (
	unescapeStart unescapeState = iota
	unescapeMiddle
	unescapeMetQuote
)

// Unescape decodes the raw text of a quoted value, surrounding quotes
// included. Doubled quotes inside become single quotes.
//
// A value that is never closed gives ErrUnterminatedQuote. Raw text that does
// not start with a quote, or that carries anything after its closing quote,
// cannot come out of the lexer and gives ErrInvariant.
func Unescape(raw string) (string, error) {
	var (
		s   unescapeState
		acc strings.Builder
	)
	acc.Grow(len(raw))

	// No byte of a multi-byte utf8 char can match '"', so we walk bytes and
	// copy everything else through untouched.
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch s {
		case unescapeStart:
			if c != '"' {
				return "", ErrInvariant
			}
			s = unescapeMiddle
		case unescapeMiddle:
			if c == '"' {
				// Closing quote, or the first of an escaped pair
				s = unescapeMetQuote
				continue
			}
			acc.WriteByte(c)
		case unescapeMetQuote:
			if c != '"' {
				return "", ErrInvariant
			}
			acc.WriteByte('"')
			s = unescapeMiddle
		}
	}

	if s != unescapeMetQuote {
		return "", ErrUnterminatedQuote
	}
	return acc.String(), nil
}
