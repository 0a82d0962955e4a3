// Package hashcsv parses comma separated text with "#" end-of-line comments
// and double-quoted fields into rows of strings.
package hashcsv

import "strings"

// state is the kind of the previous token, or stateNone before the first.
type state byte

const (
	stateNone state = iota
	stateComma
	stateComment
	stateNewline
	stateValue
)

func stateOf(k TokenKind) state {
	switch k {
	case Comma:
		return stateComma
	case Comment:
		return stateComment
	case Newline:
		return stateNewline
	default:
		return stateValue
	}
}

type parser struct {
	text string
	prev state
	row  []string
	rows [][]string

	// offset is the byte index in text of the current token
	offset int
	line   int
}

// Parse parses text into rows of decoded fields. Rows may have differing
// numbers of fields. Comments and blank lines contribute nothing.
//
// Parsing stops at the first malformed token, and the error is a *ParseError
// wrapping ErrUnterminatedQuote or ErrAdjacentValues.
func Parse(text string) ([][]string, error) {
	p := parser{text: text, line: 1}
	return p.parse()
}

func (p *parser) parse() ([][]string, error) {
	lx := NewLexer(p.text)
	for {
		tok, ok := lx.Next()
		if !ok {
			break
		}
		if err := p.step(tok); err != nil {
			return nil, err
		}
		p.prev = stateOf(tok.Kind)
		p.offset += tok.Len
	}

	if p.prev == stateComma {
		p.pushEmpty()
	}
	p.pushRow()
	return p.rows, nil
}

func (p *parser) step(tok Token) error {
	switch tok.Kind {
	case Comma:
		switch p.prev {
		case stateNone, stateComma, stateNewline:
			// Nothing since the row or field started, so the field is empty
			p.pushEmpty()
		case stateComment:
			return p.errorf(ErrInvariant)
		case stateValue:
			// The value was pushed as it was read
		}

	case Comment:
		switch p.prev {
		case stateComma:
			// ",#..." ends the row with an empty field
			p.pushEmpty()
		case stateComment:
			return p.errorf(ErrInvariant)
		case stateNone, stateNewline, stateValue:
		}

	case Newline:
		switch p.prev {
		case stateNone:
		case stateComma:
			p.pushEmpty()
			p.pushRow()
		case stateComment, stateNewline, stateValue:
			p.pushRow()
		}
		p.line++

	case QuotedValue, BareValue:
		switch p.prev {
		case stateComment:
			return p.errorf(ErrInvariant)
		case stateValue:
			return p.errorf(ErrAdjacentValues)
		}
		return p.pushValue(tok)
	}
	return nil
}

func (p *parser) pushValue(tok Token) error {
	raw := p.text[p.offset : p.offset+tok.Len]
	if tok.Kind.ValueKind() == Bare {
		p.row = append(p.row, raw)
		return nil
	}

	val, err := Unescape(raw)
	if err != nil {
		return p.errorf(err)
	}
	p.row = append(p.row, val)
	// Quoted values may span lines
	p.line += strings.Count(raw, "\n")
	return nil
}

func (p *parser) pushEmpty() {
	p.row = append(p.row, "")
}

// pushRow closes the current row. A row with no fields is dropped, which is
// what collapses blank lines.
func (p *parser) pushRow() {
	if len(p.row) == 0 {
		return
	}
	p.rows = append(p.rows, p.row)
	p.row = nil
}

func (p *parser) errorf(err error) error {
	return &ParseError{Offset: p.offset, Line: p.line, Err: err}
}
