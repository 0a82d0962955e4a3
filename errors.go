package hashcsv

import (
	"fmt"

	"github.com/pingcap/errors"
)

var (
	// ErrUnterminatedQuote means a quoted value ran to the end of the input
	// without a closing quote.
	ErrUnterminatedQuote = errors.New("unterminated quoted value")

	// ErrAdjacentValues means two values appear with no separator between
	// them, as in `"A"B` or `A"B"`.
	ErrAdjacentValues = errors.New("value follows value without a separator")

	// ErrInvariant means the lexer and parser disagree about token
	// boundaries. A comment token always runs to the end of its line, so
	// nothing but a Newline may follow it. Well-formed or not, no input should
	// produce this.
	ErrInvariant = errors.New("internal lexer/parser invariant violated")

	// ErrCommentNewline is returned by Writer.Comment for text that would
	// spill onto another line.
	ErrCommentNewline = errors.New("comment text contains a newline")
)

// ParseError reports the first malformed token found by Parse.
type ParseError struct {
	// Offset is the byte offset of the offending token in the input.
	Offset int
	// Line is the 1-indexed line the offending token starts on.
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d at byte %d: %v", e.Line, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Cause lets errors.Cause see through a ParseError.
func (e *ParseError) Cause() error {
	return e.Err
}
