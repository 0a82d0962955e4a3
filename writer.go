package hashcsv

import (
	"bytes"
	"io"
	"strings"
)

// Writer writes rows in the dialect Parse reads. Create with NewWriter.
type Writer struct {
	w     io.Writer
	b     []byte
	count int
	// onlyEmpty is true while every field written on this line is empty
	onlyEmpty bool
}

// NewWriter creates a new Writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: w,
	}
}

// String writes a string field. It is quoted if necessary
func (w *Writer) String(s string) {
	w.comma(s == "")
	if !fieldNeedsQuotes(s) {
		w.b = append(w.b, s...)
		return
	}
	w.b = append(w.b, '"')
	// If we range through a string by value we'll be given runes. But we don't need runes as we only need to
	// look for ", and no byte of a utf8 char will match unless it is a "
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			w.b = append(w.b, '"')
		}
		w.b = append(w.b, c)
	}
	w.b = append(w.b, '"')
}

// Bytes writes a []byte field. It saves a conversion where the caller already
// has the value as bytes
func (w *Writer) Bytes(s []byte) {
	w.comma(len(s) == 0)
	if !byteFieldNeedsQuotes(s) {
		w.b = append(w.b, s...)
		return
	}
	w.b = append(w.b, '"')
	for _, c := range s {
		if c == '"' {
			w.b = append(w.b, '"')
		}
		w.b = append(w.b, c)
	}
	w.b = append(w.b, '"')
}

// Skip writes an empty field
func (w *Writer) Skip() {
	w.comma(true)
}

// Comment writes "#" and text at the end of the current line, then completes
// the line. The text may not contain a newline.
func (w *Writer) Comment(text string) error {
	if strings.IndexByte(text, '\n') >= 0 {
		return ErrCommentNewline
	}
	w.quoteLoneEmpty()
	w.b = append(w.b, '#')
	w.b = append(w.b, text...)
	return w.flush()
}

// LineComplete finishes the line and writes it to the output
func (w *Writer) LineComplete() error {
	w.quoteLoneEmpty()
	return w.flush()
}

// WriteAll writes each row as a line.
func (w *Writer) WriteAll(rows [][]string) error {
	for _, row := range rows {
		for _, field := range row {
			w.String(field)
		}
		if err := w.LineComplete(); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) flush() error {
	w.b = append(w.b, '\n')
	_, err := w.w.Write(w.b)
	w.b = w.b[:0]
	w.count = 0
	return err
}

func (w *Writer) comma(empty bool) {
	if w.count != 0 {
		w.b = append(w.b, ',')
		w.onlyEmpty = w.onlyEmpty && empty
	} else {
		w.onlyEmpty = empty
	}
	w.count++
}

// quoteLoneEmpty writes a single empty field as "". Left bare it would be a
// blank line, and blank lines are dropped by the parser.
func (w *Writer) quoteLoneEmpty() {
	if w.count == 1 && w.onlyEmpty {
		w.b = append(w.b, '"', '"')
	}
}

// fieldNeedsQuotes reports whether our field must be enclosed in quotes.
// Anything the lexer would treat as a delimiter needs quoting: comma, quote,
// comment marker and line breaks. A \r at the end of a bare field would join
// the line's \n and end the row early, so \r is always quoted.
func fieldNeedsQuotes(field string) bool {
	return strings.ContainsAny(field, ",\"#\r\n")
}

func byteFieldNeedsQuotes(field []byte) bool {
	return bytes.ContainsAny(field, ",\"#\r\n")
}
