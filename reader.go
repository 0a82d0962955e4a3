package hashcsv

import (
	"io"

	"github.com/pingcap/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Reader reads a whole input into memory and parses it. Create with NewReader.
//
// This is not a streaming parser: the first call to Scan or ReadAll reads the
// input to the end before any row is available.
type Reader struct {
	r io.Reader

	// Encoding, if set, is the character set of the input. It is decoded to
	// UTF-8 before parsing.
	Encoding encoding.Encoding

	rows   [][]string
	row    int
	parsed bool
	err    error
}

// NewReader creates a new Reader
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// SetInput lets you use an existing Reader with a new input. Encoding is kept.
func (r *Reader) SetInput(in io.Reader) {
	r.r = in
	r.rows = nil
	r.row = 0
	r.parsed = false
	r.err = nil
}

// ReadAll returns every remaining row of the input.
func (r *Reader) ReadAll() ([][]string, error) {
	r.load()
	if r.err != nil {
		return nil, r.err
	}
	rows := r.rows[r.row:]
	r.row = len(r.rows)
	return rows, nil
}

// Scan advances to the next row, which is then available from Row. It returns
// false when there are no more rows or an error occurred. Check Err afterwards.
func (r *Reader) Scan() bool {
	r.load()
	if r.err != nil || r.row >= len(r.rows) {
		return false
	}
	r.row++
	return true
}

// Row returns the row found by the last call to Scan.
func (r *Reader) Row() []string {
	if r.row == 0 {
		return nil
	}
	return r.rows[r.row-1]
}

// Err returns the first error hit while reading or parsing. A parse error is a
// *ParseError.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) load() {
	if r.parsed {
		return
	}
	r.parsed = true

	in := r.r
	if r.Encoding != nil {
		in = transform.NewReader(in, r.Encoding.NewDecoder())
	}
	buf, err := io.ReadAll(in)
	if err != nil {
		r.err = errors.Trace(err)
		return
	}
	r.rows, r.err = Parse(string(buf))
}
