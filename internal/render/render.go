// Package render draws parsed rows for people to read.
package render

import (
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/cheynewallace/tabby"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pingcap/errors"

	"github.com/philpearl/hashcsv"
)

// Style selects how rows are drawn.
type Style string

const (
	// StyleRounded draws a box with rounded corners around the table.
	StyleRounded Style = "rounded"
	// StylePlain lines columns up with spaces.
	StylePlain Style = "plain"
	// StyleCSV writes the rows back out in the parser's own dialect.
	StyleCSV Style = "csv"
)

// Styles lists every Style.
var Styles = []Style{StyleRounded, StylePlain, StyleCSV}

// Options controls Render.
type Options struct {
	Style Style
	// Header draws the first row as a header. Ignored by StyleCSV.
	Header bool
	// Missing fills the cells of rows shorter than the widest row. Ignored by
	// StyleCSV, which keeps rows ragged.
	Missing string
	// Quote shows every field as a Go-quoted string, so empty fields and
	// control characters are visible. Ignored by StyleCSV.
	Quote bool
}

// Render writes rows to w in the chosen style.
func Render(w io.Writer, rows [][]string, opts Options) error {
	switch opts.Style {
	case StyleRounded, "":
		return renderRounded(w, cells(rows, opts), opts)
	case StylePlain:
		return renderPlain(w, cells(rows, opts), opts)
	case StyleCSV:
		return errors.Trace(hashcsv.NewWriter(w).WriteAll(rows))
	}
	return errors.Errorf("unknown style %q", opts.Style)
}

// cells pads every row to the widest and applies quoting.
func cells(rows [][]string, opts Options) [][]interface{} {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		line := make([]interface{}, width)
		for j := range line {
			switch {
			case j >= len(row):
				line[j] = opts.Missing
			case opts.Quote:
				line[j] = strconv.Quote(row[j])
			default:
				line[j] = row[j]
			}
		}
		out[i] = line
	}
	return out
}

func renderRounded(w io.Writer, rows [][]interface{}, opts Options) error {
	if len(rows) == 0 {
		return nil
	}

	t := table.NewWriter()
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)

	if opts.Header {
		t.AppendHeader(table.Row(rows[0]))
		rows = rows[1:]
	}
	for _, row := range rows {
		t.AppendRow(table.Row(row))
	}

	_, err := io.WriteString(w, t.Render()+"\n")
	return errors.Trace(err)
}

func renderPlain(w io.Writer, rows [][]interface{}, opts Options) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	t := tabby.NewCustom(tw)

	if opts.Header && len(rows) > 0 {
		t.AddHeader(rows[0]...)
		rows = rows[1:]
	}
	for _, row := range rows {
		t.AddLine(row...)
	}
	t.Print()
	return nil
}
