package hashcsv_test

import (
	"bytes"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/philpearl/hashcsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func ExampleReader() {
	buf := bytes.NewReader([]byte(`string,int,float # header
hat,37,12.4
"Bionic, ""the"" bear",12,97.823`))

	r := hashcsv.NewReader(buf)
	for r.Scan() {
		fmt.Printf("%q\n", r.Row())
	}
	if err := r.Err(); err != nil {
		log.Fatal(err)
	}

	// output: ["string" "int" "float "]
	// ["hat" "37" "12.4"]
	// ["Bionic, \"the\" bear" "12" "97.823"]
}

func ExampleParse() {
	rows, err := hashcsv.Parse("A,B,,C\n\n# skipped\n\"D\"\"E\",F\n")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%q\n", rows)

	// output: [["A" "B" "" "C"] ["D\"E" "F"]]
}

func TestReadAll(t *testing.T) {
	tests := []struct {
		name string
		in   string
		exp  [][]string
		err  string
	}{
		{
			name: "some basics",
			in: `a,b,c
1,2,3
"4","5,6","7"`,
			exp: [][]string{
				{"a", "b", "c"},
				{"1", "2", "3"},
				{"4", "5,6", "7"},
			},
		},
		{
			name: "quote special cases",
			in: `"a
 hat","b,,,","c "" hat",`,
			exp: [][]string{
				{"a\n hat", "b,,,", "c \" hat", ""},
			},
		},
		{
			name: "quote in string",
			in:   `a"b`,
			exp: [][]string{
				{"a\"b"},
			},
		},
		{
			name: "empty",
			in: `,,"","",,
`,
			exp: [][]string{
				{"", "", "", "", "", ""},
			},
		},
		{
			name: "EOF in quote",
			in:   `"`,
			err:  "parse error on line 1 at byte 0: unterminated quoted value",
		},
		{
			name: "char after quote",
			in:   `"a"b`,
			err:  "parse error on line 1 at byte 3: value follows value without a separator",
		},
		{
			name: "\\r\\n",
			in:   "a,b\r\nc,d",
			exp: [][]string{
				{"a", "b"},
				{"c", "d"},
			},
		},
		{
			name: "\\r\\r\\n",
			in:   "a,b\r\r\nc,d",
			exp: [][]string{
				{"a", "b\r"},
				{"c", "d"},
			},
		},
		{
			name: "\\rn",
			in:   "a,b\rnc,d",
			exp: [][]string{
				{"a", "b\rnc", "d"},
			},
		},
		{
			name: "\\r\\n in quote",
			in:   "\"b\r\nc\",d",
			exp: [][]string{
				{"b\r\nc", "d"},
			},
		},
		{
			name: "\\r,",
			in:   "b\r,d",
			exp: [][]string{
				{"b\r", "d"},
			},
		},
		{
			name: "comments",
			in:   "#head\na,b#tail\n,#empty\n",
			exp: [][]string{
				{"a", "b"},
				{"", ""},
			},
		},
	}

	var r *hashcsv.Reader

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			in := bytes.NewReader([]byte(test.in))
			if r == nil {
				r = hashcsv.NewReader(in)
			} else {
				r.SetInput(in)
			}

			actual, err := r.ReadAll()
			if test.err != "" {
				assert.EqualError(t, err, test.err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, test.exp, actual)
		})
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := hashcsv.NewReader(strings.NewReader(test.in))

			var actual [][]string
			for r.Scan() {
				actual = append(actual, r.Row())
			}
			if test.err != "" {
				assert.EqualError(t, r.Err(), test.err)
			} else {
				assert.NoError(t, r.Err())
			}
			assert.Equal(t, test.exp, actual)
		})
	}
}

func TestReaderScanThenReadAll(t *testing.T) {
	r := hashcsv.NewReader(strings.NewReader("a\nb\nc"))
	assert.Nil(t, r.Row())

	require.True(t, r.Scan())
	assert.Equal(t, []string{"a"}, r.Row())

	rest, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"b"}, {"c"}}, rest)

	assert.False(t, r.Scan())
	rest, err = r.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, rest)
}

func TestReaderEncoding(t *testing.T) {
	// "café,naïve" in Windows-1252
	in := []byte{'c', 'a', 'f', 0xe9, ',', 'n', 'a', 0xef, 'v', 'e'}

	r := hashcsv.NewReader(bytes.NewReader(in))
	r.Encoding = charmap.Windows1252

	rows, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"café", "naïve"}}, rows)

	// Encoding survives SetInput
	r.SetInput(bytes.NewReader([]byte{0xe9}))
	rows, err = r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"é"}}, rows)
}

type failReader struct{}

var errFail = errors.New("disk on fire")

func (failReader) Read([]byte) (int, error) { return 0, errFail }

func TestReaderIOError(t *testing.T) {
	r := hashcsv.NewReader(failReader{})
	assert.False(t, r.Scan())
	assert.ErrorContains(t, r.Err(), "disk on fire")

	var perr *hashcsv.ParseError
	assert.False(t, errors.As(r.Err(), &perr))
}

func TestReaderParseError(t *testing.T) {
	r := hashcsv.NewReader(strings.NewReader("ok\n\"A\"B"))
	assert.False(t, r.Scan())

	var perr *hashcsv.ParseError
	require.True(t, errors.As(r.Err(), &perr))
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, 6, perr.Offset)
	assert.True(t, errors.Is(r.Err(), hashcsv.ErrAdjacentValues))
}

const benchInput = "a,b,c,d,efgdh\n"

var benchRows = strings.Repeat("\"abcdefg\"\"hi\", zzpza, §§§§, 99\n", 14)

func BenchmarkRead(b *testing.B) {
	buf := strings.NewReader(benchInput + benchRows)
	r := hashcsv.NewReader(buf)

	b.SetBytes(int64(buf.Len()))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		buf.Seek(0, io.SeekStart)
		r.SetInput(buf)

		count := 0
		for r.Scan() {
			count += len(r.Row())
		}
		if err := r.Err(); err != nil {
			b.Fatal(err)
		}
		if count != 61 {
			b.Fatalf("read %d fields", count)
		}
	}
}

func BenchmarkReadStdlib(b *testing.B) {
	buf := strings.NewReader(benchInput + benchRows)

	b.SetBytes(int64(buf.Len()))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		buf.Seek(0, io.SeekStart)
		r := stdcsv.NewReader(buf)
		r.FieldsPerRecord = -1
		r.ReuseRecord = true

		count := 0
		for {
			c, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				b.Fatal(err)
			}
			count += len(c)
		}
		if count != 61 {
			b.Fatalf("read %d fields", count)
		}
	}
}
