// Package charset maps character set names to the decoders used to turn input
// into UTF-8 before parsing.
package charset

import (
	"strings"

	"github.com/pingcap/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
)

// Names lists the accepted character set names.
var Names = []string{"utf8", "utf8mb4", "ascii", "binary", "gbk", "gb18030", "latin1"}

// Lookup returns the encoding for name. A nil encoding with a nil error means
// the input is already UTF-8 (or is to be taken as is) and needs no decoding.
func Lookup(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf8", "utf-8", "utf8mb4", "ascii", "binary":
		return nil, nil
	case "gbk":
		return simplifiedchinese.GBK, nil
	case "gb18030":
		return simplifiedchinese.GB18030, nil
	case "latin1":
		// MySQL's latin1 is really Windows-1252, not ISO 8859-1
		return charmap.Windows1252, nil
	}
	return nil, errors.Errorf("unsupported charset %q", name)
}
