package sheetkit

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

var EncName = "utf-8"

func init() {
	EncName = os.Getenv("LANG")
	if i := strings.IndexByte(EncName, '.'); i >= 0 {
		EncName = strings.ToLower(EncName[i+1:])
	}
	if EncName == "" {
		EncName = "utf-8"
	}
}

// GetEncoding returns the encoding for the name, nil for UTF-8.
func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

// CSVReader reads records from a (possibly recoded) csv file.
type CSVReader struct {
	*csv.Reader
	io.Closer
}

// OpenCsv opens the file (stdin for "" or "-"), decodes it from encName
// and guesses the field separator from the first non-name character.
func OpenCsv(fn, encName string) (CSVReader, error) {
	var enc encoding.Encoding
	if encName != "" {
		var err error
		if enc, err = GetEncoding(encName); err != nil {
			return CSVReader{}, err
		}
	}
	fh := os.Stdin
	if !(fn == "" || fn == "-") {
		var err error
		if fh, err = os.Open(fn); err != nil {
			return CSVReader{}, err
		}
	}
	return NewCSVReader(fh, enc)
}

// NewCSVReader is OpenCsv for an already opened stream.
func NewCSVReader(rc io.ReadCloser, enc encoding.Encoding) (CSVReader, error) {
	r := io.Reader(rc)
	if enc != nil {
		r = enc.NewDecoder().Reader(r)
	}
	br := bufio.NewReaderSize(r, 1<<20)
	b, err := br.Peek(1024)
	if err != nil && len(b) == 0 {
		rc.Close()
		return CSVReader{}, err
	}
	sep := rune(',')
	for _, r := range string(b) {
		if r == '"' || r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			continue
		}
		sep = r
		break
	}

	cr := csv.NewReader(br)
	cr.ReuseRecord = true
	cr.Comma = sep
	return CSVReader{cr, rc}, nil
}

// CSVEncoder writes the active sheet as csv.
type CSVEncoder struct {
	// Comma is the field separator, ',' when zero.
	Comma rune
	// Charset of the output, UTF-8 when empty.
	Charset string
}

var _ = (Encoder)(CSVEncoder{})

func (e CSVEncoder) Encode(w io.Writer, doc *Document) error {
	enc, err := GetEncoding(e.Charset)
	if err != nil {
		return err
	}
	if enc != nil {
		w = encoding.ReplaceUnsupported(enc.NewEncoder()).Writer(w)
	}
	sheet := doc.ActiveSheet()
	rows, err := doc.File.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("%s: %w", sheet, err)
	}
	cw := csv.NewWriter(w)
	if e.Comma != 0 {
		cw.Comma = e.Comma
	}
	return cw.WriteAll(rows)
}
