package sheetkit

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEncoding(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF8"} {
		enc, err := GetEncoding(name)
		require.NoError(t, err)
		assert.Nil(t, enc, name)
	}
	enc, err := GetEncoding("iso-8859-2")
	require.NoError(t, err)
	assert.NotNil(t, enc)

	_, err = GetEncoding("no-such-charset")
	assert.Error(t, err)
}

func TestNewCSVReaderSeparator(t *testing.T) {
	for sep, input := range map[rune]string{
		',':  "name,age\nx,1\n",
		';':  "\"name\";age\nx;1\n",
		'\t': "first_name\tage\nx\t1\n",
	} {
		cr, err := NewCSVReader(io.NopCloser(strings.NewReader(input)), nil)
		require.NoError(t, err)
		assert.Equal(t, sep, cr.Comma, "%q", input)
		rows, err := cr.ReadAll()
		require.NoError(t, err)
		assert.Len(t, rows, 2)
		require.NoError(t, cr.Close())
	}
}

func TestNewCSVReaderEmpty(t *testing.T) {
	_, err := NewCSVReader(io.NopCloser(strings.NewReader("")), nil)
	assert.ErrorIs(t, err, io.EOF)
}

func TestOpenCsvCharset(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "latin2.csv")
	require.NoError(t, os.WriteFile(fn, []byte("n\xe9v;\xf5r\n"), 0o644))

	cr, err := OpenCsv(fn, "iso-8859-2")
	require.NoError(t, err)
	defer cr.Close()
	row, err := cr.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"név", "őr"}, row)

	_, err = OpenCsv(filepath.Join(t.TempDir(), "missing.csv"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCSVEncoder(t *testing.T) {
	doc := newTestDocument(t)
	sheet := doc.ActiveSheet()
	require.NoError(t, doc.SetRow(sheet, 1, []any{"name", "note"}, 0))
	require.NoError(t, doc.SetRow(sheet, 2, []any{"őr", "a,b"}, 0))
	require.NoError(t, doc.SetRow(sheet, 3, []any{"x", 2}, 0))

	var buf bytes.Buffer
	require.NoError(t, CSVEncoder{}.Encode(&buf, doc))
	assert.Equal(t, "name,note\nőr,\"a,b\"\nx,2\n", buf.String())

	buf.Reset()
	require.NoError(t, CSVEncoder{Comma: ';', Charset: "iso-8859-2"}.Encode(&buf, doc))
	assert.Equal(t, "name;note\n\xf5r;a,b\nx;2\n", buf.String())

	assert.Error(t, CSVEncoder{Charset: "no-such-charset"}.Encode(&buf, doc))
}

func TestCSVEncoderReplacesUnsupported(t *testing.T) {
	doc := newTestDocument(t)
	require.NoError(t, doc.SetRow(doc.ActiveSheet(), 1, []any{"日本"}, 0))

	var buf bytes.Buffer
	require.NoError(t, CSVEncoder{Charset: "iso-8859-2"}.Encode(&buf, doc))
	assert.Equal(t, "\x1a\x1a\n", buf.String())
}
