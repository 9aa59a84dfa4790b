package xlsx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/UNO-SOFT/sheetkit"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	sh, err := w.NewSheet("első", []sheetkit.Column{
		{Name: "name", Header: sheetkit.HeaderStyle()},
		{Name: "amount"},
	})
	require.NoError(t, err)
	require.NoError(t, sh.AppendRow("a", 1.5))
	require.NoError(t, sh.AppendRow("b", sheetkit.Number("2")))
	require.NoError(t, sh.Close())
	sh2, err := w.NewSheet("second", nil)
	require.NoError(t, err)
	require.NoError(t, sh2.AppendRow("x"))
	require.NoError(t, sh2.Close())
	require.NoError(t, w.Close())

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"első", "second"}, f.GetSheetList())

	rows, err := f.GetRows("első")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"name", "amount"}, {"a", "1.5"}, {"b", "2"}}, rows)

	id, err := f.GetCellStyle("első", "A1")
	require.NoError(t, err)
	st, err := f.GetStyle(id)
	require.NoError(t, err)
	require.NotNil(t, st.Font)
	assert.True(t, st.Font.Bold)

	typ, err := f.GetCellType("első", "B3")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, typ)
}

func TestEncoder(t *testing.T) {
	doc := sheetkit.NewDocument()
	defer doc.Close()
	require.NoError(t, doc.SetProperties(sheetkit.Properties{Title: "Report", Creator: "me", Company: "ACME"}))
	require.NoError(t, doc.SetRow(doc.ActiveSheet(), 1, []any{"x"}, 0))

	var buf bytes.Buffer
	require.NoError(t, Encoder{}.Encode(&buf, doc))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	dp, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "Report", dp.Title)
	assert.Equal(t, "me", dp.Creator)
	ap, err := f.GetAppProps()
	require.NoError(t, err)
	assert.Equal(t, "ACME", ap.Company)
}
