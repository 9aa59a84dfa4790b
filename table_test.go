package sheetkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	doc := newTestDocument(t)
	require.NoError(t, doc.SetProperties(Properties{Title: "T", Creator: "me"}))
	sheet := doc.ActiveSheet()

	hdr, err := doc.StyleID(HeaderStyle())
	require.NoError(t, err)
	require.NoError(t, doc.SetRow(sheet, 1, []any{"Name", "", "Total"}, hdr))
	require.NoError(t, doc.StageMerge(sheet, "A1", "B1"))
	require.NoError(t, doc.CommitMerges(sheet))
	require.NoError(t, doc.SetRow(sheet, 2, []any{"a", "1", Number("3.5")}, 0))
	require.NoError(t, doc.FreezePanes(sheet, "A2"))

	tbl, err := Snapshot(doc)
	require.NoError(t, err)
	assert.Equal(t, "T", tbl.Properties.Title)
	assert.Equal(t, "me", tbl.Properties.Creator)
	require.Len(t, tbl.Sheets, 1)

	sh := tbl.Sheets[0]
	assert.Equal(t, "Sheet1", sh.Name)
	assert.Equal(t, 3, sh.Width)
	assert.Equal(t, 1, sh.FrozenRows)
	assert.Equal(t, 0, sh.FrozenCols)
	require.Len(t, sh.Rows, 2)
	for _, row := range sh.Rows {
		require.Len(t, row, 3)
	}

	top := sh.Rows[0][0]
	assert.Equal(t, "Name", top.Text)
	assert.Equal(t, 2, top.ColSpan)
	assert.Equal(t, 1, top.RowSpan)
	assert.False(t, top.Covered)
	assert.True(t, top.Bold)
	assert.Equal(t, "center", top.Align)
	assert.True(t, sh.Rows[0][1].Covered)
	assert.False(t, sh.Rows[0][2].Covered)

	data := sh.Rows[1]
	assert.False(t, data[0].Numeric)
	assert.False(t, data[1].Numeric, "strings stay strings")
	assert.True(t, data[2].Numeric)
	assert.Equal(t, "3.5", data[2].Raw)
	assert.False(t, data[2].Bold)
	assert.Equal(t, 1, data[2].ColSpan)
}

func TestSnapshotMergeBeyondData(t *testing.T) {
	doc := newTestDocument(t)
	sheet := doc.ActiveSheet()
	require.NoError(t, doc.SetRow(sheet, 1, []any{"x"}, 0))
	require.NoError(t, doc.StageMerge(sheet, "A1", "B2"))
	require.NoError(t, doc.CommitMerges(sheet))

	tbl, err := Snapshot(doc)
	require.NoError(t, err)
	sh := tbl.Sheets[0]
	assert.Equal(t, 2, sh.Width)
	require.Len(t, sh.Rows, 2)
	assert.Equal(t, 2, sh.Rows[0][0].RowSpan)
	assert.True(t, sh.Rows[1][0].Covered)
	assert.True(t, sh.Rows[1][1].Covered)
}

func TestSnapshotSheets(t *testing.T) {
	doc := newTestDocument(t)
	_, err := doc.File.NewSheet("second")
	require.NoError(t, err)

	tbl, err := Snapshot(doc)
	require.NoError(t, err)
	require.Len(t, tbl.Sheets, 2)
	assert.Equal(t, "second", tbl.Sheets[1].Name)
	assert.Empty(t, tbl.Sheets[1].Rows)
}
