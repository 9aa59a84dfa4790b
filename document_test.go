package sheetkit

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocument(t *testing.T) *Document {
	t.Helper()
	doc := NewDocument()
	t.Cleanup(func() { doc.Close() })
	return doc
}

func TestDocumentProperties(t *testing.T) {
	doc := newTestDocument(t)
	assert.Equal(t, "Sheet1", doc.ActiveSheet())

	want := Properties{
		Title: "Monthly", Subject: "sales", Description: "numbers",
		Keywords: "excel go", Category: "report",
		Creator: "sheetkit", Company: "ACME",
	}
	require.NoError(t, doc.SetProperties(want))
	got, err := doc.Properties()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	dp, err := doc.File.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "sheetkit", dp.LastModifiedBy)
}

func TestDocumentSetRow(t *testing.T) {
	doc := newTestDocument(t)
	sheet := doc.ActiveSheet()
	require.NoError(t, doc.SetRow(sheet, 3, []any{
		"text", 42, Number("3.5"), Number("n/a"), nil,
		sql.NullString{}, sql.NullInt64{Int64: 7, Valid: true},
		time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC), []byte("raw"),
	}, 0))

	for axis, want := range map[string]string{
		"A3": "text", "B3": "42", "C3": "3.5", "D3": "n/a", "E3": "",
		"F3": "", "G3": "7", "H3": "2026-01-02", "I3": "raw",
		"A1": "", "A2": "",
	} {
		got, err := doc.File.GetCellValue(sheet, axis)
		require.NoError(t, err)
		assert.Equal(t, want, got, axis)
	}

	rows, err := doc.File.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
}

func TestDocumentSetRowStyle(t *testing.T) {
	doc := newTestDocument(t)
	sheet := doc.ActiveSheet()
	id, err := doc.StyleID(Style{"font": map[string]any{"italic": true}})
	require.NoError(t, err)
	require.NotZero(t, id)
	require.NoError(t, doc.SetRow(sheet, 1, []any{"a", "b"}, id))

	for _, axis := range []string{"A1", "B1"} {
		got, err := doc.File.GetCellStyle(sheet, axis)
		require.NoError(t, err)
		assert.Equal(t, id, got, axis)
	}
	got, err := doc.File.GetCellStyle(sheet, "C1")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestDocumentSetRowLimit(t *testing.T) {
	doc := newTestDocument(t)
	assert.ErrorIs(t, doc.SetRow(doc.ActiveSheet(), MaxRowCount+1, []any{"x"}, 0), ErrTooManyRows)
	assert.NoError(t, doc.SetRow(doc.ActiveSheet(), MaxRowCount, []any{"x"}, 0))
}

func TestDocumentStyleID(t *testing.T) {
	doc := newTestDocument(t)

	id, err := doc.StyleID(nil)
	require.NoError(t, err)
	assert.Zero(t, id)

	a, err := doc.StyleID(HeaderStyle())
	require.NoError(t, err)
	b, err := doc.StyleID(HeaderStyle().Merge(nil))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := doc.StyleID(HeaderStyle().Merge(Style{"alignment": map[string]any{"horizontal": "left"}}))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	_, err = doc.StyleID(Style{"font": map[string]any{"bold": "yes"}})
	assert.ErrorIs(t, err, ErrInvalidStyle)
}

func TestDocumentMerges(t *testing.T) {
	doc := newTestDocument(t)
	sheet := doc.ActiveSheet()

	assert.Error(t, doc.StageMerge(sheet, "1A", "B1"))
	require.NoError(t, doc.StageMerge(sheet, "A1", "C1"))

	merged, err := doc.File.GetMergeCells(sheet)
	require.NoError(t, err)
	assert.Empty(t, merged, "staged ranges are not merged yet")

	require.NoError(t, doc.CommitMerges(sheet))
	merged, err = doc.File.GetMergeCells(sheet)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "A1", merged[0].GetStartAxis())
	assert.Equal(t, "C1", merged[0].GetEndAxis())

	// committed ranges are forgotten
	require.NoError(t, doc.CommitMerges(sheet))
	merged, err = doc.File.GetMergeCells(sheet)
	require.NoError(t, err)
	assert.Len(t, merged, 1)
}

func TestDocumentFreezePanes(t *testing.T) {
	doc := newTestDocument(t)
	sheet := doc.ActiveSheet()

	require.NoError(t, doc.FreezePanes(sheet, "A2"))
	panes, err := doc.File.GetPanes(sheet)
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, 0, panes.XSplit)
	assert.Equal(t, 1, panes.YSplit)
	assert.Equal(t, "A2", panes.TopLeftCell)

	require.NoError(t, doc.FreezePanes(sheet, "C3"))
	panes, err = doc.File.GetPanes(sheet)
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, 2, panes.XSplit)
	assert.Equal(t, 2, panes.YSplit)

	assert.Error(t, doc.FreezePanes(sheet, "2A"))
}
