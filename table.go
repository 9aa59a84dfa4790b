// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetkit

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Table is a read-only, rectangular snapshot of a workbook,
// what the non-native encoders render.
type Table struct {
	Properties Properties
	Sheets     []TableSheet
}

// TableSheet is one sheet of a Table. Every row has Width cells.
type TableSheet struct {
	Name       string
	Width      int
	Rows       [][]Cell
	FrozenRows int
	FrozenCols int
}

// Cell is a snapshot of one cell.
type Cell struct {
	// Text is the formatted value.
	Text string
	// Raw is the unformatted value of numeric cells.
	Raw     string
	Numeric bool

	Bold, Italic bool
	// Align is the horizontal alignment as excelize names it ("left", "center", ...).
	Align string

	// ColSpan and RowSpan are greater than 1 for the top-left cell of a merged range.
	ColSpan, RowSpan int
	// Covered is true for the other cells of a merged range.
	Covered bool
}

// Snapshot reads the workbook of doc into a Table.
func Snapshot(doc *Document) (*Table, error) {
	props, err := doc.Properties()
	if err != nil {
		return nil, err
	}
	t := Table{Properties: props}
	styles := make(map[int]*excelize.Style)
	for _, name := range doc.File.GetSheetList() {
		sh, err := snapshotSheet(doc.File, name, styles)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		t.Sheets = append(t.Sheets, sh)
	}
	return &t, nil
}

type span struct{ c1, r1, c2, r2 int }

func snapshotSheet(f *excelize.File, name string, styles map[int]*excelize.Style) (TableSheet, error) {
	rows, err := f.GetRows(name)
	if err != nil {
		return TableSheet{}, err
	}
	merges, err := f.GetMergeCells(name)
	if err != nil {
		return TableSheet{}, err
	}
	height, width := len(rows), 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	spans := make([]span, 0, len(merges))
	for _, m := range merges {
		var s span
		if s.c1, s.r1, err = excelize.CellNameToCoordinates(m.GetStartAxis()); err != nil {
			return TableSheet{}, err
		}
		if s.c2, s.r2, err = excelize.CellNameToCoordinates(m.GetEndAxis()); err != nil {
			return TableSheet{}, err
		}
		width, height = max(width, s.c2), max(height, s.r2)
		spans = append(spans, s)
	}

	sh := TableSheet{Name: name, Width: width, Rows: make([][]Cell, height)}
	for r := range sh.Rows {
		cells := make([]Cell, width)
		for c := range cells {
			cell := &cells[c]
			cell.ColSpan, cell.RowSpan = 1, 1
			if r < len(rows) && c < len(rows[r]) {
				cell.Text = rows[r][c]
			}
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return sh, err
			}
			if cell.Text != "" {
				if err = numericCell(f, name, axis, cell); err != nil {
					return sh, err
				}
			}
			if err = styleCell(f, name, axis, cell, styles); err != nil {
				return sh, err
			}
		}
		sh.Rows[r] = cells
	}

	for _, s := range spans {
		for r := s.r1; r <= s.r2; r++ {
			for c := s.c1; c <= s.c2; c++ {
				sh.Rows[r-1][c-1].Covered = true
			}
		}
		top := &sh.Rows[s.r1-1][s.c1-1]
		top.Covered = false
		top.ColSpan, top.RowSpan = s.c2-s.c1+1, s.r2-s.r1+1
	}

	panes, err := f.GetPanes(name)
	if err != nil {
		return sh, err
	}
	if panes.Freeze {
		sh.FrozenCols, sh.FrozenRows = panes.XSplit, panes.YSplit
	}
	return sh, nil
}

func numericCell(f *excelize.File, sheet, axis string, cell *Cell) error {
	typ, err := f.GetCellType(sheet, axis)
	if err != nil {
		return err
	}
	if typ != excelize.CellTypeNumber && typ != excelize.CellTypeUnset {
		return nil
	}
	raw, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		return err
	}
	if _, err := strconv.ParseFloat(raw, 64); err == nil {
		cell.Numeric, cell.Raw = true, raw
	}
	return nil
}

func styleCell(f *excelize.File, sheet, axis string, cell *Cell, styles map[int]*excelize.Style) error {
	id, err := f.GetCellStyle(sheet, axis)
	if err != nil || id == 0 {
		return err
	}
	st, ok := styles[id]
	if !ok {
		if st, err = f.GetStyle(id); err != nil {
			return err
		}
		styles[id] = st
	}
	if st.Font != nil {
		cell.Bold, cell.Italic = st.Font.Bold, st.Font.Italic
	}
	if st.Alignment != nil {
		cell.Align = st.Alignment.Horizontal
	}
	return nil
}
