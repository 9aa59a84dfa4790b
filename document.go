// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetkit

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/xuri/excelize/v2"
)

// Document is a workbook under construction.
//
// File is the underlying excelize workbook, anything not covered here
// can be done on it directly.
// Merge ranges are staged with StageMerge and applied by CommitMerges.
type Document struct {
	File *excelize.File

	mu     sync.Mutex
	styles map[string]int
	staged map[string][][2]string
}

// NewDocument returns an empty workbook with one sheet.
func NewDocument() *Document {
	return &Document{File: excelize.NewFile()}
}

// Close releases the workbook's temporary resources.
func (d *Document) Close() error {
	if d == nil || d.File == nil {
		return nil
	}
	return d.File.Close()
}

// ActiveSheet returns the name of the active sheet.
func (d *Document) ActiveSheet() string {
	return d.File.GetSheetName(d.File.GetActiveSheetIndex())
}

// SetProperties sets the core and application properties of the workbook.
// LastModifiedBy is the Creator.
func (d *Document) SetProperties(p Properties) error {
	if err := d.File.SetDocProps(&excelize.DocProperties{
		Creator:        p.Creator,
		LastModifiedBy: p.Creator,
		Title:          p.Title,
		Subject:        p.Subject,
		Description:    p.Description,
		Keywords:       p.Keywords,
		Category:       p.Category,
	}); err != nil {
		return fmt.Errorf("set document properties: %w", err)
	}
	if err := d.File.SetAppProps(&excelize.AppProperties{Company: p.Company}); err != nil {
		return fmt.Errorf("set application properties: %w", err)
	}
	return nil
}

// Properties reads back the workbook's properties.
func (d *Document) Properties() (Properties, error) {
	dp, err := d.File.GetDocProps()
	if err != nil {
		return Properties{}, fmt.Errorf("get document properties: %w", err)
	}
	ap, err := d.File.GetAppProps()
	if err != nil {
		return Properties{}, fmt.Errorf("get application properties: %w", err)
	}
	return Properties{
		Title:       dp.Title,
		Subject:     dp.Subject,
		Description: dp.Description,
		Keywords:    dp.Keywords,
		Category:    dp.Category,
		Creator:     dp.Creator,
		Company:     ap.Company,
	}, nil
}

// StyleID registers the style in the workbook and returns its id.
// The empty style is 0.
func (d *Document) StyleID(style Style) (int, error) {
	if len(style) == 0 {
		return 0, nil
	}
	key, err := json.Marshal(style)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidStyle, err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if id, ok := d.styles[string(key)]; ok {
		return id, nil
	}
	xs, err := style.Excelize()
	if err != nil {
		return 0, err
	}
	id, err := d.File.NewStyle(xs)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidStyle, err)
	}
	if d.styles == nil {
		d.styles = make(map[string]int)
	}
	d.styles[string(key)] = id
	return id, nil
}

// SetRow writes values into the 1-based row of sheet, starting at column A.
// A non-zero styleID is applied to each of those cells, one by one.
func (d *Document) SetRow(sheet string, row int, values []any, styleID int) error {
	if row > MaxRowCount {
		return ErrTooManyRows
	}
	suffix := strconv.Itoa(row)
	for i, v := range values {
		axis := ColumnName(i+1) + suffix
		if err := d.SetCellValue(sheet, axis, v); err != nil {
			return fmt.Errorf("%s[%s]: %w", sheet, axis, err)
		}
		if styleID == 0 {
			continue
		}
		if err := d.File.SetCellStyle(sheet, axis, axis, styleID); err != nil {
			return fmt.Errorf("%s[%s]: %w", sheet, axis, err)
		}
	}
	return nil
}

// SetCellValue sets the value of the cell after normalizing it:
// nil and invalid sql.Null* values leave the cell empty.
func (d *Document) SetCellValue(sheet, axis string, v any) error {
	v, ok := cellValue(v)
	if !ok {
		return nil
	}
	if s, ok := v.(string); ok {
		return d.File.SetCellStr(sheet, axis, s)
	}
	return d.File.SetCellValue(sheet, axis, v)
}

// StageMerge registers the range to be merged by the next CommitMerges on sheet.
func (d *Document) StageMerge(sheet, topLeft, bottomRight string) error {
	if _, _, err := excelize.CellNameToCoordinates(topLeft); err != nil {
		return err
	}
	if _, _, err := excelize.CellNameToCoordinates(bottomRight); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.staged == nil {
		d.staged = make(map[string][][2]string)
	}
	d.staged[sheet] = append(d.staged[sheet], [2]string{topLeft, bottomRight})
	return nil
}

// CommitMerges merges the ranges staged for sheet, and forgets them.
func (d *Document) CommitMerges(sheet string) error {
	d.mu.Lock()
	ranges := d.staged[sheet]
	delete(d.staged, sheet)
	d.mu.Unlock()
	for _, r := range ranges {
		if err := d.File.MergeCell(sheet, r[0], r[1]); err != nil {
			return fmt.Errorf("merge %s:%s: %w", r[0], r[1], err)
		}
	}
	return nil
}

// FreezePanes freezes the rows above and the columns left of cell.
// "A1" removes the freeze.
func (d *Document) FreezePanes(sheet, cell string) error {
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return err
	}
	x, y := col-1, row-1
	if x == 0 && y == 0 {
		return d.File.SetPanes(sheet, &excelize.Panes{})
	}
	pane := "bottomRight"
	switch {
	case x == 0:
		pane = "bottomLeft"
	case y == 0:
		pane = "topRight"
	}
	return d.File.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      x,
		YSplit:      y,
		TopLeftCell: cell,
		ActivePane:  pane,
	})
}
