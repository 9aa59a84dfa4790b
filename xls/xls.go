// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xls writes workbooks for the .xls extension as
// XML Spreadsheet 2003 documents, which every Excel since 2002 opens.
package xls

//go:generate qtc -file=workbook.qtpl

import (
	"fmt"
	"io"
	"strings"

	"github.com/UNO-SOFT/sheetkit"
)

var _ = (sheetkit.Encoder)(Encoder{})

// Encoder writes an XML Spreadsheet 2003 workbook.
type Encoder struct{}

func (Encoder) Encode(w io.Writer, doc *sheetkit.Document) error {
	t, err := sheetkit.Snapshot(doc)
	if err != nil {
		return err
	}
	sw := sheetkit.NewStickyWriter(w)
	writeworkbook(sw, newView(t))
	return sw.Err()
}

type view struct {
	Props  sheetkit.Properties
	Styles []cellStyle
	Sheets []sheetView
}

type cellStyle struct {
	ID           string
	Bold, Italic bool
	Align        string
}

type sheetView struct {
	Name                   string
	Width, Height          int
	FrozenRows, FrozenCols int
	ActivePane             int
	Rows                   [][]cellView
}

type cellView struct {
	// Index is the 1-based column, 0 when it follows the previous cell.
	Index                  int
	Style                  string
	MergeAcross, MergeDown int
	Type, Data             string
}

func newView(t *sheetkit.Table) *view {
	v := view{Props: t.Properties}
	ids := make(map[cellStyle]string)
	styleID := func(c sheetkit.Cell) string {
		k := cellStyle{Bold: c.Bold, Italic: c.Italic, Align: horizontal(c.Align)}
		if k == (cellStyle{}) {
			return ""
		}
		if id, ok := ids[k]; ok {
			return id
		}
		id := fmt.Sprintf("s%d", len(v.Styles)+1)
		ids[k] = id
		k.ID = id
		v.Styles = append(v.Styles, k)
		return id
	}

	for _, sh := range t.Sheets {
		sv := sheetView{
			Name: sh.Name, Width: max(1, sh.Width), Height: max(1, len(sh.Rows)),
			FrozenRows: sh.FrozenRows, FrozenCols: sh.FrozenCols,
		}
		switch {
		case sh.FrozenRows != 0 && sh.FrozenCols != 0:
			sv.ActivePane = 0
		case sh.FrozenCols != 0:
			sv.ActivePane = 1
		default:
			sv.ActivePane = 2
		}
		for _, row := range sh.Rows {
			cells := make([]cellView, 0, len(row))
			next := 1
			for j, c := range row {
				if c.Covered {
					continue
				}
				cv := cellView{
					Style:       styleID(c),
					MergeAcross: c.ColSpan - 1, MergeDown: c.RowSpan - 1,
				}
				if c.Text != "" {
					cv.Type, cv.Data = "String", c.Text
					if c.Numeric {
						cv.Type, cv.Data = "Number", c.Raw
					}
				}
				if cv == (cellView{}) {
					continue
				}
				if j+1 != next {
					cv.Index = j + 1
				}
				next = j + c.ColSpan + 1
				cells = append(cells, cv)
			}
			sv.Rows = append(sv.Rows, cells)
		}
		v.Sheets = append(v.Sheets, sv)
	}
	return &v
}

func horizontal(align string) string {
	switch align {
	case "", "general", "fill":
		return ""
	case "centerContinuous":
		return "CenterAcrossSelection"
	}
	return strings.ToUpper(align[:1]) + align[1:]
}
