// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package html renders workbooks as a HTML page, one table per sheet.
package html

//go:generate qtc -file=page.qtpl

import (
	"io"
	"strings"

	"github.com/UNO-SOFT/sheetkit"
)

var _ = (sheetkit.Encoder)(Encoder{})

// Encoder writes a standalone HTML page.
// Frozen rows become the table's header, merged ranges use colspan/rowspan.
type Encoder struct{}

func (Encoder) Encode(w io.Writer, doc *sheetkit.Document) error {
	t, err := sheetkit.Snapshot(doc)
	if err != nil {
		return err
	}
	sw := sheetkit.NewStickyWriter(w)
	writepage(sw, newView(t))
	return sw.Err()
}

type view struct {
	Title  string
	Meta   [][2]string
	Sheets []sheetView
}

type sheetView struct {
	Name       string
	Head, Body [][]cellView
}

type cellView struct {
	Text             string
	Class, Style     string
	ColSpan, RowSpan int
}

func newView(t *sheetkit.Table) *view {
	v := view{Title: t.Properties.Title}
	for _, m := range [][2]string{
		{"author", t.Properties.Creator},
		{"description", t.Properties.Description},
		{"keywords", t.Properties.Keywords},
		{"subject", t.Properties.Subject},
	} {
		if m[1] != "" {
			v.Meta = append(v.Meta, m)
		}
	}
	for _, sh := range t.Sheets {
		sv := sheetView{Name: sh.Name}
		for i, row := range sh.Rows {
			cells := make([]cellView, 0, len(row))
			for _, c := range row {
				if c.Covered {
					continue
				}
				cells = append(cells, newCellView(c))
			}
			if i < sh.FrozenRows {
				sv.Head = append(sv.Head, cells)
			} else {
				sv.Body = append(sv.Body, cells)
			}
		}
		v.Sheets = append(v.Sheets, sv)
	}
	return &v
}

func newCellView(c sheetkit.Cell) cellView {
	cv := cellView{Text: c.Text, ColSpan: c.ColSpan, RowSpan: c.RowSpan}
	if c.Numeric {
		cv.Class = "n"
	}
	var css []string
	if c.Bold {
		css = append(css, "font-weight:bold")
	}
	if c.Italic {
		css = append(css, "font-style:italic")
	}
	if a := textAlign(c.Align); a != "" {
		css = append(css, "text-align:"+a)
	}
	cv.Style = strings.Join(css, ";")
	return cv
}

func textAlign(horizontal string) string {
	switch horizontal {
	case "left", "center", "right", "justify":
		return horizontal
	case "centerContinuous":
		return "center"
	case "distributed":
		return "justify"
	}
	return ""
}
