// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package ods writes OpenDocument spreadsheets.
package ods

//go:generate qtc -file=content.qtpl

import (
	"fmt"
	"io"

	"github.com/UNO-SOFT/sheetkit"
	"github.com/klauspost/compress/zip"
)

// MimeType is both the content type and the content of the mimetype part.
const MimeType = "application/vnd.oasis.opendocument.spreadsheet"

var _ = (sheetkit.Encoder)(Encoder{})

// Encoder writes the workbook as a .ods package.
type Encoder struct{}

func (Encoder) Encode(w io.Writer, doc *sheetkit.Document) error {
	t, err := sheetkit.Snapshot(doc)
	if err != nil {
		return err
	}
	v := newView(t)

	zw := zip.NewWriter(w)
	// The mimetype must be the first, uncompressed entry.
	fw, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return err
	}
	if _, err = io.WriteString(fw, MimeType); err != nil {
		return err
	}
	for _, part := range []struct {
		Name   string
		Render func(io.Writer)
	}{
		{"content.xml", func(w io.Writer) { writecontent(w, v) }},
		{"styles.xml", func(w io.Writer) { io.WriteString(w, stylesXML) }},
		{"meta.xml", func(w io.Writer) { writemeta(w, v) }},
		{"settings.xml", func(w io.Writer) { writesettings(w, v) }},
		{"META-INF/manifest.xml", func(w io.Writer) { io.WriteString(w, manifestXML) }},
	} {
		fw, err := zw.Create(part.Name)
		if err != nil {
			return fmt.Errorf("%s: %w", part.Name, err)
		}
		sw := sheetkit.NewStickyWriter(fw)
		part.Render(sw)
		if err = sw.Err(); err != nil {
			return fmt.Errorf("%s: %w", part.Name, err)
		}
	}
	return zw.Close()
}

const stylesXML = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-styles xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0" office:version="1.2"><office:styles/></office:document-styles>
`

const manifestXML = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:version="1.2" manifest:media-type="` + MimeType + `"/>
 <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
 <manifest:file-entry manifest:full-path="styles.xml" manifest:media-type="text/xml"/>
 <manifest:file-entry manifest:full-path="meta.xml" manifest:media-type="text/xml"/>
 <manifest:file-entry manifest:full-path="settings.xml" manifest:media-type="text/xml"/>
</manifest:manifest>
`

type view struct {
	Props  sheetkit.Properties
	Styles []cellStyle
	Sheets []sheetView
}

type cellStyle struct {
	Name         string
	Bold, Italic bool
	Align        string
}

type sheetView struct {
	Name                   string
	Width                  int
	FrozenRows, FrozenCols int
	Head, Body             [][]cellView
}

type cellView struct {
	Text, Value      string
	Numeric, Covered bool
	Style            string
	ColSpan, RowSpan int
}

func newView(t *sheetkit.Table) *view {
	v := view{Props: t.Properties}
	names := make(map[cellStyle]string)
	styleName := func(c sheetkit.Cell) string {
		k := cellStyle{Bold: c.Bold, Italic: c.Italic, Align: textAlign(c.Align)}
		if k == (cellStyle{}) {
			return ""
		}
		if name, ok := names[k]; ok {
			return name
		}
		name := fmt.Sprintf("ce%d", len(v.Styles)+1)
		names[k] = name
		k.Name = name
		v.Styles = append(v.Styles, k)
		return name
	}

	for _, sh := range t.Sheets {
		sv := sheetView{
			Name: sh.Name, Width: max(1, sh.Width),
			FrozenRows: sh.FrozenRows, FrozenCols: sh.FrozenCols,
		}
		for i, row := range sh.Rows {
			cells := make([]cellView, len(row))
			for j, c := range row {
				cells[j] = cellView{
					Text: c.Text, Value: c.Raw, Numeric: c.Numeric,
					Covered: c.Covered, Style: styleName(c),
					ColSpan: c.ColSpan, RowSpan: c.RowSpan,
				}
			}
			if i < sh.FrozenRows {
				sv.Head = append(sv.Head, cells)
			} else {
				sv.Body = append(sv.Body, cells)
			}
		}
		if len(sv.Head) == 0 && len(sv.Body) == 0 {
			// A table needs at least one row.
			sv.Body = [][]cellView{{{ColSpan: 1, RowSpan: 1}}}
		}
		v.Sheets = append(v.Sheets, sv)
	}
	return &v
}

func textAlign(horizontal string) string {
	switch horizontal {
	case "left":
		return "start"
	case "right":
		return "end"
	case "center", "centerContinuous":
		return "center"
	case "justify", "distributed":
		return "justify"
	}
	return ""
}
