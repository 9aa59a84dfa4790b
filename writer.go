// Copyright 2020, 2023 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetkit

import (
	"io"
	"sync"
)

var _ = (Writer)((*DocWriter)(nil))

// DocWriter is a Writer collecting the sheets in a Document,
// which is encoded with the given Encoder on Close.
//
// This writer allows concurrent writes to separate sheets.
//
// This writer collects everything in memory, so big sheets may impose problems.
type DocWriter struct {
	w      io.Writer
	enc    Encoder
	doc    *Document
	sheets []string
	mu     sync.Mutex
}

type docSheet struct {
	doc  *Document
	Name string
	row  int
	mu   sync.Mutex
}

// NewWriter returns a new Writer encoding with enc into w.
func NewWriter(w io.Writer, enc Encoder) *DocWriter {
	return &DocWriter{w: w, enc: enc, doc: NewDocument()}
}

// Document returns the document being built, nil after Close.
func (dw *DocWriter) Document() *Document {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	return dw.doc
}

func (dw *DocWriter) Close() error {
	if dw == nil {
		return nil
	}
	dw.mu.Lock()
	defer dw.mu.Unlock()
	doc, w := dw.doc, dw.w
	dw.doc, dw.w = nil, nil
	if doc == nil || w == nil {
		return nil
	}
	err := dw.enc.Encode(w, doc)
	if closeErr := doc.Close(); err == nil {
		err = closeErr
	}
	return err
}

func (dw *DocWriter) NewSheet(name string, columns []Column) (Sheet, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.doc == nil {
		return nil, ErrClosed
	}
	xl := dw.doc.File
	dw.sheets = append(dw.sheets, name)
	if len(dw.sheets) == 1 { // first
		if err := xl.SetSheetName(xl.GetSheetName(0), name); err != nil {
			return nil, err
		}
	} else if _, err := xl.NewSheet(name); err != nil {
		return nil, err
	}
	var hasHeader bool
	for i, c := range columns {
		col := ColumnName(i + 1)
		s, err := dw.doc.StyleID(c.Column)
		if err != nil {
			return nil, err
		}
		if s != 0 {
			if err = xl.SetColStyle(name, col, s); err != nil {
				return nil, err
			}
		}
		if s, err = dw.doc.StyleID(c.Header); err != nil {
			return nil, err
		}
		if s != 0 {
			if err = xl.SetCellStyle(name, col+"1", col+"1", s); err != nil {
				return nil, err
			}
		}
		if c.Name != "" {
			hasHeader = true
			if err = xl.SetCellStr(name, col+"1", c.Name); err != nil {
				return nil, err
			}
		}
	}
	sh := &docSheet{doc: dw.doc, Name: name}
	if hasHeader {
		sh.row++
	}
	return sh, nil
}

func (sh *docSheet) Close() error { return nil }

func (sh *docSheet) AppendRow(values ...any) error {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if sh.row >= MaxRowCount {
		return ErrTooManyRows
	}
	sh.row++
	return sh.doc.SetRow(sh.Name, sh.row, values, 0)
}
