// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package sheetkit contains the document model shared by the encoders
// and the excel service: a workbook wrapper, styles, document
// properties, the format registry and column naming.
package sheetkit

import (
	"errors"
	"io"
)

// Writer writes the spreadsheet consisting of the sheets created
// with NewSheet. The write finishes when Close is called.
//
// The writer SHOULD allow writing to separate sheets concurrently,
// and document if it does not provide this functionality.
type Writer interface {
	io.Closer
	NewSheet(name string, cols []Column) (Sheet, error)
}

// Sheet should be Closed when finished.
type Sheet interface {
	io.Closer
	AppendRow(values ...any) error
}

// Encoder serializes a whole Document into one file format.
type Encoder interface {
	Encode(w io.Writer, doc *Document) error
}

// Column contains the Name of the column and header's style and column's style.
type Column struct {
	Name           string
	Header, Column Style
}

// Properties is the metadata copied onto a new document.
type Properties struct {
	Title       string
	Subject     string
	Description string
	Keywords    string
	Category    string
	Creator     string
	Company     string
}

// MaxRowCount is the number of maximum rows.
const MaxRowCount = 1_048_576

var (
	ErrTooManyRows  = errors.New("too many rows")
	ErrInvalidStyle = errors.New("invalid style")
	ErrClosed       = errors.New("writer closed")
)

// Number is a string that contains a number.
type Number string

// StickyWriter remembers the first error of the underlying writer,
// and fails every subsequent write with it.
// Template renderers drop write errors, wrap their writer with this.
type StickyWriter struct {
	w   io.Writer
	err error
}

// NewStickyWriter wraps w.
func NewStickyWriter(w io.Writer) *StickyWriter { return &StickyWriter{w: w} }

func (sw *StickyWriter) Write(p []byte) (int, error) {
	if sw.err != nil {
		return 0, sw.err
	}
	n, err := sw.w.Write(p)
	sw.err = err
	return n, err
}

// Err returns the first error.
func (sw *StickyWriter) Err() error { return sw.err }
