// Copyright 2020, 2023 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xlsx writes Office Open XML (Excel 2007+) workbooks.
package xlsx

import (
	"io"

	"github.com/UNO-SOFT/sheetkit"
)

var _ = (sheetkit.Encoder)(Encoder{})

// Encoder writes the workbook with excelize's own serializer.
type Encoder struct{}

func (Encoder) Encode(w io.Writer, doc *sheetkit.Document) error {
	_, err := doc.File.WriteTo(w)
	return err
}

// NewWriter returns a new sheetkit.Writer producing an xlsx file.
//
// This writer allows concurrent writes to separate sheets.
//
// This writer collects everything in memory, so big sheets may impose problems.
func NewWriter(w io.Writer) *sheetkit.DocWriter {
	return sheetkit.NewWriter(w, Encoder{})
}
