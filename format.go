// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetkit

import "strings"

// Format names an export file format.
type Format string

const (
	OpenDocument Format = "OpenDocument"
	CSV          Format = "CSV"
	HTML         Format = "HTML"
	Excel5       Format = "Excel5"
	Excel2007    Format = "Excel2007"
)

var extensions = map[Format]string{
	OpenDocument: "ods",
	CSV:          "csv",
	HTML:         "html",
	Excel5:       "xls",
	Excel2007:    "xlsx",
}

// Formats returns every registered format.
func Formats() []Format {
	return []Format{Excel2007, Excel5, OpenDocument, CSV, HTML}
}

// Extension returns the file extension (without the dot) of the format,
// and whether the format is registered at all.
func (f Format) Extension() (string, bool) {
	ext, ok := extensions[f]
	return ext, ok
}

// Valid reports whether f is a registered format.
func (f Format) Valid() bool {
	_, ok := extensions[f]
	return ok
}

// FormatForExtension returns the format registered for the extension
// (with or without the leading dot, case insensitive).
func FormatForExtension(ext string) (Format, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for f, e := range extensions {
		if e == ext {
			return f, true
		}
	}
	return "", false
}
