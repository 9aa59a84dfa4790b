// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetkit

// ColumnName returns the spreadsheet name of the 1-based column index:
// 1 is "A", 26 is "Z", 27 is "AA", 703 is "AAA".
// Indexes below 1 yield "A".
func ColumnName(index int) string {
	if index < 1 {
		return "A"
	}
	i := index - 1
	if i < 26 {
		return string(rune('A' + i))
	}
	return ColumnName(i/26) + ColumnName(i%26+1)
}
