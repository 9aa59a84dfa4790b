// Copyright 2020, 2023 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetkit

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// cellValue converts v to something excelize stores well.
// driver.Valuer (so every sql.Null*) is resolved first.
// The second result is false when the cell should stay empty.
func cellValue(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	if vr, ok := v.(driver.Valuer); ok {
		if vv, err := vr.Value(); err == nil {
			if vv == nil {
				return nil, false
			}
			v = vv
		}
	}
	switch x := v.(type) {
	case time.Time:
		if x.IsZero() {
			return nil, false
		}
		return x.Format("2006-01-02"), true
	case []byte:
		return string(x), true
	case Number:
		if f, err := strconv.ParseFloat(string(x), 64); err == nil {
			return f, true
		}
		return string(x), true
	case fmt.Stringer:
		return x.String(), true
	}
	return v, true
}
