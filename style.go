// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetkit

import (
	"encoding/json"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Style is a free-form, nested cell style description.
//
// The keys are the field names of excelize.Style (matched case insensitively),
// nested maps are the embedded structures:
//
//	Style{"font": map[string]any{"bold": true}, "alignment": map[string]any{"horizontal": "center"}}
type Style map[string]any

// HeaderStyle returns the default header style: bold, centered.
func HeaderStyle() Style {
	return Style{
		"font":      map[string]any{"bold": true},
		"alignment": map[string]any{"horizontal": "center"},
	}
}

// Merge returns a new Style with override's keys on top of s.
// Nested maps are merged recursively, any other value in override wins.
// Neither s nor override is modified.
func (s Style) Merge(override Style) Style {
	out := make(Style, len(s)+len(override))
	for k, v := range s {
		out[k] = cloneValue(v)
	}
	for k, v := range override {
		if dst, ok := asMap(out[k]); ok {
			if src, ok := asMap(v); ok {
				out[k] = map[string]any(Style(dst).Merge(Style(src)))
				continue
			}
		}
		out[k] = cloneValue(v)
	}
	return out
}

// Excelize converts the style to the library's structure.
func (s Style) Excelize() (*excelize.Style, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStyle, err)
	}
	var xs excelize.Style
	if err = json.Unmarshal(b, &xs); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidStyle, b, err)
	}
	return &xs, nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Style:
		return m, true
	}
	return nil, false
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return map[string]any(Style(nil).Merge(Style(x)))
	case Style:
		return map[string]any(Style(nil).Merge(x))
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	}
	return v
}
