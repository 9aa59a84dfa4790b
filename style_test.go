package sheetkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleMerge(t *testing.T) {
	got := HeaderStyle().Merge(Style{
		"alignment": map[string]any{"horizontal": "left", "vertical": "top"},
		"fill":      map[string]any{"type": "pattern", "pattern": 1},
	})
	assert.Equal(t, Style{
		"font":      map[string]any{"bold": true},
		"alignment": map[string]any{"horizontal": "left", "vertical": "top"},
		"fill":      map[string]any{"type": "pattern", "pattern": 1},
	}, got)
}

func TestStyleMergeKeepsNestedDefaults(t *testing.T) {
	got := HeaderStyle().Merge(Style{"font": map[string]any{"italic": true}})
	assert.Equal(t, map[string]any{"bold": true, "italic": true}, got["font"])
	assert.Equal(t, map[string]any{"horizontal": "center"}, got["alignment"])
}

func TestStyleMergeScalarOverridesMap(t *testing.T) {
	got := Style{"font": map[string]any{"bold": true}}.Merge(Style{"font": nil})
	assert.Nil(t, got["font"])
}

func TestStyleMergeDoesNotModify(t *testing.T) {
	base := HeaderStyle()
	override := Style{"alignment": Style{"horizontal": "right"}}
	merged := base.Merge(override)
	merged["alignment"].(map[string]any)["vertical"] = "top"

	assert.Equal(t, HeaderStyle(), base)
	assert.Equal(t, Style{"alignment": Style{"horizontal": "right"}}, override)
	assert.Equal(t, HeaderStyle(), HeaderStyle().Merge(nil))
}

func TestStyleExcelize(t *testing.T) {
	xs, err := HeaderStyle().Merge(Style{
		"font":   map[string]any{"size": 14, "color": "FF0000"},
		"numFmt": 2,
	}).Excelize()
	require.NoError(t, err)
	require.NotNil(t, xs.Font)
	assert.True(t, xs.Font.Bold)
	assert.Equal(t, 14.0, xs.Font.Size)
	assert.Equal(t, "FF0000", xs.Font.Color)
	require.NotNil(t, xs.Alignment)
	assert.Equal(t, "center", xs.Alignment.Horizontal)
	assert.Equal(t, 2, xs.NumFmt)
}

func TestStyleExcelizeInvalid(t *testing.T) {
	_, err := Style{"font": map[string]any{"bold": "very"}}.Excelize()
	assert.ErrorIs(t, err, ErrInvalidStyle)

	_, err = Style{"font": func() {}}.Excelize()
	assert.ErrorIs(t, err, ErrInvalidStyle)
}
