// Copyright 2021, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package pdf prints the active sheet of a workbook as a PDF table.
//
// PDF is not one of the download formats, this is for the command line.
package pdf

import (
	"encoding/hex"
	"fmt"
	"io"
	"math"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/UNO-SOFT/sheetkit"
)

var _ = (sheetkit.Encoder)(Encoder{})

// Encoder renders the active sheet, its frozen rows repeated on each page.
type Encoder struct {
	Landscape bool
	// FontSize of the body, 8 when zero. Header rows are 1.375 times bigger.
	FontSize float64
	// AlternateColor is the background of every second body row, none when nil.
	AlternateColor *props.Color
}

func (e Encoder) Encode(w io.Writer, doc *sheetkit.Document) error {
	t, err := sheetkit.Snapshot(doc)
	if err != nil {
		return err
	}
	active := doc.ActiveSheet()
	var sh sheetkit.TableSheet
	for _, s := range t.Sheets {
		if s.Name == active {
			sh = s
			break
		}
	}
	fontSize := e.FontSize
	if fontSize <= 0 {
		fontSize = 8
	}

	grid := gridSizes(sh)
	var total int
	for _, g := range grid {
		total += g
	}
	cb := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithMaxGridSize(max(1, total)).
		WithTitle(t.Properties.Title, true).
		WithAuthor(t.Properties.Creator, true).
		WithSubject(t.Properties.Subject, true).
		WithKeywords(t.Properties.Keywords, true)
	if e.Landscape {
		cb = cb.WithOrientation(orientation.Horizontal)
	}
	m := maroto.New(cb.Build())

	head := props.Text{Family: fontfamily.Arial, Style: fontstyle.Bold, Size: fontSize * 1.375, Align: align.Center}
	body := props.Text{Family: fontfamily.Courier, Style: fontstyle.Normal, Size: fontSize}
	var header []core.Row
	for i, cells := range sh.Rows {
		if i < sh.FrozenRows {
			header = append(header, tableRow(cells, grid, head, fontSize*1.375))
			continue
		}
		r := tableRow(cells, grid, body, fontSize)
		if e.AlternateColor != nil && (i-sh.FrozenRows)%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: e.AlternateColor})
		}
		m.AddRows(r)
	}
	if len(header) != 0 {
		if err = m.RegisterHeader(header...); err != nil {
			return fmt.Errorf("header: %w", err)
		}
	}

	pdf, err := m.Generate()
	if err != nil {
		return err
	}
	_, err = w.Write(pdf.GetBytes())
	return err
}

// slot is a column of a printed row, cell is nil for a placeholder.
type slot struct {
	size int
	cell *sheetkit.Cell
}

// rowLayout sums the grid under column spans. The cells a span covers
// are dropped, cells covered from a row above keep their place empty.
func rowLayout(cells []sheetkit.Cell, grid []int) []slot {
	slots := make([]slot, 0, len(cells))
	var skip int
	for j := range cells {
		c := &cells[j]
		if skip > 0 {
			skip--
			continue
		}
		if c.Covered {
			if j < len(grid) {
				slots = append(slots, slot{size: grid[j]})
			}
			continue
		}
		span := max(1, c.ColSpan)
		skip = span - 1
		size := 0
		for k := j; k < j+span && k < len(grid); k++ {
			size += grid[k]
		}
		slots = append(slots, slot{size: size, cell: c})
	}
	return slots
}

func tableRow(cells []sheetkit.Cell, grid []int, p props.Text, fontSize float64) core.Row {
	slots := rowLayout(cells, grid)
	cols := make([]core.Col, 0, len(slots))
	for _, sl := range slots {
		c := sl.cell
		if c == nil || c.Text == "" {
			cols = append(cols, col.New(sl.size))
			continue
		}
		tp := p
		if c.Bold {
			tp.Style = fontstyle.Bold
		}
		if c.Italic {
			tp.Style = fontstyle.Italic
			if c.Bold {
				tp.Style = fontstyle.BoldItalic
			}
		}
		switch {
		case c.Align == "center" || c.Align == "centerContinuous":
			tp.Align = align.Center
		case c.Align == "right" || (c.Align == "" && c.Numeric):
			tp.Align = align.Right
		case c.Align == "left":
			tp.Align = align.Left
		}
		cols = append(cols, text.NewCol(sl.size, c.Text, tp))
	}
	// pt to mm, with some spacing
	return row.New(fontSize * 0.3528 * 1.6).Add(cols...)
}

// gridSizes distributes the grid between the columns
// proportionally to their average text length.
func gridSizes(sh sheetkit.TableSheet) []int {
	widths := make([]float64, sh.Width)
	var sum float64
	for _, cells := range sh.Rows {
		for j, c := range cells {
			if c.Covered || c.ColSpan > 1 {
				continue
			}
			widths[j] += float64(len([]rune(c.Text)))
		}
	}
	for _, w := range widths {
		sum += w
	}
	avg := sum / float64(max(1, len(widths)))
	grid := make([]int, len(widths))
	for i, w := range widths {
		grid[i] = 1
		if avg > 0 {
			grid[i] = max(1, int(math.Round(4*w/avg)))
		}
	}
	return grid
}

// ParseColor parses a hex RGB color ("e6e6e6").
func ParseColor(s string) (*props.Color, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != 3 {
		return nil, fmt.Errorf("%q: want 3 bytes, got %d", s, len(b))
	}
	return &props.Color{Red: int(b[0]), Green: int(b[1]), Blue: int(b[2])}, nil
}
