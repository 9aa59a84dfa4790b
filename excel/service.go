// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package excel provides the Service handlers use to build
// spreadsheets and send them to the client as a download.
package excel

import (
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2/utils"

	"github.com/UNO-SOFT/sheetkit"
	"github.com/UNO-SOFT/sheetkit/html"
	"github.com/UNO-SOFT/sheetkit/ods"
	"github.com/UNO-SOFT/sheetkit/xls"
	"github.com/UNO-SOFT/sheetkit/xlsx"
)

// Service builds documents and writes them in the registered formats.
//
// A Service is immutable and safe for concurrent use,
// the documents passed to it are not.
type Service struct {
	defaultFormat sheetkit.Format
	properties    sheetkit.Properties
	encoders      map[sheetkit.Format]sheetkit.Encoder
	csvCharset    string
	logger        *slog.Logger
	now           func() time.Time
}

// New returns a Service configured by cfg.
func New(cfg Config) *Service {
	def := sheetkit.Format(cfg.DefaultFormat)
	if !def.Valid() {
		def = sheetkit.Excel2007
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		defaultFormat: def,
		properties:    cfg.Properties,
		csvCharset:    cfg.Charset,
		logger:        logger,
		now:           time.Now,
		encoders: map[sheetkit.Format]sheetkit.Encoder{
			sheetkit.Excel2007:    xlsx.Encoder{},
			sheetkit.Excel5:       xls.Encoder{},
			sheetkit.OpenDocument: ods.Encoder{},
			sheetkit.CSV:          sheetkit.CSVEncoder{Charset: cfg.Charset},
			sheetkit.HTML:         html.Encoder{},
		},
	}
}

// DefaultFormat is the format unknown formats are replaced with.
func (s *Service) DefaultFormat() sheetkit.Format { return s.defaultFormat }

// NewDocument returns an empty document.
// With applyDefaultProperties, the configured properties are set on it,
// otherwise the library's defaults are left alone.
func (s *Service) NewDocument(applyDefaultProperties bool) (*sheetkit.Document, error) {
	doc := sheetkit.NewDocument()
	if !applyDefaultProperties {
		return doc, nil
	}
	if err := doc.SetProperties(s.properties); err != nil {
		doc.Close()
		return nil, err
	}
	return doc, nil
}

// ColumnName returns the name of the 1-based column index ("A", "B", ..., "AA", ...).
func (s *Service) ColumnName(index int) string { return sheetkit.ColumnName(index) }

// WriteRow writes data into row rowIndex of the active sheet, starting at column A.
// A rowIndex below 1 means the first row.
// A non-empty style is applied to each written cell.
func (s *Service) WriteRow(doc *sheetkit.Document, rowIndex int, data []any, style sheetkit.Style) error {
	if rowIndex <= 0 {
		rowIndex = 1
	}
	styleID, err := doc.StyleID(style)
	if err != nil {
		return err
	}
	return doc.SetRow(doc.ActiveSheet(), rowIndex, data, styleID)
}

// WriteHeaderRow writes data into the first row with the header style
// (bold, centered) overridden by style, commits the merges staged on the
// active sheet and freezes the first row.
func (s *Service) WriteHeaderRow(doc *sheetkit.Document, data []any, style sheetkit.Style) error {
	if err := s.WriteRow(doc, 1, data, sheetkit.HeaderStyle().Merge(style)); err != nil {
		return err
	}
	sheet := doc.ActiveSheet()
	if err := doc.CommitMerges(sheet); err != nil {
		return err
	}
	return doc.FreezePanes(sheet, s.ColumnName(1)+"2")
}

// ResolveFormat returns format if it is registered, the default format otherwise.
func (s *Service) ResolveFormat(format string) sheetkit.Format {
	if f := sheetkit.Format(format); f.Valid() {
		return f
	}
	s.logger.Debug("unknown format", "format", format, "default", s.defaultFormat)
	return s.defaultFormat
}

// Filename resolves the format and appends its extension to name.
func (s *Service) Filename(name, format string) (sheetkit.Format, string) {
	f := s.ResolveFormat(format)
	ext, _ := f.Extension()
	return f, name + "." + ext
}

// Encode writes doc into w in the format (or the default format).
func (s *Service) Encode(w io.Writer, doc *sheetkit.Document, format string) (sheetkit.Format, error) {
	f := s.ResolveFormat(format)
	if err := s.encoders[f].Encode(w, doc); err != nil {
		return f, fmt.Errorf("encode %s: %w", f, err)
	}
	return f, nil
}

// NewWriter returns a sheetkit.Writer which encodes into w in the format on Close.
func (s *Service) NewWriter(w io.Writer, format string) *sheetkit.DocWriter {
	return sheetkit.NewWriter(w, s.encoders[s.ResolveFormat(format)])
}

// contentType is the MIME type of the file name's extension,
// with the configured charset for CSV when it is not UTF-8.
func (s *Service) contentType(f sheetkit.Format, name string) string {
	ct := utils.GetMIME(filepath.Ext(name))
	if f != sheetkit.CSV {
		return ct
	}
	if enc, err := sheetkit.GetEncoding(s.csvCharset); err != nil || enc == nil {
		return ct
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ct
	}
	return mime.FormatMediaType(mt, map[string]string{"charset": s.csvCharset})
}

// expires is a date in the past.
const expires = "Mon, 26 Jul 1997 05:00:00 GMT"

// Download sends doc as an attachment named fileName plus the extension of
// the format (the default format for unknown ones), with headers forbidding caching.
//
// This writes the response body, so it must be the last thing the handler does.
func (s *Service) Download(resp Response, doc *sheetkit.Document, fileName, format string) error {
	f, name := s.Filename(fileName, format)
	s.logger.Debug("download", "file", name, "format", f)

	resp.SetHeader("Content-Type", s.contentType(f, name))
	resp.SetHeader("Content-Disposition", `attachment;filename="`+name+`"`)
	resp.SetHeader("Cache-Control", "max-age=0")
	resp.SetHeader("Cache-Control", "max-age=1")
	resp.SetHeader("Expires", expires)
	resp.SetHeader("Last-Modified", s.now().UTC().Format(http.TimeFormat))
	resp.SetHeader("Cache-Control", "cache, must-revalidate")
	resp.SetHeader("Pragma", "public")

	if err := s.encoders[f].Encode(resp, doc); err != nil {
		return fmt.Errorf("write %q: %w", name, err)
	}
	return nil
}
