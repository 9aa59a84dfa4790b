// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package excel

import (
	"flag"
	"log/slog"
	"strings"

	"github.com/UNO-SOFT/sheetkit"
)

// Config of the Service. It is copied by New, later changes have no effect.
type Config struct {
	// DefaultFormat replaces unknown formats. An unknown DefaultFormat means Excel2007.
	DefaultFormat string
	// Properties are set on each new document.
	Properties sheetkit.Properties
	// Charset of the CSV output, UTF-8 when empty.
	Charset string
	// Logger for debug messages, discarded when nil.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		DefaultFormat: string(sheetkit.Excel2007),
		Properties: sheetkit.Properties{
			Title:    "sheetkit",
			Keywords: "excel go",
			Category: "report",
			Creator:  "sheetkit",
			Company:  "UNO-SOFT",
		},
	}
}

// RegisterFlags registers the configuration fields on fs, with the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	formats := make([]string, 0, 5)
	for _, f := range sheetkit.Formats() {
		formats = append(formats, string(f))
	}
	fs.StringVar(&c.DefaultFormat, "default-format", c.DefaultFormat, "default export format ("+strings.Join(formats, ", ")+")")
	fs.StringVar(&c.Properties.Title, "title", c.Properties.Title, "document title")
	fs.StringVar(&c.Properties.Subject, "subject", c.Properties.Subject, "document subject")
	fs.StringVar(&c.Properties.Description, "description", c.Properties.Description, "document description")
	fs.StringVar(&c.Properties.Keywords, "keywords", c.Properties.Keywords, "document keywords")
	fs.StringVar(&c.Properties.Category, "category", c.Properties.Category, "document category")
	fs.StringVar(&c.Properties.Creator, "creator", c.Properties.Creator, "document creator (and last modifier)")
	fs.StringVar(&c.Properties.Company, "company", c.Properties.Company, "company")
	fs.StringVar(&c.Charset, "csv-charset", c.Charset, "charset of the CSV output")
}
