// Copyright 2021, 2026 Tamás Gulácsi. All rights reserved.

// Command csv2sheet converts csv files into the sheets of one spreadsheet.
//
//	csv2sheet [flags] out.ods [sheetname:]in1.csv [sheetname:]in2.csv ...
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/UNO-SOFT/sheetkit"
	"github.com/UNO-SOFT/sheetkit/excel"
	"github.com/UNO-SOFT/sheetkit/pdf"
)

// formatPDF is served by the pdf package, outside of the service's formats.
const formatPDF = "PDF"

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		slog.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

func Main() error {
	cfg := excel.DefaultConfig()
	fs := flag.NewFlagSet("csv2sheet", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	flagEnc := fs.String("charset", sheetkit.EncName, "csv charset name")
	flagFormat := fs.String("format", "", "output format, or PDF (default: guessed from the output file name)")
	flagLandscape := fs.Bool("L", false, "PDF: landscape orientation (default: portrait)")
	flagFontSize := fs.Float64("font-size", 8, "PDF: font size")
	flagColor := fs.String("alternate-color", "e6e6e6", "PDF: background of every second row (empty for none)")
	cfg.RegisterFlags(fs)

	app := ffcli.Command{Name: "csv2sheet", FlagSet: fs,
		ShortUsage: "csv2sheet [flags] <output> [sheetname:]<input.csv>...",
		Options:    []ff.Option{ff.WithEnvVarPrefix("SHEETKIT")},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return flag.ErrHelp
			}
			cfg.Logger = logger
			svc := excel.New(cfg)

			fn := args[0]
			format := *flagFormat
			if format == "" {
				if f, ok := sheetkit.FormatForExtension(filepath.Ext(fn)); ok {
					format = string(f)
				} else if strings.EqualFold(filepath.Ext(fn), ".pdf") {
					format = formatPDF
				}
			}
			fh := os.Stdout
			if !(fn == "" || fn == "-") {
				var err error
				if fh, err = os.Create(fn); err != nil {
					return err
				}
			}
			defer fh.Close()

			var w *sheetkit.DocWriter
			if format == formatPDF {
				enc := pdf.Encoder{Landscape: *flagLandscape, FontSize: *flagFontSize}
				if *flagColor != "" {
					var err error
					if enc.AlternateColor, err = pdf.ParseColor(*flagColor); err != nil {
						return fmt.Errorf("alternate-color: %w", err)
					}
				}
				w = sheetkit.NewWriter(fh, enc)
			} else {
				format = string(svc.ResolveFormat(format))
				w = svc.NewWriter(fh, format)
			}
			logger.Debug("output", "file", fn, "format", format)

			for i, fn := range args[1:] {
				if err := ctx.Err(); err != nil {
					return err
				}
				sheetName := fmt.Sprintf("Sheet%d", i+1)
				if i := strings.IndexByte(fn, ':'); i >= 0 {
					sheetName, fn = fn[:i], fn[i+1:]
				} else if fn != "" && fn != "-" {
					sheetName = strings.TrimSuffix(filepath.Base(fn), ".csv")
				}
				if err := copyFile(w, sheetName, *flagEnc, fn); err != nil {
					return fmt.Errorf("%q: %w", fn, err)
				}
			}

			if err := w.Close(); err != nil {
				return err
			}
			return fh.Close()
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.ParseAndRun(ctx, os.Args[1:])
}

func copyFile(w sheetkit.Writer, sheetName, encName, fn string) error {
	cr, err := sheetkit.OpenCsv(fn, encName)
	if err != nil {
		return err
	}
	defer cr.Close()

	row, err := cr.Read()
	if err != nil {
		return err
	}
	cols := make([]sheetkit.Column, len(row))
	for i, r := range row {
		cols[i].Name = r
		cols[i].Header = sheetkit.HeaderStyle()
	}
	sheet, err := w.NewSheet(sheetName, cols)
	if err != nil {
		return err
	}

	var rowI []any
	var n int
	for {
		if row, err = cr.Read(); err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		rowI = rowI[:0]
		for _, s := range row {
			rowI = append(rowI, s)
		}
		if err = sheet.AppendRow(rowI...); err != nil {
			return err
		}
		n++
	}
	logger.Debug("copied", "sheet", sheetName, "rows", n)
	return sheet.Close()
}
