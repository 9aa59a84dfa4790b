// Copyright 2026 Tamás Gulácsi. All rights reserved.

// Command sheetd serves the csv files of a directory as spreadsheet downloads:
//
//	GET /sheets/{name}?format=OpenDocument
//
// sends {dir}/{name}.csv with its first row as the header.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/UNO-SOFT/sheetkit"
	"github.com/UNO-SOFT/sheetkit/excel"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		slog.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

func Main() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg := excel.DefaultConfig()
	fs := flag.NewFlagSet("sheetd", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	flagAddr := fs.String("addr", ":8080", "address to listen on")
	flagDir := fs.String("dir", ".", "directory of the csv files")
	flagEnc := fs.String("charset", sheetkit.EncName, "csv charset name")
	cfg.RegisterFlags(fs)

	app := ffcli.Command{Name: "sheetd", FlagSet: fs,
		Options: []ff.Option{ff.WithEnvVarPrefix("SHEETKIT")},
		Exec: func(ctx context.Context, args []string) error {
			cfg.Logger = logger
			svc := excel.New(cfg)
			srv := newServer(svc, *flagDir, *flagEnc)

			go func() {
				<-ctx.Done()
				logger.Info("shutting down")
				if err := srv.Shutdown(); err != nil {
					logger.Error("shutdown", "error", err)
				}
			}()
			logger.Info("listening", "addr", *flagAddr, "dir", *flagDir, "default-format", svc.DefaultFormat())
			return srv.Listen(*flagAddr)
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.ParseAndRun(ctx, os.Args[1:])
}

func newServer(svc *excel.Service, dir, encName string) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/sheets/:name", svc.FiberHandler(func(c *fiber.Ctx) (*sheetkit.Document, string, error) {
		name := filepath.Base(c.Params("name"))
		if name == "." || name == ".." || name == string(filepath.Separator) {
			return nil, "", fiber.ErrBadRequest
		}
		doc, err := loadCSV(svc, filepath.Join(dir, name+".csv"), encName)
		return doc, name, err
	}))
	return app
}

// loadCSV reads the csv file into a new document, the first row being the header.
func loadCSV(svc *excel.Service, fn, encName string) (*sheetkit.Document, error) {
	cr, err := sheetkit.OpenCsv(fn, encName)
	if err != nil {
		return nil, err
	}
	defer cr.Close()

	doc, err := svc.NewDocument(true)
	if err != nil {
		return nil, err
	}
	values := func(row []string) []any {
		vv := make([]any, len(row))
		for i, s := range row {
			vv[i] = sheetkit.Number(s)
		}
		return vv
	}
	for rowIndex := 1; ; rowIndex++ {
		row, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				return doc, nil
			}
			doc.Close()
			return nil, fmt.Errorf("%s:%d: %w", fn, rowIndex, err)
		}
		if rowIndex == 1 {
			hdr := make([]any, len(row))
			for i, s := range row {
				hdr[i] = s
			}
			err = svc.WriteHeaderRow(doc, hdr, nil)
		} else {
			err = svc.WriteRow(doc, rowIndex, values(row), nil)
		}
		if err != nil {
			doc.Close()
			return nil, err
		}
	}
}
