// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package excel

import (
	"errors"
	"io"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/UNO-SOFT/sheetkit"
)

// Response is where Download writes: headers first, then the body.
type Response interface {
	io.Writer
	SetHeader(key, value string)
}

// HTTPResponse adapts a net/http response.
func HTTPResponse(w http.ResponseWriter) Response { return &httpResponse{ResponseWriter: w} }

type httpResponse struct {
	http.ResponseWriter
	written bool
}

func (r *httpResponse) SetHeader(key, value string) { r.Header().Set(key, value) }
func (r *httpResponse) Write(p []byte) (int, error) {
	r.written = r.written || len(p) != 0
	return r.ResponseWriter.Write(p)
}

// FiberResponse adapts a fiber request context.
func FiberResponse(c *fiber.Ctx) Response { return fiberResponse{c} }

type fiberResponse struct{ c *fiber.Ctx }

func (r fiberResponse) SetHeader(key, value string)  { r.c.Set(key, value) }
func (r fiberResponse) Write(p []byte) (int, error) { return r.c.Write(p) }

// Handler returns a http.HandlerFunc which downloads the document returned
// by build, in the format named by the "format" query parameter.
// The document is closed after the download.
func (s *Service) Handler(build func(*http.Request) (*sheetkit.Document, string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, name, err := build(r)
		if err != nil {
			code := http.StatusInternalServerError
			if errors.Is(err, fs.ErrNotExist) {
				code = http.StatusNotFound
			}
			http.Error(w, err.Error(), code)
			return
		}
		defer doc.Close()
		resp := &httpResponse{ResponseWriter: w}
		if err = s.Download(resp, doc, name, r.URL.Query().Get("format")); err != nil {
			s.logger.Error("download", "url", r.URL.String(), "error", err)
			if !resp.written {
				w.Header().Del("Content-Disposition")
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		}
	}
}

// FiberHandler is Handler for fiber.
func (s *Service) FiberHandler(build func(*fiber.Ctx) (*sheetkit.Document, string, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, name, err := build(c)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return err
		}
		defer doc.Close()
		if err = s.Download(FiberResponse(c), doc, name, c.Query("format")); err != nil {
			s.logger.Error("download", "url", c.OriginalURL(), "error", err)
			c.Response().Header.Del(fiber.HeaderContentDisposition)
			return err
		}
		return nil
	}
}
