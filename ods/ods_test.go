package ods

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNO-SOFT/sheetkit"
)

func encode(t *testing.T, doc *sheetkit.Document) map[string]string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Encoder{}.Encode(&buf, doc))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.NotEmpty(t, zr.File)
	assert.Equal(t, "mimetype", zr.File[0].Name)
	assert.Equal(t, zip.Store, zr.File[0].Method)

	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		parts[f.Name] = string(b)
		if strings.HasSuffix(f.Name, ".xml") {
			wellFormed(t, f.Name, b)
		}
	}
	return parts
}

func wellFormed(t *testing.T, name string, b []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(b))
	for {
		if _, err := dec.Token(); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			t.Fatalf("%s: %+v\n%s", name, err, b)
		}
	}
}

func TestEncoder(t *testing.T) {
	doc := sheetkit.NewDocument()
	defer doc.Close()
	require.NoError(t, doc.SetProperties(sheetkit.Properties{
		Title: "Q&A", Creator: "me", Keywords: "excel go", Company: "ACME",
	}))
	sheet := doc.ActiveSheet()
	hdr, err := doc.StyleID(sheetkit.HeaderStyle())
	require.NoError(t, err)
	require.NoError(t, doc.SetRow(sheet, 1, []any{"<name>", "", "total"}, hdr))
	require.NoError(t, doc.StageMerge(sheet, "A1", "B1"))
	require.NoError(t, doc.CommitMerges(sheet))
	require.NoError(t, doc.FreezePanes(sheet, "A2"))
	require.NoError(t, doc.SetRow(sheet, 2, []any{"x", nil, sheetkit.Number("3.5")}, 0))

	parts := encode(t, doc)
	assert.Equal(t, MimeType, parts["mimetype"])
	for _, name := range []string{"content.xml", "styles.xml", "meta.xml", "settings.xml", "META-INF/manifest.xml"} {
		assert.Contains(t, parts, name)
	}

	content := parts["content.xml"]
	t.Log(content)
	assert.Contains(t, content, `<style:style style:name="ce1" style:family="table-cell"><style:paragraph-properties fo:text-align="center"/><style:text-properties fo:font-weight="bold"/></style:style>`)
	assert.Contains(t, content, `<table:table table:name="Sheet1">`)
	assert.Contains(t, content, `<table:table-column table:number-columns-repeated="3"/>`)
	assert.Contains(t, content, "<table:table-header-rows>\n<table:table-row>"+
		`<table:table-cell table:style-name="ce1" table:number-columns-spanned="2" table:number-rows-spanned="1" office:value-type="string"><text:p>&lt;name&gt;</text:p></table:table-cell>`+
		`<table:covered-table-cell/>`)
	assert.Contains(t, content, `<table:table-row><table:table-cell office:value-type="string"><text:p>x</text:p></table:table-cell>`+
		`<table:table-cell></table:table-cell>`+
		`<table:table-cell office:value-type="float" office:value="3.5"><text:p>3.5</text:p></table:table-cell></table:table-row>`)

	meta := parts["meta.xml"]
	assert.Contains(t, meta, "<dc:title>Q&amp;A</dc:title>")
	assert.Contains(t, meta, "<meta:keyword>excel go</meta:keyword>")
	assert.Contains(t, meta, `<meta:user-defined meta:name="Company">ACME</meta:user-defined>`)

	settings := parts["settings.xml"]
	assert.Contains(t, settings, `<config:config-item-map-entry config:name="Sheet1">`)
	assert.Contains(t, settings, `<config:config-item config:name="VerticalSplitMode" config:type="short">2</config:config-item>`)
	assert.Contains(t, settings, `<config:config-item config:name="HorizontalSplitMode" config:type="short">0</config:config-item>`)
}

func TestEncoderEmpty(t *testing.T) {
	doc := sheetkit.NewDocument()
	defer doc.Close()

	content := encode(t, doc)["content.xml"]
	assert.Contains(t, content, `<table:table-column table:number-columns-repeated="1"/>`)
	assert.Contains(t, content, `<table:table-row><table:table-cell></table:table-cell></table:table-row>`)
	assert.NotContains(t, content, "<table:table-header-rows>")
	assert.NotContains(t, content, "<style:style ")
}
