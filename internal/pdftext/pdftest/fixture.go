// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pdftest writes small PDF files with positioned text for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// CourierWidth is the advance width of every Courier glyph in text space units
const CourierWidth = 600

// Text is a string drawn at a baseline position measured from the top-left
// corner of the page
type Text struct {
	X, Y float64
	Size float64
	S    string
}

// Page describes one page of a fixture document. OriginX and OriginY are the
// lower-left corner of the media box.
type Page struct {
	Width, Height    float64
	OriginX, OriginY float64
	Texts            []Text
}

// Document is a multi-page fixture. With InheritMediaBox set, the media box
// of the first page is written once on the page tree node and the pages
// carry none of their own.
type Document struct {
	Pages           []Page
	InheritMediaBox bool
}

// Letter returns a US Letter page
func Letter(texts ...Text) Page {
	return Page{Width: 612, Height: 792, Texts: texts}
}

// Write renders page as a single-page PDF file at path
func Write(path string, page Page) error {
	return WriteDocument(path, Document{Pages: []Page{page}})
}

// WriteDocument renders doc as a PDF file at path
func WriteDocument(path string, doc Document) error {
	return os.WriteFile(path, RenderDocument(doc), 0600)
}

// Render returns the PDF bytes for a single page
func Render(page Page) []byte {
	return RenderDocument(Document{Pages: []Page{page}})
}

// RenderDocument returns the PDF bytes for doc. Text is set in Courier with
// WinAnsiEncoding, so every glyph is CourierWidth/1000 * Size wide.
func RenderDocument(doc Document) []byte {
	widths := make([]string, 0, 95)
	for c := 32; c <= 126; c++ {
		widths = append(widths, fmt.Sprint(CourierWidth))
	}

	// 1 catalog, 2 page tree, 3 font, then a page and its content per page
	kids := make([]string, 0, len(doc.Pages))
	for i := range doc.Pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 4+2*i))
	}
	tree := fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d", strings.Join(kids, " "), len(doc.Pages))
	if doc.InheritMediaBox && len(doc.Pages) > 0 {
		tree += " /MediaBox " + mediaBox(doc.Pages[0])
	}
	tree += " >>"

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		tree,
		"<< /Type /Font /Subtype /Type1 /BaseFont /Courier /Encoding /WinAnsiEncoding /FirstChar 32 /LastChar 126 /Widths [" +
			strings.Join(widths, " ") + "] >>",
	}
	for i, page := range doc.Pages {
		box := ""
		if !doc.InheritMediaBox {
			box = " /MediaBox " + mediaBox(page)
		}
		content := pageContent(page)
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R%s /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", box, 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(content), content),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

// pageContent draws the page texts, converting top-left positions into PDF
// user space
func pageContent(page Page) string {
	var content strings.Builder
	for _, t := range page.Texts {
		size := t.Size
		if size <= 0 {
			size = 10
		}
		fmt.Fprintf(&content, "BT /F1 %s Tf 1 0 0 1 %s %s Tm (%s) Tj ET\n",
			num(size), num(page.OriginX+t.X), num(page.OriginY+page.Height-t.Y), escape(t.S))
	}
	return content.String()
}

func mediaBox(page Page) string {
	return fmt.Sprintf("[%s %s %s %s]", num(page.OriginX), num(page.OriginY),
		num(page.OriginX+page.Width), num(page.OriginY+page.Height))
}

func num(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
