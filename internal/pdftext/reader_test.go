// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdftext

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imr-extract/internal/pdftext/pdftest"
	"imr-extract/internal/template"
)

func wordTexts(words []Word) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, w.Text)
	}
	return out
}

func imrRect(t *testing.T, name string) template.Rect {
	t.Helper()
	for _, f := range template.IMR().Fields {
		if f.Name == name {
			return f.Rect
		}
	}
	t.Fatalf("no IMR field %q", name)
	return template.Rect{}
}

func TestFirstPage_ReadsPositionedWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, pdftest.Write(path, pdftest.Letter(
		pdftest.Text{X: 310, Y: 135, Size: 10, S: "70 IN"},
		pdftest.Text{X: 40, Y: 82, Size: 10, S: "123-45-6789"},
	)))

	page, err := NewReader().FirstPage(path)
	require.NoError(t, err)

	assert.Equal(t, "doc.pdf", page.Filename)
	assert.Equal(t, 1, page.Number)
	assert.InDelta(t, 612, page.Width, 0.01)
	assert.InDelta(t, 792, page.Height, 0.01)

	// Reading order is top to bottom, so the SSN line comes first
	assert.Equal(t, []string{"123-45-6789", "70", "IN"}, wordTexts(page.Words))

	ssn := page.Words[0]
	assert.InDelta(t, 40, ssn.Box.X0, 0.01)
	assert.InDelta(t, 40+11*6, ssn.Box.X1, 0.01)
	assert.InDelta(t, 82-8, ssn.Box.Y0, 0.01)
	assert.InDelta(t, 82+2, ssn.Box.Y1, 0.01)
}

func TestFirstPage_WordsInRect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, pdftest.Write(path, pdftest.Letter(
		pdftest.Text{X: 310, Y: 135, Size: 10, S: "70 IN"},
		pdftest.Text{X: 310, Y: 148, Size: 10, S: "180 LBS"},
	)))

	page, err := NewReader().FirstPage(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"70", "IN"}, wordTexts(page.WordsIn(imrRect(t, "Height"))))
	assert.Equal(t, []string{"180", "LBS"}, wordTexts(page.WordsIn(imrRect(t, "Weight"))))
	assert.Empty(t, page.WordsIn(imrRect(t, "Flight Status")))
}

func TestFirstPage_InheritedMediaBox(t *testing.T) {
	page := pdftest.Letter(pdftest.Text{X: 40, Y: 82, Size: 10, S: "SSN"})
	page.OriginY = 100

	path := filepath.Join(t.TempDir(), "inherited.pdf")
	require.NoError(t, pdftest.WriteDocument(path, pdftest.Document{
		Pages:           []pdftest.Page{page},
		InheritMediaBox: true,
	}))

	got, err := NewReader().FirstPage(path)
	require.NoError(t, err)
	assert.Equal(t, 792.0, got.Height)
	require.Len(t, got.Words, 1)
	assert.InDelta(t, 74, got.Words[0].Box.Y0, 0.01)
	assert.InDelta(t, 84, got.Words[0].Box.Y1, 0.01)
	assert.Equal(t, []string{"SSN"}, wordTexts(got.WordsIn(imrRect(t, "SSN"))))
}

func TestFirstPage_OffsetMediaBox(t *testing.T) {
	page := pdftest.Letter(pdftest.Text{X: 40, Y: 82, Size: 10, S: "SSN"})
	page.OriginX = 50
	page.OriginY = 100

	path := filepath.Join(t.TempDir(), "offset.pdf")
	require.NoError(t, pdftest.Write(path, page))

	got, err := NewReader().FirstPage(path)
	require.NoError(t, err)
	require.Len(t, got.Words, 1)
	assert.InDelta(t, 40, got.Words[0].Box.X0, 0.01)
	assert.InDelta(t, 74, got.Words[0].Box.Y0, 0.01)
}

func TestFirstPage_IgnoresLaterPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two-pages.pdf")
	require.NoError(t, pdftest.WriteDocument(path, pdftest.Document{
		Pages: []pdftest.Page{
			pdftest.Letter(pdftest.Text{X: 40, Y: 82, Size: 10, S: "FIRST"}),
			pdftest.Letter(pdftest.Text{X: 40, Y: 82, Size: 10, S: "SECOND"}),
		},
	}))

	got, err := NewReader().FirstPage(path)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Number)
	assert.Equal(t, []string{"FIRST"}, wordTexts(got.Words))
}

func TestFirstPage_NotFoundIsDetectable(t *testing.T) {
	_, err := NewReader().FirstPage(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestFirstPage_CorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\nthis is not a pdf body\n"), 0600))

	_, err := NewReader().FirstPage(path)
	require.Error(t, err)
	assert.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestFirstPage_Directory(t *testing.T) {
	_, err := NewReader().FirstPage(t.TempDir())
	require.Error(t, err)
	assert.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestBuildWords_SplitsOnGapsAndSpaces(t *testing.T) {
	glyph := func(x, y float64, s string) pdf.Text {
		return pdf.Text{X: x, Y: y, W: 6, FontSize: 10, S: s}
	}
	texts := []pdf.Text{
		glyph(10, 700, "A"), glyph(16, 700, "B"),
		// 10pt gap, wider than 20% of the font size
		glyph(32, 700, "C"),
		glyph(38, 700, " "), glyph(44, 700, "D"),
		// next line, emitted first in stream order
		glyph(10, 680.5, "E"),
	}
	// Put the lower line first to check sorting
	texts = append([]pdf.Text{texts[len(texts)-1]}, texts[:len(texts)-1]...)

	words := buildWords(texts, 0, 792)
	assert.Equal(t, []string{"AB", "C", "D", "E"}, wordTexts(words))
	assert.Equal(t, 0, words[0].Line)
	assert.Equal(t, 1, words[3].Line)
}

func TestBuildWords_SameLineWithinTolerance(t *testing.T) {
	texts := []pdf.Text{
		{X: 50, Y: 700.8, W: 6, FontSize: 10, S: "Y"},
		{X: 10, Y: 700, W: 6, FontSize: 10, S: "X"},
	}
	words := buildWords(texts, 0, 792)
	assert.Equal(t, []string{"X", "Y"}, wordTexts(words))
	assert.Equal(t, words[0].Line, words[1].Line)
}

func TestBuildWords_Empty(t *testing.T) {
	assert.Empty(t, buildWords(nil, 0, 792))
	assert.Empty(t, buildWords([]pdf.Text{{S: ""}, {S: " "}}, 0, 792))
}
