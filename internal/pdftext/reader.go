// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdftext

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"imr-extract/internal/template"
)

// ErrNoPages is returned for documents without a readable first page
var ErrNoPages = errors.New("document has no pages")

// Page holds the words of one PDF page in reading order. Word boxes use a
// top-left origin so they can be compared with template rectangles directly.
type Page struct {
	Filename string
	Number   int
	Width    float64
	Height   float64
	Words    []Word
}

// WordsIn returns the words whose boxes intersect rect, in reading order
func (p *Page) WordsIn(rect template.Rect) []Word {
	var words []Word
	for _, w := range p.Words {
		if w.Box.Intersects(rect) {
			words = append(words, w)
		}
	}
	return words
}

// Reader opens PDF documents and extracts positioned words from them
type Reader struct {
	// pdfConfig is used for page geometry lookups
	pdfConfig *model.Configuration
}

// NewReader creates a Reader. pdfcpu is used in relaxed validation mode and
// without its on-disk configuration directory.
func NewReader() *Reader {
	api.DisableConfigDir()
	pdfConfig := model.NewDefaultConfiguration()
	pdfConfig.ValidationMode = model.ValidationRelaxed

	return &Reader{pdfConfig: pdfConfig}
}

// FirstPage opens the document at filePath and returns its first page.
// The file handle is released before FirstPage returns. Errors from opening
// the file are wrapped, so callers can test them with errors.Is.
func (r *Reader) FirstPage(filePath string) (*Page, error) {
	f, err := os.Open(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("error reading file info: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("error opening PDF: %s is a directory", filePath)
	}

	dims, err := api.PageDims(f, r.pdfConfig)
	if err != nil {
		return nil, fmt.Errorf("error reading page geometry: %w", err)
	}

	rd, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}
	if rd.NumPage() < 1 {
		return nil, ErrNoPages
	}

	p := rd.Page(1)
	if p.V.IsNull() {
		return nil, ErrNoPages
	}

	page := &Page{
		Filename: filepath.Base(filePath),
		Number:   1,
	}

	// Origin and size come from the same box so words line up with the
	// template. pdfcpu dimensions are used when no box can be resolved.
	box, ok := mediaBox(p)
	switch {
	case ok:
		page.Width = box.Width()
		page.Height = box.Height()
	case len(dims) > 0:
		box = template.Rect{}
		page.Width = dims[0].Width
		page.Height = dims[0].Height
	default:
		box = letter
		page.Width = box.Width()
		page.Height = box.Height()
	}
	if page.Height <= 0 {
		return nil, fmt.Errorf("error reading page geometry: page height is %g", page.Height)
	}

	texts, err := pageTexts(p)
	if err != nil {
		return nil, err
	}

	// PDF user space grows upwards from the bottom of the media box.
	page.Words = buildWords(texts, box.X0, box.Y0+page.Height)

	return page, nil
}

// pageTexts returns the positioned glyphs of a page. The parser panics on
// malformed content streams, so panics are turned into errors here.
func pageTexts(p pdf.Page) (texts []pdf.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			texts = nil
			err = fmt.Errorf("error reading page content: %v", r)
		}
	}()

	return p.Content().Text, nil
}

// letter is the US Letter media box in PDF user space
var letter = template.Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}

// maxTreeDepth bounds the walk up the page tree
const maxTreeDepth = 32

// mediaBox returns the page MediaBox in PDF user space. The box is
// inheritable, so when the page has none the page tree is walked upwards
// through Parent until one is found.
func mediaBox(p pdf.Page) (template.Rect, bool) {
	node := p.V
	for depth := 0; depth < maxTreeDepth && !node.IsNull(); depth++ {
		mb := node.Key("MediaBox")
		if mb.Kind() == pdf.Array && mb.Len() == 4 {
			return template.Rect{
				X0: mb.Index(0).Float64(),
				Y0: mb.Index(1).Float64(),
				X1: mb.Index(2).Float64(),
				Y1: mb.Index(3).Float64(),
			}, true
		}
		node = node.Key("Parent")
	}
	return template.Rect{}, false
}
