// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/fatih/color"

	"imr-extract/internal/observability"
	"imr-extract/internal/pdftext"
	"imr-extract/internal/template"
)

// PageReader returns the first page of a PDF document
type PageReader interface {
	FirstPage(filePath string) (*pdftext.Page, error)
}

// Extractor reads template fields from documents
type Extractor struct {
	template *template.Template
	reader   PageReader
	out      io.Writer
	warn     *color.Color
	observer *observability.DebugObserver
}

var _ observability.Observable = (*Extractor)(nil)

// Option configures an Extractor
type Option func(*Extractor)

// WithOutput sets where skip diagnostics are printed (default os.Stdout)
func WithOutput(w io.Writer) Option {
	return func(e *Extractor) {
		e.out = w
	}
}

// WithObserver enables step-by-step debug output
func WithObserver(o *observability.DebugObserver) Option {
	return func(e *Extractor) {
		e.observer = o
	}
}

// NewExtractor creates an extractor for tmpl reading pages through reader
func NewExtractor(tmpl *template.Template, reader PageReader, opts ...Option) *Extractor {
	e := &Extractor{
		template: tmpl,
		reader:   reader,
		out:      os.Stdout,
		warn:     color.New(color.FgYellow),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GetComponentName returns the component identifier
func (e *Extractor) GetComponentName() string {
	return "extractor"
}

// Extract processes documents in order and returns one record per document
// that could be opened. Missing documents are reported and skipped; any other
// error stops processing and is returned.
func (e *Extractor) Extract(paths []string) ([]Record, error) {
	records := make([]Record, 0, len(paths))
	for _, path := range paths {
		outcome, err := e.ExtractDocument(path)
		if err != nil {
			return nil, err
		}

		switch outcome.Status {
		case StatusOK:
			records = append(records, *outcome.Record)
		case StatusSkipped:
			e.warn.Fprintf(e.out, "Error: Could not find the IMR PDF at '%s'. Skipping...\n", path)
		}
	}
	return records, nil
}

// ExtractDocument reads every template field from the first page of the
// document at path
func (e *Extractor) ExtractDocument(path string) (outcome Outcome, err error) {
	if e.observer != nil {
		finish := e.observer.StartStep(e.GetComponentName(), "extract", path)
		defer func() {
			switch {
			case err != nil:
				finish(false, err.Error())
			case outcome.Status == StatusSkipped:
				finish(false, "skipped: "+outcome.Reason)
			default:
				finish(true, fmt.Sprintf("%d fields", len(outcome.Record.Fields)))
			}
		}()
	}

	page, err := e.reader.FirstPage(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Skipped(path, "document not found"), nil
		}
		return Outcome{}, fmt.Errorf("%s: %w", path, err)
	}

	if e.observer != nil {
		e.observer.LogMetric(e.GetComponentName(), "words", len(page.Words))
	}

	record := &Record{Source: path, Fields: make([]Field, 0, len(e.template.Fields))}
	for _, loc := range e.template.Fields {
		value := Clean(joinWords(page.WordsIn(loc.Rect)))
		record.Set(loc.Name, value)

		if e.observer != nil {
			e.observer.LogDetail(e.GetComponentName(), fmt.Sprintf("%s %s = %q", loc.Name, loc.Rect, value))
		}
	}

	return OK(path, record), nil
}

func joinWords(words []pdftext.Word) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, w.Text)
	}
	return strings.Join(parts, " ")
}
