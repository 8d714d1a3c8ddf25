// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"imr-extract/internal/extract"
	"imr-extract/internal/observability"
)

const (
	// DefaultFilePrefix starts every report file name
	DefaultFilePrefix = "IMR_PDFs_"
	// DefaultSheetName is the name of the single worksheet
	DefaultSheetName = "Sheet1"

	dateLayout   = "20060102"
	fileExt      = ".xlsx"
	minColWidth  = 10
	maxColWidth  = 60
	excelizeBase = "Sheet1"
)

// ErrNoRecords is returned when there is nothing to write
var ErrNoRecords = errors.New("no data was extracted")

// Writer serializes records to a dated spreadsheet in one directory
type Writer struct {
	dir      string
	prefix   string
	sheet    string
	now      func() time.Time
	observer *observability.StandardObserver
}

// Option configures a Writer
type Option func(*Writer)

// WithFilePrefix replaces DefaultFilePrefix
func WithFilePrefix(prefix string) Option {
	return func(w *Writer) {
		w.prefix = prefix
	}
}

// WithSheetName replaces DefaultSheetName
func WithSheetName(name string) Option {
	return func(w *Writer) {
		w.sheet = name
	}
}

// WithClock sets the clock used to date the file name
func WithClock(now func() time.Time) Option {
	return func(w *Writer) {
		w.now = now
	}
}

// WithObserver records the write operation
func WithObserver(o *observability.StandardObserver) Option {
	return func(w *Writer) {
		w.observer = o
	}
}

// NewWriter creates a writer for reports in dir
func NewWriter(dir string, opts ...Option) *Writer {
	w := &Writer{
		dir:    dir,
		prefix: DefaultFilePrefix,
		sheet:  DefaultSheetName,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// GetComponentName returns the component identifier
func (w *Writer) GetComponentName() string {
	return "report"
}

// FileName returns the report file name for the current date
func (w *Writer) FileName() string {
	return w.prefix + w.now().Format(dateLayout) + fileExt
}

// Path returns the full path of the report file for the current date
func (w *Writer) Path() string {
	return filepath.Join(w.dir, w.FileName())
}

// Write saves records as a single-sheet workbook and returns its path. An
// existing report from the same day is overwritten. Nothing is written when
// records is empty.
func (w *Writer) Write(records []extract.Record) (path string, err error) {
	if len(records) == 0 {
		return "", ErrNoRecords
	}

	path = w.Path()
	if w.observer.Enabled() {
		finish := w.observer.StartTiming(w.GetComponentName(), "write", path)
		defer func() {
			finish(err == nil, map[string]interface{}{"rows": len(records)})
		}()
	}

	table := BuildTable(records)

	f := excelize.NewFile()
	defer f.Close()

	if w.sheet != excelizeBase {
		if err := f.SetSheetName(excelizeBase, w.sheet); err != nil {
			return "", fmt.Errorf("xlsx sheet: %w", err)
		}
	}

	if err := writeTable(f, w.sheet, table); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("xlsx write: %w", err)
	}
	return path, nil
}

// writeTable writes a bold header row followed by the data rows. Empty
// values are left as blank cells.
func writeTable(f *excelize.File, sheet string, table Table) error {
	for i, name := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, name); err != nil {
			return fmt.Errorf("xlsx header: %w", err)
		}
	}

	for r, row := range table.Rows {
		for c, value := range row {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheet, cell, value); err != nil {
				return fmt.Errorf("xlsx row %d: %w", r+1, err)
			}
		}
	}

	if len(table.Columns) == 0 {
		return nil
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(table.Columns), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}

	for i, width := range columnWidths(table) {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("xlsx column width: %w", err)
		}
	}
	return nil
}

// columnWidths sizes each column to its longest value, within limits
func columnWidths(table Table) []float64 {
	widths := make([]float64, len(table.Columns))
	for i, name := range table.Columns {
		widths[i] = float64(utf8.RuneCountInString(name))
	}
	for _, row := range table.Rows {
		for i, value := range row {
			if n := float64(utf8.RuneCountInString(value)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i, w := range widths {
		w += 2
		if w < minColWidth {
			w = minColWidth
		}
		if w > maxColWidth {
			w = maxColWidth
		}
		widths[i] = w
	}
	return widths
}
