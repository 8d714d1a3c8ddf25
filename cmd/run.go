// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"io"
	"time"

	"github.com/fatih/color"

	"imr-extract/internal/config"
	"imr-extract/internal/extract"
	"imr-extract/internal/observability"
	"imr-extract/internal/pdftext"
	"imr-extract/internal/prompt"
	"imr-extract/internal/report"
	"imr-extract/internal/template"
)

// runOptions carries everything one interactive run needs
type runOptions struct {
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	template *template.Template
	config   *config.Config
	observer *observability.DebugObserver
	now      func() time.Time
}

// run collects input, extracts every document and writes the report. It
// returns the process exit code.
func run(opts runOptions) int {
	fail := color.New(color.FgRed)
	success := color.New(color.FgGreen)

	if opts.observer != nil {
		for _, o := range opts.template.Overlaps() {
			opts.observer.LogDetail("template", o.String())
		}
	}

	collector := prompt.NewCollector(opts.in, opts.out)
	docs, err := collector.CollectDocumentPaths()
	if err != nil {
		if errors.Is(err, prompt.ErrCanceled) {
			fail.Fprintln(opts.errOut, "Exiting script: No PDF paths provided.")
		} else {
			fail.Fprintf(opts.errOut, "Error: %v\n", err)
		}
		return 1
	}

	outputDir, err := collector.CollectOutputDir()
	if err != nil {
		if errors.Is(err, prompt.ErrCanceled) {
			fail.Fprintln(opts.errOut, "Exiting script: No output folder provided.")
		} else {
			fail.Fprintf(opts.errOut, "Error: %v\n", err)
		}
		return 1
	}

	extractorOpts := []extract.Option{extract.WithOutput(opts.out)}
	writerOpts := []report.Option{
		report.WithFilePrefix(opts.config.Report.FilePrefix),
		report.WithSheetName(opts.config.Report.SheetName),
	}
	if opts.observer != nil {
		extractorOpts = append(extractorOpts, extract.WithObserver(opts.observer))
		writerOpts = append(writerOpts, report.WithObserver(opts.observer.StandardObserver))
	}
	if opts.now != nil {
		writerOpts = append(writerOpts, report.WithClock(opts.now))
	}

	extractor := extract.NewExtractor(opts.template, pdftext.NewReader(), extractorOpts...)
	records, err := extractor.Extract(docs)
	if err != nil {
		fail.Fprintf(opts.errOut, "Error: %v\n", err)
		return 1
	}

	path, err := report.NewWriter(outputDir, writerOpts...).Write(records)
	if err != nil {
		if errors.Is(err, report.ErrNoRecords) {
			color.New(color.FgYellow).Fprintln(opts.out, "No data was extracted from the provided PDFs.")
			return 0
		}
		fail.Fprintf(opts.errOut, "Error: %v\n", err)
		return 1
	}

	success.Fprintf(opts.out, "Excel file saved to: %s\n", path)
	return 0
}
