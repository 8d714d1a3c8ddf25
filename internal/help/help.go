// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"imr-extract/internal/template"
)

// System prints help screens
type System struct {
	out    io.Writer
	colors map[string]*color.Color
}

// NewSystem creates a help system writing to out
func NewSystem(out io.Writer) *System {
	return &System{
		out: out,
		colors: map[string]*color.Color{
			"title":   color.New(color.FgWhite, color.Bold),
			"header":  color.New(color.FgBlue, color.Bold),
			"example": color.New(color.FgMagenta),
			"warning": color.New(color.FgYellow),
		},
	}
}

// ShowGeneralHelp prints usage, options and configuration details
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Fprintln(h.out, "IMR Extract - IMR PDF to Excel field extractor")
	fmt.Fprintln(h.out, "==============================================")
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, "Reads fixed-position fields from the first page of IMR PDF documents")
	fmt.Fprintln(h.out, "and writes one spreadsheet row per document.")
	fmt.Fprintln(h.out)

	h.colors["header"].Fprintln(h.out, "USAGE:")
	fmt.Fprintln(h.out, "  imr-extract [options]")
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, "  Enter PDF paths one per line, then 'complete' to continue or")
	fmt.Fprintln(h.out, "  'cancel' to quit. Then enter the folder for the Excel file.")
	fmt.Fprintln(h.out)

	h.colors["header"].Fprintln(h.out, "OPTIONS:")
	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --debug\t\tShow per-document extraction steps and field values")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --show-template\t\tList the field rectangles and any that overlap, then exit")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	fmt.Fprintln(w, "  --help\t\tShow this help message")
	w.Flush()

	fmt.Fprintln(h.out)
	h.colors["header"].Fprintln(h.out, "OUTPUT:")
	fmt.Fprintln(h.out, "  <folder>/IMR_PDFs_<YYYYMMDD>.xlsx, overwritten when run twice on one day")
	fmt.Fprintln(h.out)

	h.colors["header"].Fprintln(h.out, "CONFIGURATION:")
	fmt.Fprintln(h.out, "  Project config: imr.yaml or .imr-extract.yaml (in current directory)")
	fmt.Fprintln(h.out, "  Default config: <config dir>/config.yaml")
	fmt.Fprintln(h.out, "  Environment: IMR_CONFIG_DIR - Override config directory")
	fmt.Fprintln(h.out)

	h.colors["header"].Fprintln(h.out, "EXAMPLES:")
	h.colors["example"].Fprintln(h.out, "  imr-extract")
	h.colors["example"].Fprintln(h.out, "  imr-extract --debug --config imr.yaml")
}

// ShowTemplate lists the fields of tmpl with their rectangles, followed by
// the rectangle pairs that can share words
func (h *System) ShowTemplate(tmpl *template.Template) {
	h.colors["header"].Fprintf(h.out, "TEMPLATE %s (%d fields):\n", tmpl.Name, len(tmpl.Fields))
	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	for _, f := range tmpl.Fields {
		fmt.Fprintf(w, "  %s\t%s\n", f.Name, f.Rect)
	}
	w.Flush()

	overlaps := tmpl.Overlaps()
	if len(overlaps) == 0 {
		return
	}
	fmt.Fprintln(h.out)
	h.colors["warning"].Fprintf(h.out, "OVERLAPPING RECTANGLES (%d):\n", len(overlaps))
	for _, o := range overlaps {
		fmt.Fprintf(h.out, "  %s\n", o)
	}
}
