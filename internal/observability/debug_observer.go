// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"fmt"
	"io"
	"strings"
)

// DebugObserver prints nested, human-readable processing steps
type DebugObserver struct {
	*StandardObserver
	indent int
}

// NewDebugObserver creates a debug observer writing to writer
func NewDebugObserver(writer io.Writer) *DebugObserver {
	return &DebugObserver{
		StandardObserver: NewStandardObserver(ObservabilityDebug, writer),
	}
}

// StartStep prints the start of a step and returns a function that prints
// its completion with the elapsed time
func (d *DebugObserver) StartStep(component, step, filePath string) func(success bool, details string) {
	start := d.now()
	fmt.Fprintf(d.writer, "%s> %s: %s (%s)\n", d.prefix(), component, step, filePath)
	d.indent++

	return func(success bool, details string) {
		d.indent--
		status := "completed"
		if !success {
			status = "failed"
		}
		fmt.Fprintf(d.writer, "%s< %s: %s %s (%dms) %s\n",
			d.prefix(), component, step, status, d.now().Sub(start).Milliseconds(), details)
	}
}

// LogDetail prints a detail inside the current step
func (d *DebugObserver) LogDetail(component, detail string) {
	fmt.Fprintf(d.writer, "%s  - %s: %s\n", d.prefix(), component, detail)
}

// LogMetric prints a named value inside the current step
func (d *DebugObserver) LogMetric(component, metric string, value interface{}) {
	fmt.Fprintf(d.writer, "%s  # %s: %s = %v\n", d.prefix(), component, metric, value)
}

func (d *DebugObserver) prefix() string {
	return strings.Repeat("  ", d.indent)
}
