// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"io"
	"time"
)

type ObservabilityLevel int

const (
	ObservabilityOff   ObservabilityLevel = 0
	ObservabilityDebug ObservabilityLevel = 1
)

// StandardObserver records timed operations as JSON lines
type StandardObserver struct {
	level  ObservabilityLevel
	writer io.Writer
	now    func() time.Time
}

// NewStandardObserver creates an observer writing to writer
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
		now:    time.Now,
	}
}

// Enabled reports whether anything will be written
func (o *StandardObserver) Enabled() bool {
	return o != nil && o.level != ObservabilityOff
}

// StartTiming returns a function that completes the operation record
func (o *StandardObserver) StartTiming(component, operation, filePath string) func(success bool, metadata map[string]interface{}) {
	start := o.now()

	return func(success bool, metadata map[string]interface{}) {
		o.LogOperation(OperationData{
			Component:  component,
			Operation:  operation,
			FilePath:   filePath,
			DurationMs: o.now().Sub(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation writes data as one JSON line when enabled
func (o *StandardObserver) LogOperation(data OperationData) {
	if !o.Enabled() {
		return
	}
	_ = json.NewEncoder(o.writer).Encode(data)
}

// OperationData describes one completed operation
type OperationData struct {
	Component  string                 `json:"component"`
	Operation  string                 `json:"operation"`
	FilePath   string                 `json:"file_path,omitempty"`
	DurationMs int64                  `json:"duration_ms"`
	Success    bool                   `json:"success"`
	Error      string                 `json:"error,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}
