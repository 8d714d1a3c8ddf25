// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extract

// Field is one extracted value
type Field struct {
	Name  string
	Value string
}

// Record holds the fields extracted from one document, in template order
type Record struct {
	Source string
	Fields []Field
}

// Get returns the value stored for name
func (r *Record) Get(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Set stores value under name, replacing an existing value in place
func (r *Record) Set(name, value string) {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			r.Fields[i].Value = value
			return
		}
	}
	r.Fields = append(r.Fields, Field{Name: name, Value: value})
}

// Names returns the field names in insertion order
func (r *Record) Names() []string {
	names := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Status tells whether a document produced a record
type Status int

const (
	// StatusOK means the document was read and Record is set
	StatusOK Status = iota
	// StatusSkipped means the document could not be located
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Outcome is the result of processing one document. Failures other than a
// missing document are returned as errors instead.
type Outcome struct {
	Path   string
	Status Status
	Record *Record
	Reason string // set when Status is StatusSkipped
}

// OK builds a successful outcome
func OK(path string, record *Record) Outcome {
	return Outcome{Path: path, Status: StatusOK, Record: record}
}

// Skipped builds an outcome for a document that contributes no record
func Skipped(path, reason string) Outcome {
	return Outcome{Path: path, Status: StatusSkipped, Reason: reason}
}
