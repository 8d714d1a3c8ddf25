// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"imr-extract/internal/extract"
)

// Table is a row-oriented view of extracted records
type Table struct {
	Columns []string
	Rows    [][]string
}

// BuildTable lays out one row per record. Columns are the union of field
// names in first-seen order; fields missing from a record are left empty.
func BuildTable(records []extract.Record) Table {
	var columns []string
	index := make(map[string]int)
	for _, rec := range records {
		for _, f := range rec.Fields {
			if _, ok := index[f.Name]; !ok {
				index[f.Name] = len(columns)
				columns = append(columns, f.Name)
			}
		}
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(columns))
		for _, f := range rec.Fields {
			row[index[f.Name]] = f.Value
		}
		rows = append(rows, row)
	}

	return Table{Columns: columns, Rows: rows}
}
