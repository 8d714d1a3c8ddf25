// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileTemplate is the on-disk YAML form of a Template
type fileTemplate struct {
	Name   string      `yaml:"name"`
	Fields []fileField `yaml:"fields"`
}

type fileField struct {
	Name string    `yaml:"name"`
	Rect []float64 `yaml:"rect"`
}

// Load reads a template from a YAML file. Field order in the file is kept.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("error reading template file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML template document
func Parse(data []byte) (*Template, error) {
	var ft fileTemplate
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("error parsing template: %w", err)
	}

	t := &Template{Name: ft.Name, Fields: make([]FieldLocation, 0, len(ft.Fields))}
	for i, f := range ft.Fields {
		if len(f.Rect) != 4 {
			return nil, fmt.Errorf("field %d (%q): rect needs 4 coordinates, got %d", i+1, f.Name, len(f.Rect))
		}
		t.Fields = append(t.Fields, FieldLocation{
			Name: f.Name,
			Rect: Rect{X0: f.Rect[0], Y0: f.Rect[1], X1: f.Rect[2], Y1: f.Rect[3]},
		})
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}
	return t, nil
}

// Marshal encodes a template in the format read by Parse
func Marshal(t *Template) ([]byte, error) {
	ft := fileTemplate{Name: t.Name, Fields: make([]fileField, 0, len(t.Fields))}
	for _, f := range t.Fields {
		ft.Fields = append(ft.Fields, fileField{
			Name: f.Name,
			Rect: []float64{f.Rect.X0, f.Rect.Y0, f.Rect.X1, f.Rect.Y1},
		})
	}
	return yaml.Marshal(ft)
}
