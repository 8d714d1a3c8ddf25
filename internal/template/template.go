// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"fmt"
	"strings"
)

// Rect is a rectangle in page coordinates with the origin at the top-left
// corner of the page and y growing downwards.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Width returns the horizontal extent of the rectangle
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rectangle
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Intersects reports whether r and o share an area larger than zero.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X0 < o.X1 && o.X0 < r.X1 && r.Y0 < o.Y1 && o.Y0 < r.Y1
}

// Touches reports whether r and o share at least an edge or a corner.
func (r Rect) Touches(o Rect) bool {
	return r.X0 <= o.X1 && o.X0 <= r.X1 && r.Y0 <= o.Y1 && o.Y0 <= r.Y1
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", r.X0, r.Y0, r.X1, r.Y1)
}

// FieldLocation names the rectangle where a labeled value is printed on the
// template page.
type FieldLocation struct {
	Name string
	Rect Rect
}

// Template is an ordered set of field locations for one document layout.
// Field order is the column order of the generated report.
type Template struct {
	Name   string
	Fields []FieldLocation
}

// FieldNames returns the field names in template order
func (t *Template) FieldNames() []string {
	names := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Validate checks that every field has a unique, non-empty name and a
// well-formed rectangle. Zero-height rectangles are allowed.
func (t *Template) Validate() error {
	if t == nil {
		return fmt.Errorf("template cannot be nil")
	}
	if len(t.Fields) == 0 {
		return fmt.Errorf("template %q has no fields", t.Name)
	}

	seen := make(map[string]bool, len(t.Fields))
	for i, f := range t.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("field %d: name is empty", i+1)
		}
		if seen[f.Name] {
			return fmt.Errorf("field %q: duplicate name", f.Name)
		}
		seen[f.Name] = true

		if f.Rect.X1 <= f.Rect.X0 {
			return fmt.Errorf("field %q: x1 (%g) must be greater than x0 (%g)", f.Name, f.Rect.X1, f.Rect.X0)
		}
		if f.Rect.Y1 < f.Rect.Y0 {
			return fmt.Errorf("field %q: y1 (%g) must not be less than y0 (%g)", f.Name, f.Rect.Y1, f.Rect.Y0)
		}
	}
	return nil
}

// Overlap describes two field rectangles that can pick up the same words.
type Overlap struct {
	First    string
	Second   string
	Adjacent bool // the rectangles only share an edge
}

func (o Overlap) String() string {
	if o.Adjacent {
		return fmt.Sprintf("%q and %q share an edge", o.First, o.Second)
	}
	return fmt.Sprintf("%q and %q overlap", o.First, o.Second)
}

// Overlaps lists every pair of rectangles that overlap or touch. The geometry
// is reported as-is for review by the template owner; nothing is adjusted.
func (t *Template) Overlaps() []Overlap {
	var result []Overlap
	for i := 0; i < len(t.Fields); i++ {
		for j := i + 1; j < len(t.Fields); j++ {
			a, b := t.Fields[i], t.Fields[j]
			switch {
			case a.Rect.Intersects(b.Rect):
				result = append(result, Overlap{First: a.Name, Second: b.Name})
			case a.Rect.Touches(b.Rect):
				result = append(result, Overlap{First: a.Name, Second: b.Name, Adjacent: true})
			}
		}
	}
	return result
}
