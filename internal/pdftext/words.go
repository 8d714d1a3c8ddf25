// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdftext

import (
	"sort"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"

	"imr-extract/internal/template"
)

const (
	// Glyphs whose baselines are closer than this belong to the same line
	lineTolerance = 2.0

	// A horizontal gap wider than this share of the font size splits words
	wordGapRatio = 0.2

	// Approximate glyph extents above and below the baseline, relative to
	// the font size
	ascentRatio  = 0.8
	descentRatio = 0.2

	defaultFontSize = 12
)

// Word is a run of non-space glyphs on one line
type Word struct {
	Text string
	Box  template.Rect
	Line int // zero-based line index on the page, top to bottom
}

// line is a group of glyphs sharing a baseline
type line struct {
	y      float64
	glyphs []pdf.Text
}

// buildWords groups glyphs into lines and words. originX and top locate the
// top-left page corner in PDF user space.
func buildWords(texts []pdf.Text, originX, top float64) []Word {
	lines := groupLines(texts)

	var words []Word
	for i, ln := range lines {
		for _, w := range splitWords(ln.glyphs) {
			words = append(words, toWord(w, i, originX, top))
		}
	}
	return words
}

// groupLines places each glyph on the first line with a matching baseline and
// returns lines top to bottom with glyphs sorted left to right
func groupLines(texts []pdf.Text) []line {
	var lines []line
	for _, t := range texts {
		if t.S == "" {
			continue
		}

		placed := false
		for i := range lines {
			if abs(lines[i].y-t.Y) < lineTolerance {
				lines[i].glyphs = append(lines[i].glyphs, t)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, line{y: t.Y, glyphs: []pdf.Text{t}})
		}
	}

	// Higher Y is higher on the page
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].y > lines[j].y
	})
	for _, ln := range lines {
		sort.SliceStable(ln.glyphs, func(i, j int) bool {
			return ln.glyphs[i].X < ln.glyphs[j].X
		})
	}
	return lines
}

// splitWords cuts a sorted line into words at whitespace glyphs and at gaps
// wider than a fifth of the font size
func splitWords(glyphs []pdf.Text) [][]pdf.Text {
	var words [][]pdf.Text
	var current []pdf.Text

	flush := func() {
		if len(current) > 0 {
			words = append(words, current)
			current = nil
		}
	}

	for _, g := range glyphs {
		if strings.TrimFunc(g.S, unicode.IsSpace) == "" {
			flush()
			continue
		}

		if len(current) > 0 {
			prev := current[len(current)-1]
			gap := g.X - (prev.X + prev.W)
			if gap > fontSize(prev)*wordGapRatio {
				flush()
			}
		}
		current = append(current, g)
	}
	flush()

	return words
}

// toWord converts a glyph run into a Word with a top-left origin box
func toWord(glyphs []pdf.Text, lineIndex int, originX, top float64) Word {
	var b strings.Builder
	x0, x1 := glyphs[0].X, glyphs[0].X+glyphs[0].W
	ascent, descent := 0.0, 0.0
	baseline := glyphs[0].Y

	for _, g := range glyphs {
		b.WriteString(g.S)
		if g.X < x0 {
			x0 = g.X
		}
		if g.X+g.W > x1 {
			x1 = g.X + g.W
		}
		size := fontSize(g)
		if size*ascentRatio > ascent {
			ascent = size * ascentRatio
		}
		if size*descentRatio > descent {
			descent = size * descentRatio
		}
	}

	return Word{
		Text: b.String(),
		Line: lineIndex,
		Box: template.Rect{
			X0: x0 - originX,
			Y0: top - (baseline + ascent),
			X1: x1 - originX,
			Y1: top - (baseline - descent),
		},
	}
}

func fontSize(t pdf.Text) float64 {
	if t.FontSize <= 0 {
		return defaultFontSize
	}
	return t.FontSize
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
