// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"

	"imr-extract/internal/paths"
)

// Tokens recognised by CollectDocumentPaths, compared case-insensitively
const (
	TokenCancel   = "cancel"
	TokenComplete = "complete"
)

const (
	documentPrompt = "Enter the path to an IMR PDF file (or 'cancel' or 'complete'): "
	folderPrompt   = "Enter the path to the folder where you want to save the Excel file: "
)

// ErrCanceled is returned when the operator cancels or input ends
var ErrCanceled = errors.New("input canceled")

// Collector reads document paths and an output folder from an operator
type Collector struct {
	in     *bufio.Reader
	out    io.Writer
	fold   cases.Caser
	prompt *color.Color
	warn   *color.Color
}

// NewCollector creates a collector reading lines from in and writing prompts
// and messages to out
func NewCollector(in io.Reader, out io.Writer) *Collector {
	return &Collector{
		in:     bufio.NewReader(in),
		out:    out,
		fold:   cases.Fold(),
		prompt: color.New(color.FgCyan),
		warn:   color.New(color.FgYellow),
	}
}

// CollectDocumentPaths prompts for PDF paths until the operator types
// "complete" with at least one valid path, or "cancel". Invalid paths are
// rejected and the prompt repeats without limit.
func (c *Collector) CollectDocumentPaths() ([]string, error) {
	var docs []string

	for {
		line, err := c.readLine(documentPrompt)
		if err != nil {
			return nil, err
		}

		switch c.fold.String(line) {
		case TokenCancel:
			return nil, ErrCanceled
		case TokenComplete:
			if len(docs) > 0 {
				return docs, nil
			}
			c.warn.Fprintln(c.out, "No PDF paths provided.")
			continue
		}

		path := StripQuotes(line)
		if !isFile(path) {
			c.warn.Fprintln(c.out, "Invalid file path. Please enter a valid path.")
			continue
		}
		docs = append(docs, paths.NormalizePath(path))
	}
}

// CollectOutputDir prompts until the operator enters an existing directory
func (c *Collector) CollectOutputDir() (string, error) {
	for {
		line, err := c.readLine(folderPrompt)
		if err != nil {
			return "", err
		}

		dir := StripQuotes(line)
		if isDir(dir) {
			return paths.NormalizePath(dir), nil
		}
		c.warn.Fprintln(c.out, "Invalid folder path. Please enter a valid path.")
	}
}

// StripQuotes removes double quotes around a path, as added by shells and
// file managers when copying paths that contain spaces
func StripQuotes(s string) string {
	return strings.Trim(s, `"`)
}

// readLine prints label and returns the next input line without its line
// ending. Other whitespace is kept. End of input counts as a cancel.
func (c *Collector) readLine(label string) (string, error) {
	c.prompt.Fprint(c.out, label)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		if line == "" {
			fmt.Fprintln(c.out)
			return "", ErrCanceled
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func isFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
