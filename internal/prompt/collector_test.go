// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func newTestCollector(lines ...string) (*Collector, *bytes.Buffer) {
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return NewCollector(in, &out), &out
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n"), 0600))
	return path
}

func TestCollectDocumentPaths_Cancel(t *testing.T) {
	c, _ := newTestCollector("cancel")
	docs, err := c.CollectDocumentPaths()
	assert.ErrorIs(t, err, ErrCanceled)
	assert.Nil(t, docs)
}

func TestCollectDocumentPaths_CancelDiscardsCollectedPaths(t *testing.T) {
	dir := t.TempDir()
	c, _ := newTestCollector(touch(t, dir, "a.pdf"), "CANCEL")
	docs, err := c.CollectDocumentPaths()
	assert.ErrorIs(t, err, ErrCanceled)
	assert.Nil(t, docs)
}

func TestCollectDocumentPaths_CompleteWithoutPathsReprompts(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.pdf")

	c, out := newTestCollector("complete", a, "Complete")
	docs, err := c.CollectDocumentPaths()
	require.NoError(t, err)
	assert.Equal(t, []string{a}, docs)

	assert.Contains(t, out.String(), "No PDF paths provided.")
	assert.Equal(t, 3, strings.Count(out.String(), documentPrompt))
}

func TestCollectDocumentPaths_OnlyCompleteThenEOF(t *testing.T) {
	c, out := newTestCollector("complete")
	docs, err := c.CollectDocumentPaths()
	assert.ErrorIs(t, err, ErrCanceled)
	assert.Nil(t, docs)
	assert.Contains(t, out.String(), "No PDF paths provided.")
}

func TestCollectDocumentPaths_RejectsInvalidPaths(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.pdf")
	b := touch(t, dir, "with space.pdf")

	c, out := newTestCollector(
		filepath.Join(dir, "missing.pdf"),
		dir, // a directory is not a file
		"",
		a,
		`"`+b+`"`,
		"complete",
	)
	docs, err := c.CollectDocumentPaths()
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, docs)
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid file path. Please enter a valid path."))
}

func TestCollectDocumentPaths_KeepsDuplicatesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.pdf")
	b := touch(t, dir, "b.pdf")

	c, _ := newTestCollector(b, a, b, "complete")
	docs, err := c.CollectDocumentPaths()
	require.NoError(t, err)
	assert.Equal(t, []string{b, a, b}, docs)
}

func TestCollectDocumentPaths_WindowsLineEndings(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.pdf")

	var out bytes.Buffer
	c := NewCollector(strings.NewReader(a+"\r\ncomplete\r\n"), &out)
	docs, err := c.CollectDocumentPaths()
	require.NoError(t, err)
	assert.Equal(t, []string{a}, docs)
}

func TestCollectDocumentPaths_SurroundingSpacesAreKept(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a.pdf")

	c, out := newTestCollector(" cancel ", "  "+a+" ", a, "complete ", "complete")
	docs, err := c.CollectDocumentPaths()
	require.NoError(t, err)
	assert.Equal(t, []string{a}, docs)
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid file path. Please enter a valid path."))
}

func TestCollectOutputDir(t *testing.T) {
	dir := t.TempDir()
	file := touch(t, dir, "a.pdf")

	c, out := newTestCollector(filepath.Join(dir, "nope"), file, "", `"`+dir+`"`)
	got, err := c.CollectOutputDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid folder path. Please enter a valid path."))
	assert.Equal(t, 4, strings.Count(out.String(), folderPrompt))
}

func TestCollectOutputDir_EOF(t *testing.T) {
	var out bytes.Buffer
	_, err := NewCollector(strings.NewReader(""), &out).CollectOutputDir()
	assert.ErrorIs(t, err, ErrCanceled)
}

func TestStripQuotes(t *testing.T) {
	assert.Equal(t, `C:\Users\me\imr.pdf`, StripQuotes(`"C:\Users\me\imr.pdf"`))
	assert.Equal(t, "plain", StripQuotes("plain"))
	assert.Equal(t, "", StripQuotes(`""`))
	assert.Equal(t, "it's", StripQuotes("it's"))
}
