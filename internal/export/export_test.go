// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/quill/internal/model"
)

func testArticle() *model.Article {
	return &model.Article{
		ID:        "test-id",
		Title:     "Go Concurrency Patterns",
		Digest:    "A tour of channels and goroutines.",
		Markdown:  "# Go Concurrency Patterns\n\nChannels are **typed** conduits.\n",
		Model:     "gpt-4o-mini",
		CreatedAt: time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC),
	}
}

func TestMarkdownExportIncludesMetadata(t *testing.T) {
	e := NewMarkdownExporter(nil)
	out, err := e.Export(testArticle())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	s := string(out)
	if !strings.HasPrefix(s, "---\n") {
		t.Error("missing front matter")
	}
	if !strings.Contains(s, "title: Go Concurrency Patterns") {
		t.Error("missing title in front matter")
	}
	if !strings.Contains(s, "Channels are **typed** conduits.") {
		t.Error("missing body")
	}
}

func TestMarkdownExportWithoutMetadata(t *testing.T) {
	e := NewMarkdownExporter(&Options{IncludeMetadata: false})
	out, err := e.Export(testArticle())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if strings.Contains(string(out), "---") {
		t.Error("front matter should be omitted")
	}
}

func TestHTMLExportRendersMarkdown(t *testing.T) {
	e := NewHTMLExporter(DefaultOptions())
	out, err := e.Export(testArticle())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	s := string(out)
	if !strings.Contains(s, "<strong>typed</strong>") {
		t.Error("bold markdown not rendered")
	}
	if !strings.Contains(s, "<title>Go Concurrency Patterns</title>") {
		t.Error("missing page title")
	}
}

func TestToFileWritesArticle(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultOptions()
	opts.OutputDir = dir

	path, err := ToFile(testArticle(), NewMarkdownExporter(opts), opts)
	if err != nil {
		t.Fatalf("ToFile: %v", err)
	}
	if !strings.HasSuffix(path, ".md") {
		t.Errorf("unexpected extension: %q", path)
	}
	if !strings.Contains(path, "go_concurrency_patterns") {
		t.Errorf("filename not derived from title: %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if !strings.Contains(string(data), "Channels are") {
		t.Error("exported file missing body")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Go Concurrency Patterns", "go_concurrency_patterns"},
		{"", "article"},
		{"///", "article"},
		{"Hello, World!", "hello_world"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
