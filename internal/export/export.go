// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes generated articles to disk in various formats.
// Nothing is written unless the user explicitly asks for it.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/quill/internal/model"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for article exporters.
type Exporter interface {
	// Export converts an article to the target format and returns the content.
	Export(a *model.Article) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".md", ".html").
	FileExtension() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files will be saved.
	// Default: current working directory
	OutputDir string

	// IncludeMetadata includes a metadata header (timestamp, model, digest).
	IncludeMetadata bool

	// Theme for HTML export ("light" or "dark").
	Theme string
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:       ".",
		IncludeMetadata: true,
		Theme:           "dark",
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ToFile exports an article to a file using the specified exporter.
// Returns the output file path or an error.
func ToFile(a *model.Article, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	content, err := exporter.Export(a)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s%s",
		sanitizeFilename(a.Title),
		timestamp,
		exporter.FileExtension(),
	)

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	outputPath := filepath.Join(opts.OutputDir, filename)
	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return outputPath, nil
}

// sanitizeFilename makes a title safe for use in a filename.
// Keeps alphanumerics, dashes, and underscores; everything else becomes an
// underscore. The result is lowercased and capped at 40 characters.
func sanitizeFilename(title string) string {
	if title == "" {
		return "article"
	}

	var sb strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		case r == ' ':
			sb.WriteRune('_')
		}
	}

	out := sb.String()
	if len(out) > 40 {
		out = out[:40]
	}
	out = strings.Trim(out, "_")
	if out == "" {
		return "article"
	}
	return out
}
