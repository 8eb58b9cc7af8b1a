// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"strings"
	"time"

	"github.com/jeranaias/quill/internal/model"
)

// MarkdownExporter exports articles as Markdown documents.
type MarkdownExporter struct {
	opts *Options
}

// NewMarkdownExporter creates a Markdown exporter with the given options.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{opts: opts}
}

// Export converts an article to Markdown.
func (e *MarkdownExporter) Export(a *model.Article) ([]byte, error) {
	var sb strings.Builder

	if e.opts.IncludeMetadata {
		sb.WriteString("---\n")
		sb.WriteString("title: " + a.Title + "\n")
		if a.Digest != "" {
			sb.WriteString("digest: " + a.Digest + "\n")
		}
		if a.Model != "" {
			sb.WriteString("model: " + a.Model + "\n")
		}
		sb.WriteString("created: " + a.CreatedAt.Format(time.RFC3339) + "\n")
		sb.WriteString("---\n\n")
	}

	sb.WriteString(a.Markdown)
	if !strings.HasSuffix(a.Markdown, "\n") {
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

// FileExtension returns ".md".
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}

// MimeType returns the Markdown MIME type.
func (e *MarkdownExporter) MimeType() string {
	return "text/markdown"
}
