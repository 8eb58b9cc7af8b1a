// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"fmt"
	"html"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/jeranaias/quill/internal/model"
)

// HTMLExporter exports articles as standalone HTML documents. The Markdown
// body is rendered with goldmark (GitHub Flavored Markdown).
type HTMLExporter struct {
	opts *Options
	md   goldmark.Markdown
}

// NewHTMLExporter creates an HTML exporter with the given options.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTMLExporter{
		opts: opts,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
		),
	}
}

// Export converts an article to a full HTML page.
func (e *HTMLExporter) Export(a *model.Article) ([]byte, error) {
	var body bytes.Buffer
	if err := e.md.Convert([]byte(a.Markdown), &body); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	buf.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(a.Title))
	buf.WriteString("<style>\n")
	buf.WriteString(e.css())
	buf.WriteString("</style>\n</head>\n<body>\n<main>\n")

	if e.opts.IncludeMetadata {
		buf.WriteString("<header>\n")
		if a.Digest != "" {
			fmt.Fprintf(&buf, "<p class=\"digest\">%s</p>\n", html.EscapeString(a.Digest))
		}
		fmt.Fprintf(&buf, "<p class=\"meta\">%s", a.CreatedAt.Format(time.RFC1123))
		if a.Model != "" {
			fmt.Fprintf(&buf, " &middot; %s", html.EscapeString(a.Model))
		}
		buf.WriteString("</p>\n</header>\n")
	}

	buf.Write(body.Bytes())
	buf.WriteString("</main>\n</body>\n</html>\n")

	return buf.Bytes(), nil
}

// FileExtension returns ".html".
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// MimeType returns the HTML MIME type.
func (e *HTMLExporter) MimeType() string {
	return "text/html"
}

// css returns the embedded stylesheet for the selected theme.
func (e *HTMLExporter) css() string {
	if e.opts.Theme == "light" {
		return `main { max-width: 46rem; margin: 2rem auto; padding: 0 1rem;
  font-family: Georgia, serif; line-height: 1.6; color: #1f2937; }
body { background: #ffffff; }
h1, h2, h3 { font-family: Helvetica, Arial, sans-serif; color: #5b21b6; }
.digest { font-style: italic; color: #6b7280; }
.meta { font-size: 0.85rem; color: #9ca3af; }
code { background: #f5f5f5; padding: 0.1rem 0.3rem; border-radius: 3px; }
pre code { display: block; padding: 0.8rem; overflow-x: auto; }
blockquote { border-left: 3px solid #e5e5e5; margin-left: 0; padding-left: 1rem; color: #6b7280; }`
	}
	return `main { max-width: 46rem; margin: 2rem auto; padding: 0 1rem;
  font-family: Georgia, serif; line-height: 1.6; color: #cdd6f4; }
body { background: #1e1e2e; }
h1, h2, h3 { font-family: Helvetica, Arial, sans-serif; color: #a78bfa; }
.digest { font-style: italic; color: #a6adc8; }
.meta { font-size: 0.85rem; color: #6c7086; }
code { background: #313244; padding: 0.1rem 0.3rem; border-radius: 3px; }
pre code { display: block; padding: 0.8rem; overflow-x: auto; }
blockquote { border-left: 3px solid #45475a; margin-left: 0; padding-left: 1rem; color: #a6adc8; }`
}
