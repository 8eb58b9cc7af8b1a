// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// write.go - One-shot article generation for scripting and piping.
//
// Handles the "quill write" command which generates a single article and
// prints it to stdout, bypassing the interactive interface.
//
// Examples:
//   quill write --title "Go Concurrency Patterns"
//   quill write --title "Go Generics" --tags "go,generics" --notes "cover constraints"
//   quill write --title "Release Notes" --plain > notes.md
//   quill write --title "Go Modules" -o ./articles --format html
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jeranaias/quill/internal/config"
	"github.com/jeranaias/quill/internal/export"
	"github.com/jeranaias/quill/internal/generator"
	"github.com/jeranaias/quill/internal/model"
)

// WriteOptions holds the parsed flags for the write command.
type WriteOptions struct {
	Title   string
	Tags    string
	Notes   string
	Model   string
	Output  string // directory to export into; empty means stdout only
	Format  string // "md" or "html"
	Plain   bool   // skip terminal markdown rendering
	Quiet   bool   // suppress progress output
	Timeout time.Duration
}

// ParseWriteFlags parses the arguments of the write command.
func ParseWriteFlags(args []string) (*WriteOptions, error) {
	fs := flag.NewFlagSet("write", flag.ContinueOnError)
	opts := &WriteOptions{}

	fs.StringVar(&opts.Title, "title", "", "article title (required)")
	fs.StringVar(&opts.Tags, "tags", "", "comma-separated tags")
	fs.StringVar(&opts.Notes, "notes", "", "notes the article should cover")
	fs.StringVar(&opts.Model, "model", "", "model name (overrides config)")
	fs.StringVar(&opts.Output, "o", "", "export directory (writes a file in addition to stdout)")
	fs.StringVar(&opts.Format, "format", "md", "export format: md or html")
	fs.BoolVar(&opts.Plain, "plain", false, "plain markdown output, no terminal rendering")
	fs.BoolVar(&opts.Quiet, "quiet", false, "suppress progress messages")
	fs.DurationVar(&opts.Timeout, "timeout", 0, "request timeout (overrides config)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.Format != "md" && opts.Format != "html" {
		return nil, fmt.Errorf("unknown format %q (want md or html)", opts.Format)
	}
	return opts, nil
}

// RunWrite executes the one-shot write command. The generated article goes
// to stdout; a file is written only when -o is given.
func RunWrite(cfg *config.Config, opts *WriteOptions) error {
	clientCfg := generator.ClientConfig{
		APIKey:      cfg.Provider.APIKey,
		Model:       cfg.Provider.Model,
		BaseURL:     cfg.Provider.BaseURL,
		Temperature: cfg.Provider.Temperature,
		MaxTokens:   cfg.Provider.MaxTokens,
		Timeout:     cfg.Timeout(),
	}
	if opts.Model != "" {
		clientCfg.Model = opts.Model
	}
	if opts.Timeout > 0 {
		clientCfg.Timeout = opts.Timeout
	}

	client := generator.NewOpenAIClient(&clientCfg)
	gen := generator.New(client, clientCfg.Model)

	req := model.Request{Title: opts.Title, Tags: opts.Tags, Notes: opts.Notes}

	if !opts.Quiet {
		fmt.Fprintf(os.Stderr, "Generating %q with %s...\n", opts.Title, clientCfg.Model)
	}

	article, err := gen.Generate(context.Background(), req)
	if err != nil {
		return err
	}

	if opts.Plain || !IsStdoutTTY() {
		fmt.Print(article.Markdown)
		if len(article.Markdown) > 0 && article.Markdown[len(article.Markdown)-1] != '\n' {
			fmt.Println()
		}
	} else {
		fmt.Print(renderMarkdown(article.Markdown))
	}

	if opts.Output != "" {
		path, err := exportArticle(cfg, article, opts)
		if err != nil {
			return err
		}
		if !opts.Quiet {
			fmt.Fprintf(os.Stderr, "Saved %s\n", path)
		}
	}

	return nil
}

func exportArticle(cfg *config.Config, article *model.Article, opts *WriteOptions) (string, error) {
	exportOpts := &export.Options{
		OutputDir:       opts.Output,
		IncludeMetadata: true,
		Theme:           cfg.Export.Theme,
	}
	var exporter export.Exporter
	if opts.Format == "html" {
		exporter = export.NewHTMLExporter(exportOpts)
	} else {
		exporter = export.NewMarkdownExporter(exportOpts)
	}
	return export.ToFile(article, exporter, exportOpts)
}
