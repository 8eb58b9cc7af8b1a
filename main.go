// quill - write articles with a language model, one keystroke at a time.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/quill/internal/cli"
	"github.com/jeranaias/quill/internal/config"
	"github.com/jeranaias/quill/internal/generator"
	"github.com/jeranaias/quill/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

const usage = `quill - write articles with a language model

Usage:
  quill                Launch the interactive writer
  quill write [flags]  Generate one article and print it to stdout
  quill version        Show version information
  quill help           Show this help

Run "quill write -h" for the write command's flags.

Configuration lives at ~/.quill/config.toml. The API key can also be set
via QUILL_API_KEY or OPENAI_API_KEY.`

func main() {
	args := os.Args[1:]

	if len(args) > 0 {
		switch args[0] {
		case "version", "--version", "-v":
			fmt.Printf("quill %s (%s, built %s)\n", Version, GitCommit, BuildDate)
			return
		case "help", "--help", "-h":
			fmt.Println(usage)
			return
		case "write":
			os.Exit(runWrite(args[1:]))
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s\n", args[0], usage)
			os.Exit(cli.ExitUsageError)
		}
	}

	os.Exit(runTUI())
}

// runWrite handles the one-shot command and returns the process exit code.
func runWrite(args []string) int {
	opts, err := cli.ParseWriteFlags(args)
	if err != nil {
		return cli.ExitUsageError
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return cli.ExitConfigError
	}

	if err := cli.RunWrite(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.GetExitCode(err)
	}
	return cli.ExitSuccess
}

// runTUI launches the interactive writer and returns the process exit code.
func runTUI() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return cli.ExitConfigError
	}

	// Debug logging goes to a file under the config dir; stdout belongs
	// to the TUI.
	if os.Getenv("QUILL_DEBUG") != "" {
		logPath := "quill-debug.log"
		if dir, err := config.Dir(); err == nil {
			if err := config.EnsureDir(); err == nil {
				logPath = filepath.Join(dir, "debug.log")
			}
		}
		f, err := tea.LogToFile(logPath, "quill")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open debug log: %v\n", err)
			return cli.ExitGeneralError
		}
		defer f.Close()
	}

	client := generator.NewOpenAIClient(&generator.ClientConfig{
		APIKey:      cfg.Provider.APIKey,
		Model:       cfg.Provider.Model,
		BaseURL:     cfg.Provider.BaseURL,
		Temperature: cfg.Provider.Temperature,
		MaxTokens:   cfg.Provider.MaxTokens,
		Timeout:     cfg.Timeout(),
	})
	gen := generator.New(client, cfg.Provider.Model)

	p := tea.NewProgram(
		ui.New(cfg, gen),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitGeneralError
	}
	return cli.ExitSuccess
}
