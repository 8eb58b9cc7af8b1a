// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/quill/internal/export"
	"github.com/jeranaias/quill/internal/model"
	"github.com/jeranaias/quill/internal/ui/styles"
)

// generateCmd runs a generation request in a background goroutine and
// delivers the result tagged with its sequence number.
func generateCmd(gen ArticleGenerator, req model.Request, ctx context.Context, cancel context.CancelFunc, seq uint64) tea.Cmd {
	return func() tea.Msg {
		defer cancel()
		article, err := gen.Generate(ctx, req)
		return GenerationResultMsg{Seq: seq, Article: article, Err: err}
	}
}

// typeTick schedules the next typewriter advance for the given run.
func typeTick(interval time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TypeTickMsg{Seq: seq}
	})
}

// ellipsisTick schedules the next frame of the trailing-dots animation.
func ellipsisTick() tea.Cmd {
	return tea.Tick(styles.EllipsisInterval, func(time.Time) tea.Msg {
		return EllipsisTickMsg{}
	})
}

// exportCmd writes the article to disk in a background goroutine.
func exportCmd(a *model.Article, exporter export.Exporter, opts *export.Options) tea.Cmd {
	return func() tea.Msg {
		path, err := export.ToFile(a, exporter, opts)
		return ExportResultMsg{Path: path, Err: err}
	}
}
