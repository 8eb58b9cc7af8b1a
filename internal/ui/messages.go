// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the interactive article-writer interface.
//
// This file defines all Bubble Tea message types used by the writer.
// Messages are organized into the following categories:
//   - Generation: request results from the language model
//   - Typing: typewriter reveal ticks
//   - Loading: ellipsis animation ticks
//   - Export: file write results
//
// All message types follow Bubble Tea conventions and are immutable.
package ui

import (
	"github.com/jeranaias/quill/internal/model"
)

// =============================================================================
// GENERATION MESSAGES
// =============================================================================

// GenerationResultMsg delivers the outcome of a generation request. Seq
// identifies the request; results whose Seq is older than the model's
// current sequence are stale and must be discarded.
type GenerationResultMsg struct {
	Seq     uint64
	Article *model.Article
	Err     error
}

// =============================================================================
// ANIMATION MESSAGES
// =============================================================================

// TypeTickMsg advances the typewriter by one grapheme cluster. Seq ties the
// tick to the generation it animates; ticks from a superseded run are dropped.
type TypeTickMsg struct {
	Seq uint64
}

// EllipsisTickMsg advances the trailing-dots animation while a request is in
// flight.
type EllipsisTickMsg struct{}

// =============================================================================
// EXPORT MESSAGES
// =============================================================================

// ExportResultMsg reports the outcome of writing an article to disk.
type ExportResultMsg struct {
	Path string
	Err  error
}
