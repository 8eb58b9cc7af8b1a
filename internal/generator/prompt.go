// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"fmt"
	"strings"

	"github.com/jeranaias/quill/internal/model"
)

// Generation is two-stage: an outline prompt built from the request, then
// an article prompt built from the returned outline. Both stages share the
// same system instruction so output stays in plain Markdown.

const systemInstruction = "You are a professional technical writer. " +
	"Respond with Markdown only, no commentary before or after."

// BuildOutlinePrompt builds the first-stage prompt from the user's title,
// tags, and notes.
func BuildOutlinePrompt(req model.Request) Prompt {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title: %s\n", strings.TrimSpace(req.Title)))
	sb.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(req.NormalizedTags(), ", ")))
	sb.WriteString(fmt.Sprintf("Notes: %s\n", strings.TrimSpace(req.Notes)))
	sb.WriteString("\nCreate a detailed outline for an article based on the above information:")

	return Prompt{
		System: systemInstruction,
		User:   sb.String(),
	}
}

// BuildArticlePrompt builds the second-stage prompt from the outline
// produced by the first stage.
func BuildArticlePrompt(outline string) Prompt {
	var sb strings.Builder
	sb.WriteString("Write a detailed article based on the following outline:\n")
	sb.WriteString(outline)
	sb.WriteString("\n\nStart with a single `# ` heading carrying the article title, ")
	sb.WriteString("then an opening paragraph that summarizes the piece.")

	return Prompt{
		System: systemInstruction,
		User:   sb.String(),
	}
}
