// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"context"
	"strings"

	"github.com/jeranaias/quill/internal/model"
)

// Generator runs the two-stage article pipeline: request -> outline ->
// article. It holds no state between generations; supersession of
// in-flight requests is the UI's job (sequence numbers), cancellation
// travels through ctx.
type Generator struct {
	llm       LLMClient
	modelName string
}

// New creates a generator over the given LLM client.
func New(llm LLMClient, modelName string) *Generator {
	return &Generator{llm: llm, modelName: modelName}
}

// Outline runs the first stage only and returns the raw outline Markdown.
func (g *Generator) Outline(ctx context.Context, req model.Request) (string, error) {
	if req.IsEmpty() {
		return "", ErrEmptyTitle
	}

	outline, err := g.llm.Complete(ctx, BuildOutlinePrompt(req))
	if err != nil {
		return "", err
	}
	outline = strings.TrimSpace(outline)
	if outline == "" {
		return "", ErrEmptyResponse
	}
	return outline, nil
}

// Generate runs both stages and returns the finished article. The empty
// title check happens before any network call.
func (g *Generator) Generate(ctx context.Context, req model.Request) (*model.Article, error) {
	outline, err := g.Outline(ctx, req)
	if err != nil {
		return nil, err
	}

	raw, err := g.llm.Complete(ctx, BuildArticlePrompt(outline))
	if err != nil {
		return nil, err
	}

	md := strings.TrimSpace(raw)
	if md == "" {
		return nil, ErrEmptyResponse
	}

	title := extractTitle(md)
	if title == "" {
		title = strings.TrimSpace(req.Title)
	}
	digest := extractDigest(md)
	if digest == "" {
		digest = defaultDigest(md, 120)
	}

	return model.NewArticle(title, digest, outline, md, g.modelName), nil
}
