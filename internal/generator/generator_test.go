// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/quill/internal/model"
)

// =============================================================================
// PIPELINE TESTS
// =============================================================================

func TestGenerateRunsBothStages(t *testing.T) {
	mock := &MockLLM{Responses: []string{
		"1. Intro\n2. Body\n3. Conclusion",
		"# Monads Explained\n\nA monad is a structure for sequencing computation.\n\n## Details\n\nMore text.",
	}}
	g := New(mock, "gpt-4o-mini")

	article, err := g.Generate(context.Background(), model.Request{
		Title: "What is a monad",
		Tags:  "fp, haskell",
		Notes: "keep it practical",
	})
	require.NoError(t, err)

	require.Len(t, mock.Prompts, 2)
	assert.Contains(t, mock.Prompts[0].User, "Title: What is a monad")
	assert.Contains(t, mock.Prompts[0].User, "Tags: fp, haskell")
	assert.Contains(t, mock.Prompts[1].User, "1. Intro")

	assert.Equal(t, "Monads Explained", article.Title)
	assert.Equal(t, "A monad is a structure for sequencing computation.", article.Digest)
	assert.Equal(t, "1. Intro\n2. Body\n3. Conclusion", article.Outline)
	assert.Equal(t, "gpt-4o-mini", article.Model)
	assert.NotEmpty(t, article.ID)
}

func TestGenerateEmptyTitleFailsBeforeNetwork(t *testing.T) {
	mock := &MockLLM{Responses: []string{"outline", "article"}}
	g := New(mock, "gpt-4o-mini")

	_, err := g.Generate(context.Background(), model.Request{Title: "   "})
	if !IsInvalidInput(err) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
	if len(mock.Prompts) != 0 {
		t.Errorf("expected no LLM calls for empty title, got %d", len(mock.Prompts))
	}
}

func TestGenerateFallsBackToRequestedTitle(t *testing.T) {
	mock := &MockLLM{Responses: []string{
		"outline",
		"No heading here, just a paragraph of text.",
	}}
	g := New(mock, "gpt-4o-mini")

	article, err := g.Generate(context.Background(), model.Request{Title: "Fallback Title"})
	require.NoError(t, err)
	assert.Equal(t, "Fallback Title", article.Title)
	assert.Equal(t, "No heading here, just a paragraph of text.", article.Digest)
}

func TestGeneratePropagatesClientErrors(t *testing.T) {
	mock := &MockLLM{Err: &ClientError{Type: ErrTypeNetwork, Message: "request timed out"}}
	g := New(mock, "gpt-4o-mini")

	_, err := g.Generate(context.Background(), model.Request{Title: "anything"})
	if !IsNetwork(err) {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestGenerateEmptyCompletionIsServiceError(t *testing.T) {
	mock := &MockLLM{Responses: []string{"outline", "   \n  "}}
	g := New(mock, "gpt-4o-mini")

	_, err := g.Generate(context.Background(), model.Request{Title: "anything"})
	if !IsService(err) {
		t.Fatalf("expected service error, got %v", err)
	}
}

// =============================================================================
// POSTPROCESS TESTS
// =============================================================================

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		md   string
		want string
	}{
		{"simple heading", "# Hello World\n\nBody.", "Hello World"},
		{"heading mid-document", "Intro.\n\n# Late Title\n", "Late Title"},
		{"no heading", "Just text.", ""},
		{"h2 is not a title", "## Section\n\nBody.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractTitle(tt.md); got != tt.want {
				t.Errorf("extractTitle(%q) = %q, want %q", tt.md, got, tt.want)
			}
		})
	}
}

func TestExtractDigestSkipsHeadings(t *testing.T) {
	md := "# Title\n\n## Section\n\nFirst real paragraph.\n\nSecond."
	if got := extractDigest(md); got != "First real paragraph." {
		t.Errorf("extractDigest = %q", got)
	}
}

func TestDefaultDigestTruncatesRuneSafe(t *testing.T) {
	md := strings.Repeat("héllo ", 50)
	got := defaultDigest(md, 20)
	if len([]rune(got)) != 20 {
		t.Errorf("expected 20 runes, got %d (%q)", len([]rune(got)), got)
	}
}

// =============================================================================
// PROMPT TESTS
// =============================================================================

func TestBuildOutlinePromptNormalizesTags(t *testing.T) {
	p := BuildOutlinePrompt(model.Request{
		Title: "T",
		Tags:  "  go ,, tui,  llm ",
	})
	assert.Contains(t, p.User, "Tags: go, tui, llm")
	assert.NotEmpty(t, p.System)
}

func TestNormalizedTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a, b,c", []string{"a", "b", "c"}},
		{"  ", nil},
		{", ,", []string{}},
	}
	for _, tt := range tests {
		got := model.Request{Tags: tt.in}.NormalizedTags()
		if len(got) != len(tt.want) {
			t.Errorf("NormalizedTags(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("NormalizedTags(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
