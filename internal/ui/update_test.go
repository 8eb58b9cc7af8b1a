// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/quill/internal/config"
	"github.com/jeranaias/quill/internal/generator"
	"github.com/jeranaias/quill/internal/model"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// stubGenerator returns a canned article or error.
type stubGenerator struct {
	article *model.Article
	err     error
	calls   int
	lastReq model.Request
}

func (s *stubGenerator) Generate(ctx context.Context, req model.Request) (*model.Article, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.article, nil
}

func newTestModel(t *testing.T, gen ArticleGenerator) *Model {
	t.Helper()
	m := New(config.Default(), gen)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func sampleArticle() *model.Article {
	return model.NewArticle(
		"On Testing",
		"Why tests matter.",
		"1. Intro\n2. Body",
		"# On Testing\n\nTests matter.",
		"gpt-4o-mini",
	)
}

// runTypewriter feeds type ticks until the reveal completes or maxTicks
// is exhausted.
func runTypewriter(t *testing.T, m *Model, maxTicks int) {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		if m.phase != phaseTyping {
			return
		}
		m.Update(TypeTickMsg{Seq: m.seq})
	}
	t.Fatalf("typewriter did not complete after %d ticks", maxTicks)
}

// =============================================================================
// GENERATION TESTS
// =============================================================================

func TestGenerateRequiresTitle(t *testing.T) {
	gen := &stubGenerator{article: sampleArticle()}
	m := newTestModel(t, gen)

	m.Update(keyMsg(tea.KeyCtrlG))

	if m.phase != phaseError {
		t.Fatalf("phase = %v, want phaseError", m.phase)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times for empty title", gen.calls)
	}
}

func TestGenerationResultStartsTyping(t *testing.T) {
	gen := &stubGenerator{article: sampleArticle()}
	m := newTestModel(t, gen)
	m.titleInput.SetValue("On Testing")

	m.Update(keyMsg(tea.KeyCtrlG))
	if m.phase != phaseGenerating {
		t.Fatalf("phase = %v, want phaseGenerating", m.phase)
	}

	m.Update(GenerationResultMsg{Seq: m.seq, Article: sampleArticle()})
	if m.phase != phaseTyping {
		t.Fatalf("phase = %v, want phaseTyping", m.phase)
	}
	if m.article == nil || m.article.Title != "On Testing" {
		t.Error("article not stored on model")
	}

	runTypewriter(t, m, 1000)
	if m.phase != phaseDone {
		t.Fatalf("phase = %v, want phaseDone", m.phase)
	}
	if m.stats == nil || m.stats.Chars == 0 {
		t.Error("statistics not recorded after reveal")
	}
}

func TestStaleResultIsDiscarded(t *testing.T) {
	gen := &stubGenerator{article: sampleArticle()}
	m := newTestModel(t, gen)
	m.titleInput.SetValue("On Testing")
	m.Update(keyMsg(tea.KeyCtrlG))

	// A result from an earlier, superseded request.
	m.Update(GenerationResultMsg{Seq: m.seq - 1, Article: sampleArticle()})

	if m.phase != phaseGenerating {
		t.Errorf("stale result changed phase to %v", m.phase)
	}
	if m.article != nil {
		t.Error("stale article was stored")
	}
}

func TestStaleTypeTickIsDiscarded(t *testing.T) {
	gen := &stubGenerator{article: sampleArticle()}
	m := newTestModel(t, gen)
	m.titleInput.SetValue("On Testing")
	m.Update(keyMsg(tea.KeyCtrlG))
	m.Update(GenerationResultMsg{Seq: m.seq, Article: sampleArticle()})

	before := m.renderer.Active().Prefix()
	m.Update(TypeTickMsg{Seq: m.seq - 1})
	if got := m.renderer.Active().Prefix(); got != before {
		t.Error("stale tick advanced the typewriter")
	}
}

func TestCancelDuringGeneration(t *testing.T) {
	gen := &stubGenerator{article: sampleArticle()}
	m := newTestModel(t, gen)
	m.titleInput.SetValue("On Testing")
	m.Update(keyMsg(tea.KeyCtrlG))

	m.Update(keyMsg(tea.KeyEsc))

	if m.phase != phaseEditing {
		t.Fatalf("phase = %v, want phaseEditing", m.phase)
	}

	// The cancelled run's result arrives late and must be ignored. Its
	// sequence still matches, but the user already walked away; cancel
	// surfaces as context.Canceled from the generator.
	m.Update(GenerationResultMsg{Seq: m.seq, Err: context.Canceled})
	if m.phase != phaseEditing {
		t.Errorf("cancelled result changed phase to %v", m.phase)
	}
}

func TestEscSkipsTypingToEnd(t *testing.T) {
	gen := &stubGenerator{article: sampleArticle()}
	m := newTestModel(t, gen)
	m.titleInput.SetValue("On Testing")
	m.Update(keyMsg(tea.KeyCtrlG))
	m.Update(GenerationResultMsg{Seq: m.seq, Article: sampleArticle()})

	m.Update(keyMsg(tea.KeyEsc))

	if m.phase != phaseDone {
		t.Fatalf("phase = %v, want phaseDone", m.phase)
	}
	if s := m.renderer.Active(); s == nil || !s.Done() {
		t.Error("typewriter session not completed")
	}
}

func TestGenerationErrorsAreDescribed(t *testing.T) {
	authErr := &generator.ClientError{
		Type:    generator.ErrTypeAuth,
		Message: "401 unauthorized",
	}
	gen := &stubGenerator{err: authErr}
	m := newTestModel(t, gen)
	m.titleInput.SetValue("On Testing")
	m.Update(keyMsg(tea.KeyCtrlG))

	m.Update(GenerationResultMsg{Seq: m.seq, Err: authErr})

	if m.phase != phaseError {
		t.Fatalf("phase = %v, want phaseError", m.phase)
	}
	if !strings.Contains(m.errText, "Authentication") {
		t.Errorf("errText = %q, want auth guidance", m.errText)
	}

	// Esc dismisses the error.
	m.Update(keyMsg(tea.KeyEsc))
	if m.phase != phaseEditing || m.errText != "" {
		t.Error("esc did not dismiss the error")
	}
}

func TestRegenerateSupersedesPreviousRun(t *testing.T) {
	gen := &stubGenerator{article: sampleArticle()}
	m := newTestModel(t, gen)
	m.titleInput.SetValue("On Testing")

	m.Update(keyMsg(tea.KeyCtrlG))
	first := m.seq
	m.Update(keyMsg(tea.KeyCtrlG))

	if m.seq != first+1 {
		t.Fatalf("seq = %d, want %d", m.seq, first+1)
	}
	if m.phase != phaseGenerating {
		t.Errorf("phase = %v, want phaseGenerating", m.phase)
	}
}

// =============================================================================
// FOCUS AND EXPORT TESTS
// =============================================================================

func TestTabCyclesFocus(t *testing.T) {
	m := newTestModel(t, &stubGenerator{})

	order := []focusField{focusTags, focusNotes, focusTitle}
	for _, want := range order {
		m.Update(keyMsg(tea.KeyTab))
		if m.focus != want {
			t.Fatalf("focus = %v, want %v", m.focus, want)
		}
	}

	m.Update(keyMsg(tea.KeyShiftTab))
	if m.focus != focusNotes {
		t.Errorf("shift+tab focus = %v, want focusNotes", m.focus)
	}
}

func TestExportWithoutArticle(t *testing.T) {
	m := newTestModel(t, &stubGenerator{})

	m.Update(keyMsg(tea.KeyCtrlS))

	if !strings.Contains(m.statusMsg, "Nothing to export") {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}

func TestExportResultUpdatesStatus(t *testing.T) {
	m := newTestModel(t, &stubGenerator{})

	m.Update(ExportResultMsg{Path: "/tmp/out.md"})
	if !strings.Contains(m.statusMsg, "/tmp/out.md") {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}

	m.Update(ExportResultMsg{Err: errors.New("disk full")})
	if !strings.Contains(m.statusMsg, "disk full") {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}
