// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/quill/internal/export"
	"github.com/jeranaias/quill/internal/generator"
	"github.com/jeranaias/quill/internal/model"
	"github.com/jeranaias/quill/internal/ui/styles"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case GenerationResultMsg:
		return m.handleGenerationResult(msg)

	case TypeTickMsg:
		return m.handleTypeTick(msg)

	case EllipsisTickMsg:
		if m.phase != phaseGenerating {
			return m, nil
		}
		m.ellipsisFrame++
		return m, ellipsisTick()

	case spinner.TickMsg:
		if m.phase != phaseGenerating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ExportResultMsg:
		if msg.Err != nil {
			m.statusMsg = styles.RenderError("export failed: " + msg.Err.Error())
		} else {
			m.statusMsg = styles.RenderSuccess("saved " + msg.Path)
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelMgr.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextField):
		m.cycleFocus(false)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.cycleFocus(true)
		return m, nil

	case key.Matches(msg, m.keys.Generate):
		return m.startGeneration()

	case key.Matches(msg, m.keys.Cancel):
		return m.handleCancel()

	case key.Matches(msg, m.keys.Export):
		return m.startExport(export.NewMarkdownExporter(m.exportOptions()))

	case key.Matches(msg, m.keys.ExportHTML):
		return m.startExport(export.NewHTMLExporter(m.exportOptions()))

	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	// Enter submits from the single-line fields; in the notes textarea it
	// inserts a newline as usual.
	if msg.Type == tea.KeyEnter && m.focus != focusNotes {
		return m.startGeneration()
	}

	return m.updateFocused(msg)
}

// startGeneration validates the form and kicks off a request. A new request
// supersedes any run already in flight: its sequence number is bumped first,
// so stale results and stale typewriter ticks are discarded on arrival.
func (m *Model) startGeneration() (tea.Model, tea.Cmd) {
	req := m.request()
	if req.IsEmpty() {
		m.phase = phaseError
		m.errText = "A title is required before generating."
		return m, nil
	}

	m.seq++
	m.errText = ""
	m.statusMsg = ""
	m.article = nil
	m.stats = nil
	m.ellipsisFrame = 0
	m.renderer.Stop()
	m.viewport.SetContent("")
	m.phase = phaseGenerating

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelMgr.set(cancel)

	return m, tea.Batch(
		generateCmd(m.gen, req, ctx, cancel, m.seq),
		m.spinner.Tick,
		ellipsisTick(),
	)
}

// handleCancel aborts an in-flight request, or skips the typewriter to the
// end of the article if the animation is still running.
func (m *Model) handleCancel() (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseGenerating:
		m.cancelMgr.cancel()
		m.phase = phaseEditing
		m.statusMsg = "Generation cancelled."
		return m, nil
	case phaseTyping:
		if s := m.renderer.Active(); s != nil {
			for !s.Done() {
				s.Advance()
			}
		}
		m.finishReveal()
		return m, nil
	case phaseError:
		m.phase = phaseEditing
		m.errText = ""
		return m, nil
	}
	return m, nil
}

// startExport writes the finished article to disk. Export is always an
// explicit user action; nothing is written automatically.
func (m *Model) startExport(exporter export.Exporter) (tea.Model, tea.Cmd) {
	if m.article == nil || m.phase == phaseGenerating {
		m.statusMsg = "Nothing to export yet."
		return m, nil
	}
	return m, exportCmd(m.article, exporter, m.exportOptions())
}

func (m *Model) exportOptions() *export.Options {
	return &export.Options{
		OutputDir:       m.cfg.Export.OutputDir,
		IncludeMetadata: true,
		Theme:           m.cfg.Export.Theme,
	}
}

// =============================================================================
// GENERATION RESULTS
// =============================================================================

func (m *Model) handleGenerationResult(msg GenerationResultMsg) (tea.Model, tea.Cmd) {
	// A result from a superseded run; a newer request owns the screen.
	if msg.Seq != m.seq {
		return m, nil
	}

	if msg.Err != nil {
		if errors.Is(msg.Err, context.Canceled) {
			return m, nil
		}
		m.phase = phaseError
		m.errText = describeError(msg.Err)
		return m, nil
	}

	m.article = msg.Article
	m.stats = model.NewStatistics()
	m.phase = phaseTyping
	m.renderer.Start(msg.Article.Markdown)
	m.syncViewport()

	return m, typeTick(m.renderer.Interval(), m.seq)
}

func (m *Model) handleTypeTick(msg TypeTickMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.seq || m.phase != phaseTyping {
		return m, nil
	}

	s := m.renderer.Active()
	if s == nil {
		return m, nil
	}

	s.Advance()
	m.syncViewport()

	if s.Done() {
		m.finishReveal()
		return m, nil
	}
	return m, typeTick(m.renderer.Interval(), m.seq)
}

// finishReveal records statistics and settles into the done phase.
func (m *Model) finishReveal() {
	m.phase = phaseDone
	m.syncViewport()
	if m.stats != nil {
		chars := 0
		if s := m.renderer.Active(); s != nil {
			chars = s.Len()
		}
		m.stats.Finalize(chars)
	}
}

// syncViewport pushes the current typewriter prefix into the viewport,
// keeping the latest text in view while the animation runs.
func (m *Model) syncViewport() {
	s := m.renderer.Active()
	if s == nil {
		return
	}
	text := s.Prefix()
	if !s.Done() {
		text += m.theme.TypingCursor.Render(styles.TypingCursorChar)
	}
	m.viewport.SetContent(text)
	m.viewport.GotoBottom()
}

// =============================================================================
// COMPONENT ROUTING
// =============================================================================

// updateFocused routes a message to the focused form component.
func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case focusTags:
		m.tagsInput, cmd = m.tagsInput.Update(msg)
	case focusNotes:
		m.notesInput, cmd = m.notesInput.Update(msg)
	}
	return m, cmd
}

// =============================================================================
// ERROR TEXT
// =============================================================================

// describeError turns a client error into a short, actionable message.
func describeError(err error) string {
	switch {
	case generator.IsInvalidInput(err):
		return fmt.Sprintf("Invalid input: %v", err)
	case generator.IsAuth(err):
		return "Authentication failed. Check your API key (QUILL_API_KEY or config)."
	case generator.IsNetwork(err):
		return fmt.Sprintf("Network problem: %v", err)
	case generator.IsService(err):
		return fmt.Sprintf("The model service returned an error: %v", err)
	default:
		return err.Error()
	}
}
