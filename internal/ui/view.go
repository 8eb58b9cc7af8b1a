// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/quill/internal/ui/styles"
)

const (
	minViewportHeight = 3
	notesHeight       = 4
)

// handleResize recomputes component dimensions for the new terminal size.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	inner := msg.Width - 4 // field box borders and padding
	if inner < 10 {
		inner = 10
	}
	m.titleInput.Width = inner
	m.tagsInput.Width = inner
	m.notesInput.SetWidth(inner)
	m.notesInput.SetHeight(notesHeight)

	// header + three field boxes + status bar + pane borders
	formHeight := 1 + 3 + 3 + (notesHeight + 2) + 1 + 2
	vpHeight := msg.Height - formHeight
	if vpHeight < minViewportHeight {
		vpHeight = minViewportHeight
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width-4, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = vpHeight
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Starting quill..."
	}

	sections := []string{
		m.viewHeader(),
		m.viewForm(),
		m.viewArticlePane(),
		m.viewStatusBar(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// =============================================================================
// HEADER
// =============================================================================

func (m *Model) viewHeader() string {
	brand := m.theme.HeaderBrand.Render("quill")
	title := m.theme.HeaderTitle.Render(" — write articles with a language model")
	return m.theme.Container.Render(brand + title)
}

// =============================================================================
// FORM
// =============================================================================

func (m *Model) viewForm() string {
	title := m.viewField("Title", m.titleInput.View(), m.focus == focusTitle)
	tags := m.viewField("Tags", m.tagsInput.View(), m.focus == focusTags)
	notes := m.viewField("Notes", m.notesInput.View(), m.focus == focusNotes)
	return lipgloss.JoinVertical(lipgloss.Left, title, tags, notes)
}

func (m *Model) viewField(label, content string, focused bool) string {
	labelStyle := m.theme.FieldLabel
	boxStyle := m.theme.FieldBox
	if focused {
		labelStyle = m.theme.FieldLabelFocused
		boxStyle = m.theme.FieldBoxFocused
	}
	return boxStyle.Render(labelStyle.Render(label+": ") + content)
}

// =============================================================================
// ARTICLE PANE
// =============================================================================

func (m *Model) viewArticlePane() string {
	var body string
	switch m.phase {
	case phaseGenerating:
		body = fmt.Sprintf("%s %s%s",
			m.spinner.View(),
			m.theme.ThinkingText.Render("Generating article"),
			m.theme.ThinkingText.Render(styles.Ellipsis(m.ellipsisFrame)),
		)
	case phaseError:
		body = m.viewError()
	case phaseTyping, phaseDone:
		body = m.viewArticle()
	default:
		body = m.theme.EmptyPaneHint.Render(
			"Fill in a title and press Ctrl+G to generate an article.")
	}
	return m.theme.ArticlePane.Width(m.width - 2).Render(body)
}

func (m *Model) viewArticle() string {
	var sb strings.Builder
	if m.article != nil {
		sb.WriteString(m.theme.ArticleTitle.Render(m.article.Title))
		sb.WriteString("\n")
		if m.article.Digest != "" {
			sb.WriteString(m.theme.ArticleDigest.Render(m.article.Digest))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(m.viewport.View())
	return sb.String()
}

func (m *Model) viewError() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.ErrorTitle.Render("Generation failed"),
		m.theme.ErrorMessage.Render(m.errText),
		m.theme.ErrorHint.Render("Press Esc to dismiss, Ctrl+G to retry."),
	)
	return m.theme.ErrorBox.Render(content)
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m *Model) viewStatusBar() string {
	left := m.viewPhase()
	if m.statusMsg != "" {
		left += "  " + m.statusMsg
	}
	right := m.viewShortcuts()

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		// Not enough room; keep the phase and truncate the shortcut strip.
		avail := m.width - lipgloss.Width(left) - 3
		if avail < 0 {
			avail = 0
		}
		right = runewidth.Truncate(right, avail, "…")
		gap = 1
	}

	bar := left + strings.Repeat(" ", gap) + right
	return m.theme.StatusBar.Width(m.width).Render(bar)
}

func (m *Model) viewPhase() string {
	switch m.phase {
	case phaseGenerating:
		return m.theme.StatusBusy.Render("GENERATING")
	case phaseTyping:
		return m.theme.StatusBusy.Render("TYPING")
	case phaseDone:
		s := m.theme.StatusDone.Render("DONE")
		if m.stats != nil && m.cfg.UI.ShowStats {
			s += "  " + m.theme.StatsBar.Render(fmt.Sprintf(
				"%d chars in %.1fs", m.stats.Chars, m.stats.Elapsed().Seconds()))
		}
		return s
	case phaseError:
		return m.theme.StatusError.Render("ERROR")
	default:
		return m.theme.StatusReady.Render("READY")
	}
}

func (m *Model) viewShortcuts() string {
	var parts []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts,
			m.theme.ShortcutKey.Render(h.Key)+" "+m.theme.ShortcutDesc.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
