// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the interactive article-writer interface.
//
// The layout is a form pane (title, tags, notes) above an article pane.
// Generation runs in a background goroutine; the article pane reveals the
// result with a typewriter animation once the model responds.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/quill/internal/config"
	"github.com/jeranaias/quill/internal/model"
	"github.com/jeranaias/quill/internal/typewriter"
	"github.com/jeranaias/quill/internal/ui/styles"
)

// =============================================================================
// PHASE
// =============================================================================

// phase tracks what the writer is currently doing.
type phase int

const (
	phaseEditing    phase = iota // waiting for user input
	phaseGenerating              // request in flight
	phaseTyping                  // revealing the generated article
	phaseDone                    // article fully revealed
	phaseError                   // last generation failed
)

// =============================================================================
// FOCUS
// =============================================================================

// focusField identifies which form field has keyboard focus.
type focusField int

const (
	focusTitle focusField = iota
	focusTags
	focusNotes
	focusCount // sentinel for cycling
)

// =============================================================================
// GENERATOR INTERFACE
// =============================================================================

// ArticleGenerator produces an article from a request. Satisfied by
// *generator.Generator; tests substitute their own.
type ArticleGenerator interface {
	Generate(ctx context.Context, req model.Request) (*model.Article, error)
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the writer interface.
type Model struct {
	cfg   *config.Config
	gen   ArticleGenerator
	theme *styles.Theme
	keys  KeyMap

	// Form components
	titleInput textinput.Model
	tagsInput  textinput.Model
	notesInput textarea.Model
	focus      focusField

	// Article pane
	viewport viewport.Model
	renderer *typewriter.Renderer
	article  *model.Article
	stats    *model.Statistics

	// Loading indicators
	spinner       spinner.Model
	ellipsisFrame int

	// Generation lifecycle
	phase     phase
	seq       uint64
	cancelMgr *cancelManager
	errText   string
	statusMsg string

	// Layout
	width  int
	height int
	ready  bool
}

// New creates the writer model from loaded configuration and a generator.
func New(cfg *config.Config, gen ArticleGenerator) *Model {
	theme := styles.NewTheme(cfg.UI.Theme)

	title := textinput.New()
	title.Placeholder = "Article title"
	title.CharLimit = 200
	title.Focus()

	tags := textinput.New()
	tags.Placeholder = "Comma-separated tags (optional)"
	tags.CharLimit = 200

	notes := textarea.New()
	notes.Placeholder = "Notes, key points, anything the article should cover (optional)"
	notes.ShowLineNumbers = false
	notes.SetHeight(4)

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: styles.LineSpinner.Frames,
		FPS:    styles.LineSpinner.Duration(),
	}
	sp.Style = theme.Spinner

	return &Model{
		cfg:        cfg,
		gen:        gen,
		theme:      theme,
		keys:       DefaultKeyMap(),
		titleInput: title,
		tagsInput:  tags,
		notesInput: notes,
		focus:      focusTitle,
		renderer:   typewriter.NewRenderer(cfg.TypeInterval()),
		spinner:    sp,
		phase:      phaseEditing,
		cancelMgr:  newCancelManager(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// request assembles a generation request from the current form values.
func (m *Model) request() model.Request {
	return model.Request{
		Title: m.titleInput.Value(),
		Tags:  m.tagsInput.Value(),
		Notes: m.notesInput.Value(),
	}
}

// setFocus moves keyboard focus to the given field.
func (m *Model) setFocus(f focusField) {
	m.focus = f
	m.titleInput.Blur()
	m.tagsInput.Blur()
	m.notesInput.Blur()
	switch f {
	case focusTitle:
		m.titleInput.Focus()
	case focusTags:
		m.tagsInput.Focus()
	case focusNotes:
		m.notesInput.Focus()
	}
}

// cycleFocus advances focus forward or backward through the form.
func (m *Model) cycleFocus(backward bool) {
	f := m.focus
	if backward {
		f = (f + focusCount - 1) % focusCount
	} else {
		f = (f + 1) % focusCount
	}
	m.setFocus(f)
}
