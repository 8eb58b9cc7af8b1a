// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderBrand lipgloss.Style

	// ==========================================================================
	// FORM STYLES
	// ==========================================================================

	FieldLabel        lipgloss.Style
	FieldLabelFocused lipgloss.Style
	FieldBox          lipgloss.Style
	FieldBoxFocused   lipgloss.Style
	Placeholder       lipgloss.Style

	// ==========================================================================
	// ARTICLE PANE STYLES
	// ==========================================================================

	ArticlePane    lipgloss.Style
	ArticleTitle   lipgloss.Style
	ArticleDigest  lipgloss.Style
	TypingCursor   lipgloss.Style
	EmptyPaneHint  lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatusReady  lipgloss.Style
	StatusBusy   lipgloss.Style
	StatusDone   lipgloss.Style
	StatusError  lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// SPINNER AND LOADING STYLES
	// ==========================================================================

	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style

	// ==========================================================================
	// ERROR BOX STYLES
	// ==========================================================================

	ErrorBox     lipgloss.Style
	ErrorTitle   lipgloss.Style
	ErrorMessage lipgloss.Style
	ErrorHint    lipgloss.Style

	// ==========================================================================
	// STATISTICS STYLES
	// ==========================================================================

	StatsBar   lipgloss.Style
	StatsLabel lipgloss.Style
	StatsValue lipgloss.Style
}

// NewTheme creates a new theme with all styles configured. The preference
// argument is "auto", "dark", or "light"; "auto" uses terminal detection.
func NewTheme(preference string) *Theme {
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor

	isDark := termenv.HasDarkBackground()
	switch preference {
	case "dark":
		isDark = true
	case "light":
		isDark = false
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.HeaderBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	// Form fields
	t.FieldLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.FieldLabelFocused = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.FieldBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(OverlayDim).
		Padding(0, 1)

	t.FieldBoxFocused = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(FocusRing).
		Padding(0, 1)

	t.Placeholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Article pane
	t.ArticlePane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.ArticleTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	t.ArticleDigest = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.TypingCursor = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.EmptyPaneHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.StatusReady = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.StatusBusy = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.StatusDone = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.StatusError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Spinner
	t.Spinner = lipgloss.NewStyle().
		Foreground(Purple)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Error box
	t.ErrorBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Rose).
		BorderLeft(true).
		PaddingLeft(2)

	t.ErrorTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rose)

	t.ErrorMessage = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.ErrorHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Statistics
	t.StatsBar = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StatsLabel = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StatsValue = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)
}
