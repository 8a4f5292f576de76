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

	// Layout dimensions
	Width  int
	Height int

	// Glyphs used by the meter
	Glyphs Glyphs

	// ==========================================================================
	// PAGE STYLES
	// ==========================================================================

	App  lipgloss.Style
	Main lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header lipgloss.Style
	Logo   lipgloss.Style

	// ==========================================================================
	// FORM STYLES
	// ==========================================================================

	PageHeading      lipgloss.Style
	Field            lipgloss.Style
	FieldFocused     lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	HelperText       lipgloss.Style

	// ==========================================================================
	// METER STYLES
	// ==========================================================================

	MeterTrack lipgloss.Style
	MeterLabel lipgloss.Style

	// ==========================================================================
	// FOOTER STYLES
	// ==========================================================================

	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	return NewThemeWithProfile(termenv.ColorProfile())
}

// NewThemeWithProfile creates a theme for an explicit color profile.
// termenv.Ascii selects the ASCII glyph set.
func NewThemeWithProfile(profile termenv.Profile) *Theme {
	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: profile == termenv.TrueColor,
		ColorProfile: profile,
		Glyphs:       BlockGlyphs,
	}
	if profile == termenv.Ascii {
		t.Glyphs = ASCIIGlyphs
	}

	t.initStyles()
	return t
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle()
	t.Main = lipgloss.NewStyle().Padding(1, 2)

	// Header
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.Logo = lipgloss.NewStyle().
		Bold(true).
		Foreground(Purple)

	// Form
	t.PageHeading = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		MarginBottom(1)

	t.Field = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.FieldFocused = t.Field.
		BorderForeground(FocusRing)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.HelperText = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Meter
	t.MeterTrack = lipgloss.NewStyle().
		Foreground(Overlay)

	t.MeterLabel = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	// Footer
	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
