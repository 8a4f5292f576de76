// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pwmeter/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - Logo bar at the top of the page
// =============================================================================

// logoArt is the padlock shown in the header (5 lines, 13 columns).
const logoArt = `   .-----.
  / .---. \
  | |   | |
 _|_|___|_|_
|     o     |`

// logoCompact is used when the terminal is too short or narrow for the art.
const logoCompact = "[ pwmeter ]"

// Header renders the logo bar.
type Header struct {
	Width   int  // Available width
	Compact bool // Use the one-line logo
	theme   *styles.Theme
}

// NewHeader creates a new Header component with default values
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// Height returns the number of lines View produces.
func (h *Header) Height() int {
	return lipgloss.Height(h.View())
}

// View renders the header with the logo centered.
func (h *Header) View() string {
	width := h.Width
	if width < 20 {
		width = 20
	}

	logo := logoArt
	if h.Compact || width < 30 {
		logo = logoCompact
	}

	// Trailing spaces in the art would be trimmed by some terminals; pad each
	// line to the widest so centering stays aligned.
	lines := strings.Split(logo, "\n")
	maxW := 0
	for _, l := range lines {
		if w := lipgloss.Width(l); w > maxW {
			maxW = w
		}
	}
	for i, l := range lines {
		lines[i] = l + strings.Repeat(" ", maxW-lipgloss.Width(l))
	}

	rendered := h.theme.Logo.Render(strings.Join(lines, "\n"))
	return h.theme.Header.Width(width).Render(rendered)
}
