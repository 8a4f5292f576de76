// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pwmeter/internal/ui/styles"
	"github.com/jeranaias/pwmeter/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT - Bottom line of the page
// =============================================================================

// StatusBar shows the echo mode, the input length and an optional notice.
type StatusBar struct {
	Width       int
	Masked      bool
	Length      int
	Notice      string
	NoticeError bool
	theme       *styles.Theme
}

// NewStatusBar creates a new StatusBar component with default values
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the status bar width
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetNotice shows text at the right of the bar. isError renders it in red.
func (s *StatusBar) SetNotice(text string, isError bool) {
	s.Notice = text
	s.NoticeError = isError
}

// ClearNotice removes the notice.
func (s *StatusBar) ClearNotice() {
	s.Notice = ""
	s.NoticeError = false
}

// View renders the status bar.
func (s *StatusBar) View() string {
	if s.Width < 40 {
		return s.viewNarrow()
	}
	return s.viewWide()
}

// viewNarrow renders a compact bar
// Format: [H|V] 12 !
func (s *StatusBar) viewNarrow() string {
	mode := "V"
	if s.Masked {
		mode = "H"
	}
	parts := []string{"[" + s.getModeStyle().Render(mode) + "]", fmt.Sprintf("%d", s.Length)}
	if s.Notice != "" {
		parts = append(parts, s.getNoticeStyle().Render("!"))
	}
	return s.render(strings.Join(parts, " "))
}

// viewWide renders the full bar
// Format: HIDDEN | 12 chars | notice
func (s *StatusBar) viewWide() string {
	mode := "VISIBLE"
	if s.Masked {
		mode = "HIDDEN"
	}

	sep := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" | ")
	left := s.getModeStyle().Render(mode) + sep + fmt.Sprintf("%d chars", s.Length)
	if s.Notice == "" {
		return s.render(left)
	}

	// Long notices (reload errors) are cut to the space left of the mode
	room := s.Width - lipgloss.Width(left) - 1
	text := util.TruncateWidth(s.Notice, room)
	if text == "" {
		return s.render(left)
	}
	gap := s.Width - lipgloss.Width(left) - util.StringWidth(text)
	return s.render(left + strings.Repeat(" ", gap) + s.getNoticeStyle().Render(text))
}

// render applies the bar background, truncating to Width.
func (s *StatusBar) render(content string) string {
	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

func (s *StatusBar) getModeStyle() lipgloss.Style {
	if s.Masked {
		return lipgloss.NewStyle().Foreground(styles.Amber).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
}

func (s *StatusBar) getNoticeStyle() lipgloss.Style {
	if s.NoticeError {
		return lipgloss.NewStyle().Foreground(styles.Rose).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(styles.Emerald)
}
