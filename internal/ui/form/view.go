// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package form

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pwmeter/internal/meter"
	"github.com/jeranaias/pwmeter/internal/ui/components"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	content := m.contentWidth()
	var sections []string

	if m.cfg.UI.ShowLogo {
		sections = append(sections, m.header.View())
	}

	column := []string{
		components.RenderHeading(m.theme),
		"",
		m.field.View(),
	}
	// No meter at all for unsupported input
	if meter.Visible(m.state.Strength()) {
		column = append(column, " "+m.meter.View(m.state))
	}
	column = append(column,
		components.RenderHelperText(m.theme, content),
		"",
		m.status.View(),
		m.help.View(m.keys),
	)

	body := lipgloss.JoinVertical(lipgloss.Left, column...)
	sections = append(sections, lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))

	return m.theme.App.Render(strings.Join(sections, "\n"))
}
