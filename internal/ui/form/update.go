// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package form

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/pwmeter/internal/logging"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case ConfigReloadedMsg:
		return m.handleReload(msg)

	case tea.KeyMsg:
		// Any key dismisses the last reload notice
		m.status.ClearNotice()

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.logger.Debug("form closed", logging.StateFields(m.state)...)
			return m, tea.Quit

		case key.Matches(msg, m.keys.ToggleMask):
			m.field.SetMasked(!m.field.Masked())
			m.status.Masked = m.field.Masked()
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.field.Reset()
			m.syncState()
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	m.syncState()
	return m, cmd
}

// syncState replaces the state when the field value changed.
func (m *Model) syncState() {
	value := m.field.Value()
	if value == m.state.Value() {
		return
	}
	prev := m.state.Strength()
	m.state = m.state.With(value)
	m.status.Length = m.state.Len()

	if m.state.Strength() != prev {
		m.logger.Debug("strength changed",
			zap.Int("length", m.state.Len()),
			zap.Int("from", int(prev)),
			zap.Int("to", int(m.state.Strength())))
	}
}

// handleReload applies a reloaded config. Without a config the current one
// stays; an error alongside a config (skipped env overrides) is reported
// after applying it.
func (m Model) handleReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Config != nil {
		m.applyConfig(msg.Config.Clone())
		m.layout()
		m.logger.Info("config reloaded",
			zap.Int("meter_width", msg.Config.UI.MeterWidth),
			zap.Bool("mask_input", msg.Config.UI.MaskInput))
	}

	switch {
	case msg.Err != nil:
		m.status.SetNotice(fmt.Sprintf("config reload failed: %v", msg.Err), true)
		m.logger.Warn("config reload failed", zap.Error(msg.Err))
	case msg.Config != nil:
		m.status.SetNotice("config reloaded", false)
	}
	return m, nil
}
