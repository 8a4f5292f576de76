// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package form provides the password strength page as a Bubble Tea model.
//
// The page stacks the logo header, the heading, the password field, the
// strength meter and the helper text. Every edit to the field replaces the
// model's strength.State with a freshly computed one, so the meter always
// reflects the current value.
//
// # Usage
//
//	m := form.New(cfg, styles.NewTheme(), logger)
//	p := tea.NewProgram(m, tea.WithAltScreen())
//	_, err := p.Run()
package form
