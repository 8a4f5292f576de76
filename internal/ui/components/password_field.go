// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/pwmeter/internal/ui/styles"
)

// =============================================================================
// PASSWORD FIELD COMPONENT
// =============================================================================

// FieldPlaceholder is the placeholder shown while the field is empty.
const FieldPlaceholder = "Password"

// maskChar replaces each rune when masking is on.
const maskChar = '•'

// PasswordField is a single-line text input. Input is echoed in clear by
// default; SetMasked hides it.
type PasswordField struct {
	input   textinput.Model
	width   int
	focused bool
	masked  bool
	theme   *styles.Theme
}

// NewPasswordField creates a new, unfocused PasswordField.
func NewPasswordField(theme *styles.Theme) *PasswordField {
	ti := textinput.New()
	ti.Placeholder = FieldPlaceholder
	ti.Prompt = "> "
	ti.Width = 40
	ti.PromptStyle = theme.InputPrompt
	ti.TextStyle = theme.InputText
	ti.PlaceholderStyle = theme.InputPlaceholder
	ti.Cursor.Style = theme.InputPrompt

	return &PasswordField{
		input: ti,
		width: 44,
		theme: theme,
	}
}

// Focus focuses the input
func (f *PasswordField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

// Blur removes focus from the input
func (f *PasswordField) Blur() {
	f.focused = false
	f.input.Blur()
}

// Focused returns whether the input is focused
func (f *PasswordField) Focused() bool {
	return f.focused
}

// SetMasked toggles masking of the typed characters.
func (f *PasswordField) SetMasked(masked bool) {
	f.masked = masked
	if masked {
		f.input.EchoMode = textinput.EchoPassword
		f.input.EchoCharacter = maskChar
	} else {
		f.input.EchoMode = textinput.EchoNormal
	}
}

// Masked reports whether input is masked.
func (f *PasswordField) Masked() bool {
	return f.masked
}

// SetWidth sets the outer width of the field including its border.
func (f *PasswordField) SetWidth(width int) {
	f.width = width
	// Border (2) + padding (2) + prompt (2)
	inner := width - 6
	if inner < 10 {
		inner = 10
	}
	f.input.Width = inner
}

// Width returns the outer width of the field.
func (f *PasswordField) Width() int {
	return f.width
}

// Value returns the current input value
func (f *PasswordField) Value() string {
	return f.input.Value()
}

// SetValue sets the input value
func (f *PasswordField) SetValue(value string) {
	f.input.SetValue(value)
}

// Reset clears the input
func (f *PasswordField) Reset() {
	f.input.Reset()
}

// Update forwards msg to the text input.
func (f *PasswordField) Update(msg tea.Msg) (*PasswordField, tea.Cmd) {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View renders the field inside its border.
func (f *PasswordField) View() string {
	style := f.theme.Field
	if f.focused {
		style = f.theme.FieldFocused
	}
	// Width excludes the border
	return style.Width(f.width - 2).Render(f.input.View())
}
