// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/pwmeter/internal/config"
	"github.com/jeranaias/pwmeter/internal/logging"
	"github.com/jeranaias/pwmeter/internal/strength"
	"github.com/jeranaias/pwmeter/internal/ui/components"
	"github.com/jeranaias/pwmeter/internal/ui/styles"
)

// labelWidth is the space reserved after the bar for "[?] unsupported".
const labelWidth = 16

// =============================================================================
// MODEL
// =============================================================================

// Model is the password strength page.
type Model struct {
	state strength.State

	header *components.Header
	field  *components.PasswordField
	meter  *components.Meter
	status *components.StatusBar
	help   help.Model
	keys   KeyMap

	theme  *styles.Theme
	cfg    *config.Config
	logger *zap.Logger

	width  int
	height int

	quitting bool
}

// New creates the page from cfg. A nil logger disables logging.
func New(cfg *config.Config, theme *styles.Theme, logger *zap.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if theme == nil {
		theme = styles.NewTheme()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	h := help.New()
	h.Styles.ShortKey = theme.ShortcutKey
	h.Styles.ShortDesc = theme.ShortcutDesc
	h.Styles.FullKey = theme.ShortcutKey
	h.Styles.FullDesc = theme.ShortcutDesc

	m := Model{
		state:  strength.NewState(),
		header: components.NewHeader(theme),
		field:  components.NewPasswordField(theme),
		meter:  components.NewMeter(theme),
		status: components.NewStatusBar(theme),
		help:   h,
		keys:   DefaultKeyMap(),
		theme:  theme,
		cfg:    cfg,
		logger: logger,
		width:  80,
		height: 24,
	}
	m.field.Focus()
	m.applyConfig(cfg)
	m.layout()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("form started", logging.StateFields(m.state)...)
	return textinput.Blink
}

// State returns the current password state.
func (m Model) State() strength.State {
	return m.state
}

// Masked reports whether the field hides its input.
func (m Model) Masked() bool {
	return m.field.Masked()
}

// Status returns the current status bar notice, if any.
func (m Model) Status() string {
	return m.status.Notice
}

// applyConfig copies display settings from cfg onto the components.
func (m *Model) applyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.field.SetMasked(cfg.UI.MaskInput)
	m.status.Masked = cfg.UI.MaskInput
	m.meter.Striped = cfg.UI.Striped
	m.meter.ShowLabel = cfg.UI.ShowLabel
}

// layout sizes the components for the current terminal size.
func (m *Model) layout() {
	m.theme.SetSize(m.width, m.height)

	content := m.contentWidth()
	m.header.SetWidth(m.width)
	m.header.Compact = m.height < 20 || m.theme.GetLayoutMode() == styles.LayoutNarrow
	m.field.SetWidth(content)
	m.status.SetWidth(content)
	m.help.Width = content

	barWidth := content
	if m.meter.ShowLabel {
		barWidth -= labelWidth
	}
	if barWidth < 1 {
		barWidth = 1
	}
	m.meter.SetWidth(barWidth)
}

// contentWidth is the width of the centered column: the configured meter
// plus its label, bounded by the terminal.
func (m *Model) contentWidth() int {
	w := m.cfg.UI.MeterWidth
	if m.cfg.UI.ShowLabel {
		w += labelWidth
	}
	if limit := m.width - 4; w > limit {
		w = limit
	}
	if w < 20 {
		w = 20
	}
	return w
}
