// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/pwmeter/internal/meter"
	"github.com/jeranaias/pwmeter/internal/strength"
	"github.com/jeranaias/pwmeter/internal/ui/styles"
)

func init() {
	// Plain output so assertions can compare glyphs directly
	lipgloss.SetColorProfile(termenv.Ascii)
}

func asciiTheme() *styles.Theme {
	return styles.NewThemeWithProfile(termenv.Ascii)
}

func plainMeter(width int) *Meter {
	m := NewMeter(asciiTheme())
	m.Width = width
	m.Striped = false
	m.ShowLabel = false
	return m
}

// =============================================================================
// SEGMENT CELL TESTS
// =============================================================================

func TestSegmentCells(t *testing.T) {
	tests := []struct {
		name  string
		segs  []meter.Segment
		width int
		want  []int
	}{
		{"empty weak", meter.Segments(strength.Weak, 0), 40, []int{0}},
		{"weak abc", meter.Segments(strength.Weak, 3), 50, []int{3}},
		{"medium", meter.Segments(strength.Medium, 10), 40, []int{8, 16}},
		{"strong", meter.Segments(strength.Strong, 11), 40, []int{8, 16, 16}},
		{"strong odd width", meter.Segments(strength.Strong, 11), 7, []int{1, 3, 3}},
		{"weak over 100", []meter.Segment{{Color: meter.Danger, Percent: 120}}, 10, []int{10}},
		{"overflow starves later", []meter.Segment{
			{Color: meter.Danger, Percent: 80},
			{Color: meter.Warning, Percent: 40},
			{Color: meter.Success, Percent: 40},
		}, 10, []int{8, 2, 0}},
		{"zero width", meter.Segments(strength.Strong, 11), 0, []int{0, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SegmentCells(tc.segs, tc.width))
		})
	}
}

// =============================================================================
// METER VIEW TESTS
// =============================================================================

func TestMeterView_Scenarios(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"", 10, "----------"},
		{"abc", 50, "###" + strings.Repeat("-", 47)},
		{"abcdefghij", 10, "######----"},
		{"abcdefghij1", 10, "##########"},
		{"!!!!!!!!!!", 10, ""},
	}

	for _, tc := range tests {
		st := strength.NewState().With(tc.input)
		got := plainMeter(tc.width).View(st)
		if got != tc.want {
			t.Errorf("View(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestMeterView_LongWeakCapsAtWidth(t *testing.T) {
	// Weak state for a 9-rune input on a narrow bar: 18% of 5 cells rounds to 1
	st := strength.NewState().With("abcdefghi")
	assert.Equal(t, "#----", plainMeter(5).View(st))

	// Direct segment over 100% never draws past the bar
	cells := SegmentCells(meter.Segments(strength.Weak, 80), 20)
	assert.Equal(t, []int{20}, cells)
}

func TestMeterView_Striped(t *testing.T) {
	m := plainMeter(6)
	m.Striped = true
	st := strength.NewState().With("abcdefghij")
	// 20% of 6 = 1 cell, 40% of 6 = 2 cells; stripes follow absolute position
	assert.Equal(t, "#=#---", m.View(st))
}

func TestMeterView_Label(t *testing.T) {
	m := plainMeter(10)
	m.ShowLabel = true

	tests := []struct {
		input string
		want  string
	}{
		{"abc", "[X] weak"},
		{"abcdefghij", "[!] medium"},
		{"abcdefghij1", "[OK] strong"},
	}
	for _, tc := range tests {
		got := m.View(strength.NewState().With(tc.input))
		assert.True(t, strings.HasSuffix(got, tc.want), "View(%q) = %q", tc.input, got)
	}

	// Unsupported renders nothing, label included
	assert.Empty(t, m.View(strength.NewState().With("!!!!!!!!!!")))
}

// =============================================================================
// PASSWORD FIELD TESTS
// =============================================================================

func TestPasswordField_Defaults(t *testing.T) {
	f := NewPasswordField(asciiTheme())
	require.NotNil(t, f)
	assert.Equal(t, "", f.Value())
	assert.False(t, f.Focused())
	assert.False(t, f.Masked())
	assert.Contains(t, f.View(), FieldPlaceholder)
}

func TestPasswordField_TypeRunes(t *testing.T) {
	f := NewPasswordField(asciiTheme())
	f.Focus()

	for _, r := range "abc1" {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, "abc1", f.Value())

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "abc", f.Value())
}

func TestPasswordField_Masked(t *testing.T) {
	f := NewPasswordField(asciiTheme())
	f.Focus()
	f.SetValue("secret")

	assert.Contains(t, f.View(), "secret")

	f.SetMasked(true)
	assert.True(t, f.Masked())
	view := f.View()
	assert.NotContains(t, view, "secret")
	assert.Contains(t, view, strings.Repeat(string(maskChar), 6))
	assert.Equal(t, "secret", f.Value())
}

func TestPasswordField_SetWidth(t *testing.T) {
	f := NewPasswordField(asciiTheme())
	f.SetWidth(30)
	assert.Equal(t, 30, f.Width())
	assert.LessOrEqual(t, lipgloss.Width(f.View()), 30)
}

// =============================================================================
// HEADER AND TEXT TESTS
// =============================================================================

func TestHeaderView(t *testing.T) {
	h := NewHeader(asciiTheme())
	h.SetWidth(60)
	view := h.View()
	assert.Contains(t, view, "|     o     |")
	assert.Equal(t, 5, h.Height())

	h.Compact = true
	assert.Contains(t, h.View(), logoCompact)
	assert.Equal(t, 1, h.Height())
}

func TestHeaderView_Narrow(t *testing.T) {
	h := NewHeader(asciiTheme())
	h.SetWidth(25)
	assert.Contains(t, h.View(), logoCompact)
}

func TestStaticText(t *testing.T) {
	theme := asciiTheme()
	assert.Contains(t, RenderHeading(theme), "Password Strength Meter")
	assert.Contains(t, RenderHelperText(theme, 0), "at least one letter and number.")
}

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestStatusBar_Wide(t *testing.T) {
	s := NewStatusBar(asciiTheme())
	s.SetWidth(60)
	s.Length = 11

	view := s.View()
	assert.Contains(t, view, "VISIBLE")
	assert.Contains(t, view, "11 chars")
	assert.Equal(t, 60, lipgloss.Width(view))

	s.Masked = true
	s.SetNotice("config reloaded", false)
	view = s.View()
	assert.Contains(t, view, "HIDDEN")
	assert.True(t, strings.HasSuffix(strings.TrimRight(view, " "), "config reloaded"))

	s.ClearNotice()
	assert.NotContains(t, s.View(), "config reloaded")
}

func TestStatusBar_LongNoticeTruncated(t *testing.T) {
	s := NewStatusBar(asciiTheme())
	s.SetWidth(50)
	s.Length = 4
	s.SetNotice("config reload failed: toml: line 3: expected value but found '='", true)

	view := s.View()
	assert.Equal(t, 50, lipgloss.Width(view))
	assert.Contains(t, view, "4 chars")
	assert.Contains(t, view, "config reload")
	assert.Contains(t, view, "...")
}

func TestStatusBar_Narrow(t *testing.T) {
	s := NewStatusBar(asciiTheme())
	s.SetWidth(20)
	s.Masked = true
	s.Length = 3
	s.SetNotice("config reload failed: bad", true)

	view := s.View()
	assert.Contains(t, view, "[H] 3 !")
	assert.LessOrEqual(t, lipgloss.Width(view), 20)
}
