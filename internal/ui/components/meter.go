// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/pwmeter/internal/meter"
	"github.com/jeranaias/pwmeter/internal/strength"
	"github.com/jeranaias/pwmeter/internal/ui/styles"
)

// =============================================================================
// METER COMPONENT - Segmented strength bar
// =============================================================================

// Meter draws meter segments as a single horizontal bar.
type Meter struct {
	Width     int  // Bar width in cells
	Striped   bool // Alternate fill and stripe glyphs
	ShowLabel bool // Append an indicator and the strength name
	theme     *styles.Theme
}

// NewMeter creates a new Meter component with default values
func NewMeter(theme *styles.Theme) *Meter {
	return &Meter{
		Width:     40,
		Striped:   true,
		ShowLabel: true,
		theme:     theme,
	}
}

// SetWidth updates the bar width
func (m *Meter) SetWidth(width int) {
	m.Width = width
}

// SegmentCells converts segment percentages into cell counts for a bar of
// width cells. Segments are laid out left to right and drawing stops at the
// bar edge, so a segment over 100% fills the bar and later segments get 0.
func SegmentCells(segs []meter.Segment, width int) []int {
	cells := make([]int, len(segs))
	if width <= 0 {
		return cells
	}

	used := 0
	for i, s := range segs {
		n := int(math.Round(float64(width) * s.Percent / 100))
		if n < 0 {
			n = 0
		}
		if used+n > width {
			n = width - used
		}
		cells[i] = n
		used += n
	}
	return cells
}

// View renders the meter for the given state. Codes without a meter render
// as the empty string.
func (m *Meter) View(st strength.State) string {
	segs := meter.ForState(st)
	if segs == nil {
		return ""
	}

	bar := m.renderBar(segs)
	if !m.ShowLabel {
		return bar
	}
	return bar + " " + m.renderLabel(st.Strength())
}

// renderBar draws segs followed by the empty track.
func (m *Meter) renderBar(segs []meter.Segment) string {
	g := m.theme.Glyphs
	cells := SegmentCells(segs, m.Width)

	var sb strings.Builder
	used := 0
	for i, s := range segs {
		n := cells[i]
		if n == 0 {
			continue
		}
		// Without color, glyphs alone carry the stripes
		if m.theme.ColorProfile == termenv.Ascii {
			sb.WriteString(styles.RenderStripes(n, used, g, m.Striped))
			used += n
			continue
		}
		fill, stripe := styles.VariantColors(string(s.Color))
		// Stripe phase follows the absolute cell so stripes line up across segments
		for j := 0; j < n; j++ {
			glyph, color := g.Fill, fill
			if m.Striped && (used+j)%2 == 1 {
				glyph, color = g.Stripe, stripe
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(glyph))
		}
		used += n
	}

	if rest := m.Width - used; rest > 0 {
		sb.WriteString(m.theme.MeterTrack.Render(styles.RenderTrack(rest, g)))
	}
	return sb.String()
}

// renderLabel returns the indicator and name for code.
func (m *Meter) renderLabel(code strength.Code) string {
	var indicator string
	switch code {
	case strength.Weak:
		indicator = styles.StatusIndicators.Danger
	case strength.Medium:
		indicator = styles.StatusIndicators.Warning
	case strength.Strong:
		indicator = styles.StatusIndicators.Success
	default:
		indicator = styles.StatusIndicators.Unsupported
	}
	fill, _ := styles.VariantColors(code.Variant())
	return m.theme.MeterLabel.Foreground(fill).Render(indicator + " " + code.String())
}
