// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "strings"

// =============================================================================
// METER GLYPHS
// =============================================================================

// Glyphs are the characters a meter bar is drawn with.
type Glyphs struct {
	Fill   string
	Stripe string
	Empty  string
}

// BlockGlyphs use Unicode block elements.
var BlockGlyphs = Glyphs{Fill: "█", Stripe: "▓", Empty: "░"}

// ASCIIGlyphs are used when the terminal has no color support.
var ASCIIGlyphs = Glyphs{Fill: "#", Stripe: "=", Empty: "-"}

// RenderStripes returns n cells alternating Fill and Stripe, starting at
// phase. When striped is false every cell is Fill.
func RenderStripes(n, phase int, g Glyphs, striped bool) string {
	if n <= 0 {
		return ""
	}
	if !striped {
		return strings.Repeat(g.Fill, n)
	}

	var sb strings.Builder
	sb.Grow(n * 3)
	for i := 0; i < n; i++ {
		if (i+phase)%2 == 0 {
			sb.WriteString(g.Fill)
		} else {
			sb.WriteString(g.Stripe)
		}
	}
	return sb.String()
}

// RenderTrack returns n empty cells.
func RenderTrack(n int, g Glyphs) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(g.Empty, n)
}
