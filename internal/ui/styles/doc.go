// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the pwmeter TUI.

# Colors (colors.go)

Meter segments use one color per variant, each with a deeper stripe shade:

	danger  - Rose / RoseDeep
	warning - Amber / AmberDeep
	success - Emerald / EmeraldDeep

Text uses TextPrimary, TextSecondary and TextMuted; the logo and heading use
Purple; the focused field border uses FocusRing.

# Theme (theme.go)

	theme := styles.NewTheme()
	if theme.ColorProfile == termenv.Ascii {
		// no color: ASCII glyphs are selected automatically
	}

# Glyphs (bars.go)

RenderStripes draws a striped segment and RenderTrack the unfilled remainder
of the meter.
*/
package styles
