// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "github.com/jeranaias/pwmeter/internal/ui/styles"

// PageHeading is the page title.
const PageHeading = "Password Strength Meter"

// HelperText is the hint shown under the password field.
const HelperText = "* Password should be greater than 10 characters and have at least one letter and number."

// RenderHeading renders the page title.
func RenderHeading(theme *styles.Theme) string {
	return theme.PageHeading.Render(PageHeading)
}

// RenderHelperText renders the hint line, wrapped to width when width > 0.
func RenderHelperText(theme *styles.Theme, width int) string {
	style := theme.HelperText
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(HelperText)
}
