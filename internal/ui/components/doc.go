// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual UI components for the pwmeter TUI.

# Components

  - Header: logo bar (ASCII padlock, one-line fallback)
  - PasswordField: bordered single-line input with the "Password" placeholder
  - Meter: segmented strength bar driven by meter.Segments
  - StatusBar: echo mode, input length and reload notices
  - RenderHeading / RenderHelperText: the static page text

Components own no application state. The form package holds the password
state and passes it to Meter.View on every render.

# Meter layout

SegmentCells converts segment percentages to cell counts for the configured
bar width. Cells are allotted left to right and stop at the bar edge, which
bounds the unclamped weak fill (length x 2 percent) without altering the
segment data.
*/
package components
