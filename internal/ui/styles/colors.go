// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the pwmeter TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// ACCENT COLORS
// =============================================================================

// Purple - Logo and heading accent
var Purple = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// Cyan - Brand color, prompt, focus ring
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// =============================================================================
// METER COLORS
// =============================================================================

// Rose - "danger" segments
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// RoseDeep - stripe shade for danger segments
var RoseDeep = lipgloss.AdaptiveColor{Light: "#BE123C", Dark: "#E11D48"}

// Amber - "warning" segments
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// AmberDeep - stripe shade for warning segments
var AmberDeep = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#D97706"}

// Emerald - "success" segments
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// EmeraldDeep - stripe shade for success segments
var EmeraldDeep = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#059669"}

// =============================================================================
// SURFACE AND TEXT COLORS
// =============================================================================

// SurfaceDim - Header background
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Borders, empty meter track
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Hints, helper text, placeholder
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// FocusRing color
var FocusRing = Cyan

// =============================================================================
// VARIANT LOOKUP
// =============================================================================

// VariantColors returns the fill and stripe colors for a meter variant
// ("danger", "warning", "success"). Unknown variants get the muted track.
func VariantColors(variant string) (fill, stripe lipgloss.AdaptiveColor) {
	switch variant {
	case "danger":
		return Rose, RoseDeep
	case "warning":
		return Amber, AmberDeep
	case "success":
		return Emerald, EmeraldDeep
	default:
		return Overlay, Overlay
	}
}

// StatusIndicatorSet contains text indicators shown next to the meter so the
// strength is readable without color.
type StatusIndicatorSet struct {
	Danger      string
	Warning     string
	Success     string
	Unsupported string
}

// StatusIndicators is the ASCII indicator set.
var StatusIndicators = StatusIndicatorSet{
	Danger:      "[X]",
	Warning:     "[!]",
	Success:     "[OK]",
	Unsupported: "[?]",
}
