// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package meter maps a strength code to the colored segments of the
// strength meter. It holds no drawing code; see ui/components for that.
package meter

import "github.com/jeranaias/pwmeter/internal/strength"

// Color is the display variant of a segment.
type Color string

const (
	Danger  Color = "danger"
	Warning Color = "warning"
	Success Color = "success"
)

// Segment is one bar of the meter. Percent is relative to the full meter
// width and is not clamped.
type Segment struct {
	Color   Color   `json:"color"`
	Percent float64 `json:"percent"`
}

// weakFillPerUnit is the red fill per length unit for weak passwords.
const weakFillPerUnit = 2

// fixed holds the templates that do not depend on input length.
var fixed = map[strength.Code][]Segment{
	strength.Medium: {
		{Color: Danger, Percent: 20},
		{Color: Warning, Percent: 40},
	},
	strength.Strong: {
		{Color: Danger, Percent: 20},
		{Color: Warning, Percent: 40},
		{Color: Success, Percent: 40},
	},
}

// Segments returns the meter segments for code. length is the input length
// as counted by strength.Length and only affects Weak, whose single red
// segment is length*2 percent. Unsupported (and any unknown code) yields
// nil: no meter.
func Segments(code strength.Code, length int) []Segment {
	if code == strength.Weak {
		return []Segment{{Color: Danger, Percent: float64(length * weakFillPerUnit)}}
	}

	tmpl, ok := fixed[code]
	if !ok {
		return nil
	}
	out := make([]Segment, len(tmpl))
	copy(out, tmpl)
	return out
}

// ForState is Segments for the state's current code and length.
func ForState(st strength.State) []Segment {
	return Segments(st.Strength(), st.Len())
}

// Visible reports whether code has a meter at all.
func Visible(code strength.Code) bool {
	if code == strength.Weak {
		return true
	}
	_, ok := fixed[code]
	return ok
}
