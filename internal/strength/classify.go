// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package strength

import "unicode/utf16"

// MinLength is the shortest input that can score above Weak.
const MinLength = 10

// Length returns the length of s in UTF-16 code units, the unit browsers
// count string length in. Characters outside the Basic Multilingual Plane,
// such as most emoji, count as two.
func Length(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// Code is a password strength classification.
type Code int

const (
	Unsupported Code = -1
	Weak        Code = 0
	Medium      Code = 1
	Strong      Code = 2
)

// String returns the lowercase name of the code.
func (c Code) String() string {
	switch c {
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	case Unsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Variant returns the display variant for the code: "danger", "warning",
// "success", or "" when the code has no visual treatment.
func (c Code) Variant() string {
	switch c {
	case Weak:
		return "danger"
	case Medium:
		return "warning"
	case Strong:
		return "success"
	default:
		return ""
	}
}

// Classify returns the strength code for s. It is total: every string,
// including the empty string, maps to exactly one code.
func Classify(s string) Code {
	if Length(s) < MinLength {
		return Weak
	}

	letters, digits, other := countClasses(s)

	// Letters only or digits only
	if other == 0 && (letters == 0 || digits == 0) {
		return Medium
	}

	if letters > 0 && digits > 0 {
		return Strong
	}

	return Unsupported
}

// countClasses tallies ASCII letters, ASCII digits and everything else.
// Non-ASCII letters and digits count as other.
func countClasses(s string) (letters, digits, other int) {
	for _, r := range s {
		switch {
		case isASCIILetter(r):
			letters++
		case r >= '0' && r <= '9':
			digits++
		default:
			other++
		}
	}
	return letters, digits, other
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
