// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package strength

// State is the current password input and its classification.
// The zero value is the mounted state: empty input, Weak.
type State struct {
	value    string
	strength Code
}

// NewState returns the initial state.
func NewState() State {
	return State{value: "", strength: Weak}
}

// With returns a new State for value. The receiver is not modified.
func (s State) With(value string) State {
	return State{
		value:    value,
		strength: Classify(value),
	}
}

// Value returns the input string.
func (s State) Value() string {
	return s.value
}

// Strength returns the classification of Value.
func (s State) Strength() Code {
	return s.strength
}

// Len returns the input length as counted by Length.
func (s State) Len() int {
	return Length(s.value)
}
