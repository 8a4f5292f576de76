// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package strength classifies passwords into one of four strength codes.

# Codes

	Unsupported (-1) - ten or more characters, but neither a pure letter/digit
	                   run nor a letter+digit mix (e.g. only symbols)
	Weak        ( 0) - fewer than ten characters
	Medium      ( 1) - ten or more characters, letters only or digits only
	Strong      ( 2) - ten or more characters with at least one letter and digit

Rules are evaluated in that order of precedence: length first, then the pure
letter/digit check, then the mix check. A Medium password is displayed with
the "warning" variant even though a long all-digit string is weaker in
practice; the ordering is kept as-is.

Lengths are measured in UTF-16 code units (see Length), so "é" counts as one
character and an emoji such as "😀" as two.

# State

State pairs an input value with its code. The only way to obtain a State for a
value is State.With, so the code always matches the value:

	st := strength.NewState()    // "", Weak
	st = st.With("abcdefghij1")  // Strong
*/
package strength
