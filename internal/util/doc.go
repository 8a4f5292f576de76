// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across pwmeter.
//
// String Utilities (width-aware, via go-runewidth):
//   - StringWidth, TruncateWidth, PadRight
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	label := util.PadRight(name, 12)
//	err := util.AtomicWriteFile(path, data, 0600)
package util
