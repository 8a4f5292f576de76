// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-interactive
// commands of pwmeter.
//
// # Commands
//
//   - check: classify arguments or stdin lines, text or JSON output
//   - repl: line-edited prompt (peterh/liner)
//   - config: show, path, init, get, set
//   - version, help (markdown rendered with glamour on a terminal)
//
// The interactive meter lives in package ui/form; main starts it for CmdTUI.
//
// # Errors
//
// Handlers return errors; main calls DisplayError and exits with
// ExitCodeForError. UsageError maps to exit code 2 and config failures to 3.
package cli
