// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/pwmeter/internal/config"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// =============================================================================
// PARSE TESTS (cli.go)
// =============================================================================

func TestParse_Commands(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		wantCmd Command
		wantRaw []string
	}{
		{"no args is tui", nil, CmdTUI, nil},
		{"tui", []string{"tui"}, CmdTUI, []string{}},
		{"check with password", []string{"check", "abc"}, CmdCheck, []string{"abc"}},
		{"check alias", []string{"c", "abc"}, CmdCheck, []string{"abc"}},
		{"repl", []string{"repl"}, CmdRepl, []string{}},
		{"config get", []string{"config", "get", "ui.meter_width"}, CmdConfig, []string{"get", "ui.meter_width"}},
		{"version", []string{"version"}, CmdVersion, []string{}},
		{"--version", []string{"--version"}, CmdVersion, []string{}},
		{"help", []string{"help"}, CmdHelp, []string{}},
		{"-h", []string{"-h"}, CmdHelp, []string{}},
		{"case insensitive", []string{"CHECK", "x"}, CmdCheck, []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, err := Parse(tt.argv)
			if err != nil {
				t.Fatalf("Parse(%v) error: %v", tt.argv, err)
			}
			if cmd != tt.wantCmd {
				t.Errorf("cmd = %v, want %v", cmd, tt.wantCmd)
			}
			if fmt.Sprint(args.Raw) != fmt.Sprint(tt.wantRaw) {
				t.Errorf("Raw = %v, want %v", args.Raw, tt.wantRaw)
			}
		})
	}
}

func TestParse_GlobalFlags(t *testing.T) {
	cmd, args, err := Parse([]string{"--verbose", "--no-color", "--config", "/tmp/pw.toml", "--mask", "check", "abc"})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cmd != CmdCheck {
		t.Errorf("cmd = %v, want check", cmd)
	}
	if !args.Verbose || !args.NoColor || !args.Mask {
		t.Errorf("flags not parsed: %+v", args)
	}
	if args.ConfigPath != "/tmp/pw.toml" {
		t.Errorf("ConfigPath = %q", args.ConfigPath)
	}
	if len(args.Raw) != 1 || args.Raw[0] != "abc" {
		t.Errorf("Raw = %v, want [abc]", args.Raw)
	}
}

func TestParse_CheckKeepsFlagLikeOperands(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		wantRaw []string
	}{
		{"short verbose", []string{"check", "-v"}, []string{"-v"}},
		{"mask", []string{"check", "--mask"}, []string{"--mask"}},
		{"no-color", []string{"check", "--no-color", "abc"}, []string{"--no-color", "abc"}},
		{"config", []string{"check", "--config", "x.toml"}, []string{"--config", "x.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, err := Parse(tt.argv)
			if err != nil {
				t.Fatalf("Parse(%v) error: %v", tt.argv, err)
			}
			if cmd != CmdCheck {
				t.Errorf("cmd = %v, want check", cmd)
			}
			if args.Verbose || args.Mask || args.NoColor || args.ConfigPath != "" {
				t.Errorf("global flags taken from check operands: %+v", args)
			}
			if fmt.Sprint(args.Raw) != fmt.Sprint(tt.wantRaw) {
				t.Errorf("Raw = %v, want %v", args.Raw, tt.wantRaw)
			}
		})
	}
}

func TestParse_GlobalFlagsAfterOtherCommands(t *testing.T) {
	cmd, args, err := Parse([]string{"repl", "--mask", "-v"})
	if err != nil {
		t.Fatal(err)
	}
	if cmd != CmdRepl || !args.Mask || !args.Verbose {
		t.Errorf("cmd = %v, args = %+v", cmd, args)
	}

	cmd, args, err = Parse([]string{"config", "show", "--config=/tmp/pw.toml", "--json"})
	if err != nil {
		t.Fatal(err)
	}
	if cmd != CmdConfig || args.ConfigPath != "/tmp/pw.toml" {
		t.Errorf("cmd = %v, args = %+v", cmd, args)
	}
	if fmt.Sprint(args.Raw) != "[show --json]" {
		t.Errorf("Raw = %v", args.Raw)
	}
}

func TestParse_ConfigEquals(t *testing.T) {
	_, args, err := Parse([]string{"--config=/etc/pw.json"})
	if err != nil {
		t.Fatal(err)
	}
	if args.ConfigPath != "/etc/pw.json" {
		t.Errorf("ConfigPath = %q", args.ConfigPath)
	}
}

func TestParse_Terminator(t *testing.T) {
	_, args, err := Parse([]string{"check", "--", "--mask"})
	if err != nil {
		t.Fatal(err)
	}
	if args.Mask {
		t.Error("--mask after -- must not be a global flag")
	}
	if fmt.Sprint(args.Raw) != "[-- --mask]" {
		t.Errorf("Raw = %v", args.Raw)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{"unknown command", []string{"frobnicate"}},
		{"config without path", []string{"--config"}},
		{"config empty equals", []string{"--config="}},
		{"config after command without path", []string{"repl", "--config"}},
		{"unknown flag before command", []string{"--frob", "check"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.argv)
			var usageErr *UsageError
			if !errors.As(err, &usageErr) {
				t.Fatalf("expected UsageError, got %v", err)
			}
			if ExitCodeForError(err) != ExitUsageError {
				t.Errorf("exit code = %d, want %d", ExitCodeForError(err), ExitUsageError)
			}
		})
	}
}

func TestCommand_String(t *testing.T) {
	for cmd, want := range map[Command]string{
		CmdTUI: "tui", CmdCheck: "check", CmdRepl: "repl",
		CmdConfig: "config", CmdVersion: "version", CmdHelp: "help",
		Command(99): "unknown",
	} {
		if got := cmd.String(); got != want {
			t.Errorf("Command(%d).String() = %q, want %q", cmd, got, want)
		}
	}
}

// =============================================================================
// ARG PARSER TESTS (args.go)
// =============================================================================

func TestArgParser_BasicParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		bools    []string
		wantSub  string
		validate func(*testing.T, *ArgParser)
	}{
		{
			name:    "simple subcommand",
			args:    []string{"show"},
			wantSub: "show",
		},
		{
			name:    "flag with value",
			args:    []string{"show", "--lines", "50"},
			wantSub: "show",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("lines") != "50" {
					t.Errorf("Flag(lines) = %q, want %q", p.Flag("lines"), "50")
				}
			},
		},
		{
			name:    "flag with equals",
			args:    []string{"show", "--format=json"},
			wantSub: "show",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("format") != "json" {
					t.Errorf("Flag(format) = %q, want json", p.Flag("format"))
				}
			},
		},
		{
			name:    "declared bool does not consume value",
			args:    []string{"--json", "secret123"},
			bools:   []string{"json"},
			wantSub: "secret123",
			validate: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("json") {
					t.Error("BoolFlag(json) should be true")
				}
				if p.Flag("json") != "" {
					t.Error("json should not hold a value")
				}
			},
		},
		{
			name:    "explicit false",
			args:    []string{"--json=false"},
			bools:   []string{"json"},
			wantSub: "",
			validate: func(t *testing.T, p *ArgParser) {
				if p.BoolFlag("json") {
					t.Error("BoolFlag(json) should be false")
				}
			},
		},
		{
			name:    "terminator",
			args:    []string{"--", "-dash", "--double"},
			wantSub: "-dash",
			validate: func(t *testing.T, p *ArgParser) {
				if p.PositionalCount() != 2 || p.Positional(1) != "--double" {
					t.Errorf("positional = %v", p.PositionalFrom(0))
				}
			},
		},
		{
			name:    "lone dash is positional",
			args:    []string{"-"},
			wantSub: "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewArgParser(tt.args, tt.bools...)
			if p.Subcommand() != tt.wantSub {
				t.Errorf("Subcommand() = %q, want %q", p.Subcommand(), tt.wantSub)
			}
			if tt.validate != nil {
				tt.validate(t, p)
			}
		})
	}
}

func TestArgParser_UnknownFlags(t *testing.T) {
	p := NewArgParser([]string{"--json", "--colour=red", "x", "--", "--ignored"}, "json")
	unknown := p.UnknownFlags("json")
	if len(unknown) != 1 || unknown[0] != "--colour=red" {
		t.Errorf("UnknownFlags = %v, want [--colour=red]", unknown)
	}
}

func TestArgParser_Accessors(t *testing.T) {
	p := NewArgParser([]string{"set", "ui.mask_input", "true"})
	if p.Positional(5) != "" || p.Positional(-1) != "" {
		t.Error("out of range Positional should be empty")
	}
	if len(p.PositionalFrom(9)) != 0 {
		t.Error("out of range PositionalFrom should be empty")
	}
	if p.Flag("missing") != "" {
		t.Error("missing Flag should be empty")
	}
}

// =============================================================================
// ERROR TESTS (errors.go)
// =============================================================================

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", NewUsageError("bad", ""), ExitUsageError},
		{"wrapped usage", fmt.Errorf("ctx: %w", NewUsageError("bad", "")), ExitUsageError},
		{"config validation", fmt.Errorf("invalid config: %w", config.ValidateErrors{{Field: "ui.meter_width", Message: "x"}}), ExitConfigError},
		{"config command", NewCommandError("config", "set", "nope", nil), ExitConfigError},
		{"check command", NewCommandError("check", "read", "nope", nil), ExitGeneralError},
		{"plain", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCommandError_Format(t *testing.T) {
	inner := errors.New("disk full")
	err := NewCommandError("config", "init", "could not write", inner)

	if !strings.Contains(err.Error(), "config init failed: could not write: disk full") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("CommandError should unwrap to inner error")
	}
}

func TestDisplayError(t *testing.T) {
	var buf bytes.Buffer
	DisplayError(&buf, NewUsageError("unknown command", "pwmeter check x"))

	out := buf.String()
	if !strings.Contains(out, "[ERROR] unknown command") {
		t.Errorf("missing error line: %q", out)
	}
	if !strings.Contains(out, "pwmeter help") {
		t.Errorf("usage errors should point at help: %q", out)
	}

	buf.Reset()
	DisplayError(&buf, nil)
	if buf.Len() != 0 {
		t.Error("nil error should print nothing")
	}
}

// =============================================================================
// USAGE / VERSION
// =============================================================================

func TestPrintUsage_Plain(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf, false)

	out := buf.String()
	for _, want := range []string{"pwmeter check", "pwmeter repl", "--config PATH", "Version: " + Version} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := renderMarkdown(usageMarkdown, 80)
	if err != nil {
		t.Fatalf("renderMarkdown error: %v", err)
	}
	if !strings.Contains(out, "pwmeter") {
		t.Error("rendered usage should mention pwmeter")
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.HasPrefix(buf.String(), "pwmeter version "+Version) {
		t.Errorf("PrintVersion = %q", buf.String())
	}
}
