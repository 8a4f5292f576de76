// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing, usage and version output for pwmeter.

package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/glamour"
)

// ProgramName is the binary name used in messages.
const ProgramName = "pwmeter"

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdCheck
	CmdRepl
	CmdConfig
	CmdVersion
	CmdHelp
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdCheck:
		return "check"
	case CmdRepl:
		return "repl"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath string // --config PATH
	Verbose    bool   // -v, --verbose
	NoColor    bool   // --no-color
	Mask       bool   // --mask

	// Raw holds the arguments after the command name, for the command's own
	// ArgParser.
	Raw []string
}

const usageMarkdown = `# pwmeter

Password strength meter for the terminal.

A password is **weak** below 10 characters, **medium** when it is only
letters or only digits, and **strong** when it mixes letters and digits.
Anything else (for example symbols) is *unsupported* and shows no meter.

## Usage

` + "```" + `
pwmeter                        Start the interactive meter (default)
pwmeter tui                    Same as above
pwmeter check [PASSWORD]       Classify PASSWORD, or each line of stdin
    --json                     One JSON object per input
    --width N                  Meter width in cells (10-200)
    -- -PASSWORD               Passwords starting with "-" go after --
pwmeter repl                   Line-edited prompt, meter after each entry
pwmeter config [show]          Show the effective configuration
pwmeter config path            Show the config file location
pwmeter config init [--force]  Write a default config file
pwmeter config get KEY         Print one setting (e.g. ui.meter_width)
pwmeter config set KEY VALUE   Change one setting in the config file
pwmeter version                Version information
pwmeter help                   This help
` + "```" + `

## Global Flags

Global flags go before the command. Every command except check also
accepts them after its name.

` + "```" + `
--config PATH    Use PATH instead of ~/.pwmeter/config.toml
-v, --verbose    Debug logging to the log file
--no-color       Plain ASCII output
--mask           Hide typed characters
` + "```" + `

## Keys (interactive meter)

` + "```" + `
Esc / Ctrl+C     Quit
Ctrl+T           Show or hide the password
Ctrl+U           Clear the field
F1               More keys
` + "```" + `

## Exit Codes

` + "```" + `
0  success
1  general error
2  usage error
3  configuration error
` + "```" + `

Passwords are never stored or logged.
`

// PrintUsage writes the help text to w. On a terminal the markdown is
// rendered with glamour; otherwise it is written as-is.
func PrintUsage(w io.Writer, tty bool) {
	if tty {
		if out, err := renderMarkdown(usageMarkdown, GetTerminalWidth()); err == nil {
			fmt.Fprint(w, out)
			fmt.Fprintf(w, "  Version: %s\n", Version)
			return
		}
	}
	fmt.Fprint(w, usageMarkdown)
	fmt.Fprintf(w, "\nVersion: %s\n", Version)
}

// renderMarkdown renders markdown for terminal display.
func renderMarkdown(md string, width int) (string, error) {
	if width > 100 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// PrintVersion writes version information to w.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "%s version %s\n", ProgramName, Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "  Go version: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// commandNames maps command names and aliases to commands.
var commandNames = map[string]Command{
	"tui":       CmdTUI,
	"check":     CmdCheck,
	"c":         CmdCheck,
	"repl":      CmdRepl,
	"config":    CmdConfig,
	"cfg":       CmdConfig,
	"version":   CmdVersion,
	"--version": CmdVersion,
	"help":      CmdHelp,
	"-h":        CmdHelp,
	"--help":    CmdHelp,
}

// Parse parses command-line arguments (without the program name) and
// returns the command and args. No arguments means the interactive meter.
//
// Global flags go before the command name. Every command except check also
// accepts them after its name; check takes passwords as operands, so
// everything after "check" is left for it (a password that starts with "-"
// still needs "--" there).
func Parse(argv []string) (Command, Args, error) {
	var parsedArgs Args
	remaining, err := parseGlobalFlags(argv, &parsedArgs, true)
	if err != nil {
		return CmdHelp, parsedArgs, err
	}

	if len(remaining) == 0 {
		return CmdTUI, parsedArgs, nil
	}

	cmd, ok := commandNames[strings.ToLower(remaining[0])]
	if !ok {
		return CmdHelp, parsedArgs, NewUsageError(
			fmt.Sprintf("unknown command %q", remaining[0]),
			ProgramName+" check abcdefghij1",
		)
	}

	rest := remaining[1:]
	if cmd != CmdCheck {
		if rest, err = parseGlobalFlags(rest, &parsedArgs, false); err != nil {
			return CmdHelp, parsedArgs, err
		}
	}
	parsedArgs.Raw = rest
	return cmd, parsedArgs, nil
}

// parseGlobalFlags moves global flags from args into parsed and returns the
// rest. Flags are never read past a "--" terminator; with stopAtPositional
// they are not read past the first non-flag argument either.
func parseGlobalFlags(args []string, parsed *Args, stopAtPositional bool) ([]string, error) {
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "--":
			// Pass the terminator through for the command's parser
			return append(remaining, args[i:]...), nil
		case "-v", "--verbose":
			parsed.Verbose = true
		case "--no-color":
			parsed.NoColor = true
		case "--mask":
			parsed.Mask = true
		case "--config":
			if i+1 >= len(args) {
				return nil, NewUsageError("--config requires a path", ProgramName+" --config ./pwmeter.toml")
			}
			i++
			parsed.ConfigPath = args[i]
		default:
			if strings.HasPrefix(arg, "--config=") {
				parsed.ConfigPath = strings.TrimPrefix(arg, "--config=")
				if parsed.ConfigPath == "" {
					return nil, NewUsageError("--config requires a path", ProgramName+" --config=./pwmeter.toml")
				}
				continue
			}
			if stopAtPositional {
				return append(remaining, args[i:]...), nil
			}
			remaining = append(remaining, arg)
		}
	}

	return remaining, nil
}
