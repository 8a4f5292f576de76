// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Line-edited strength prompt.
//
// History is kept in memory for the session only and is never written to
// disk.

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/jeranaias/pwmeter/internal/config"
	"github.com/jeranaias/pwmeter/internal/logging"
	"github.com/jeranaias/pwmeter/internal/strength"
	"github.com/jeranaias/pwmeter/internal/ui/components"
)

const replPrompt = "password> "

// replHelp lists the slash commands understood by the prompt.
const replHelp = `Type a password and press Enter to see its strength.
  /mask     hide input (no history)
  /unmask   show input
  /quit     exit (also Ctrl+D or Ctrl+C)`

// LineReader is the subset of *liner.State the prompt uses.
type LineReader interface {
	Prompt(prompt string) (string, error)
	PasswordPrompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Repl reads passwords line by line and prints a meter for each.
type Repl struct {
	in     LineReader
	out    io.Writer
	meter  *components.Meter
	logger *zap.Logger
	masked bool
}

// NewRepl creates a prompt reading from in and writing to out.
func NewRepl(in LineReader, out io.Writer, m *components.Meter, logger *zap.Logger, masked bool) *Repl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repl{in: in, out: out, meter: m, logger: logger, masked: masked}
}

// Masked reports whether input is currently hidden.
func (r *Repl) Masked() bool {
	return r.masked
}

// Run loops until EOF, Ctrl+C or /quit.
func (r *Repl) Run() error {
	fmt.Fprintln(r.out, DimStyle.Render(replHelp))

	for {
		input, err := r.read()
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out)
				return nil
			}
			return NewCommandError("repl", "read", "could not read input", err)
		}

		switch strings.TrimSpace(input) {
		case "/quit", "/exit":
			return nil
		case "/mask":
			r.masked = true
			fmt.Fprintln(r.out, DimStyle.Render("input hidden"))
			continue
		case "/unmask":
			r.masked = false
			fmt.Fprintln(r.out, DimStyle.Render("input shown"))
			continue
		case "/help", "/?":
			fmt.Fprintln(r.out, DimStyle.Render(replHelp))
			continue
		}

		st := strength.NewState().With(input)
		r.logger.Debug("checked", logging.StateFields(st)...)
		fmt.Fprintln(r.out, renderCheckLine(r.meter, st))
	}
}

// read prompts once, honoring the mask setting. Masked entries stay out of
// history.
func (r *Repl) read() (string, error) {
	if r.masked {
		return r.in.PasswordPrompt(replPrompt)
	}
	input, err := r.in.Prompt(replPrompt)
	if err != nil {
		return "", err
	}
	if input != "" {
		r.in.AppendHistory(input)
	}
	return input, nil
}

// HandleRepl runs the prompt on the terminal.
func HandleRepl(args Args, cfg *config.Config, s Streams, logger *zap.Logger) error {
	if !s.InTTY {
		return NewUsageError("repl needs an interactive terminal", "echo abcdefghij1 | "+ProgramName+" check")
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	m := newPlainMeter(cfg, args.NoColor || cfg.UI.NoColor)
	return NewRepl(line, s.Out, m, logger, args.Mask || cfg.UI.MaskInput).Run()
}
