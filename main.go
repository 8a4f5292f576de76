// pwmeter - Password strength meter for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/jeranaias/pwmeter/internal/cli"
	"github.com/jeranaias/pwmeter/internal/config"
	"github.com/jeranaias/pwmeter/internal/logging"
	"github.com/jeranaias/pwmeter/internal/ui/form"
	"github.com/jeranaias/pwmeter/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes one invocation and returns the process exit code.
func run(argv []string) int {
	cmd, args, err := cli.Parse(argv)
	if err != nil {
		cli.DisplayError(os.Stderr, err)
		return cli.ExitCodeForError(err)
	}

	// These need neither config nor logging
	switch cmd {
	case cli.CmdHelp:
		cli.PrintUsage(os.Stdout, cli.IsStdoutTTY())
		return cli.ExitSuccess
	case cli.CmdVersion:
		cli.PrintVersion(os.Stdout)
		return cli.ExitSuccess
	}

	cfg, err := loadConfig(args)
	if err != nil {
		// An explicit --config must be valid, except for the config command
		// which is how a broken file gets fixed. Skipped env overrides only warn.
		var envErr *config.EnvOverrideError
		if args.ConfigPath != "" && cmd != cli.CmdConfig && !errors.As(err, &envErr) {
			cli.DisplayError(os.Stderr, err)
			return cli.ExitConfigError
		}
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if cfg.UI.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger, err := logging.New(cfg.Logging, args.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (logging disabled)\n", err)
		logger = zap.NewNop()
	}
	defer logger.Sync()
	logger, _ = logging.WithSession(logger)
	logger.Info("starting",
		zap.String("command", cmd.String()),
		zap.String("version", Version))

	s := cli.StdStreams()
	switch cmd {
	case cli.CmdTUI:
		err = runTUI(cfg, args, logger)
	case cli.CmdCheck:
		err = cli.HandleCheck(args, cfg, s, logger)
	case cli.CmdRepl:
		err = cli.HandleRepl(args, cfg, s, logger)
	case cli.CmdConfig:
		err = cli.HandleConfig(args, cfg, s)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", cmd.String()), zap.Error(err))
		cli.DisplayError(os.Stderr, err)
		return cli.ExitCodeForError(err)
	}
	return cli.ExitSuccess
}

// loadConfig loads the config named by --config, or the default location,
// then applies command-line overrides. The returned config is never nil;
// when the file is unusable it holds the defaults.
func loadConfig(args cli.Args) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if cfg == nil {
		cfg = config.Default()
		err = fmt.Errorf("%w (using defaults)", err)
	}
	applyFlags(cfg, args)
	return cfg, err
}

// applyFlags lets command-line flags win over file and environment.
func applyFlags(cfg *config.Config, args cli.Args) {
	if args.Mask {
		cfg.UI.MaskInput = true
	}
	if args.NoColor {
		cfg.UI.NoColor = true
	}
}

// watchPath returns the config file to watch, or "" when there is none.
func watchPath(args cli.Args) string {
	if args.ConfigPath != "" {
		return args.ConfigPath
	}
	return config.ActivePath()
}

// runTUI starts the interactive meter and blocks until it exits.
func runTUI(cfg *config.Config, args cli.Args, logger *zap.Logger) error {
	theme := styles.NewTheme()
	if cfg.UI.NoColor {
		theme = styles.NewThemeWithProfile(termenv.Ascii)
	}

	m := form.New(cfg, theme, logger)

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if path := watchPath(args); cfg.Watch && path != "" {
		w, err := config.NewWatcher(path, config.DefaultWatchDebounce)
		if err != nil {
			logger.Warn("config watch disabled", zap.Error(err))
		} else {
			logger.Debug("watching config", zap.String("path", w.Path()))
			go func() {
				_ = w.Run(ctx, func(c *config.Config, err error) {
					if c != nil {
						applyFlags(c, args)
					}
					p.Send(form.ConfigReloadedMsg{Config: c, Err: err})
				})
			}()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
