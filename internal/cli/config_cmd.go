// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - The config command: show, path, init, get, set.

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/pwmeter/internal/config"
	"github.com/jeranaias/pwmeter/internal/util"
)

// configKeyWidth aligns the key column of "config show".
const configKeyWidth = 18

// HandleConfig runs the config subcommands against cfg (the effective
// configuration) and the config file at args.ConfigPath or the default path.
func HandleConfig(args Args, cfg *config.Config, s Streams) error {
	p := NewArgParser(args.Raw, "json", "force")

	path, err := configFilePath(args)
	if err != nil {
		return NewCommandError("config", "path", "could not determine config location", err)
	}

	switch sub := p.Subcommand(); sub {
	case "", "show":
		return showConfig(cfg, s, p.BoolFlag("json"))

	case "path":
		fmt.Fprint(s.Out, path)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			fmt.Fprint(s.Out, DimStyle.Render(" (not created)"))
		}
		fmt.Fprintln(s.Out)
		return nil

	case "init":
		return initConfig(path, s, p.BoolFlag("force"))

	case "get":
		key := p.Positional(1)
		if key == "" {
			return NewUsageError("config get needs a key", ProgramName+" config get ui.meter_width")
		}
		val, err := cfg.Get(key)
		if err != nil {
			return NewCommandError("config", "get", "unknown key "+key, err)
		}
		fmt.Fprintln(s.Out, val)
		return nil

	case "set":
		key, value := p.Positional(1), p.Positional(2)
		if key == "" || p.PositionalCount() < 3 {
			return NewUsageError("config set needs a key and a value", ProgramName+" config set ui.mask_input true")
		}
		return setConfig(path, key, value, s)

	default:
		return NewUsageError(
			fmt.Sprintf("unknown config subcommand %q", sub),
			ProgramName+" config [show|path|init|get|set]",
		)
	}
}

// configFilePath returns the file the config command reads and writes.
func configFilePath(args Args) (string, error) {
	if args.ConfigPath != "" {
		return args.ConfigPath, nil
	}
	if active := config.ActivePath(); active != "" {
		return active, nil
	}
	return config.ConfigPathTOML()
}

func showConfig(cfg *config.Config, s Streams, jsonMode bool) error {
	if jsonMode {
		fmt.Fprintln(s.Out, cfg.String())
		return nil
	}

	fmt.Fprintln(s.Out, TitleStyle.Render("pwmeter configuration"))
	for _, key := range config.GetAllKeys() {
		val, err := cfg.Get(key)
		if err != nil {
			return NewCommandError("config", "show", "could not read "+key, err)
		}
		shown := fmt.Sprint(val)
		if shown == "" {
			shown = DimStyle.Render("(default)")
		}
		fmt.Fprintf(s.Out, "  %s %s\n", LabelStyle.Render(util.PadRight(key, configKeyWidth)), ValueStyle.Render(shown))
	}
	return nil
}

func initConfig(path string, s Streams, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return NewCommandError("config", "init", path+" already exists (use --force to overwrite)", nil)
	}

	if err := saveConfig(config.Default(), path); err != nil {
		return NewCommandError("config", "init", "could not write "+path, err)
	}
	fmt.Fprintf(s.Out, "%s Wrote %s\n", SuccessStyle.Render("[OK]"), path)
	return nil
}

// setConfig edits one key in the file. Environment overrides are not applied
// so they never get persisted.
func setConfig(path, key, value string, s Streams) error {
	cfg := config.Default()
	if _, err := os.Stat(path); err == nil {
		var loadErr error
		if strings.HasSuffix(path, ".json") {
			loadErr = config.LoadJSON(cfg, path)
		} else {
			loadErr = config.LoadTOML(cfg, path)
		}
		if loadErr != nil {
			return NewCommandError("config", "set", "could not read "+path, loadErr)
		}
	}

	if err := cfg.Set(key, value); err != nil {
		return NewCommandError("config", "set", "could not set "+key, err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return NewCommandError("config", "set", "invalid value for "+key, err)
	}

	if err := saveConfig(cfg, path); err != nil {
		return NewCommandError("config", "set", "could not write "+path, err)
	}
	fmt.Fprintf(s.Out, "%s %s = %s\n", SuccessStyle.Render("[OK]"), key, value)
	return nil
}

func saveConfig(cfg *config.Config, path string) error {
	if strings.HasSuffix(path, ".json") {
		return config.SaveJSON(cfg, path)
	}
	return config.SaveTOML(cfg, path)
}
