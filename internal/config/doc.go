// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for pwmeter.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - UIConfig: Meter and input display settings
//   - LoggingConfig: File logger settings
//   - Watcher: fsnotify-based hot reload
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (PWMETER_*, NO_COLOR)
//   - ~/.pwmeter/config.toml
//   - ~/.pwmeter/config.json
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
//	}
//
//	width, _ := cfg.Get("ui.meter_width")
//	_ = cfg.Set("ui.mask_input", "true")
//
// Strength thresholds are not part of the configuration.
package config
