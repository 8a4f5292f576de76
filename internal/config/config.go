// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for pwmeter.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.pwmeter/config.toml
//   - ~/.pwmeter/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/pwmeter/internal/util"
)

// CurrentVersion is the config schema version written by Save.
const CurrentVersion = "1"

// Meter width bounds in terminal cells.
const (
	MinMeterWidth = 10
	MaxMeterWidth = 200
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete pwmeter configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Watch reloads the config file while the TUI is running
	Watch bool `toml:"watch" json:"watch"`

	UI      UIConfig      `toml:"ui" json:"ui"`
	Logging LoggingConfig `toml:"logging" json:"logging"`
}

// UIConfig contains display settings. The strength thresholds are fixed and
// deliberately absent here.
type UIConfig struct {
	// MaskInput hides typed characters. Off by default: the field echoes input.
	MaskInput bool `toml:"mask_input" json:"mask_input"`
	// MeterWidth is the bar width in cells (10-200)
	MeterWidth int `toml:"meter_width" json:"meter_width"`
	// ShowLogo shows the logo header
	ShowLogo bool `toml:"show_logo" json:"show_logo"`
	// ShowLabel appends the strength name after the bar
	ShowLabel bool `toml:"show_label" json:"show_label"`
	// Striped alternates glyphs inside segments
	Striped bool `toml:"striped" json:"striped"`
	// NoColor forces plain ASCII output
	NoColor bool `toml:"no_color" json:"no_color"`
	// AltScreen runs the TUI in the alternate screen buffer
	AltScreen bool `toml:"alt_screen" json:"alt_screen"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Enabled turns on the file logger
	Enabled bool `toml:"enabled" json:"enabled"`
	// Level is one of debug, info, warn, error
	Level string `toml:"level" json:"level"`
	// File is the log path (empty = ~/.pwmeter/pwmeter.log)
	File string `toml:"file" json:"file"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Watch:   false,
		UI: UIConfig{
			MaskInput:  false,
			MeterWidth: 40,
			ShowLogo:   true,
			ShowLabel:  true,
			Striped:    true,
			NoColor:    false,
			AltScreen:  true,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			File:    "",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the pwmeter configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".pwmeter"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pwmeter.log"), nil
}

// ActivePath returns the config file Load would read, or "" when none exists.
func ActivePath() string {
	if p, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(p); statErr == nil {
			return p
		}
	}
	if p, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(p); statErr == nil {
			return p
		}
	}
	return ""
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
//
// The returned config is non-nil even when err is not: an unusable file
// yields the defaults, and an *EnvOverrideError means only the listed
// overrides were skipped.
func Load() (*Config, error) {
	if path := ActivePath(); path != "" {
		cfg, err := LoadFromPath(path)
		if cfg != nil {
			return cfg, err
		}
		// The file is unusable; the environment still applies to the defaults
		def, envErr := finish(Default())
		return def, errors.Join(fmt.Errorf("%w (using defaults)", err), envErr)
	}
	return finish(Default())
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Keys absent from the file keep their defaults. An invalid file
// returns a nil config; invalid environment overrides return the config
// without them and an *EnvOverrideError.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finish(cfg)
}

// finish applies env overrides, defaults and validation.
func finish(cfg *Config) (*Config, error) {
	envErr := cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, envErr
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML saves the configuration to a TOML file with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var sb strings.Builder
	sb.WriteString("# pwmeter configuration file\n")
	sb.WriteString("# Strength thresholds are fixed and cannot be configured here.\n\n")

	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file with 0600 permissions.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// validLogLevels are the accepted logging.level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.UI.MeterWidth < MinMeterWidth || c.UI.MeterWidth > MaxMeterWidth {
		errs = append(errs, ValidationError{
			Field:   "ui.meter_width",
			Message: fmt.Sprintf("must be between %d and %d, got %d", MinMeterWidth, MaxMeterWidth, c.UI.MeterWidth),
		})
	}

	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("must be one of debug, info, warn, error, got %q", c.Logging.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills zero values that have no meaningful zero setting.
func (c *Config) SetDefaults() {
	defaults := Default()
	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.UI.MeterWidth == 0 {
		c.UI.MeterWidth = defaults.UI.MeterWidth
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	c.Logging.Level = strings.ToLower(c.Logging.Level)
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// EnvOverrideError lists environment overrides that were skipped because
// their values are invalid. Every other setting was still applied.
type EnvOverrideError struct {
	Errs ValidateErrors
}

func (e *EnvOverrideError) Error() string {
	return "ignored environment overrides: " + e.Errs.Error()
}

func (e *EnvOverrideError) Unwrap() error {
	return e.Errs
}

// ApplyEnvOverrides applies environment variable overrides.
//   - PWMETER_MASK: overrides ui.mask_input
//   - PWMETER_METER_WIDTH: overrides ui.meter_width
//   - PWMETER_NO_COLOR / NO_COLOR: sets ui.no_color
//   - PWMETER_LOG: overrides logging.enabled
//   - PWMETER_LOG_LEVEL: overrides logging.level
//   - PWMETER_LOG_FILE: overrides logging.file (and enables logging)
//
// An invalid value is skipped and reported in an *EnvOverrideError; the
// remaining overrides are applied regardless.
func (c *Config) ApplyEnvOverrides() error {
	var errs ValidateErrors

	if v := os.Getenv("PWMETER_MASK"); v != "" {
		c.UI.MaskInput = envBool(v)
	}

	if v := os.Getenv("PWMETER_METER_WIDTH"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < MinMeterWidth || n > MaxMeterWidth {
			errs = append(errs, ValidationError{
				Field:   "PWMETER_METER_WIDTH",
				Message: fmt.Sprintf("must be an integer between %d and %d, got %q", MinMeterWidth, MaxMeterWidth, v),
			})
		} else {
			c.UI.MeterWidth = n
		}
	}

	// https://no-color.org/: any non-empty value disables color
	if os.Getenv("NO_COLOR") != "" {
		c.UI.NoColor = true
	}
	if v := os.Getenv("PWMETER_NO_COLOR"); v != "" {
		c.UI.NoColor = envBool(v)
	}

	if v := os.Getenv("PWMETER_LOG"); v != "" {
		c.Logging.Enabled = envBool(v)
	}
	if v := os.Getenv("PWMETER_LOG_LEVEL"); v != "" {
		if level := strings.ToLower(strings.TrimSpace(v)); validLogLevels[level] {
			c.Logging.Level = level
		} else {
			errs = append(errs, ValidationError{
				Field:   "PWMETER_LOG_LEVEL",
				Message: fmt.Sprintf("must be one of debug, info, warn, error, got %q", v),
			})
		}
	}
	if v := os.Getenv("PWMETER_LOG_FILE"); v != "" {
		c.Logging.File = v
		c.Logging.Enabled = true
	}

	if len(errs) > 0 {
		return &EnvOverrideError{Errs: errs}
	}
	return nil
}

func envBool(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "1" || v == "true" || v == "yes" || v == "on"
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "ui.meter_width").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "ui.mask_input").
// The result is not validated; call Validate before saving.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

// lookup walks key through the struct tree.
func (c *Config) lookup(key string) (reflect.Value, error) {
	if strings.TrimSpace(key) == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct {
				return reflect.Value{}, fmt.Errorf("field '%s' is a section, not a value", key)
			}
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %w", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			boolVal, err := strconv.ParseBool(strVal)
			if err != nil {
				return fmt.Errorf("invalid boolean value: %w", err)
			}
			field.SetBool(boolVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) && val.Kind() != reflect.String {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"watch",
		"ui.mask_input",
		"ui.meter_width",
		"ui.show_logo",
		"ui.show_label",
		"ui.striped",
		"ui.no_color",
		"ui.alt_screen",
		"logging.enabled",
		"logging.level",
		"logging.file",
	}
}

// Clone returns a copy of the config. Config holds no reference types.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns the config as indented JSON.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
