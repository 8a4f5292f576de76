// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// check.go - Non-interactive strength check.

package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jeranaias/pwmeter/internal/config"
	"github.com/jeranaias/pwmeter/internal/logging"
	"github.com/jeranaias/pwmeter/internal/meter"
	"github.com/jeranaias/pwmeter/internal/strength"
	"github.com/jeranaias/pwmeter/internal/ui/components"
	"github.com/jeranaias/pwmeter/internal/ui/styles"
	"github.com/jeranaias/pwmeter/internal/util"
)

// maxLineBytes bounds a single stdin line.
const maxLineBytes = 1024 * 1024

// CheckResult is the JSON form of one classification. The password itself
// is never included.
type CheckResult struct {
	Length   int             `json:"length"`
	Strength int             `json:"strength"`
	Class    string          `json:"class"`
	Variant  string          `json:"variant,omitempty"`
	Segments []meter.Segment `json:"segments"`
}

// NewCheckResult describes st.
func NewCheckResult(st strength.State) CheckResult {
	return CheckResult{
		Length:   st.Len(),
		Strength: int(st.Strength()),
		Class:    st.Strength().String(),
		Variant:  st.Strength().Variant(),
		Segments: meter.ForState(st),
	}
}

// HandleCheck classifies the passwords given as arguments, or each line of
// stdin when there are none.
func HandleCheck(args Args, cfg *config.Config, s Streams, logger *zap.Logger) error {
	p := NewArgParser(args.Raw, "json")
	if unknown := p.UnknownFlags("json", "width"); len(unknown) > 0 {
		// Most likely a password that starts with "-"
		return NewUsageError(
			fmt.Sprintf("unknown flag %s for check", unknown[0]),
			ProgramName+" check -- "+unknown[0],
		)
	}
	jsonMode := p.BoolFlag("json")

	width := cfg.UI.MeterWidth
	if w := p.Flag("width"); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil || n < config.MinMeterWidth || n > config.MaxMeterWidth {
			return NewUsageError(
				fmt.Sprintf("--width must be between %d and %d, got %q", config.MinMeterWidth, config.MaxMeterWidth, w),
				ProgramName+" check --width 20 abcdefghij1",
			)
		}
		width = n
	}

	inputs := p.PositionalFrom(0)
	if len(inputs) == 0 {
		if s.InTTY {
			return NewUsageError("check needs a password argument or input on stdin",
				"echo abcdefghij1 | "+ProgramName+" check")
		}
		lines, err := readLines(s)
		if err != nil {
			return NewCommandError("check", "read", "could not read stdin", err)
		}
		inputs = lines
	}

	m := newPlainMeter(cfg, args.NoColor || cfg.UI.NoColor)
	m.Width = width
	enc := json.NewEncoder(s.Out)
	numbered := len(inputs) > 1

	st := strength.NewState()
	for i, in := range inputs {
		st = st.With(in)
		logger.Debug("checked", logging.StateFields(st)...)

		if jsonMode {
			if err := enc.Encode(NewCheckResult(st)); err != nil {
				return NewCommandError("check", "write", "could not encode result", err)
			}
			continue
		}

		line := renderCheckLine(m, st)
		if numbered {
			line = DimStyle.Render(util.PadRight(fmt.Sprintf("%d:", i+1), 5)) + line
		}
		fmt.Fprintln(s.Out, line)
	}
	return nil
}

// newPlainMeter builds a meter component for line output.
func newPlainMeter(cfg *config.Config, noColor bool) *components.Meter {
	theme := styles.NewThemeWithProfile(ColorProfile(noColor))
	m := components.NewMeter(theme)
	m.Width = cfg.UI.MeterWidth
	m.Striped = cfg.UI.Striped
	m.ShowLabel = true
	return m
}

// renderCheckLine draws the meter for st, or a note when there is none.
func renderCheckLine(m *components.Meter, st strength.State) string {
	if view := m.View(st); view != "" {
		return view
	}
	return DimStyle.Render(styles.StatusIndicators.Unsupported + " " + st.Strength().String() + " (no meter)")
}

// readLines reads stdin line by line, dropping a trailing CR.
func readLines(s Streams) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(s.In)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
