// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jeranaias/pwmeter/internal/config"
	"github.com/jeranaias/pwmeter/internal/meter"
)

// testStreams returns non-TTY streams over in, capturing output.
func testStreams(in string) (Streams, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return Streams{
		In:  strings.NewReader(in),
		Out: out,
		Err: &bytes.Buffer{},
	}, out
}

func runCheck(t *testing.T, raw []string, stdin string) (string, error) {
	t.Helper()
	t.Setenv("FORCE_COLOR", "")
	s, out := testStreams(stdin)
	err := HandleCheck(Args{Raw: raw, NoColor: true}, config.Default(), s, zap.NewNop())
	return out.String(), err
}

func TestHandleCheck_Text(t *testing.T) {
	tests := []struct {
		input     string
		wantLabel string
		wantBar   string
	}{
		{"abc", "[X] weak", "#=" + strings.Repeat("-", 38)},
		{"abcdefghij", "[!] medium", strings.Repeat("#=", 12) + strings.Repeat("-", 16)},
		{"abcdefghij1", "[OK] strong", strings.Repeat("#=", 20)},
		{"!!!!!!!!!!", "[?] unsupported (no meter)", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out, err := runCheck(t, []string{tt.input}, "")
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantLabel)
			if tt.wantBar != "" {
				assert.True(t, strings.HasPrefix(out, tt.wantBar), "bar %q", out)
			} else {
				assert.NotContains(t, out, "#")
			}
			assert.NotContains(t, out, tt.input, "password must not be echoed")
		})
	}
}

func TestHandleCheck_JSON(t *testing.T) {
	out, err := runCheck(t, []string{"--json", "abcdefghij1"}, "")
	require.NoError(t, err)

	var res CheckResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 11, res.Length)
	assert.Equal(t, 2, res.Strength)
	assert.Equal(t, "strong", res.Class)
	assert.Equal(t, "success", res.Variant)
	assert.Equal(t, []meter.Segment{
		{Color: meter.Danger, Percent: 20},
		{Color: meter.Warning, Percent: 40},
		{Color: meter.Success, Percent: 40},
	}, res.Segments)
}

func TestHandleCheck_JSONUnsupported(t *testing.T) {
	out, err := runCheck(t, []string{"--json", "!!!!!!!!!!"}, "")
	require.NoError(t, err)

	assert.Contains(t, out, `"segments":null`)
	assert.NotContains(t, out, "variant")
}

func TestHandleCheck_Stdin(t *testing.T) {
	out, err := runCheck(t, []string{"--json"}, "\nabc\r\nabcdefghij\n")
	require.NoError(t, err)

	var classes []string
	var lengths []int
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		var res CheckResult
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &res))
		classes = append(classes, res.Class)
		lengths = append(lengths, res.Length)
	}
	assert.Equal(t, []string{"weak", "weak", "medium"}, classes)
	assert.Equal(t, []int{0, 3, 10}, lengths)
}

func TestHandleCheck_StdinNumbered(t *testing.T) {
	out, err := runCheck(t, nil, "abc\nabcdefghij1\n")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "1:   "))
	assert.True(t, strings.HasPrefix(lines[1], "2:   "))
}

func TestHandleCheck_Width(t *testing.T) {
	out, err := runCheck(t, []string{"--width", "10", "abcdefghij1"}, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, strings.Repeat("#=", 5)+" "), "bar %q", out)
}

func TestHandleCheck_EmojiLength(t *testing.T) {
	out, err := runCheck(t, []string{"--json", "😀😀😀😀", "😀😀😀😀😀"}, "")
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	var weak, unsupported CheckResult
	require.NoError(t, dec.Decode(&weak))
	require.NoError(t, dec.Decode(&unsupported))

	assert.Equal(t, 8, weak.Length)
	assert.Equal(t, []meter.Segment{{Color: meter.Danger, Percent: 16}}, weak.Segments)
	assert.Equal(t, 10, unsupported.Length)
	assert.Equal(t, "unsupported", unsupported.Class)
	assert.Nil(t, unsupported.Segments)
}

func TestHandleCheck_DashPassword(t *testing.T) {
	out, err := runCheck(t, []string{"--", "-abcdefghi1"}, "")
	require.NoError(t, err)
	assert.Contains(t, out, "[?] unsupported")
}

func TestHandleCheck_Errors(t *testing.T) {
	t.Run("unknown flag", func(t *testing.T) {
		_, err := runCheck(t, []string{"--colour", "abc"}, "")
		var usageErr *UsageError
		assert.True(t, errors.As(err, &usageErr))
	})

	t.Run("flag-like password suggests terminator", func(t *testing.T) {
		_, err := runCheck(t, []string{"-v"}, "abcdefghij1\n")
		var usageErr *UsageError
		require.True(t, errors.As(err, &usageErr))
		assert.Contains(t, usageErr.Example, "check -- -v")
	})

	t.Run("bad width", func(t *testing.T) {
		for _, w := range []string{"wide", "3", "999"} {
			_, err := runCheck(t, []string{"--width", w, "abc"}, "")
			assert.Equal(t, ExitUsageError, ExitCodeForError(err), "width %s", w)
		}
	})

	t.Run("tty without argument", func(t *testing.T) {
		s, _ := testStreams("")
		s.InTTY = true
		err := HandleCheck(Args{}, config.Default(), s, zap.NewNop())
		assert.Equal(t, ExitUsageError, ExitCodeForError(err))
	})
}

func TestNewCheckResult_Scenarios(t *testing.T) {
	out, err := runCheck(t, []string{"--json", "", "abc", "abcdefghij"}, "")
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	want := [][]meter.Segment{
		{{Color: meter.Danger, Percent: 0}},
		{{Color: meter.Danger, Percent: 6}},
		{{Color: meter.Danger, Percent: 20}, {Color: meter.Warning, Percent: 40}},
	}
	for i, w := range want {
		var res CheckResult
		require.NoError(t, dec.Decode(&res), "result %d", i)
		assert.Equal(t, w, res.Segments, "result %d", i)
	}
}
