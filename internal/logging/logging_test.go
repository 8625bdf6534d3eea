// SPDX-License-Identifier: MIT
package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		level      string
		logAt      slog.Level
		wantOutput bool
		wantJSON   bool
	}{
		{name: "text format info level", format: "text", level: "info", logAt: slog.LevelInfo, wantOutput: true},
		{name: "json format info level", format: "json", level: "info", logAt: slog.LevelInfo, wantOutput: true, wantJSON: true},
		{name: "debug level logs debug", format: "text", level: "debug", logAt: slog.LevelDebug, wantOutput: true},
		{name: "info level filters debug", format: "text", level: "info", logAt: slog.LevelDebug},
		{name: "warn level filters info", format: "text", level: "warn", logAt: slog.LevelInfo},
		{name: "error level filters warn", format: "json", level: "error", logAt: slog.LevelWarn},
		{name: "unknown format defaults to text", format: "banana", level: "info", logAt: slog.LevelInfo, wantOutput: true},
		{name: "unknown level defaults to info", format: "text", level: "banana", logAt: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(tt.format, tt.level, &buf)
			logger.Log(t.Context(), tt.logAt, "hello", slog.Int("n", 3))

			output := strings.TrimSpace(buf.String())
			require.Equal(t, tt.wantOutput, output != "", "output=%q", output)
			if tt.wantJSON {
				var m map[string]any
				require.NoError(t, json.Unmarshal([]byte(output), &m))
				require.Equal(t, "hello", m["msg"])
				require.EqualValues(t, 3, m["n"])
			}
		})
	}
}

func TestNew_NilWriter(t *testing.T) {
	require.NotNil(t, New("text", "info", nil))
	require.NotNil(t, Discard())
}

func TestParse(t *testing.T) {
	lvl, err := ParseLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, lvl)

	_, err = ParseLevel("verbose")
	require.ErrorIs(t, err, ErrUnknownLevel)

	f, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, "text", f)

	_, err = ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}
