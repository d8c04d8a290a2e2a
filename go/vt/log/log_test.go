/*
Copyright 2026 The Crossdata Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: " INFO ", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLoggerRejectsUnknownFormat(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, "xml", "info")
	require.EqualError(t, err, `invalid log-fmt "xml": expected json or logfmt`)
}

func TestInitWithoutFormatFlagKeepsGlog(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))
	require.NoError(t, Init(fs))
	assert.Nil(t, structured.Load())
}

func TestInitWithFormatFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-fmt", "logfmt", "--log-level", "warn"}))
	restore := SetLogger(nil)
	defer restore()

	require.NoError(t, Init(fs))
	logger := structured.Load()
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelWarn))
}

func TestStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "json", "debug")
	require.NoError(t, err)
	restore := SetLogger(logger)
	defer restore()

	InfoS("plan built", "kind", "CreateIndex", "steps", 2)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "plan built", record["msg"])
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "CreateIndex", record["kind"])
	assert.EqualValues(t, 2, record["steps"])
	assert.Contains(t, record, "source")
}
