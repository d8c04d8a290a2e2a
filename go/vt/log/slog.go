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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

var (
	logFormat string
	logLevel  string

	// structured holds the slog logger once structured logging is enabled.
	// A nil value routes every call through glog.
	structured atomic.Pointer[slog.Logger]
)

// Init configures logging based on the parsed flags. Structured logging is
// only turned on when --log-fmt was set on the command line.
func Init(fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	formatFlag := fs.Lookup("log-fmt")
	if formatFlag == nil || !formatFlag.Changed {
		return nil
	}
	logger, err := newLogger(os.Stderr, logFormat, logLevel)
	if err != nil {
		return err
	}
	structured.Store(logger)
	return nil
}

func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{AddSource: true, Level: lvl}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "logfmt":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("invalid log-fmt %q: expected json or logfmt", format)
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn, or error", level)
}

// SetLogger replaces the structured logger. The returned function restores
// the previous one. Used for testing.
func SetLogger(logger *slog.Logger) func() {
	previous := structured.Swap(logger)
	return func() {
		structured.Store(previous)
	}
}

func logS(level slog.Level, msg string, args ...any) {
	logger := structured.Load()
	if logger == nil {
		// Skip logS and the exported wrapper.
		const depth = 2
		args = append([]any{msg, " "}, args...)
		switch level {
		case slog.LevelWarn:
			glog.WarningDepth(depth, args...)
		case slog.LevelError:
			glog.ErrorDepth(depth, args...)
		case slog.LevelDebug:
			if glog.V(1) {
				glog.InfoDepth(depth, args...)
			}
		default:
			glog.InfoDepth(depth, args...)
		}
		return
	}

	ctx := context.Background()
	if !logger.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	// runtime.Callers, logS and the exported wrapper.
	runtime.Callers(3, pcs[:])
	record := slog.NewRecord(time.Now(), level, msg, pcs[0])
	record.Add(args...)
	_ = logger.Handler().Handle(ctx, record)
}

// InfoS logs at the Info level.
func InfoS(msg string, args ...any) { logS(slog.LevelInfo, msg, args...) }

// WarnS logs at the Warn level.
func WarnS(msg string, args ...any) { logS(slog.LevelWarn, msg, args...) }

// ErrorS logs at the Error level.
func ErrorS(msg string, args ...any) { logS(slog.LevelError, msg, args...) }

// DebugS logs at the Debug level.
func DebugS(msg string, args ...any) { logS(slog.LevelDebug, msg, args...) }
