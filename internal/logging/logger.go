// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the zap logger used across bmi.
//
// The TUI owns the terminal, so logs go to a file (~/.bmi/bmi.log by
// default) and never to stdout. When logging is disabled a no-op logger is
// returned so callers never need a nil check.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jeranaias/bmi-tui/internal/config"
)

const defaultLevel = "info"

// Options controls New.
type Options struct {
	// Enabled turns the file logger on. False yields a no-op logger.
	Enabled bool
	// Level is one of debug, info, warn, error. Invalid values fall back to info.
	Level string
	// Path is the log file. Parent directories are created.
	Path string
	// Verbose forces debug level.
	Verbose bool
}

// OptionsFromConfig derives Options from the logging section of cfg.
func OptionsFromConfig(cfg *config.Config, verbose bool) (Options, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	path, err := cfg.LogPath()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Enabled: cfg.Logging.Enabled,
		Level:   cfg.Logging.Level,
		Path:    path,
		Verbose: verbose,
	}, nil
}

// New builds a JSON file logger from opts.
func New(opts Options) (*zap.Logger, error) {
	if !opts.Enabled {
		return Nop(), nil
	}
	if strings.TrimSpace(opts.Path) == "" {
		return nil, fmt.Errorf("log path required")
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(opts.Level)))); err != nil || opts.Level == "" {
		_ = level.UnmarshalText([]byte(defaultLevel))
	}
	if opts.Verbose {
		level.SetLevel(zapcore.DebugLevel)
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey:     "message",
		TimeKey:        "timestamp",
		LevelKey:       "severity",
		NameKey:        "logger",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(strings.ToUpper(level.String()))
		},
	}

	cfg := zap.Config{
		Level:             level,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{opts.Path},
		ErrorOutputPaths:  []string{opts.Path},
		DisableCaller:     false,
		DisableStacktrace: true,
	}

	return cfg.Build()
}

// FromConfig is OptionsFromConfig followed by New.
func FromConfig(cfg *config.Config, verbose bool) (*zap.Logger, error) {
	opts, err := OptionsFromConfig(cfg, verbose)
	if err != nil {
		return nil, err
	}
	return New(opts)
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// OrNop returns logger, or a no-op logger when it is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
