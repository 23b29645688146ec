// Package logging builds the application's zap logger. The terminal belongs
// to the TUI, so output goes to a file or nowhere.
package logging

import (
	"fmt"

	"github.com/blackwell-systems/bookshelf/internal/util"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the log sink and level.
type Options struct {
	File  string // empty disables logging
	Level string // debug, info, warn, error
	Debug bool   // forces debug level
}

// New returns a JSON logger writing to opts.File, or a no-op logger when no
// file is configured.
func New(opts Options) (*zap.Logger, error) {
	if opts.File == "" {
		return zap.NewNop(), nil
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	if err := util.EnsureParent(opts.File); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{opts.File}
	config.ErrorOutputPaths = []string{opts.File}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// ParseLevel maps a level name to a zap level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
