// Package logging builds the zap logger used across triage from the
// logging section of the config file.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"triage/internal/config"
)

// New builds a zap logger from the logging config. verbose forces the
// debug level regardless of the configured one. Output goes to stderr
// unless a file is configured.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	var zcfg zap.Config
	if cfg.Format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	zcfg.OutputPaths = []string{"stderr"}
	if cfg.File != "" {
		zcfg.OutputPaths = []string{cfg.File}
	}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
