// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging holds the process-wide zap logger. Until SetLogger is
// called every package logs to a no-op logger, so library use of tt-upgrade
// stays silent.
package logging

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tinytapeout/tt-upgrade/pkg/types"
)

const defaultLevel = "warn"

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Logger returns the current logger.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLogger replaces the current logger. A nil l restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

// New builds a logger writing to stderr from cfg.
func New(cfg types.LogConfig) (*zap.Logger, error) {
	name := strings.TrimSpace(cfg.Level)
	if name == "" {
		name = defaultLevel
	}
	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return l, nil
}
