// Package log wraps slog with a process-wide logger that splits
// records between stdout and stderr and supports per-component fields.
package log

import (
	"context"
	"log/slog"
	"sync"
)

var (
	globalConfig *Config
	multiLogger  *slog.Logger
	once         sync.Once
)

// Start initializes the logging package with the given configuration.
// If no configuration is provided, it uses the default configuration.
func Start(cfgs ...*Config) error {
	var done = false

	once.Do(func() {
		if len(cfgs) > 0 && cfgs[0] != nil {
			globalConfig = cfgs[0]
		} else {
			globalConfig = defaultConfig()
		}
		multiLogger = globalConfig.makeMultiLogger()
		done = true
	})

	if !done {
		return ErrLoggerAlreadyInitialized
	}

	return nil
}

// Stop tears the logger down so a later Start can reconfigure it.
func Stop() {
	multiLogger = nil
	globalConfig = nil
	once = sync.Once{}
}

func Debug(msg string, args ...any) {
	logWithLevel(slog.LevelDebug, msg, args...)
}

func Info(msg string, args ...any) {
	logWithLevel(slog.LevelInfo, msg, args...)
}

func Warn(msg string, args ...any) {
	logWithLevel(slog.LevelWarn, msg, args...)
}

func Error(msg string, args ...any) {
	logWithLevel(slog.LevelError, msg, args...)
}

func logWithLevel(level slog.Level, msg string, args ...any) {
	if multiLogger == nil {
		slog.Log(context.Background(), level, msg, args...)
		return
	}
	multiLogger.Log(context.Background(), level, msg, args...)
}
