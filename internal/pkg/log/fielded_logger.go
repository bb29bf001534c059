package log

import (
	"context"
	"log/slog"
	"maps"
	"runtime"
	"slices"
	"time"
)

// Fields are predefined key/value pairs attached to every record a
// FieldedLogger emits.
type Fields map[string]any

// FieldedLogger allows adding predefined fields to log entries.
type FieldedLogger struct {
	ctx    context.Context
	fields []any
}

// NewFieldedLogger creates a new FieldedLogger with the given fields.
func NewFieldedLogger(args *Fields) *FieldedLogger {
	sortedArgs := make([]any, 0, len(*args)*2)
	for _, k := range slices.Sorted(maps.Keys(*args)) {
		sortedArgs = append(sortedArgs, k, (*args)[k])
	}
	return &FieldedLogger{
		ctx:    context.Background(),
		fields: sortedArgs,
	}
}

func (fl *FieldedLogger) Debug(msg string, args ...any) {
	fl.logWithLevel(slog.LevelDebug, msg, args...)
}

func (fl *FieldedLogger) Info(msg string, args ...any) {
	fl.logWithLevel(slog.LevelInfo, msg, args...)
}

func (fl *FieldedLogger) Warn(msg string, args ...any) {
	fl.logWithLevel(slog.LevelWarn, msg, args...)
}

func (fl *FieldedLogger) Error(msg string, args ...any) {
	fl.logWithLevel(slog.LevelError, msg, args...)
}

func (fl *FieldedLogger) logWithLevel(level slog.Level, msg string, args ...any) {
	if multiLogger == nil {
		return
	}
	if !multiLogger.Enabled(fl.ctx, level) {
		return
	}

	combinedArgs := make([]any, 0, len(fl.fields)+len(args))
	combinedArgs = append(combinedArgs, fl.fields...)
	combinedArgs = append(combinedArgs, args...)

	// Feed the caller's frame PC to the record, since this wrapper
	// sits between the call site and the slog.Logger.
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	record := slog.NewRecord(time.Now(), level, msg, pcs[0])
	record.Add(combinedArgs...)
	multiLogger.Handler().Handle(fl.ctx, record)
}
