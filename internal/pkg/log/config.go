package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
	slogmulti "github.com/samber/slog-multi"
)

// Config controls where and how log records are written. Records at
// or above error level go to stderr, everything else to stdout.
type Config struct {
	Level   string
	JSON    bool
	NoColor bool
}

func defaultConfig() *Config {
	return &Config{Level: "info"}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newColorOptions(level slog.Level) *slogcolor.Options {
	return &slogcolor.Options{
		Level:       level,
		TimeFormat:  time.RFC3339,
		SrcFileMode: slogcolor.Nop,
		MsgPrefix:   color.HiWhiteString("| "),
		MsgColor:    color.New().Add(color.FgYellow),
		LevelTags:   slogcolor.DefaultLevelTags,
	}
}

func (c *Config) newHandler(out io.Writer, level slog.Level) slog.Handler {
	switch {
	case c.JSON:
		return slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	case c.NoColor:
		return slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	default:
		return slogcolor.NewHandler(out, newColorOptions(level))
	}
}

func (c *Config) makeMultiLogger() *slog.Logger {
	level := parseLevel(c.Level)

	stderrHandler := c.newHandler(os.Stderr, slog.LevelError)
	stdoutHandler := c.newHandler(os.Stdout, level)

	router := slogmulti.Router().
		Add(stderrHandler, func(_ context.Context, r slog.Record) bool {
			return r.Level >= slog.LevelError
		}).
		Add(stdoutHandler, func(_ context.Context, r slog.Record) bool {
			return r.Level >= level && r.Level < slog.LevelError
		})

	return slog.New(router.Handler())
}
