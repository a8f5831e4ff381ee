package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level aliases slog.Level so callers configure logging without importing
// both packages.
type Level = slog.Level

// Log levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Format selects the handler encoding.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config controls how a logger is built. The zero value logs text at info
// level to stderr.
type Config struct {
	// Level is the minimum level to emit.
	Level Level

	// Format selects text or JSON encoding.
	Format Format

	// Output receives log lines. Nil means stderr: the MCP stdio transport
	// owns stdout, so nothing in postkit may ever log there.
	Output io.Writer

	// AddSource annotates entries with file and line.
	AddSource bool
}

// New builds a slog.Logger from cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

// NewWithLevel builds a stderr text logger at the given level.
func NewWithLevel(level Level) *slog.Logger {
	return New(Config{Level: level})
}

// Nop returns a logger that discards everything. Components that require a
// logger use this as their default.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps a level name to a Level. Unknown names, including the
// empty string, fall back to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// ParseFormat maps a format name to a Format, defaulting to text.
func ParseFormat(s string) Format {
	if strings.ToLower(s) == "json" {
		return FormatJSON
	}
	return FormatText
}
