package logx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = zerolog.InfoLevel

// ParseLevel converts a level name into a zerolog level. An empty name
// yields DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" {
		return DefaultLevel, nil
	}

	level, err := zerolog.ParseLevel(trimmed)
	if err != nil {
		return DefaultLevel, fmt.Errorf("parse log level %q: %w", name, err)
	}

	return level, nil
}

// New builds a logger writing JSON lines to w.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil {
		return zerolog.Nop()
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ConsoleWriter formats log events as short plain-text lines suited to the
// console tab.
func ConsoleWriter(w io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}
}

// Open creates the parent directory of path and opens it for appending.
func Open(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create log directory %q: %w", dir, err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", path, err)
	}

	return file, nil
}

// Tee returns a logger writing JSON lines to file and human-readable lines
// to mirror. Either writer may be nil.
func Tee(file io.Writer, mirror io.Writer, level zerolog.Level) zerolog.Logger {
	var writers []io.Writer
	if file != nil {
		writers = append(writers, file)
	}
	if mirror != nil {
		writers = append(writers, ConsoleWriter(mirror))
	}

	if len(writers) == 0 {
		return zerolog.Nop()
	}

	return New(zerolog.MultiLevelWriter(writers...), level)
}
