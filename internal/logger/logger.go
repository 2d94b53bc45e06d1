// Package logger builds the structured loggers used across the program,
// writing to the console or to a size-rotated log file.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger settings.
type Config struct {
	Level      string // debug, info, warn, error
	Prefix     string
	File       string // Rotating log file; empty logs to Console
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Console    io.Writer // Defaults to stderr
}

// New returns a logger for cfg and a closer for its output. The closer is a
// no-op for console output.
func New(cfg Config) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		lvl, err := log.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return nil, nil, fmt.Errorf("logger: %w", err)
		}
		level = lvl
	}

	var (
		w      io.Writer = cfg.Console
		closer io.Closer = nopCloser{}
	)
	if w == nil {
		w = os.Stderr
	}
	if cfg.File != "" {
		path, err := expandHome(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logger: create log directory: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		}
		w, closer = lj, lj
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          cfg.Prefix,
		Level:           level,
	})
	if cfg.File != "" {
		// Plain text for files; ANSI styling is for terminals.
		l.SetFormatter(log.LogfmtFormatter)
	}
	return l, closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logger: get home dir: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
