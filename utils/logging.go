package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DefaultTerminalLogFile is used by the terminal frontend when no log file is
// set, because it owns stdout and stderr would tear the screen.
const DefaultTerminalLogFile = "solopong.log"

// ParseLogLevel accepts debug, info, warn or error in any case.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
	}
	return level, nil
}

// NewLogger builds the process logger from cfg. The returned closer releases
// the log file, if one was opened.
func NewLogger(cfg Config, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	path := cfg.LogFile
	if path == "" && cfg.Frontend == FrontendTerminal {
		path = DefaultTerminalLogFile
	}

	var out io.Writer = stderr
	var closer io.Closer = nopCloser{}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
