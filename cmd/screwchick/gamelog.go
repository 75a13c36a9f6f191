package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// defaultGameLogPath is where play logs while the board owns the terminal.
func defaultGameLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "screwchick.log")
}

// openGameLog returns a logger for the running game that never writes to the
// terminal: it appends to path, or discards when path is empty or cannot be
// opened. The level follows parent. Call closeFn once the program exits.
func openGameLog(path string, parent *log.Logger) (logger *log.Logger, closeFn func(), err error) {
	var out io.Writer = io.Discard
	closeFn = func() {}
	if path != "" {
		if err = os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			var f *os.File
			if f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err == nil {
				out = f
				closeFn = func() { f.Close() }
			}
		}
	}
	logger = log.NewWithOptions(out, log.Options{
		Prefix:          "screwchick",
		ReportTimestamp: true,
		Level:           parent.GetLevel(),
	})
	return logger, closeFn, err
}
