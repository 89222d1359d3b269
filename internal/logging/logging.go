// ABOUTME: Process logger setup on charmbracelet/log.
// ABOUTME: Writes to stderr and, optionally, an append-only log file.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = log.NewWithOptions(os.Stderr, log.Options{Prefix: "galaxydash"})
)

// Init points the process logger at stderr plus logPath when set.
// Calling Init again closes the previous log file first.
func Init(logPath string, debug bool) (*log.Logger, error) {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	writers := []io.Writer{os.Stderr}
	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	logger = New(io.MultiWriter(writers...), level)
	log.SetDefault(logger)
	return logger, nil
}

// New builds a timestamped logger on w at level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "galaxydash",
		Level:           level,
		ReportTimestamp: true,
	})
}

// Close releases the log file and resets output to stderr.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	logger.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// DetachStderr stops the process logger writing to stderr. Lines still reach
// the log file when one is open; otherwise they are dropped. Used while a
// full-screen program owns the terminal.
func DetachStderr() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logger.SetOutput(logFile)
		return
	}
	logger.SetOutput(io.Discard)
}
