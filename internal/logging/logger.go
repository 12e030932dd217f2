package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// EnvLogLevel overrides the configured level when set
const EnvLogLevel = "IMGSWIPE_LOG_LEVEL"

var (
	root      = newRoot()
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// Options configures the shared logger.
type Options struct {
	// Level is the minimum level to output ("debug", "info", "warn", "error").
	Level string
	// File is the log file path. The terminal belongs to the TUI, so when no
	// file is given all output is discarded.
	File string
}

func newRoot() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	return l
}

// Setup points the shared logger at opts.File and applies the level.
// The returned closer releases the file.
func Setup(opts Options) (io.Closer, error) {
	levelStr := opts.Level
	if env := os.Getenv(EnvLogLevel); env != "" {
		levelStr = env
	}
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	root.SetLevel(level)

	if opts.File == "" {
		root.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	root.SetOutput(file)
	return file, nil
}

// SetOutput redirects the shared logger, mostly for tests
func SetOutput(w io.Writer) {
	root.SetOutput(w)
}

// NewLogger returns the logger for a component. Entries are cached per component.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}
	entry := root.WithField("component", component)
	loggers[component] = entry
	return entry
}

// DefaultLogFile returns imgswipe.log inside the user cache directory
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "imgswipe", "imgswipe.log")
}
