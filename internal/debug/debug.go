package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// EnvVar names the environment variable that enables file logging at startup.
const EnvVar = "TOYTABLE_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
	logger  = newLogger()
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	if path := os.Getenv(EnvVar); path != "" {
		if err := initLocked(l, path); err != nil {
			l.WithError(err).Warn("debug log disabled")
		}
	}
	return l
}

// Init routes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(logger, path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(l *logrus.Logger, path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	l.SetOutput(f)
	l.SetLevel(logrus.DebugLevel)
	return nil
}

// Close closes the debug log file and sends output back to stderr.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Logger returns the shared logger. Packages that accept a
// logrus.FieldLogger default to this one.
func Logger() *logrus.Logger {
	return logger
}

// SetOutput replaces the destination of the shared logger.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

// Log writes a debug message. It is a no-op unless Init was called or
// TOYTABLE_DEBUG is set.
func Log(format string, args ...any) {
	if !logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	logger.Debugf(format, args...)
}

// Warn writes a warning tagged with the component that raised it.
func Warn(component, format string, args ...any) {
	logger.WithField("component", component).Warnf(format, args...)
}
