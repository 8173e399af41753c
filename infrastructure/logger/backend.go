package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

// defaultFlags specifies changes to the default logger behavior. It is
// set during package init and configured using the LOGFLAGS environment
// variable. New logger backends can override these default flags using
// NewBackendWithFlags.
var defaultFlags = flagsFromEnv()

// Flags to modify a Backend's behavior.
const (
	// LogFlagLongFile modifies the logger output to include the full
	// path and line number of the logging callsite, e.g.
	// /a/b/c/main.go:123.
	LogFlagLongFile uint32 = 1 << iota

	// LogFlagShortFile modifies the logger output to include the
	// filename and line number of the logging callsite, e.g.
	// main.go:123. Takes precedence over LogFlagLongFile.
	LogFlagShortFile
)

// flagsFromEnv reads logger flags from the LOGFLAGS environment variable.
// Multiple flags can be set at once, separated by commas.
func flagsFromEnv() (flags uint32) {
	for _, f := range strings.Split(os.Getenv("LOGFLAGS"), ",") {
		switch f {
		case "longfile":
			flags |= LogFlagLongFile
		case "shortfile":
			flags |= LogFlagShortFile
		}
	}
	return flags
}

const (
	defaultThresholdKB = 10 * 1000 // 10 MB logs by default.
	defaultMaxRolls    = 8         // keep the 8 last logs by default.
)

type logWriter struct {
	io.WriteCloser
	logLevel Level
}

// Backend is a logging backend. Subsystem loggers created from the
// backend all write through the backend's writers, serialized by a
// mutex so concurrent subsystems don't interleave partial lines.
type Backend struct {
	flag    uint32
	mtx     sync.Mutex
	writers []logWriter
}

// NewBackendWithFlags configures a Backend to use the specified flags
// rather than the package defaults as determined through the LOGFLAGS
// environment variable.
func NewBackendWithFlags(flags uint32) *Backend {
	return &Backend{flag: flags}
}

// NewBackend creates a new logger backend.
func NewBackend() *Backend {
	return NewBackendWithFlags(defaultFlags)
}

// AddLogWriter adds an io.WriteCloser which the backend will write into
// for every message at or above the given log level.
func (b *Backend) AddLogWriter(writer io.WriteCloser, logLevel Level) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	b.writers = append(b.writers, logWriter{WriteCloser: writer, logLevel: logLevel})
}

// AddLogFile adds a file which the backend will write into on a certain
// log level with the default log rotation settings. It'll create the
// file if it doesn't exist.
func (b *Backend) AddLogFile(logFile string, logLevel Level) error {
	return b.AddLogFileWithCustomRotator(logFile, logLevel, defaultThresholdKB, defaultMaxRolls)
}

// AddLogFileWithCustomRotator adds a file which the backend will write
// into on a certain log level, with the specified log rotation settings.
// It'll create the file if it doesn't exist.
func (b *Backend) AddLogFileWithCustomRotator(logFile string, logLevel Level,
	thresholdKB int64, maxRolls int) error {

	logDir, _ := filepath.Split(logFile)
	// If logDir is empty then logFile is in the cwd and there's no need
	// to create any directory.
	if logDir != "" {
		err := os.MkdirAll(logDir, 0700)
		if err != nil {
			return errors.Wrapf(err, "failed to create log directory %s", logDir)
		}
	}
	r, err := rotator.New(logFile, thresholdKB, false, maxRolls)
	if err != nil {
		return errors.Wrapf(err, "failed to create file rotator for %s", logFile)
	}
	b.AddLogWriter(r, logLevel)
	return nil
}

// write sends an already-formatted log line to every writer configured
// at or below the message's level.
func (b *Backend) write(logLevel Level, logLine []byte) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	for _, writer := range b.writers {
		if logLevel >= writer.logLevel {
			_, _ = writer.Write(logLine)
		}
	}
}

// Close finalizes all writers of this backend.
func (b *Backend) Close() {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	for _, writer := range b.writers {
		_ = writer.Close()
	}
	b.writers = nil
}

// Logger returns a new logger for a particular subsystem that writes to
// the Backend b. A tag describes the subsystem and is included in all
// log messages. The logger uses the info verbosity level by default.
func (b *Backend) Logger(subsystemTag string) *Logger {
	return &Logger{lvl: LevelInfo, tag: subsystemTag, b: b}
}
