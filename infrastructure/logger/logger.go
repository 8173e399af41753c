package logger

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"
)

// Logger is a subsystem logger backed by a Backend. The zero value is
// not usable; acquire loggers through Backend.Logger.
type Logger struct {
	lvl Level // atomic
	tag string
	b   *Backend
}

// Trace formats a message using the default formats for its operands and
// writes it at LevelTrace.
func (l *Logger) Trace(args ...interface{}) { l.print(LevelTrace, args...) }

// Tracef formats a message according to a format specifier and writes it
// at LevelTrace.
func (l *Logger) Tracef(format string, args ...interface{}) { l.printf(LevelTrace, format, args...) }

// Debug writes a message at LevelDebug.
func (l *Logger) Debug(args ...interface{}) { l.print(LevelDebug, args...) }

// Debugf writes a formatted message at LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) { l.printf(LevelDebug, format, args...) }

// Info writes a message at LevelInfo.
func (l *Logger) Info(args ...interface{}) { l.print(LevelInfo, args...) }

// Infof writes a formatted message at LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) { l.printf(LevelInfo, format, args...) }

// Warn writes a message at LevelWarn.
func (l *Logger) Warn(args ...interface{}) { l.print(LevelWarn, args...) }

// Warnf writes a formatted message at LevelWarn.
func (l *Logger) Warnf(format string, args ...interface{}) { l.printf(LevelWarn, format, args...) }

// Error writes a message at LevelError.
func (l *Logger) Error(args ...interface{}) { l.print(LevelError, args...) }

// Errorf writes a formatted message at LevelError.
func (l *Logger) Errorf(format string, args ...interface{}) { l.printf(LevelError, format, args...) }

// Critical writes a message at LevelCritical.
func (l *Logger) Critical(args ...interface{}) { l.print(LevelCritical, args...) }

// Criticalf writes a formatted message at LevelCritical.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.printf(LevelCritical, format, args...)
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32((*uint32)(&l.lvl)))
}

// SetLevel changes the logging level to the passed level.
func (l *Logger) SetLevel(logLevel Level) {
	atomic.StoreUint32((*uint32)(&l.lvl), uint32(logLevel))
}

// Backend returns the backend this logger writes to.
func (l *Logger) Backend() *Backend {
	return l.b
}

func (l *Logger) print(logLevel Level, args ...interface{}) {
	if logLevel < l.Level() {
		return
	}
	l.b.write(logLevel, l.formatLine(logLevel, fmt.Sprint(args...)))
}

func (l *Logger) printf(logLevel Level, format string, args ...interface{}) {
	if logLevel < l.Level() {
		return
	}
	l.b.write(logLevel, l.formatLine(logLevel, fmt.Sprintf(format, args...)))
}

// formatLine renders one log line:
//	2006-01-02 15:04:05.000 [INF] TAG file.go:123: message
// The callsite is only included when the backend was configured with one
// of the file flags.
func (l *Logger) formatLine(logLevel Level, message string) []byte {
	var buf bytes.Buffer
	buf.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	buf.WriteString(" [")
	buf.WriteString(logLevel.String())
	buf.WriteString("] ")
	buf.WriteString(l.tag)
	if l.b.flag&(LogFlagShortFile|LogFlagLongFile) != 0 {
		file, line := callsite(l.b.flag)
		fmt.Fprintf(&buf, " %s:%d", file, line)
	}
	buf.WriteString(": ")
	buf.WriteString(message)
	if len(message) == 0 || message[len(message)-1] != '\n' {
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// calldepth is the call depth of the callsite function relative to the
// caller of the subsystem logger.
const calldepth = 4

// callsite returns the file name and line number of the logging callsite
// specified by the backend flags.
func callsite(flag uint32) (string, int) {
	_, file, line, ok := runtime.Caller(calldepth)
	if !ok {
		return "???", 0
	}
	if flag&LogFlagShortFile != 0 {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if os.IsPathSeparator(file[i]) {
				short = file[i+1:]
				break
			}
		}
		file = short
	}
	return file, line
}
