// Package logging provides the leveled logger used across dex.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents the logging level.
type Level int

const (
	LevelSilent Level = iota
	LevelError
	LevelInfo
	LevelVerbose
	LevelDebug
)

// ParseLevel converts a level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent", "off":
		return LevelSilent, nil
	case "error", "":
		return LevelError, nil
	case "info":
		return LevelInfo, nil
	case "verbose":
		return LevelVerbose, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelError, fmt.Errorf("unknown log level %q", s)
	}
}

func (l Level) String() string {
	switch l {
	case LevelSilent:
		return "silent"
	case LevelError:
		return "error"
	case LevelInfo:
		return "info"
	case LevelVerbose:
		return "verbose"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Logger writes leveled messages. Errors go to stderr; everything else goes
// to stdout only at verbose level or above. With a log file, every enabled
// message is also written there, timestamped.
type Logger struct {
	mu      sync.Mutex
	level   Level
	file    *os.File
	fileLog *log.Logger
	stdout  *log.Logger
	stderr  *log.Logger
	console bool
}

// New creates a logger on the process's stdout and stderr, optionally also
// writing to logFile.
func New(level Level, logFile string) (*Logger, error) {
	l := NewWithWriters(level, os.Stdout, os.Stderr)

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		l.file = file
		l.fileLog = log.New(file, "", log.LstdFlags)
	}

	return l, nil
}

// NewWithWriters creates a logger on the given writers.
func NewWithWriters(level Level, stdout, stderr io.Writer) *Logger {
	return &Logger{
		level:   level,
		stdout:  log.New(stdout, "", 0),
		stderr:  log.New(stderr, "", 0),
		console: true,
	}
}

// DisableConsole stops console output; the log file, if any, still receives
// messages. Used while a full-screen UI owns the terminal.
func (l *Logger) DisableConsole() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.console = false
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.fileLog = nil
		return err
	}
	return nil
}

// Error logs an error message.
func (l *Logger) Error(format string, v ...any) {
	if l.enabled(LevelError) {
		l.write("ERROR: "+fmt.Sprintf(format, v...), true)
	}
}

// Info logs an info message.
func (l *Logger) Info(format string, v ...any) {
	if l.enabled(LevelInfo) {
		l.write("INFO: "+fmt.Sprintf(format, v...), false)
	}
}

// Verbose logs a verbose message.
func (l *Logger) Verbose(format string, v ...any) {
	if l.enabled(LevelVerbose) {
		l.write("VERBOSE: "+fmt.Sprintf(format, v...), false)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, v ...any) {
	if l.enabled(LevelDebug) {
		l.write("DEBUG: "+fmt.Sprintf(format, v...), false)
	}
}

// SetLevel sets the logging level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *Logger) enabled(level Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level >= level
}

func (l *Logger) write(msg string, isError bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fileLog != nil {
		l.fileLog.Println(msg)
	}
	if !l.console {
		return
	}

	if isError {
		l.stderr.Println(msg)
	} else if l.level >= LevelVerbose {
		l.stdout.Println(msg)
	}
}
