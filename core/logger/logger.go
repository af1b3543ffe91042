package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) color() string {
	switch l {
	case DEBUG:
		return ColorGray
	case INFO:
		return ColorBlue
	case WARN:
		return ColorYellow
	case ERROR:
		return ColorRed
	case FATAL:
		return ColorPurple
	default:
		return ColorWhite
	}
}

type coloredLogger struct {
	mu      sync.RWMutex
	verbose bool
	colors  bool
	out     io.Writer
}

var global = &coloredLogger{
	colors: true,
	out:    os.Stdout,
}

func SetVerbose(verbose bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.verbose = verbose
}

func IsVerbose() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.verbose
}

// SetOutput replaces the destination for all levels. Tests use this to keep
// diagnostics silent or to capture them.
func SetOutput(w io.Writer) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.out = w
}

// SetColors toggles ANSI color codes, for log files and dumb terminals.
func SetColors(enabled bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.colors = enabled
}

func (cl *coloredLogger) format(level LogLevel, message string) string {
	timestamp := time.Now().Format("06-01-02 15:04:05")
	if !cl.colors {
		return fmt.Sprintf("[%s] %-5s %s", timestamp, level.String(), message)
	}
	return fmt.Sprintf(
		"%s[%s]%s %s%-5s%s %s",
		ColorGray, timestamp, ColorReset,
		level.color(), level.String(), ColorReset,
		message,
	)
}

func (cl *coloredLogger) log(level LogLevel, format string, args ...interface{}) {
	cl.mu.RLock()
	if level == DEBUG && !cl.verbose {
		cl.mu.RUnlock()
		return
	}
	out := cl.out
	line := cl.format(level, fmt.Sprintf(format, args...))
	cl.mu.RUnlock()

	fmt.Fprintln(out, line)

	if level == FATAL {
		os.Exit(1)
	}
}

func Debug(format string, args ...interface{}) {
	global.log(DEBUG, format, args...)
}

func Info(format string, args ...interface{}) {
	global.log(INFO, format, args...)
}

func Warn(format string, args ...interface{}) {
	global.log(WARN, format, args...)
}

func Error(format string, args ...interface{}) {
	global.log(ERROR, format, args...)
}

func Fatal(format string, args ...interface{}) {
	global.log(FATAL, format, args...)
}
