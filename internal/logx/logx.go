// Package logx holds the process-wide diagnostic logger.
package logx

import (
	"io"
	"log"
	"os"
)

// Prefix is prepended to every log line.
const Prefix = "[unichar] "

// Logger is the shared logger. It writes to stderr until redirected.
var Logger = log.New(os.Stderr, Prefix, log.LstdFlags)

// SetLogger replaces the shared logger.
func SetLogger(l *log.Logger) {
	Logger = l
}

// Discard silences logging, e.g. while the TUI owns the terminal.
func Discard() {
	Logger.SetOutput(io.Discard)
}

// Printf logs through the shared logger.
func Printf(format string, args ...any) {
	Logger.Printf(format, args...)
}
