// Package logger provides verbose logging for gsuites.
// When verbose mode is enabled via the --verbose flag, page fetches,
// folder resolution and upload decisions are traced to stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug traces low-level activity such as individual API pages.
func Debug(format string, args ...any) {
	logf("[DEBUG] ", format, args...)
}

// Info reports a decision the user may care about.
func Info(format string, args ...any) {
	logf("[INFO] ", format, args...)
}

// Warn reports a recoverable problem.
func Warn(format string, args ...any) {
	logf("[WARN] ", format, args...)
}

// Section prints a section header, used to separate command phases.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

func logf(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}
