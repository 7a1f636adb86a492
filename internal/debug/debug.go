// Package debug writes opt-in diagnostic lines to stderr. Stdout carries only
// rendered output, so nothing here may write to it.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	enabled bool
	output  io.Writer = os.Stderr
	now               = time.Now
)

// SetDebug enables or disables debug mode.
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug mode is enabled.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetOutput redirects debug lines. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	output = w
}

// Debug prints a debug message with timestamp.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return
	}
	timestamp := now().Format("15:04:05.000")
	fmt.Fprintf(output, "[DEBUG] %s %s\n", timestamp, fmt.Sprintf(format, args...))
}

// DebugValue prints key=value style debug info.
func DebugValue(key string, value any) {
	Debug("%s = %v", key, value)
}
