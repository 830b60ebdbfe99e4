// Package app wires together application lifecycle concerns: run contexts,
// signal handling and orderly shutdown.
package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// SetupContext derives a run context from parent, bounded by timeout.
// A timeout of 0 means no deadline. The returned cancel function must be
// called to release resources.
func SetupContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}

// SetupLifecycle derives a context that is cancelled on SIGINT or SIGTERM,
// so a long benchmark run or the HTTP server can shut down cleanly on
// Ctrl-C.
func SetupLifecycle(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
