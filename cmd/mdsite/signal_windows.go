//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// shutdownSignals stop a build or a watch session.
// Windows only delivers os.Interrupt.
var shutdownSignals = []os.Signal{os.Interrupt}

// notifyContext returns a context cancelled on the first shutdown signal.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
