package main

import (
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-mdsite/internal/assets"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, asset loading and process tuning.
type Environment struct {
	Stdout      io.Writer
	Stderr      io.Writer
	AssetLoader assets.AssetLoader // Used when no asset path is configured

	// SetMaxProcs adjusts GOMAXPROCS to the container quota, reporting
	// through logf. Nil in tests.
	SetMaxProcs func(logf func(format string, args ...any))
}

// DefaultEnv returns production environment with embedded assets.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
		SetMaxProcs: func(logf func(string, ...any)) {
			// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
			// in which case Go runtime defaults apply.
			_, _ = maxprocs.Set(maxprocs.Logger(logf))
		},
	}
}
