package main

// Notes:
// - exitCodeFor: we test sentinel errors from every internal package,
//   plus wrapped errors to verify the errors.Is() chain.
// - Exit code constants: we verify Unix conventions (0=success, 1=general, 2=usage)
//   and that custom codes stay below 126.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/markdown"
	"github.com/alnah/go-mdsite/internal/pdf"
	"github.com/alnah/go-mdsite/internal/pipeline"
	"github.com/alnah/go-mdsite/internal/sitegen"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Browser errors
		{"browser connect", pdf.ErrBrowserConnect, ExitBrowser},
		{"page load", pdf.ErrPageLoad, ExitBrowser},
		{"pdf generation", pdf.ErrPDFGeneration, ExitBrowser},
		{"export wraps browser", fmt.Errorf("%w: %w", sitegen.ErrExportPage, pdf.ErrBrowserConnect), ExitBrowser},

		// Content errors
		{"no title", markdown.ErrNoTitle, ExitContent},
		{"unterminated delimiter", markdown.ErrUnterminatedDelimiter, ExitContent},
		{"missing url", markdown.ErrMissingURL, ExitContent},
		{
			"page failure keeps cause",
			fmt.Errorf("%w: about.md: %w", sitegen.ErrPagesFailed, markdown.ErrNoTitle),
			ExitContent,
		},

		// Usage errors
		{"usage", ErrUsage, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"config not found", &config.NotFoundError{Tried: []string{"mdsite.yaml"}}, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config exists", config.ErrConfigExists, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"unknown engine", pipeline.ErrUnknownEngine, ExitUsage},
		{"style not found", assets.ErrStyleNotFound, ExitUsage},
		{"invalid template", assets.ErrInvalidTemplate, ExitUsage},
		{"unsafe output", sitegen.ErrUnsafeOutputDir, ExitUsage},
		{"unsafe destination", fileutil.ErrUnsafeDestination, ExitUsage},

		// I/O errors
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"content dir", sitegen.ErrContentDir, ExitIO},
		{"write page", sitegen.ErrWritePage, ExitIO},
		{"static copy", sitegen.ErrStaticCopy, ExitIO},
		{"watch", sitegen.ErrWatch, ExitIO},
		{"write pdf", pdf.ErrWritePDF, ExitIO},
		{"asset read", fmt.Errorf("%w: %w", assets.ErrAssetRead, os.ErrNotExist), ExitIO},

		// General errors
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"deadline", context.DeadlineExceeded, ExitGeneral},
		{"pages failed without cause", sitegen.ErrPagesFailed, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}

	seen := map[int]bool{}
	for _, code := range []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitContent, ExitBrowser} {
		if code >= 126 {
			t.Errorf("exit code %d collides with shell-reserved codes", code)
		}
		if seen[code] {
			t.Errorf("exit code %d is used twice", code)
		}
		seen[code] = true
	}
}
