package pdf

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewPrinter_Timeout(t *testing.T) {
	t.Parallel()

	if got := NewPrinter(0).timeout; got != DefaultTimeout {
		t.Errorf("NewPrinter(0).timeout = %v, want %v", got, DefaultTimeout)
	}
	if got := NewPrinter(5 * time.Second).timeout; got != 5*time.Second {
		t.Errorf("NewPrinter(5s).timeout = %v, want 5s", got)
	}
}

func TestPrinter_CloseWithoutBrowser(t *testing.T) {
	t.Parallel()

	p := NewPrinter(0)
	if err := p.Close(); err != nil {
		t.Errorf("Close() unexpected error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close() unexpected error: %v", err)
	}
}

func TestPrinter_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPrinter(0)
	err := p.Export(ctx, "page.html", filepath.Join(t.TempDir(), "page.pdf"))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Export() error = %v, want context.Canceled", err)
	}
	if p.browser != nil {
		t.Error("browser must not be started for a cancelled context")
	}
}

func TestFileURL(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	got, err := fileURL(filepath.Join(dir, "a b", "index.html"))
	if err != nil {
		t.Fatalf("fileURL() unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "file:///") {
		t.Errorf("fileURL() = %q, want file:/// prefix", got)
	}
	if !strings.HasSuffix(got, "/a b/index.html") {
		t.Errorf("fileURL() = %q, want slash-separated path", got)
	}
}

func TestPrintOptions(t *testing.T) {
	t.Parallel()

	opts := printOptions()
	if !opts.PrintBackground {
		t.Error("PrintBackground should be enabled")
	}
	if *opts.PaperWidth != paperWidthInches || *opts.PaperHeight != paperHeightInches {
		t.Errorf("paper = %vx%v, want A4", *opts.PaperWidth, *opts.PaperHeight)
	}
	for name, m := range map[string]*float64{
		"top":    opts.MarginTop,
		"bottom": opts.MarginBottom,
		"left":   opts.MarginLeft,
		"right":  opts.MarginRight,
	} {
		if m == nil || *m != marginInches {
			t.Errorf("margin %s = %v, want %v", name, m, marginInches)
		}
	}
}
