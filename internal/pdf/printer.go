// Package pdf prints generated pages to PDF with headless Chrome.
// Rod downloads Chromium on first use when no browser is configured.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Sentinel errors for PDF export.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrWritePDF       = errors.New("failed to write PDF file")
)

// Page dimensions in inches (A4).
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.5
)

// DefaultTimeout bounds page loads when the context has no deadline.
const DefaultTimeout = 30 * time.Second

// Printer renders local HTML files to PDF. The browser is started on the
// first export and shared by concurrent callers until Close.
type Printer struct {
	timeout time.Duration

	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// NewPrinter creates a Printer. A zero timeout uses DefaultTimeout.
func NewPrinter(timeout time.Duration) *Printer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Printer{timeout: timeout}
}

// connect lazily launches and connects to the browser.
func (p *Printer) connect() (*rod.Browser, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.browser != nil {
		return p.browser, nil
	}

	l := newLauncher()
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		shutdown(l)
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	p.launcher = l
	p.browser = browser
	return browser, nil
}

// newLauncher configures Chrome from ROD_BROWSER_BIN and ROD_NO_SANDBOX.
// A supplied binary always runs unsandboxed.
func newLauncher() *launcher.Launcher {
	l := launcher.New()
	bin := os.Getenv("ROD_BROWSER_BIN")
	if bin != "" {
		l = l.Bin(bin)
	}
	noSandbox := bin != "" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("CI") == "true"
	return l.NoSandbox(noSandbox)
}

// Export renders htmlPath and writes the PDF to pdfPath.
func (p *Printer) Export(ctx context.Context, htmlPath, pdfPath string) error {
	data, err := p.RenderFile(ctx, htmlPath)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFile(pdfPath, data); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return nil
}

// RenderFile opens a local HTML file and prints it to PDF.
func (p *Printer) RenderFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target, err := fileURL(path)
	if err != nil {
		return nil, err
	}

	browser, err := p.connect()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: target})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	timeout := p.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Context(ctx).Timeout(timeout).WaitLoad(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	reader, err := page.PDF(printOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return data, nil
}

// Close shuts the browser down. The printer can be reused afterwards.
func (p *Printer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.browser == nil {
		return nil
	}

	err := p.browser.Close()
	shutdown(p.launcher)
	p.browser = nil
	p.launcher = nil
	return err
}

// shutdown kills the browser with its helper processes and removes the
// temporary profile.
func shutdown(l *launcher.Launcher) {
	if l == nil {
		return
	}
	if pid := l.PID(); pid > 0 {
		killProcessGroup(pid)
	}
	l.Kill()
	l.Cleanup()
}

// printOptions returns the print settings used for every page.
func printOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	}
}

// fileURL returns the file:// URL of a local path.
func fileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	abs = filepath.ToSlash(abs)
	if abs[0] != '/' {
		abs = "/" + abs // Windows drive letter
	}
	return "file://" + abs, nil
}

func floatPtr(v float64) *float64 {
	return &v
}
