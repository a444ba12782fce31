package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/markdown"
	"github.com/alnah/go-mdsite/internal/pdf"
	"github.com/alnah/go-mdsite/internal/pipeline"
	"github.com/alnah/go-mdsite/internal/sitegen"
)

// Exit codes for the mdsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site built
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or assets
	ExitIO      = 3 // Missing directories, permission denied, write failures
	ExitContent = 4 // A page is malformed (no title, unclosed markup)
	ExitBrowser = 5 // PDF export through Chrome failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 5)
	if errors.Is(err, pdf.ErrBrowserConnect) ||
		errors.Is(err, pdf.ErrPageCreate) ||
		errors.Is(err, pdf.ErrPageLoad) ||
		errors.Is(err, pdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Content errors (exit 4)
	if errors.Is(err, markdown.ErrNoTitle) ||
		errors.Is(err, markdown.ErrUnterminatedDelimiter) ||
		errors.Is(err, markdown.ErrMissingURL) {
		return ExitContent
	}

	// Usage/config/asset errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigExists) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, pipeline.ErrUnknownEngine) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidTemplate) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, sitegen.ErrUnsafeOutputDir) ||
		errors.Is(err, fileutil.ErrUnsafeDestination) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, sitegen.ErrContentDir) ||
		errors.Is(err, sitegen.ErrReadPage) ||
		errors.Is(err, sitegen.ErrWritePage) ||
		errors.Is(err, sitegen.ErrStaticCopy) ||
		errors.Is(err, sitegen.ErrWriteStyle) ||
		errors.Is(err, sitegen.ErrWatch) ||
		errors.Is(err, pdf.ErrWritePDF) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, fileutil.ErrNotDirectory) {
		return ExitIO
	}

	return ExitGeneral
}
