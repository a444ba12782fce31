package sitegen

import "errors"

// Sentinel errors for site builds.
var (
	ErrContentDir      = errors.New("content directory not found")
	ErrUnsafeOutputDir = errors.New("output directory would overwrite sources")
	ErrReadPage        = errors.New("failed to read page source")
	ErrWritePage       = errors.New("failed to write page")
	ErrExportPage      = errors.New("failed to export page")
	ErrStaticCopy      = errors.New("failed to copy static files")
	ErrWriteStyle      = errors.New("failed to write stylesheet")
	ErrPagesFailed     = errors.New("some pages failed to build")
	ErrWatch           = errors.New("failed to watch sources")
)
