package mdsite

import (
	"errors"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/markdown"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// Content errors from the dialect engine.
	ErrNoTitle               = markdown.ErrNoTitle
	ErrUnterminatedDelimiter = markdown.ErrUnterminatedDelimiter
	ErrMissingURL            = markdown.ErrMissingURL

	// Configuration errors.
	ErrUnknownEngine   = pipeline.ErrUnknownEngine
	ErrInvalidTemplate = assets.ErrInvalidTemplate
)
