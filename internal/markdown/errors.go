package markdown

import "errors"

// Sentinel errors for Markdown conversion.
var (
	// ErrNoTitle indicates the first line of a document is not a level-1 heading.
	ErrNoTitle = errors.New("document has no title")

	// ErrUnterminatedDelimiter indicates an inline delimiter has no closing match.
	ErrUnterminatedDelimiter = errors.New("unterminated delimiter")

	// ErrMissingURL indicates a link or image span without a URL.
	ErrMissingURL = errors.New("link or image span has no URL")
)
