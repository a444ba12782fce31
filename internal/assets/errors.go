package assets

import "errors"

var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidTemplate means a page template has no {{ Content }}.
	ErrInvalidTemplate = errors.New("invalid page template")

	// ErrInvalidAssetName rejects names that could select another file.
	ErrInvalidAssetName = errors.New("invalid asset name")

	ErrInvalidBasePath = errors.New("invalid base path")
	ErrAssetRead       = errors.New("failed to read asset")

	// ErrPathTraversal means an asset resolved outside its directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
