package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName accepts bare names only: no separators and no dots,
// so a name can neither climb directories nor change the extension.
func ValidateAssetName(name string) error {
	if strings.ContainsAny(name, `/\.`) || name == "" {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// ValidateTemplate reports ErrInvalidTemplate when content has nowhere to
// put the page body. A template without a title placeholder is fine.
func ValidateTemplate(name, content string) error {
	if strings.Contains(content, ContentPlaceholder) {
		return nil
	}
	return fmt.Errorf("%w: %q has no %s placeholder", ErrInvalidTemplate, name, ContentPlaceholder)
}
