package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// byteOrderMark is stripped from the start of source files.
const byteOrderMark = "\ufeff"

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// SourcePreprocessor normalizes source text before either engine sees it.
// Line structure is otherwise preserved: the dialect relies on blank lines.
type SourcePreprocessor struct{}

// PreprocessMarkdown strips a leading BOM and converts \r\n and \r to \n.
func (p *SourcePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, byteOrderMark)
	return normalizeLineEndings(content)
}

func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// Compile-time interface check.
var _ MarkdownPreprocessor = (*SourcePreprocessor)(nil)
