package pipeline

import (
	"context"
	"strings"

	"github.com/alnah/go-mdsite/internal/assets"
)

// Hydrate fills a page template. The title goes in first, so a title that
// happens to contain the content placeholder is expanded as well.
func Hydrate(template, title, content string) string {
	page := strings.ReplaceAll(template, assets.TitlePlaceholder, title)
	return strings.ReplaceAll(page, assets.ContentPlaceholder, content)
}

// CSSInjector places a stylesheet inside an HTML page.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection writes the stylesheet as an inline <style> element.
type CSSInjection struct{}

// InjectCSS puts the style element at the end of <head>. Pages without a
// head get it right after the <body> tag, and bare fragments at the front.
func (CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	// "</" would let the stylesheet end the element early.
	style := "<style>" + strings.ReplaceAll(cssContent, "</", `<\/`) + "</style>"
	at := styleOffset(htmlContent)
	return htmlContent[:at] + style + htmlContent[at:]
}

// styleOffset finds where the style element belongs in page.
func styleOffset(page string) int {
	lower := strings.ToLower(page)
	if i := strings.Index(lower, "</head>"); i >= 0 {
		return i
	}
	if i := strings.Index(lower, "<body"); i >= 0 {
		if end := strings.IndexByte(page[i:], '>'); end >= 0 {
			return i + end + 1
		}
	}
	return 0
}

var _ CSSInjector = CSSInjection{}
