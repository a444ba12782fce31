package markdown

import (
	"fmt"
	"strings"
)

// Inline delimiters, in the order TextToSpans applies them.
const (
	boldDelimiter   = "**"
	italicDelimiter = "_"
	codeDelimiter   = "`"
)

// TextToSpans parses inline Markdown into a flat list of spans.
//
// The passes run in a fixed order: bold, italic, code, images, links. Bold runs
// before italic and images before links; changing the order changes the output
// for text that mixes delimiters with image or link syntax.
func TextToSpans(text string) ([]Span, error) {
	spans := []Span{PlainSpan(text)}

	var err error
	for _, pass := range []struct {
		delimiter string
		kind      SpanKind
	}{
		{boldDelimiter, Bold},
		{italicDelimiter, Italic},
		{codeDelimiter, Code},
	} {
		spans, err = SplitDelimiter(spans, pass.delimiter, pass.kind)
		if err != nil {
			return nil, err
		}
	}

	spans = SplitImages(spans)
	spans = SplitLinks(spans)
	return spans, nil
}

// SplitDelimiter splits every Plain span on pairs of delimiter, typing the enclosed
// text as kind. Spans of other kinds pass through untouched.
// Returns ErrUnterminatedDelimiter when an opening delimiter has no match.
func SplitDelimiter(spans []Span, delimiter string, kind SpanKind) ([]Span, error) {
	result := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			result = append(result, span)
			continue
		}

		split, err := splitPlain(span, delimiter, kind)
		if err != nil {
			return nil, err
		}
		result = append(result, split...)
	}
	return result, nil
}

// splitPlain scans one Plain span left to right, emitting the text before each
// delimiter pair and the enclosed text. The remainder after a closing delimiter
// is scanned the same way.
func splitPlain(span Span, delimiter string, kind SpanKind) ([]Span, error) {
	text := span.Text
	if !strings.Contains(text, delimiter) {
		return []Span{span}, nil
	}

	var result []Span
	for text != "" {
		start := strings.Index(text, delimiter)
		if start < 0 {
			result = append(result, PlainSpan(text))
			break
		}

		inner := text[start+len(delimiter):]
		end := strings.Index(inner, delimiter)
		if end < 0 {
			return nil, fmt.Errorf("%w: no closing %q in %q", ErrUnterminatedDelimiter, delimiter, truncate(span.Text, 60))
		}

		if start > 0 {
			result = append(result, PlainSpan(text[:start]))
		}
		result = append(result, Span{Text: inner[:end], Kind: kind})
		text = inner[end+len(delimiter):]
	}
	return result, nil
}

// SplitImages extracts ![alt](url) markers from every Plain span.
func SplitImages(spans []Span) []Span {
	return splitRefs(spans, true)
}

// SplitLinks extracts [label](url) markers from every Plain span.
func SplitLinks(spans []Span) []Span {
	return splitRefs(spans, false)
}

func splitRefs(spans []Span, image bool) []Span {
	kind := Link
	if image {
		kind = Image
	}

	result := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			result = append(result, span)
			continue
		}

		ref, start, end, ok := findRef(span.Text, image)
		if !ok {
			result = append(result, span)
			continue
		}

		text := span.Text
		for ; ok; ref, start, end, ok = findRef(text, image) {
			if start > 0 {
				result = append(result, PlainSpan(text[:start]))
			}
			result = append(result, Span{Text: ref.Text, Kind: kind, URL: ref.URL})
			text = text[end:]
		}
		if text != "" {
			result = append(result, PlainSpan(text))
		}
	}
	return result
}
