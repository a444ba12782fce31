package markdown

import (
	"fmt"
	"strings"
)

// Ref is a bracketed reference: the label or alt text and its URL.
type Ref struct {
	Text string
	URL  string
}

// ExtractImages returns every ![alt](url) marker in text, left to right.
// Alt text runs to the first ']' and the URL to the first ')'. Markers with an
// empty URL are not images.
func ExtractImages(text string) []Ref {
	return extractRefs(text, true)
}

// ExtractLinks returns every [label](url) marker in text that is not an image.
func ExtractLinks(text string) []Ref {
	return extractRefs(text, false)
}

func extractRefs(text string, image bool) []Ref {
	var refs []Ref
	for {
		ref, _, end, ok := findRef(text, image)
		if !ok {
			return refs
		}
		refs = append(refs, ref)
		text = text[end:]
	}
}

// findRef locates the first marker in s. start and end delimit the whole marker,
// end being exclusive.
func findRef(s string, image bool) (ref Ref, start, end int, ok bool) {
	open := "["
	if image {
		open = "!["
	}

	from := 0
	for from < len(s) {
		i := strings.Index(s[from:], open)
		if i < 0 {
			return Ref{}, 0, 0, false
		}
		i += from

		// A '[' right after '!' belongs to an image marker.
		if !image && i > 0 && s[i-1] == '!' {
			from = i + 1
			continue
		}

		textStart := i + len(open)
		j := strings.IndexByte(s[textStart:], ']')
		if j < 0 {
			// No later marker can close either.
			return Ref{}, 0, 0, false
		}
		j += textStart

		if j+1 >= len(s) || s[j+1] != '(' {
			from = i + 1
			continue
		}

		urlStart := j + 2
		k := strings.IndexByte(s[urlStart:], ')')
		if k < 0 {
			return Ref{}, 0, 0, false
		}
		k += urlStart

		if k == urlStart {
			from = i + 1
			continue
		}

		return Ref{Text: s[textStart:j], URL: s[urlStart:k]}, i, k + 1, true
	}
	return Ref{}, 0, 0, false
}

// ExtractTitle returns the text of the level-1 heading on the first line of document.
// Returns ErrNoTitle if the first line does not start with "# ".
func ExtractTitle(document string) (string, error) {
	first, _, _ := strings.Cut(document, "\n")
	first = strings.TrimRight(first, "\r")

	if !strings.HasPrefix(first, "# ") {
		return "", fmt.Errorf("%w: first line is %q", ErrNoTitle, truncate(first, 40))
	}
	return strings.TrimSpace(first[len("# "):]), nil
}

// truncate shortens s to at most n bytes for error messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
