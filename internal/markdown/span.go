package markdown

// SpanKind identifies the inline style of a Span.
type SpanKind int

// Inline span kinds.
const (
	Plain SpanKind = iota
	Bold
	Italic
	Code
	Link
	Image
)

// String returns the lowercase name of the kind.
func (k SpanKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	default:
		return "unknown"
	}
}

// Span is a run of inline text with a single style.
// URL is set for Link and Image spans only; for Image, Text is the alt text.
type Span struct {
	Text string
	Kind SpanKind
	URL  string
}

// PlainSpan returns an unstyled span.
func PlainSpan(text string) Span {
	return Span{Text: text, Kind: Plain}
}
