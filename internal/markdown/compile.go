package markdown

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/alnah/go-mdsite/internal/htmlnode"
)

// RootTag is the tag of the container that holds every block of a document.
const RootTag = "div"

// ToHTML compiles document and renders it.
func ToHTML(document string) (string, error) {
	root, err := Compile(document)
	if err != nil {
		return "", err
	}
	return root.Render()
}

// Compile converts document into a tree rooted at a div, one child per block
// in document order. The first inline error aborts compilation.
func Compile(document string) (*htmlnode.Container, error) {
	blocks := Segment(document)
	root := htmlnode.NewContainer(RootTag, make([]htmlnode.Node, 0, len(blocks)))

	for i, block := range blocks {
		node, err := CompileBlock(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		root.Append(node)
	}
	return root, nil
}

// CompileBlock classifies block and builds its node subtree.
func CompileBlock(block string) (htmlnode.Node, error) {
	switch kind := Classify(block); kind {
	case Heading:
		return compileHeading(block)
	case CodeBlock:
		return compileCode(block), nil
	case Quote:
		return compileQuote(block)
	case UnorderedList:
		return compileUnorderedList(block)
	case OrderedList:
		return compileOrderedList(block)
	case Paragraph:
		return compileParagraph(block)
	default:
		return nil, fmt.Errorf("unhandled block kind %v", kind)
	}
}

func compileParagraph(block string) (htmlnode.Node, error) {
	text := strings.Join(strings.Fields(block), " ")
	return inlineContainer("p", text)
}

func compileHeading(block string) (htmlnode.Node, error) {
	level := headingLevel(block)
	text := strings.TrimSpace(block[level:])
	return inlineContainer("h"+strconv.Itoa(level), text)
}

// compileCode strips the fence lines and left-trims the rest. The content is
// literal: no inline parsing.
func compileCode(block string) htmlnode.Node {
	lines := strings.Split(strings.TrimSpace(block), "\n")

	var sb strings.Builder
	if len(lines) > 2 {
		for i, line := range lines[1 : len(lines)-1] {
			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(strings.TrimLeftFunc(line, unicode.IsSpace))
		}
	}
	sb.WriteByte('\n')

	code := htmlnode.NewContainer("code", []htmlnode.Node{htmlnode.Text{Value: sb.String()}})
	return htmlnode.NewContainer("pre", []htmlnode.Node{code})
}

func compileQuote(block string) (htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if content, ok := strings.CutPrefix(line, ">"); ok {
			parts = append(parts, strings.TrimSpace(content))
		}
	}
	return inlineContainer("blockquote", strings.TrimSpace(strings.Join(parts, " ")))
}

func compileUnorderedList(block string) (htmlnode.Node, error) {
	return compileList("ul", block, func(line string) (string, bool) {
		if line == "" || !strings.ContainsRune("-*+", rune(line[0])) {
			return "", false
		}
		return strings.TrimSpace(line[1:]), true
	})
}

func compileOrderedList(block string) (htmlnode.Node, error) {
	return compileList("ol", block, func(line string) (string, bool) {
		digits := 0
		for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
			digits++
		}
		if digits == 0 {
			return "", false
		}
		// Trimming leaves an empty item as a bare "N.".
		rest := line[digits:]
		if rest == "." {
			return "", true
		}
		rest, ok := strings.CutPrefix(rest, ". ")
		if !ok {
			return "", false
		}
		return strings.TrimSpace(rest), true
	})
}

// compileList wraps each line accepted by item in an li under tag.
// item receives the trimmed line and returns its content.
func compileList(tag, block string, item func(line string) (string, bool)) (htmlnode.Node, error) {
	list := htmlnode.NewContainer(tag, nil)
	for _, line := range strings.Split(block, "\n") {
		content, ok := item(strings.TrimSpace(line))
		if !ok {
			continue
		}
		li, err := inlineContainer("li", content)
		if err != nil {
			return nil, err
		}
		list.Append(li)
	}
	return list, nil
}

// inlineContainer parses text as inline Markdown and wraps the result in tag.
func inlineContainer(tag, text string) (htmlnode.Node, error) {
	children, err := TextToNodes(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewContainer(tag, children), nil
}

// TextToNodes parses inline Markdown and converts each span to a node.
func TextToNodes(text string) ([]htmlnode.Node, error) {
	spans, err := TextToSpans(text)
	if err != nil {
		return nil, err
	}

	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, span := range spans {
		node, err := SpanToNode(span)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// SpanToNode converts one span to its leaf node.
// Returns ErrMissingURL for a Link or Image span without a URL.
func SpanToNode(span Span) (htmlnode.Node, error) {
	switch span.Kind {
	case Plain:
		return htmlnode.Text{Value: span.Text}, nil
	case Bold:
		return htmlnode.NewLeaf("b", span.Text), nil
	case Italic:
		return htmlnode.NewLeaf("i", span.Text), nil
	case Code:
		return htmlnode.NewLeaf("code", span.Text), nil
	case Link:
		if span.URL == "" {
			return nil, fmt.Errorf("%w: link %q", ErrMissingURL, span.Text)
		}
		return htmlnode.NewLeaf("a", span.Text, htmlnode.Attr{Key: "href", Value: span.URL}), nil
	case Image:
		if span.URL == "" {
			return nil, fmt.Errorf("%w: image %q", ErrMissingURL, span.Text)
		}
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr{Key: "src", Value: span.URL},
			htmlnode.Attr{Key: "alt", Value: span.Text},
		), nil
	default:
		return nil, fmt.Errorf("unknown span kind %v", span.Kind)
	}
}
