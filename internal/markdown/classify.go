package markdown

import (
	"strconv"
	"strings"
)

// BlockKind identifies the structural type of a block.
type BlockKind int

// Block kinds.
const (
	Paragraph BlockKind = iota
	Heading
	CodeBlock
	Quote
	UnorderedList
	OrderedList
)

// String returns the snake_case name of the kind.
func (k BlockKind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case CodeBlock:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered_list"
	case OrderedList:
		return "ordered_list"
	default:
		return "unknown"
	}
}

// maxHeadingLevel is the deepest ATX heading (######).
const maxHeadingLevel = 6

// Classify returns the kind of block. Rules are tried in order and the first
// match wins; anything unmatched is a Paragraph.
func Classify(block string) BlockKind {
	lines := strings.Split(block, "\n")

	switch {
	case len(lines) == 1 && isHeadingLine(lines[0]):
		return Heading
	case isFencedCode(block):
		return CodeBlock
	case allLines(lines, func(_ int, line string) bool { return strings.HasPrefix(line, ">") }):
		return Quote
	case allLines(lines, func(_ int, line string) bool { return strings.HasPrefix(line, "- ") }):
		return UnorderedList
	case allLines(lines, func(i int, line string) bool { return strings.HasPrefix(line, orderedPrefix(i+1)) }):
		return OrderedList
	default:
		return Paragraph
	}
}

// headingLevel returns the number of leading '#' characters in line.
func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	return n
}

// isHeadingLine reports whether line starts with 1 to 6 '#' followed by a space.
func isHeadingLine(line string) bool {
	n := headingLevel(line)
	return n >= 1 && n <= maxHeadingLevel && n < len(line) && line[n] == ' '
}

// isFencedCode reports whether the trimmed block starts and ends with distinct fences.
func isFencedCode(block string) bool {
	trimmed := strings.TrimSpace(block)
	return len(trimmed) >= 2*len(codeFence) &&
		strings.HasPrefix(trimmed, codeFence) &&
		strings.HasSuffix(trimmed, codeFence)
}

// orderedPrefix returns the marker expected on the n-th line of an ordered list.
func orderedPrefix(n int) string {
	return strconv.Itoa(n) + ". "
}

// allLines reports whether every line is non-empty and satisfies match.
func allLines(lines []string, match func(i int, line string) bool) bool {
	for i, line := range lines {
		if line == "" || !match(i, line) {
			return false
		}
	}
	return true
}
