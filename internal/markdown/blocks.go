package markdown

import "strings"

// codeFence opens and closes a literal code block.
const codeFence = "```"

// Segment splits document into top-level blocks.
//
// Blocks are separated by blank lines. A line starting with a fence (after
// trimming) flushes any pending text and opens a code block; every following line,
// blank ones included, belongs to that block until the closing fence, which ends
// the block. Fences do not nest. Lines keep their original indentation and blocks
// consisting only of whitespace are dropped.
func Segment(document string) []string {
	var (
		blocks  []string
		current []string
		inFence bool
	)

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = current[:0]
		}
	}

	for _, line := range strings.Split(document, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, codeFence):
			if !inFence {
				flush()
				current = append(current, line)
				inFence = true
			} else {
				current = append(current, line)
				flush()
				inFence = false
			}
		case inFence:
			current = append(current, line)
		case trimmed == "":
			flush()
		default:
			current = append(current, line)
		}
	}
	flush()

	result := blocks[:0]
	for _, block := range blocks {
		if strings.TrimSpace(block) != "" {
			result = append(result, block)
		}
	}
	return result
}
