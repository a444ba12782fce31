package markdown

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block string
		want  BlockKind
	}{
		// Headings
		{"heading level 1", "# Test", Heading},
		{"heading level 6", "###### Deep", Heading},
		{"seven hashes", "####### Too deep", Paragraph},
		{"hash without space", "#Test", Paragraph},
		{"multi-line heading block", "# Title\nmore text", Paragraph},

		// Code
		{"code block", "```\ncode\n```", CodeBlock},
		{"code with language", "```go\nx := 1\n```", CodeBlock},
		{"indented code block", "    ```\n    code\n    ```", CodeBlock},
		{"minimal fence pair", "```\n```", CodeBlock},
		{"lone fence", "```", Paragraph},
		{"four backticks", "````", Paragraph},
		{"unclosed fence", "```\ncode", Paragraph},

		// Quotes
		{"quote", "> a quote\n> continued", Quote},
		{"quote without space", ">tight", Quote},
		{"mixed quote", "> a quote\nnot quoted", Paragraph},

		// Unordered lists
		{"unordered list", "- This is a list\n- with items", UnorderedList},
		{"dash without space", "-item", Paragraph},
		{"star list is a paragraph", "* one\n* two", Paragraph},

		// Ordered lists
		{"ordered list", "1. one\n2. two\n3. three", OrderedList},
		{"ordered list to ten", "1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g\n8. h\n9. i\n10. j", OrderedList},
		{"wrong start", "2. two\n3. three", Paragraph},
		{"skipped number", "1. one\n3. three", Paragraph},
		{"missing space after period", "1.one", Paragraph},

		// Paragraphs
		{"plain paragraph", "Test", Paragraph},
		{"multi-line paragraph", "line one\nline two", Paragraph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Classify(tt.block); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.block, got, tt.want)
			}
		})
	}
}

func TestClassify_FencedCodeNeverParagraph(t *testing.T) {
	t.Parallel()

	// Code content that would match other rules must not leak through.
	for _, body := range []string{"# heading", "> quote", "- item", "1. item", "plain"} {
		block := "```\n" + body + "\n```"
		if got := Classify(block); got != CodeBlock {
			t.Errorf("Classify(%q) = %v, want %v", block, got, CodeBlock)
		}
	}
}

func TestBlockKind_String(t *testing.T) {
	t.Parallel()

	want := map[BlockKind]string{
		Paragraph:     "paragraph",
		Heading:       "heading",
		CodeBlock:     "code",
		Quote:         "quote",
		UnorderedList: "unordered_list",
		OrderedList:   "ordered_list",
		BlockKind(99): "unknown",
	}
	for kind, s := range want {
		if got := kind.String(); got != s {
			t.Errorf("BlockKind(%d).String() = %q, want %q", int(kind), got, s)
		}
	}
}
