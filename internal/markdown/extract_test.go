package markdown

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestExtractImages - ![alt](url) markers
// ---------------------------------------------------------------------------

func TestExtractImages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []Ref
	}{
		{
			name: "single image",
			text: "This is text with an ![image](https://i.imgur.com/zjjcJKZ.png)",
			want: []Ref{{"image", "https://i.imgur.com/zjjcJKZ.png"}},
		},
		{
			name: "multiple images in order",
			text: "This is text with an ![image1](https://i.imgur.com/zjjcJKZ.png), another ![image2](https://i.imgur.com/zjjcJKZ.png)",
			want: []Ref{
				{"image1", "https://i.imgur.com/zjjcJKZ.png"},
				{"image2", "https://i.imgur.com/zjjcJKZ.png"},
			},
		},
		{
			name: "empty alt text",
			text: "![](/logo.png)",
			want: []Ref{{"", "/logo.png"}},
		},
		{
			name: "links are not images",
			text: "a [link](https://example.com)",
			want: nil,
		},
		{
			name: "empty url is not an image",
			text: "![alt]()",
			want: nil,
		},
		{
			name: "missing parenthesis after bracket",
			text: "![alt] (url) then ![ok](u)",
			want: []Ref{{"ok", "u"}},
		},
		{
			name: "unclosed marker",
			text: "![alt](https://example.com",
			want: nil,
		},
		{
			name: "no markers",
			text: "plain text",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractImages(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractImages(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExtractLinks - [label](url) markers
// ---------------------------------------------------------------------------

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []Ref
	}{
		{
			name: "single link",
			text: "This is text with an [link](https://example.com)",
			want: []Ref{{"link", "https://example.com"}},
		},
		{
			name: "multiple links",
			text: "This is text with an [link1](https://example.com), [link2](https://example.com)",
			want: []Ref{
				{"link1", "https://example.com"},
				{"link2", "https://example.com"},
			},
		},
		{
			name: "image syntax is not a link",
			text: "![image](https://i.imgur.com/zjjcJKZ.png)",
			want: nil,
		},
		{
			name: "link after an image",
			text: "![image](/a.png) and [home](/)",
			want: []Ref{{"home", "/"}},
		},
		{
			name: "url with query string",
			text: "[search](https://example.com/?q=go&lang=en)",
			want: []Ref{{"search", "https://example.com/?q=go&lang=en"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractLinks(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ExtractLinks(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExtractTitle - Level-1 heading on the first line
// ---------------------------------------------------------------------------

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		want     string
		wantErr  error
	}{
		{
			name:     "single heading",
			document: "# Test",
			want:     "Test",
		},
		{
			name:     "heading followed by other headings",
			document: "# Test\n            ## Test2\n            ### Test3\n        ",
			want:     "Test",
		},
		{
			name:     "trailing whitespace and CRLF",
			document: "# Tolkien Fan Club  \r\n\nbody",
			want:     "Tolkien Fan Club",
		},
		{
			name:     "no heading",
			document: "Test",
			wantErr:  ErrNoTitle,
		},
		{
			name:     "level-2 heading is not a title",
			document: "## Test",
			wantErr:  ErrNoTitle,
		},
		{
			name:     "hash without space",
			document: "#Test",
			wantErr:  ErrNoTitle,
		},
		{
			name:     "heading not on first line",
			document: "\n# Test",
			wantErr:  ErrNoTitle,
		},
		{
			name:     "empty document",
			document: "",
			wantErr:  ErrNoTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractTitle(tt.document)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ExtractTitle() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractTitle() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
