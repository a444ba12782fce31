package pipeline

import (
	"context"
	"testing"
)

func TestSourcePreprocessor(t *testing.T) {
	t.Parallel()

	p := &SourcePreprocessor{}
	ctx := context.Background()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "a\r\nb\r\n", "a\nb\n"},
		{"lone cr", "a\rb", "a\nb"},
		{"bom", "\ufeff# Title", "# Title"},
		{"blank lines preserved", "a\n\n\n\nb", "a\n\n\n\nb"},
		{"unchanged", "# Title\n\nbody", "# Title\n\nbody"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := p.PreprocessMarkdown(ctx, tt.in); got != tt.want {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSourcePreprocessor_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := "a\r\nb"
	if got := (&SourcePreprocessor{}).PreprocessMarkdown(ctx, in); got != in {
		t.Errorf("PreprocessMarkdown() with cancelled context = %q, want input", got)
	}
}
