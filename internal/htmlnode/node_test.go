package htmlnode

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRender - Rendering of each node kind
// ---------------------------------------------------------------------------

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "text renders verbatim",
			node: Text{Value: "a <b> & c"},
			want: "a <b> & c",
		},
		{
			name: "empty text",
			node: Text{},
			want: "",
		},
		{
			name: "leaf without attributes",
			node: NewLeaf("b", "bold"),
			want: "<b>bold</b>",
		},
		{
			name: "leaf with attributes in insertion order",
			node: NewLeaf("a", "Click me!", Attr{"href", "https://www.google.com"}, Attr{"target", "_blank"}),
			want: `<a href="https://www.google.com" target="_blank">Click me!</a>`,
		},
		{
			name: "leaf with empty value keeps closing tag",
			node: NewLeaf("img", "", Attr{"src", "x.png"}, Attr{"alt", "x"}),
			want: `<img src="x.png" alt="x"></img>`,
		},
		{
			name: "void element has no closing tag",
			node: &Void{Tag: "br"},
			want: "<br>",
		},
		{
			name: "void element with attributes",
			node: &Void{Tag: "hr", Attrs: []Attr{{"class", "rule"}}},
			want: `<hr class="rule">`,
		},
		{
			name: "empty container",
			node: NewContainer("div", nil),
			want: "<div></div>",
		},
		{
			name: "container with mixed children",
			node: NewContainer("p", []Node{
				NewLeaf("b", "Bold text"),
				Text{Value: "Normal text"},
				NewLeaf("i", "italic text"),
				Text{Value: "Normal text"},
			}),
			want: "<p><b>Bold text</b>Normal text<i>italic text</i>Normal text</p>",
		},
		{
			name: "nested containers",
			node: NewContainer("div", []Node{
				NewContainer("span", []Node{NewLeaf("b", "grandchild")}),
			}, Attr{"class", "outer"}),
			want: `<div class="outer"><span><b>grandchild</b></span></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.node.Render()
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRender_Errors - Structural errors abort rendering
// ---------------------------------------------------------------------------

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		node    Node
		wantErr error
	}{
		{
			name:    "container without tag",
			node:    &Container{Children: []Node{}},
			wantErr: ErrMissingTag,
		},
		{
			name:    "container with nil children",
			node:    &Container{Tag: "div"},
			wantErr: ErrMissingChildren,
		},
		{
			name:    "leaf without tag",
			node:    &Leaf{Value: "x"},
			wantErr: ErrMissingTag,
		},
		{
			name:    "void without tag",
			node:    &Void{},
			wantErr: ErrMissingTag,
		},
		{
			name: "error in nested child propagates",
			node: NewContainer("div", []Node{
				NewLeaf("b", "ok"),
				NewContainer("p", []Node{&Container{Tag: "span"}}),
			}),
			wantErr: ErrMissingChildren,
		},
		{
			name:    "nil pointer child",
			node:    NewContainer("p", []Node{(*Leaf)(nil)}),
			wantErr: ErrMissingChildren,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.node.Render()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Render() error = %v, want %v", err, tt.wantErr)
			}
			if got != "" {
				t.Errorf("Render() = %q, want empty output on error", got)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWalk - Traversal and attribute helpers
// ---------------------------------------------------------------------------

func TestWalk(t *testing.T) {
	t.Parallel()

	root := NewContainer("div", []Node{
		NewContainer("p", []Node{
			Text{Value: "see "},
			NewLeaf("a", "docs", Attr{"href", "/docs"}),
		}),
		NewContainer("ul", []Node{
			NewContainer("li", []Node{NewLeaf("img", "", Attr{"src", "/a.png"}, Attr{"alt", "a"})}),
		}),
	})

	var tags []string
	Walk(root, func(n Node) bool {
		if tag := TagOf(n); tag != "" {
			tags = append(tags, tag)
		}
		return true
	})

	want := []string{"div", "p", "a", "ul", "li", "img"}
	if len(tags) != len(want) {
		t.Fatalf("visited %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags[%d] = %q, want %q", i, tags[i], want[i])
		}
	}
}

func TestWalk_SkipChildren(t *testing.T) {
	t.Parallel()

	root := NewContainer("div", []Node{
		NewContainer("pre", []Node{NewLeaf("code", "x")}),
		NewLeaf("b", "y"),
	})

	var visited int
	Walk(root, func(n Node) bool {
		visited++
		return TagOf(n) != "pre"
	})

	// div, pre, b
	if visited != 3 {
		t.Errorf("visited %d nodes, want 3", visited)
	}
}

func TestWalk_NilNodes(t *testing.T) {
	t.Parallel()

	root := NewContainer("div", []Node{
		(*Leaf)(nil),
		nil,
		(*Container)(nil),
		NewLeaf("b", "x"),
	})

	var tags []string
	Walk(root, func(n Node) bool {
		tags = append(tags, TagOf(n))
		return true
	})
	if got := strings.Join(tags, ","); got != "div,b" {
		t.Errorf("visited %q, want %q", got, "div,b")
	}

	var nilLeaf *Leaf
	if _, ok := GetAttr(nilLeaf, "href"); ok {
		t.Error("GetAttr on a nil *Leaf should report false")
	}
	SetAttr((*Void)(nil), "src", "/a.png")
	if TagOf((*Container)(nil)) != "" {
		t.Error("TagOf on a nil *Container should be empty")
	}
}

func TestSetAttr(t *testing.T) {
	t.Parallel()

	leaf := NewLeaf("img", "", Attr{"src", "/a.png"}, Attr{"alt", "a"})
	SetAttr(leaf, "src", "/blog/a.png")
	SetAttr(leaf, "title", "t")

	got, err := leaf.Render()
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	want := `<img src="/blog/a.png" alt="a" title="t"></img>`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	if v, ok := GetAttr(leaf, "alt"); !ok || v != "a" {
		t.Errorf("GetAttr(alt) = %q, %v; want %q, true", v, ok, "a")
	}
	if _, ok := GetAttr(Text{Value: "x"}, "href"); ok {
		t.Error("GetAttr on Text should report false")
	}
}
