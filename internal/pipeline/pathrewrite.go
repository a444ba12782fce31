package pipeline

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-mdsite/internal/htmlnode"
)

// rebasedAttrs are the attributes whose root-relative URLs move under the base path.
var rebasedAttrs = []string{"href", "src"}

// NormalizeBasePath returns p with a trailing slash and, unless p is an
// absolute URL, a leading one. An empty path is the site root "/".
func NormalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.Contains(p, "://") && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

// RebaseURL moves a root-relative URL under basePath, which must be normalized.
// Absolute URLs, protocol-relative URLs, anchors and relative paths are
// returned unchanged with ok false.
func RebaseURL(u, basePath string) (rebased string, ok bool) {
	if basePath == "/" || !strings.HasPrefix(u, "/") || strings.HasPrefix(u, "//") {
		return u, false
	}
	return basePath + u[1:], true
}

// RebaseTree rewrites href and src attributes throughout an htmlnode tree.
func RebaseTree(root htmlnode.Node, basePath string) {
	if basePath == "/" {
		return
	}
	htmlnode.Walk(root, func(n htmlnode.Node) bool {
		for _, key := range rebasedAttrs {
			if v, ok := htmlnode.GetAttr(n, key); ok {
				if rebased, ok := RebaseURL(v, basePath); ok {
					htmlnode.SetAttr(n, key, rebased)
				}
			}
		}
		return true
	})
}

// RewriteBasePath rewrites root-relative href and src attributes in an HTML
// document or fragment. With the root base path the input is returned as-is.
func RewriteBasePath(htmlContent, basePath string) (string, error) {
	basePath = NormalizeBasePath(basePath)
	if basePath == "/" {
		return htmlContent, nil
	}

	nodes, err := parseMarkup(htmlContent)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, n := range nodes {
		rewriteNode(n, basePath)
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// parseMarkup returns the top-level nodes of content. Whole documents parse
// to their document node; anything else parses as children of <body>, so
// rendering adds no wrapper elements.
func parseMarkup(content string) ([]*html.Node, error) {
	head := strings.ToLower(strings.TrimSpace(content))
	if strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		if err != nil {
			return nil, err
		}
		return []*html.Node{doc}, nil
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	return html.ParseFragment(strings.NewReader(content), body)
}

func rewriteNode(n *html.Node, basePath string) {
	if n.Type == html.ElementNode {
		for i := range n.Attr {
			if !slices.Contains(rebasedAttrs, n.Attr[i].Key) {
				continue
			}
			if rebased, ok := RebaseURL(n.Attr[i].Val, basePath); ok {
				n.Attr[i].Val = rebased
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, basePath)
	}
}
