// Package htmlnode provides the renderable HTML tree produced by the Markdown compiler.
//
// The tree is a closed set of node kinds:
//
//	Text       raw text, rendered verbatim
//	Leaf       <tag attrs>value</tag>
//	Container  <tag attrs>children...</tag>
//	Void       <tag attrs>
//
// Rendering performs no escaping: values and attribute values are emitted as-is.
package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for rendering.
var (
	ErrMissingTag      = errors.New("node has no tag")
	ErrMissingChildren = errors.New("container node has no children list")
)

// Attr is a single HTML attribute. Attributes render in slice order.
type Attr struct {
	Key   string
	Value string
}

// Node is an element of the HTML tree.
// The set of implementations is closed; see Text, Leaf, Container and Void.
type Node interface {
	// Render returns the HTML text for the node and its subtree.
	Render() (string, error)

	renderTo(sb *strings.Builder) error
}

// Compile-time interface checks.
var (
	_ Node = Text{}
	_ Node = (*Leaf)(nil)
	_ Node = (*Container)(nil)
	_ Node = (*Void)(nil)
)

// Text is an untagged text leaf.
type Text struct {
	Value string
}

// Render returns the value verbatim.
func (t Text) Render() (string, error) {
	return t.Value, nil
}

func (t Text) renderTo(sb *strings.Builder) error {
	sb.WriteString(t.Value)
	return nil
}

// Leaf is a tagged element whose content is a single literal value.
type Leaf struct {
	Tag   string
	Value string
	Attrs []Attr
}

// NewLeaf creates a Leaf.
func NewLeaf(tag, value string, attrs ...Attr) *Leaf {
	return &Leaf{Tag: tag, Value: value, Attrs: attrs}
}

// Render returns <tag attrs>value</tag>.
func (l *Leaf) Render() (string, error) {
	return render(l)
}

func (l *Leaf) renderTo(sb *strings.Builder) error {
	if l.Tag == "" {
		return fmt.Errorf("%w: leaf with value %q", ErrMissingTag, l.Value)
	}
	openTag(sb, l.Tag, l.Attrs)
	sb.WriteString(l.Value)
	closeTag(sb, l.Tag)
	return nil
}

// Container is a tagged element with an ordered list of children.
// Children may be empty but must not be nil.
type Container struct {
	Tag      string
	Children []Node
	Attrs    []Attr
}

// NewContainer creates a Container. A nil children list is replaced by an empty one.
func NewContainer(tag string, children []Node, attrs ...Attr) *Container {
	if children == nil {
		children = []Node{}
	}
	return &Container{Tag: tag, Children: children, Attrs: attrs}
}

// Append adds children at the end.
func (c *Container) Append(children ...Node) {
	c.Children = append(c.Children, children...)
}

// Render returns <tag attrs> followed by each rendered child and </tag>.
// The first child error aborts rendering.
func (c *Container) Render() (string, error) {
	return render(c)
}

func (c *Container) renderTo(sb *strings.Builder) error {
	if c.Tag == "" {
		return ErrMissingTag
	}
	if c.Children == nil {
		return fmt.Errorf("%w: <%s>", ErrMissingChildren, c.Tag)
	}
	openTag(sb, c.Tag, c.Attrs)
	for _, child := range c.Children {
		if isNil(child) {
			return fmt.Errorf("%w: nil child in <%s>", ErrMissingChildren, c.Tag)
		}
		if err := child.renderTo(sb); err != nil {
			return err
		}
	}
	closeTag(sb, c.Tag)
	return nil
}

// Void is a tagged element with neither value nor children. It has no closing tag.
type Void struct {
	Tag   string
	Attrs []Attr
}

// Render returns <tag attrs>.
func (v *Void) Render() (string, error) {
	return render(v)
}

func (v *Void) renderTo(sb *strings.Builder) error {
	if v.Tag == "" {
		return ErrMissingTag
	}
	openTag(sb, v.Tag, v.Attrs)
	return nil
}

func render(n Node) (string, error) {
	var sb strings.Builder
	if err := n.renderTo(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func openTag(sb *strings.Builder, tag string, attrs []Attr) {
	sb.WriteByte('<')
	sb.WriteString(tag)
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(a.Value)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
}

func closeTag(sb *strings.Builder, tag string) {
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
}
