package htmlnode

// Walk visits n and its descendants in document order.
// Returning false from fn skips the children of the visited node.
// Nil nodes, typed or not, are skipped.
func Walk(n Node, fn func(Node) bool) {
	if isNil(n) || !fn(n) {
		return
	}
	if c, ok := n.(*Container); ok {
		for _, child := range c.Children {
			Walk(child, fn)
		}
	}
}

// isNil reports whether n is nil or a nil pointer to a node type.
func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Leaf:
		return v == nil
	case *Container:
		return v == nil
	case *Void:
		return v == nil
	default:
		return false
	}
}

// TagOf returns the tag of n, or "" for Text and nil nodes.
func TagOf(n Node) string {
	if isNil(n) {
		return ""
	}
	switch v := n.(type) {
	case *Leaf:
		return v.Tag
	case *Container:
		return v.Tag
	case *Void:
		return v.Tag
	default:
		return ""
	}
}

// attrsOf returns a pointer to the attribute list of n, or nil for Text
// and nil nodes.
func attrsOf(n Node) *[]Attr {
	if isNil(n) {
		return nil
	}
	switch v := n.(type) {
	case *Leaf:
		return &v.Attrs
	case *Container:
		return &v.Attrs
	case *Void:
		return &v.Attrs
	default:
		return nil
	}
}

// GetAttr returns the value of the first attribute named key.
func GetAttr(n Node, key string) (string, bool) {
	attrs := attrsOf(n)
	if attrs == nil {
		return "", false
	}
	for _, a := range *attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr replaces the value of the first attribute named key, keeping its position.
// Missing attributes are appended. Text nodes are left unchanged.
func SetAttr(n Node, key, value string) {
	attrs := attrsOf(n)
	if attrs == nil {
		return
	}
	for i := range *attrs {
		if (*attrs)[i].Key == key {
			(*attrs)[i].Value = value
			return
		}
	}
	*attrs = append(*attrs, Attr{Key: key, Value: value})
}
