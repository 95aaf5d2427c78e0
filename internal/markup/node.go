// Package markup provides the renderable visual tree produced by the
// invitation engine. A tree is built once per render call and serialized to
// HTML by the caller; nodes carry no behavior and no back-references, so a
// tree can be shared freely between goroutines.
package markup

import (
	"sort"
	"strings"
)

// Kind distinguishes the three node shapes the serializer understands.
type Kind int

const (
	// KindElement is a named element with attributes and children.
	KindElement Kind = iota
	// KindText is an escaped text leaf.
	KindText
	// KindRaw is a pre-rendered HTML fragment inserted verbatim. Only
	// trusted producers (the markdown note renderer) create raw nodes.
	KindRaw
)

// Node is one vertex of the visual tree.
type Node struct {
	kind     Kind
	tag      string
	text     string
	attrs    map[string]string
	styles   map[string]string
	classes  []string
	children []*Node
}

// El creates an element node with the given tag and children. Nil children
// are skipped so conditional element builders can return nil for "absent".
func El(tag string, children ...*Node) *Node {
	n := &Node{kind: KindElement, tag: tag}
	return n.Append(children...)
}

// Text creates an escaped text leaf.
func Text(s string) *Node {
	return &Node{kind: KindText, text: s}
}

// Raw creates a verbatim HTML leaf. The caller is responsible for the
// fragment being well formed and sanitized.
func Raw(html string) *Node {
	return &Node{kind: KindRaw, text: html}
}

// Kind reports the node's kind.
func (n *Node) Kind() Kind { return n.kind }

// Tag returns the element name, or "" for leaves.
func (n *Node) Tag() string { return n.tag }

// TextContent returns the text of a text or raw leaf.
func (n *Node) TextContent() string { return n.text }

// Children returns the child slice. Callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// Append adds children, skipping nils, and returns the node for chaining.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}

// WithAttr sets an attribute and returns the node for chaining.
func (n *Node) WithAttr(key, value string) *Node {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
	return n
}

// Attr returns the attribute value and whether it is set.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// WithStyle sets one inline style property and returns the node for chaining.
func (n *Node) WithStyle(property, value string) *Node {
	if n.styles == nil {
		n.styles = make(map[string]string)
	}
	n.styles[property] = value
	return n
}

// Style returns the inline style value and whether it is set.
func (n *Node) Style(property string) (string, bool) {
	v, ok := n.styles[property]
	return v, ok
}

// WithClass appends class names and returns the node for chaining.
func (n *Node) WithClass(names ...string) *Node {
	n.classes = append(n.classes, names...)
	return n
}

// HasClass reports whether the node carries the given class name.
func (n *Node) HasClass(name string) bool {
	for _, c := range n.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Classes returns the class list. Callers must not mutate it.
func (n *Node) Classes() []string { return n.classes }

// sortedAttrKeys returns attribute keys in a stable order so that serialized
// output is deterministic for identical trees.
func (n *Node) sortedAttrKeys() []string {
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// styleAttr flattens the style map into a deterministic CSS declaration list.
func (n *Node) styleAttr() string {
	if len(n.styles) == 0 {
		return ""
	}
	keys := make([]string, 0, len(n.styles))
	for k := range n.styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(n.styles[k])
	}
	return b.String()
}

// Find returns the first node in the tree (depth-first, self included) for
// which the predicate holds, or nil. Primarily a test helper, but also used
// by callers that post-process trees (e.g. export sizing overrides).
func (n *Node) Find(pred func(*Node) bool) *Node {
	if n == nil {
		return nil
	}
	if pred(n) {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(pred); found != nil {
			return found
		}
	}
	return nil
}

// FindByClass returns the first descendant carrying the given class.
func (n *Node) FindByClass(name string) *Node {
	return n.Find(func(node *Node) bool { return node.HasClass(name) })
}

// VisibleText concatenates all text leaves in document order. Raw fragments
// are included verbatim. Useful for assertions on rendered content.
func (n *Node) VisibleText() string {
	var b strings.Builder
	n.collectText(&b)
	return b.String()
}

func (n *Node) collectText(b *strings.Builder) {
	if n == nil {
		return
	}
	if n.kind == KindText || n.kind == KindRaw {
		b.WriteString(n.text)
		return
	}
	for _, c := range n.children {
		c.collectText(b)
	}
}
