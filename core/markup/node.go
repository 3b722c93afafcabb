// Package markup defines the content tree consumed by the plain-view
// converter and the parser that builds it from raw editor markup.
package markup

import "strings"

// Kind distinguishes text leaves from elements.
type Kind int

const (
	KindText Kind = iota
	KindElement
)

// Node is one element or text unit of a parsed content tree.
// Text nodes never have children.
type Node struct {
	Kind     Kind
	Tag      Tag
	Name     string // lower-cased tag name, empty for text and the fragment root
	Text     string // literal text, text nodes only
	Attrs    map[string]string
	Children []*Node
}

// NewText returns a text leaf.
func NewText(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// NewElement returns an element node. The name is normalized and classified.
func NewElement(name string, attrs map[string]string, children ...*Node) *Node {
	name = strings.ToLower(name)
	return &Node{
		Kind:     KindElement,
		Tag:      ClassifyTag(name),
		Name:     name,
		Attrs:    attrs,
		Children: children,
	}
}

// Attr returns the named attribute, or "" if absent.
func (n *Node) Attr(key string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[key]
}

// TextContent returns the flattened text of n and all its descendants.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.Kind == KindText {
		return n.Text
	}

	var b strings.Builder
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == nil {
			continue
		}
		if cur.Kind == KindText {
			b.WriteString(cur.Text)
			continue
		}
		// Push in reverse so children pop in document order.
		for i := len(cur.Children) - 1; i >= 0; i-- {
			stack = append(stack, cur.Children[i])
		}
	}
	return b.String()
}

// ListItems returns the children of n that count as list items: elements
// and text with visible content. Whitespace between tags is skipped.
func (n *Node) ListItems() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		if c.Kind == KindText && strings.TrimSpace(c.Text) == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}
