package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// bodyContext is the context element fragments are parsed in, matching how
// an editor assigns markup to a container's innerHTML.
var bodyContext = &html.Node{
	Type:     html.ElementNode,
	Data:     "body",
	DataAtom: atom.Body,
}

// Parse builds a content tree from a markup fragment. It never fails: if the
// HTML parser gives up, the result is a single text node holding the text
// that could be extracted. The returned root is an unnamed TagOther element.
func Parse(markup string) *Node {
	root := NewElement("", nil)
	if markup == "" {
		return root
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), bodyContext)
	if err != nil {
		root.Children = []*Node{NewText(PlainText(markup))}
		return root
	}
	for _, n := range nodes {
		if c := FromHTML(n); c != nil {
			root.Children = append(root.Children, c)
		}
	}
	return root
}

// PlainText extracts the text tokens of markup without building a tree.
func PlainText(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

// FromHTML converts a parsed DOM subtree into a content tree. Comments,
// doctypes and other non-content nodes are dropped; a document node becomes
// an unnamed root. It returns nil if n carries no content.
func FromHTML(n *html.Node) *Node {
	root := convertHTMLNode(n)
	if root == nil || root.Kind == KindText {
		return root
	}

	type frame struct {
		src *html.Node
		dst *Node
	}
	stack := []frame{{src: n, dst: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for c := f.src.FirstChild; c != nil; c = c.NextSibling {
			child := convertHTMLNode(c)
			if child == nil {
				continue
			}
			f.dst.Children = append(f.dst.Children, child)
			if child.Kind == KindElement {
				stack = append(stack, frame{src: c, dst: child})
			}
		}
	}
	return root
}

func convertHTMLNode(n *html.Node) *Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case html.TextNode:
		return NewText(n.Data)
	case html.ElementNode:
		var attrs map[string]string
		if len(n.Attr) > 0 {
			attrs = make(map[string]string, len(n.Attr))
			for _, a := range n.Attr {
				if a.Namespace != "" {
					continue
				}
				attrs[strings.ToLower(a.Key)] = a.Val
			}
		}
		return NewElement(n.Data, attrs)
	case html.DocumentNode:
		return NewElement("", nil)
	default:
		return nil
	}
}
