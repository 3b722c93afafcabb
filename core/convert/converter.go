// Package convert renders a markup tree as the compact plain view shown by
// the editor's preview toggle: headings, emphasis, lists, links and code
// survive as lightweight punctuation markers, everything else as text.
//
// Conversion is pure and total. A Converter holds no mutable state and may be
// shared between goroutines.
package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adarshpam3/contentcrafty-sub000/core/markup"
)

// Policy selects what text a container element wraps in its markers.
type Policy int

const (
	// PolicyRecursive wraps the converted children, so nested structure
	// such as a bold word inside a heading keeps its markers.
	PolicyRecursive Policy = iota
	// PolicyFlattened wraps the flattened text content. Lists still
	// convert each item.
	PolicyFlattened
)

func (p Policy) String() string {
	if p == PolicyFlattened {
		return "flattened"
	}
	return "recursive"
}

// ParsePolicy parses a policy name. The empty string selects the default.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "recursive":
		return PolicyRecursive, nil
	case "flattened", "flat":
		return PolicyFlattened, nil
	default:
		return PolicyRecursive, fmt.Errorf("unknown conversion policy %q", s)
	}
}

// Options configures a Converter.
type Options struct {
	Policy Policy
}

// Converter turns markup into the plain view.
type Converter struct {
	opts Options
}

// New creates a Converter.
func New(opts Options) *Converter {
	return &Converter{opts: opts}
}

var defaultConverter = New(Options{})

// Convert parses raw markup and converts it with the default options.
func Convert(raw string) string {
	return defaultConverter.Convert(raw)
}

// Policy reports the converter's policy.
func (c *Converter) Policy() Policy {
	return c.opts.Policy
}

// Convert parses markup and converts the resulting tree.
func (c *Converter) Convert(raw string) string {
	return c.ConvertNode(markup.Parse(raw))
}

// frame is a partially converted element on the walk stack.
type frame struct {
	node  *markup.Node
	visit []*markup.Node
	next  int
	parts []string
}

// ConvertNode converts a tree and trims the result. The walk uses an
// explicit stack so deeply nested input does not grow the call stack.
func (c *Converter) ConvertNode(root *markup.Node) string {
	var (
		stack []*frame
		out   string
	)
	emit := func(s string) {
		if len(stack) == 0 {
			out = s
			return
		}
		top := stack[len(stack)-1]
		top.parts = append(top.parts, s)
	}
	enter := func(n *markup.Node) {
		if s, ok := c.leaf(n); ok {
			emit(s)
			return
		}
		stack = append(stack, &frame{node: n, visit: c.children(n)})
	}

	enter(root)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next < len(top.visit) {
			child := top.visit[top.next]
			top.next++
			enter(child)
			continue
		}
		stack = stack[:len(stack)-1]
		emit(c.assemble(top.node, top.parts))
	}
	return strings.TrimSpace(out)
}

// leaf returns the conversion of n when it needs no child conversions.
func (c *Converter) leaf(n *markup.Node) (string, bool) {
	if n == nil {
		return "", true
	}
	if n.Kind == markup.KindText {
		return n.Text, true
	}
	switch n.Tag {
	case markup.TagBreak:
		return "\n", true
	case markup.TagCode:
		return "`" + n.TextContent() + "`", true
	case markup.TagPre:
		return "\n```\n" + n.TextContent() + "\n```\n", true
	case markup.TagUnorderedList, markup.TagOrderedList:
		return "", false
	}
	// An unnamed element is a fragment root and always converts its children.
	if c.opts.Policy == PolicyFlattened && n.Name != "" {
		return wrap(n, n.TextContent()), true
	}
	return "", false
}

// children lists the nodes whose conversions assemble(n) consumes. List
// items are elements and non-blank text; whitespace between items is not
// an item.
func (c *Converter) children(n *markup.Node) []*markup.Node {
	switch n.Tag {
	case markup.TagUnorderedList, markup.TagOrderedList:
		return n.ListItems()
	default:
		return n.Children
	}
}

func (c *Converter) assemble(n *markup.Node, parts []string) string {
	switch n.Tag {
	case markup.TagUnorderedList:
		items := make([]string, len(parts))
		for i, p := range parts {
			items[i] = "* " + p
		}
		return "\n" + strings.Join(items, "\n") + "\n"
	case markup.TagOrderedList:
		items := make([]string, len(parts))
		for i, p := range parts {
			items[i] = strconv.Itoa(i+1) + ". " + p
		}
		return "\n" + strings.Join(items, "\n") + "\n"
	default:
		return wrap(n, strings.Join(parts, ""))
	}
}

// wrap applies the markers of a container element to text.
func wrap(n *markup.Node, text string) string {
	switch n.Tag {
	case markup.TagH1:
		return "# " + text + "\n\n"
	case markup.TagH2:
		return "## " + text + "\n\n"
	case markup.TagH3:
		return "### " + text + "\n\n"
	case markup.TagParagraph:
		return text + "\n\n"
	case markup.TagStrong:
		return "**" + text + "**"
	case markup.TagEmphasis:
		return "_" + text + "_"
	case markup.TagLink:
		return "[" + text + "](" + n.Attr("href") + ")"
	default:
		return text
	}
}
