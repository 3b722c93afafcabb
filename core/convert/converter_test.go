package convert

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adarshpam3/contentcrafty-sub000/core/markup"
)

func el(name string, children ...*markup.Node) *markup.Node {
	return markup.NewElement(name, nil, children...)
}

func text(s string) *markup.Node {
	return markup.NewText(s)
}

func TestConvertNode(t *testing.T) {
	tests := []struct {
		name string
		tree *markup.Node
		want string
	}{
		{"heading 1", el("h1", text("Hello")), "# Hello"},
		{"heading 2", el("h2", text("Sub")), "## Sub"},
		{"heading 3 upper case", el("H3", text("Deep")), "### Deep"},
		{"paragraph", el("p", text("Body")), "Body"},
		{"bold", el("b", text("x")), "**x**"},
		{"italic", el("em", text("x")), "_x_"},
		{"line break", el("span", text("a"), el("br"), text("b")), "a\nb"},
		{"inline code", el("code", text("go test")), "`go test`"},
		{"code block", el("pre", el("code", text("x := 1"))), "```\nx := 1\n```"},
		{"unknown tag", el("span", text("raw text")), "raw text"},
		{"heading 4 is unknown", el("h4", text("plain")), "plain"},
		{"empty text", text(""), ""},
		{"empty element", el("p"), ""},
		{"nil tree", nil, ""},
		{
			"link",
			markup.NewElement("a", map[string]string{"href": "https://example.com"}, text("site")),
			"[site](https://example.com)",
		},
		{"link without href", el("a", text("click")), "[click]()"},
		{
			"ordered list",
			el("ol", el("li", text("First")), el("li", text("Second"))),
			"1. First\n2. Second",
		},
		{
			"unordered list",
			el("ul", el("li", text("one")), el("li", el("strong", text("two")))),
			"* one\n* **two**",
		},
		{
			"list skips whitespace text",
			el("ul", text("\n  "), el("li", text("one")), text("\n")),
			"* one",
		},
		{
			"list keeps text children as items",
			el("ul", text("stray note"), el("li", text("a"))),
			"* stray note\n* a",
		},
		{
			"nested emphasis recurses",
			el("p", text("Hi "), el("strong", text("there"))),
			"Hi **there**",
		},
	}
	c := New(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ConvertNode(tt.tree))
		})
	}
}

func TestFlattenedPolicy(t *testing.T) {
	c := New(Options{Policy: PolicyFlattened})

	tests := []struct {
		name string
		tree *markup.Node
		want string
	}{
		{
			"paragraph with strong child renders flattened text",
			el("p", text("Hi "), el("strong", text("there"))),
			"Hi there",
		},
		{"heading flattens", el("h1", text("Hello "), el("em", text("world"))), "# Hello world"},
		{
			"lists still convert items",
			el("ol", el("li", el("i", text("a"))), el("b", text("b"))),
			"1. a\n2. **b**",
		},
		{
			"fragment root keeps structure",
			el("", el("h1", text("T")), el("p", text("Body"))),
			"# T\n\nBody",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ConvertNode(tt.tree))
		})
	}
}

func TestConvertMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \n ", ""},
		{"heading and paragraph", "<h1>Title</h1><p>Body text.</p>", "# Title\n\nBody text."},
		{"heading with emphasis", "<h1>Hello <em>world</em></h1>", "# Hello _world_"},
		{"parsed list", "<ul>\n  <li>one</li>\n  <li><b>two</b></li>\n</ul>", "* one\n* **two**"},
		{"link in paragraph", `<p>See <a href="https://x.io">docs</a></p>`, "See [docs](https://x.io)"},
		{"inline code", "<p>Use <code>go test</code></p>", "Use `go test`"},
		{"code block", "<pre><code>x := 1</code></pre>", "```\nx := 1\n```"},
		{"line break", "a<br>b", "a\nb"},
		{"malformed", "<p>unclosed <b>bold", "unclosed **bold**"},
		{"stray closing tags", "</div>text</p>", "text"},
		{
			"numbering restarts per list",
			"<ol><li>a</li><li>b</li></ol><ol><li>c</li></ol>",
			"1. a\n2. b\n\n1. c",
		},
		{
			"nested list",
			"<ul><li>a<ul><li>b</li></ul></li></ul>",
			"* a\n* b",
		},
		{"unknown tag", "<span>raw text</span>", "raw text"},
		{"list text before items", "<ol>Steps: <li>a</li><li>b</li></ol>", "1. Steps: \n2. a\n3. b"},
		{"entities decoded", "<p>Fish &amp; chips</p>", "Fish & chips"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.input))
		})
	}
}

func TestConvertDeterministic(t *testing.T) {
	input := `<h2>Specs</h2><ol><li><b>Fast</b></li><li><a href="/x">Linked</a></li></ol><pre>code</pre>`
	first := Convert(input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Convert(input))
	}
}

func TestConvertConcurrent(t *testing.T) {
	c := New(Options{})
	input := "<h1>Hello</h1><ul><li>one</li><li>two</li></ul>"
	want := c.Convert(input)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Convert(input)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestConvertDeepNesting(t *testing.T) {
	const depth = 200000
	leaf := text("deep")
	node := leaf
	for i := 0; i < depth; i++ {
		node = el("span", node)
	}
	assert.Equal(t, "deep", New(Options{}).ConvertNode(node))
	assert.Equal(t, "deep", New(Options{Policy: PolicyFlattened}).ConvertNode(node))
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyRecursive, p)

	p, err = ParsePolicy("Flattened")
	require.NoError(t, err)
	assert.Equal(t, PolicyFlattened, p)
	assert.Equal(t, "flattened", p.String())
	assert.Equal(t, PolicyFlattened, New(Options{Policy: p}).Policy())

	_, err = ParsePolicy("sideways")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "sideways"))
}
