package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adarshpam3/contentcrafty-sub000/core"
)

// resetFlags restores every flag to its default so runs don't leak state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--log_level", "error"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertInline(t *testing.T) {
	db := filepath.Join(t.TempDir(), "c.db")

	out, err := execute(t, "", "convert", "--db", db, "--html", "<h1>Hello</h1><p>Hi <b>there</b></p>")
	require.NoError(t, err)
	assert.Equal(t, "# Hello\n\nHi **there**\n", out)

	out, err = execute(t, "", "convert", "--db", db, "--policy", "flattened", "--html", "<h1>Hello</h1><p>Hi <b>there</b></p>")
	require.NoError(t, err)
	assert.Equal(t, "# Hello\n\nHi there\n", out)
}

func TestConvertStdinAndSanitize(t *testing.T) {
	db := filepath.Join(t.TempDir(), "c.db")

	out, err := execute(t, "<ol><li>a</li></ol><script>var x</script>", "convert", "--db", db, "-")
	require.NoError(t, err)
	assert.Equal(t, "1. a\n", out)

	out, err = execute(t, "<p>a</p><script>var x</script>", "convert", "--db", db, "--sanitize=false", "-")
	require.NoError(t, err)
	assert.Equal(t, "a\n\nvar x\n", out)
}

func TestConvertFileJSON(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "draft.html")
	require.NoError(t, os.WriteFile(src, []byte(`<h2>Boots</h2><ul><li><a href="/b">Buy</a></li></ul>`), 0o644))

	out, err := execute(t, "", "convert", "--db", filepath.Join(dir, "c.db"), "--format", "json", src)
	require.NoError(t, err)

	var got core.ViewJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Boots", got.Metadata.Title)
	assert.Equal(t, "## Boots\n\n\n* [Buy](/b)", got.Text)
	assert.Equal(t, []core.Link{{Text: "Buy", Href: "/b"}}, got.Structure.Links)
}

func TestConvertPDFWritesFile(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "", "convert", "--db", filepath.Join(dir, "c.db"),
		"--format", "pdf", "--output_dir", dir, "--title", "Spring Sale", "--html", "<h1>Sale</h1>")
	require.NoError(t, err)
	assert.Contains(t, out, "Written")

	data, err := os.ReadFile(filepath.Join(dir, "spring_sale.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestConvertErrors(t *testing.T) {
	db := filepath.Join(t.TempDir(), "c.db")

	_, err := execute(t, "", "convert", "--db", db, "--format", "docx", "--html", "<p>x</p>")
	assert.Error(t, err)

	_, err = execute(t, "", "convert", "--db", db, "--html", "<p>x</p>", "file.html")
	assert.Error(t, err)

	_, err = execute(t, "", "convert", "--db", db, "--policy", "sideways", "--html", "<p>x</p>")
	assert.Error(t, err)
}

func TestProjectAndArticleFlow(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "c.db")

	out, err := execute(t, "", "project", "create", "Outdoor Shop", "--db", db)
	require.NoError(t, err)
	projectID := strings.TrimSpace(out)
	require.NotEmpty(t, projectID)

	out, err = execute(t, "", "project", "list", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Outdoor Shop")

	markup := `<h1>Tents</h1><p>Stay <em>dry</em>.</p>`
	out, err = execute(t, markup, "article", "add", projectID, "--db", db, "--kind", "category", "--title", "Tents")
	require.NoError(t, err)
	articleID := strings.TrimSpace(out)
	require.NotEmpty(t, articleID)

	out, err = execute(t, "", "article", "list", projectID, "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "category\tTents")

	out, err = execute(t, "", "article", "show", articleID, "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "# Tents\n\nStay _dry_.\n", out)

	_, err = execute(t, "", "article", "rm", articleID, "--db", db)
	require.NoError(t, err)

	_, err = execute(t, "", "article", "show", articleID, "--db", db)
	assert.Error(t, err)

	_, err = execute(t, markup, "article", "add", "no-such-project", "--db", db)
	assert.Error(t, err)
}

func TestConvertURLStripsChrome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Guide</title></head><body>
<nav><a href="/">Home</a></nav><main><h1>Packing</h1><p>Bring <code>water</code>.</p></main>
<footer>footer</footer></body></html>`))
	}))
	defer srv.Close()

	out, err := execute(t, "", "convert", "--db", filepath.Join(t.TempDir(), "c.db"), "--format", "json", srv.URL)
	require.NoError(t, err)

	var got core.ViewJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Guide", got.Metadata.Title)
	assert.Equal(t, srv.URL, got.Metadata.Source)
	assert.Equal(t, "# Packing\n\nBring `water`.", got.Text)
}

func TestSourceNamedInlineIsAFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inline"), []byte("<h2>From file</h2>"), 0o644))
	t.Chdir(dir)
	db := filepath.Join(dir, "c.db")

	out, err := execute(t, "", "convert", "--db", db, "inline")
	require.NoError(t, err)
	assert.Equal(t, "## From file\n", out)

	out, err = execute(t, "", "project", "create", "Docs", "--db", db)
	require.NoError(t, err)
	projectID := strings.TrimSpace(out)

	out, err = execute(t, "", "article", "add", projectID, "--db", db, "--file", "inline", "--title", "F")
	require.NoError(t, err)
	articleID := strings.TrimSpace(out)

	out, err = execute(t, "", "article", "show", articleID, "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "## From file\n", out)
}
