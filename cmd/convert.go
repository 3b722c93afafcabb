// Package cmd — convert command.
// Converts ad-hoc markup to its plain view and renders it:
// read (file, URL, stdin or --html) → sanitize → convert → render → write.
package cmd

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adarshpam3/contentcrafty-sub000/core"
	"github.com/adarshpam3/contentcrafty-sub000/core/convert"
	"github.com/adarshpam3/contentcrafty-sub000/core/extract"
	"github.com/adarshpam3/contentcrafty-sub000/core/fetch"
	"github.com/adarshpam3/contentcrafty-sub000/core/output"
	"github.com/adarshpam3/contentcrafty-sub000/core/preview"
	"github.com/adarshpam3/contentcrafty-sub000/core/render"
)

// Flag variables.
var (
	flagHTML   string
	flagFormat string
	flagTitle  string
)

var convertCmd = &cobra.Command{
	Use:   "convert [file|url|-]",
	Short: "Convert markup to its plain view",
	Long: `Convert reads markup, strips scripts and other noise, and prints the
plain view: headings as #, bold as **, italics as _, lists as * or 1.,
links as [text](href) and code in backticks.

Examples:
  contentcrafty convert draft.html
  contentcrafty convert https://example.com/blog/post --format pdf --output_dir ./out
  echo '<h1>Hi</h1>' | contentcrafty convert -
  contentcrafty convert --html '<p>Hi <b>there</b></p>' --policy flattened`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&flagHTML, "html", "", "Inline markup to convert instead of a source")
	convertCmd.Flags().StringVar(&flagTitle, "title", "", "Title used in rendered output")
	addRenderFlags(convertCmd)
}

// addRenderFlags registers the output flags shared by convert and article show.
func addRenderFlags(c *cobra.Command) {
	c.Flags().StringVarP(&flagFormat, "format", "f", "plain", "Output format: "+strings.Join(render.Names, ", "))
	c.Flags().String("output_dir", "", "Write a file here instead of printing")
	c.Flags().Bool("sanitize", true, "Strip scripts and media before converting")
}

func runConvert(cmd *cobra.Command, args []string) error {
	renderer, err := render.ByName(flagFormat)
	if err != nil {
		return err
	}

	var (
		source  = "-"
		markup  string
		fromURL bool
	)
	if len(args) == 1 {
		source = args[0]
	}
	if cmd.Flags().Changed("html") {
		if len(args) == 1 {
			return fmt.Errorf("--html and a source argument are mutually exclusive")
		}
		source, markup = "--html", flagHTML
	} else {
		markup, fromURL, err = readSource(cmd.Context(), cmd.InOrStdin(), source)
		if err != nil {
			return err
		}
	}

	meta := core.ArticleMeta{Title: flagTitle, Source: source}
	if meta.Title == "" {
		meta.Title = extract.Title(markup)
	}

	svc := newPreviewService(fromURL)
	view := svc.FromMarkup(meta, markup)
	return emit(cmd, renderer, view)
}

// readSource loads markup from a URL, stdin ("-") or a file. It reports
// whether the markup came from the network.
func readSource(ctx context.Context, stdin io.Reader, source string) (string, bool, error) {
	switch {
	case source == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", false, fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), false, nil
	case isURL(source):
		if ctx == nil {
			ctx = context.Background()
		}
		result, err := newFetcher().Fetch(ctx, source)
		if err != nil {
			return "", true, fmt.Errorf("fetch: %w", err)
		}
		return result.HTML, true, nil
	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return "", false, fmt.Errorf("reading %s: %w", source, err)
		}
		return string(data), false, nil
	}
}

// newFetcher builds the fetcher for URL sources from the loaded config.
var newFetcher = func() core.Fetcher {
	return fetch.New(
		fetch.WithTimeout(cfg.HTTP.Timeout),
		fetch.WithUserAgent(cfg.HTTP.UserAgent),
		fetch.WithLogger(logger),
	)
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// newPreviewService wires the converter with the configured policy. Pages
// fetched from the web also lose their navigation and footer chrome.
func newPreviewService(stripChrome bool) *preview.Service {
	var sanitizer core.Extractor
	if cfg.Sanitize {
		sanitizer = extract.New(stripChrome)
	}
	converter := convert.New(convert.Options{Policy: cfg.Policy})
	return preview.New(converter, sanitizer, logger)
}

// emit renders view and prints it, or writes it to the output directory.
// PDF output always goes to a file.
func emit(cmd *cobra.Command, renderer core.Renderer, view core.PlainView) error {
	data, err := renderer.Render(view)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if cfg.OutputDir == "" && renderer.Extension() != ".pdf" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	name := view.Meta.Title
	if name == "" {
		name = view.Meta.Source
	}
	path, err := writer.Write(name, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	return nil
}
