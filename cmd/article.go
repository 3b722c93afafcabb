package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/adarshpam3/contentcrafty-sub000/core/render"
	"github.com/adarshpam3/contentcrafty-sub000/core/store"
)

var (
	flagArticleFile  string
	flagArticleKind  string
	flagArticleTitle string
)

var articleCmd = &cobra.Command{
	Use:   "article",
	Short: "Manage generated articles and category descriptions",
}

var articleAddCmd = &cobra.Command{
	Use:   "add <project-id>",
	Short: "Store generated markup as an article",
	Long: `Add stores markup read from --file (or stdin) under a project. The markup
is kept exactly as given; plain views are produced when the article is shown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := flagArticleFile
		if source == "" {
			source = "-"
		}
		markup, _, err := readSource(cmd.Context(), cmd.InOrStdin(), source)
		if err != nil {
			return err
		}
		kind, err := store.ParseKind(flagArticleKind)
		if err != nil {
			return err
		}

		return withStore(cmd, func(ctx context.Context, s *store.Store) error {
			if _, err := s.GetProject(ctx, args[0]); err != nil {
				return err
			}
			a := &store.Article{
				ProjectID: args[0],
				Kind:      kind,
				Title:     flagArticleTitle,
				Markup:    markup,
			}
			if err := s.SaveArticle(ctx, a); err != nil {
				return err
			}
			logger.Info("stored article", zap.String("id", a.ID), zap.String("project", a.ProjectID))
			fmt.Fprintln(cmd.OutOrStdout(), a.ID)
			return nil
		})
	},
}

var articleListCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "List a project's articles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, s *store.Store) error {
			articles, err := s.ListArticles(ctx, args[0])
			if err != nil {
				return err
			}
			for _, a := range articles {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", a.ID, a.Kind, a.Title)
			}
			return nil
		})
	},
}

var articleShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an article's plain view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := render.ByName(flagFormat)
		if err != nil {
			return err
		}
		return withStore(cmd, func(ctx context.Context, s *store.Store) error {
			view, err := newPreviewService(false).Article(ctx, s, args[0])
			if err != nil {
				return err
			}
			return emit(cmd, renderer, view)
		})
	},
}

var articleRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, s *store.Store) error {
			return s.DeleteArticle(ctx, args[0])
		})
	},
}

func init() {
	articleAddCmd.Flags().StringVar(&flagArticleFile, "file", "", "Markup file to store (default: stdin)")
	articleAddCmd.Flags().StringVar(&flagArticleKind, "kind", "blog", "Article kind: blog or category")
	articleAddCmd.Flags().StringVar(&flagArticleTitle, "title", "", "Article title")
	addRenderFlags(articleShowCmd)

	articleCmd.AddCommand(articleAddCmd, articleListCmd, articleShowCmd, articleRmCmd)
	rootCmd.AddCommand(articleCmd)
}
