package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/folio/internal/config"
	"github.com/thoreinstein/folio/internal/errors"
	"github.com/thoreinstein/folio/internal/logging"
	"github.com/thoreinstein/folio/internal/page"
	"github.com/thoreinstein/folio/internal/posts"
	"github.com/thoreinstein/folio/internal/render"
	"github.com/thoreinstein/folio/internal/watch"
	"github.com/thoreinstein/folio/pkg/frontmatter"
)

var (
	recentLimit   int
	recentFormat  string
	recentDocsDir string
	recentWatch   bool
)

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 0, "maximum number of posts, 0 for all (default: recent_limit setting)")
	recentCmd.Flags().StringVarP(&recentFormat, "format", "f", string(render.FormatText), "output format: text, json, markdown, html")
	recentCmd.Flags().StringVar(&recentDocsDir, "docs-dir", "", "content root (default: docs_dir setting)")
	recentCmd.Flags().BoolVarP(&recentWatch, "watch", "w", false, "re-render whenever content changes")
	rootCmd.AddCommand(recentCmd)
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List the most recent posts",
	Long: `List the most recent posts under the docs directory.

Every Markdown page matched by the include/exclude settings is read once.
Pages whose frontmatter type is "post" are sorted by date, newest first,
and the first --limit are printed. Each post's url is resolved from its
location the way the site is published.

A post without a date, or with a date that cannot be parsed, is an error.`,
	Example: `  # The six newest posts (recent_limit)
  folio recent

  # Every post, as JSON
  folio recent --limit 0 --format json

  # Regenerate an HTML fragment on every change
  folio recent --format html --watch

  See Also: folio new`,
	Args: cobra.NoArgs,
	RunE: runRecent,
}

// recentOptions resolves flags against the config.
func recentOptions(cmd *cobra.Command, cfg *config.Config) (string, int, render.Format, error) {
	format, err := render.ParseFormat(recentFormat)
	if err != nil {
		return "", 0, "", errors.NewUserError(errors.Mark(err, errors.ErrInvalidArgument), "Use --format text, json, markdown or html")
	}

	limit := cfg.RecentLimit
	if cmd.Flags().Changed("limit") {
		limit = recentLimit
	}

	docsDir := recentDocsDir
	if docsDir == "" {
		docsDir = cfg.DocsDir
	}
	return docsDir, limit, format, nil
}

func runRecent(cmd *cobra.Command, _ []string) error {
	cfg := currentConfig()
	docsDir, limit, format, err := recentOptions(cmd, cfg)
	if err != nil {
		return err
	}

	build := func(ctx context.Context) error {
		return listRecent(ctx, cmd.OutOrStdout(), cfg, docsDir, limit, format)
	}

	if err := build(cmd.Context()); err != nil {
		return err
	}
	if !recentWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logging.FromContext(ctx).Info("watching for changes", "dir", docsDir)
	err = watch.Watch(ctx, []string{docsDir}, watch.DefaultDebounce, func(ctx context.Context) error {
		fmt.Fprintln(cmd.OutOrStdout())
		return build(ctx)
	})
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	return nil
}

// listRecent collects pages under docsDir, selects the recent posts and
// writes them to w.
func listRecent(ctx context.Context, w io.Writer, cfg *config.Config, docsDir string, limit int, format render.Format) error {
	logger := logging.FromContext(ctx)

	pages, err := page.Collect(docsDir, page.CollectOptions{
		Include:       cfg.Include,
		Exclude:       cfg.Exclude,
		DirectoryURLs: cfg.UseDirectoryURLs,
		SiteURL:       cfg.SiteURL,
	})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.NewUserError(errors.Mark(err, errors.ErrNotFound), "Run folio from the site root or pass --docs-dir")
		}
		return errors.NewSystemError(err, "")
	}
	logger.Debug("collected pages", "dir", docsDir, "count", len(pages))

	selected, err := posts.NewSelector(logger).Select(pages, limit)
	switch {
	case errors.Is(err, posts.ErrMissingDate), errors.Is(err, posts.ErrInvalidDate):
		return errors.NewUserError(err, `Give every post a "date: YYYY-MM-DD" frontmatter line`)
	case errors.Is(err, frontmatter.ErrInvalidMatter), errors.Is(err, frontmatter.ErrUnterminated):
		return errors.NewUserError(err, "Fix the frontmatter block of the page named above")
	case err != nil:
		return errors.NewSystemError(err, "")
	}

	if err := render.Write(w, selected, format); err != nil {
		return errors.NewSystemError(err, "")
	}
	return nil
}
