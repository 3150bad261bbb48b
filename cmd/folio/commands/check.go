package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/folio/internal/errors"
	"github.com/thoreinstein/folio/internal/logging"
	"github.com/thoreinstein/folio/internal/page"
	"github.com/thoreinstein/folio/internal/posts"
	"github.com/thoreinstein/folio/internal/validator"
)

var (
	checkFormat  string
	checkDocsDir string
	checkStrict  bool
)

func init() {
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", string(validator.FormatText), "output format: text, json")
	checkCmd.Flags().StringVar(&checkDocsDir, "docs-dir", "", "content root (default: docs_dir setting)")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "fail on warnings too")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check post frontmatter",
	Long: `Check the frontmatter of every post and report all problems at once.

Errors (these also make "folio recent" fail):
  - frontmatter that cannot be parsed
  - a missing or unparseable date
  - two posts publishing to the same URL

Warnings: a missing title or description, tags that are not a list.
Notes: a file name that differs from the slug of the title.`,
	Example: `  # Check the site
  folio check

  # Machine-readable, failing on warnings as well
  folio check --format json --strict

  See Also: folio recent`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg := currentConfig()

	var format validator.Format
	switch validator.Format(checkFormat) {
	case validator.FormatText, validator.FormatJSON:
		format = validator.Format(checkFormat)
	default:
		return errors.NewUserError(errors.Newf("unknown format %q", checkFormat), "Use --format text or --format json")
	}

	docsDir := checkDocsDir
	if docsDir == "" {
		docsDir = cfg.DocsDir
	}

	pages, err := page.Collect(docsDir, page.CollectOptions{
		Include:       cfg.Include,
		Exclude:       cfg.Exclude,
		DirectoryURLs: cfg.UseDirectoryURLs,
		SiteURL:       cfg.SiteURL,
	})
	if err != nil {
		return errors.NewSystemError(err, "")
	}

	result := posts.Lint(pages)
	logging.FromContext(cmd.Context()).Debug("checked pages", "count", result.Checked, "issues", len(result.Issues))

	if err := validator.NewReporter(cmd.OutOrStdout(), format).Report(result); err != nil {
		return errors.NewSystemError(err, "")
	}

	if result.HasErrors() || (checkStrict && result.HasWarnings()) {
		return errors.NewExitError(errors.New("check found problems"), errors.ExitUser)
	}
	return nil
}
