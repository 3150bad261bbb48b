package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/folio/internal/editor"
	"github.com/thoreinstein/folio/internal/errors"
	"github.com/thoreinstein/folio/internal/page"
	"github.com/thoreinstein/folio/internal/posts"
	"github.com/thoreinstein/folio/pkg/fileutil"
	"github.com/thoreinstein/folio/pkg/frontmatter"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit [query]",
	Short: "Pick a post and open it in $EDITOR",
	Long: `Pick a post from the posts directory with a fuzzy finder and open it
in $EDITOR ($VISUAL, nano or vi as fallbacks).

When [query] is exactly a post's slug the finder is skipped.`,
	Example: `  # Choose interactively
  folio edit

  # Start the finder filtered on "go"
  folio edit go

  # Open blog/posts/hello-world.md directly
  folio edit hello-world

  See Also: folio new`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

// postFile is a candidate in the edit picker.
type postFile struct {
	Path  string
	Slug  string
	Title string
	Date  string
}

// listPostFiles returns the Markdown files under dir with their title and
// date when the frontmatter has them. Unreadable frontmatter leaves those
// fields blank.
func listPostFiles(dir string) ([]postFile, error) {
	pages, err := page.Collect(dir, page.CollectOptions{})
	if err != nil {
		return nil, err
	}

	files := make([]postFile, 0, len(pages))
	for _, p := range pages {
		pf := postFile{Path: p.SourcePath(), Slug: page.Stem(p.SourcePath())}
		if f, err := os.Open(p.SourcePath()); err == nil {
			meta := posts.Metadata{}
			if frontmatter.ParseHeader(f, &meta) == nil {
				pf.Title = meta.Title()
				if d, err := meta.Date(); err == nil {
					pf.Date = d.Format(time.DateOnly)
				}
			}
			f.Close()
		}
		files = append(files, pf)
	}
	return files, nil
}

func (p postFile) label() string {
	switch {
	case p.Title != "" && p.Date != "":
		return fmt.Sprintf("%s  %s (%s)", p.Date, p.Title, p.Slug)
	case p.Title != "":
		return fmt.Sprintf("%s (%s)", p.Title, p.Slug)
	}
	return p.Slug
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()
	dir, err := cfg.PostsPath()
	if err != nil {
		return errors.NewConfigError(err)
	}

	files, err := listPostFiles(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.NewUserError(errors.Mark(err, errors.ErrNotFound), "Create a post first: folio new <title> <description>")
		}
		return errors.NewSystemError(err, "")
	}
	if len(files) == 0 {
		return errors.NewUserError(errors.Wrapf(errors.ErrNotFound, "no posts in %s", dir), "Create a post first: folio new <title> <description>")
	}

	var query string
	if len(args) > 0 {
		query = args[0]
		for _, f := range files {
			if f.Slug == query {
				return openPost(cmd, f.Path)
			}
		}
	}

	idx, err := fuzzyfinder.Find(
		files,
		func(i int) string { return files[i].label() },
		fuzzyfinder.WithQuery(query),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			data, err := fileutil.ReadFileWithLimit(files[i].Path)
			if err != nil {
				return err.Error()
			}
			return string(data)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.NewSystemError(errors.Wrap(err, "selecting post"), "")
	}
	return openPost(cmd, files[idx].Path)
}

func openPost(cmd *cobra.Command, path string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Location: %s\n", path)
	if err := editor.Open(cmd.Context(), path); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to your editor command")
	}
	return nil
}
