package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/folio/internal/editor"
	"github.com/thoreinstein/folio/internal/errors"
	"github.com/thoreinstein/folio/internal/logging"
	"github.com/thoreinstein/folio/internal/scaffold"
)

var (
	newTags    []string
	newDate    string
	newDir     string
	newForce   bool
	newParents bool
	newEdit    bool
)

// now is replaced in tests.
var now = time.Now

func init() {
	newCmd.Flags().StringSliceVarP(&newTags, "tags", "t", nil, "post tags (comma-separated or repeated)")
	newCmd.Flags().StringVar(&newDate, "date", "", "post date as YYYY-MM-DD (default: today)")
	newCmd.Flags().StringVar(&newDir, "dir", "", "directory to write the post to (default: <docs_dir>/<posts_dir>)")
	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "overwrite an existing post")
	newCmd.Flags().BoolVarP(&newParents, "parents", "p", false, "create the posts directory if missing")
	newCmd.Flags().BoolVarP(&newEdit, "edit", "e", false, "open the new post in $EDITOR")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <title> <description>",
	Short: "Create a new blog post",
	Long: `Create a new blog post from the post template.

The file name is the slugified title ("Hello World" becomes
hello-world.md). The frontmatter records the title, description, tags,
date (today unless --date is given) and the hide list from the
default_hide setting.`,
	Example: `  # Create blog/posts/hello-world.md dated today
  folio new "Hello World" "My first post"

  # Tags and an explicit date
  folio new "Title" "Description" --tags python,django --date 2021-01-01

  # Write elsewhere, creating the directory
  folio new "Notes" "Scratch" --dir drafts --parents

  See Also: folio recent, folio edit`,
	Args: cobra.ExactArgs(2),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()
	logger := logging.FromContext(cmd.Context())

	post := scaffold.Post{
		Title:       args[0],
		Description: args[1],
		Tags:        newTags,
		Hide:        cfg.DefaultHide,
	}
	if newDate != "" {
		day, err := scaffold.ParseDay(newDate)
		if err != nil {
			return errors.NewUserError(errors.Mark(err, errors.ErrInvalidArgument), "Use an ISO date such as 2021-01-31")
		}
		post.Date = day
	}
	post = post.Normalize(now())

	dir := newDir
	if dir == "" {
		postsDir, err := cfg.PostsPath()
		if err != nil {
			return errors.NewConfigError(err)
		}
		dir = postsDir
	}

	path, err := scaffold.Create(dir, post, scaffold.CreateOptions{
		Force:    newForce,
		MkdirAll: newParents,
	})
	switch {
	case errors.Is(err, scaffold.ErrEmptySlug):
		return errors.NewUserError(err, "Use a title containing letters or digits")
	case errors.Is(err, scaffold.ErrPostExists):
		return errors.NewUserError(err, "Use --force to overwrite it, or choose another title")
	case errors.Is(err, os.ErrNotExist):
		return errors.NewSystemError(err, "Create the directory or pass --parents")
	case err != nil:
		return errors.NewSystemError(err, "")
	}

	logger.Info("created post", "path", path, "date", post.Date.String())
	fmt.Fprintln(cmd.OutOrStdout(), path)

	if newEdit {
		if err := editor.Open(cmd.Context(), path); err != nil {
			return errors.NewSystemError(err, "Set $EDITOR to your editor command")
		}
	}
	return nil
}
