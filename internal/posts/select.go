package posts

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/thoreinstein/folio/internal/errors"
	"github.com/thoreinstein/folio/internal/logging"
	"github.com/thoreinstein/folio/internal/page"
	"github.com/thoreinstein/folio/pkg/frontmatter"
)

// Selector picks recent posts out of a page set.
type Selector struct {
	logger *slog.Logger
}

// NewSelector creates a Selector. A nil logger discards output.
func NewSelector(logger *slog.Logger) *Selector {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Selector{logger: logger}
}

// SelectRecent returns up to limit posts from pages, newest first.
// See [Selector.Select].
func SelectRecent(pages []page.Page, limit int) ([]Metadata, error) {
	return NewSelector(nil).Select(pages, limit)
}

type dated struct {
	meta Metadata
	date time.Time
}

// Select reads the frontmatter of every page once, keeps pages of type
// "post", sets their "url" from the page handle (and "title" from the file
// name when it is absent, null or empty) and returns them sorted by date, newest first. Posts
// with equal dates keep their order in pages.
//
// A limit of 0 returns every post; a negative limit returns none.
// The first read, parse or date error aborts the selection.
func (s *Selector) Select(pages []page.Page, limit int) ([]Metadata, error) {
	var selected []dated
	for _, p := range pages {
		meta, err := readMetadata(p.SourcePath())
		if err != nil {
			return nil, err
		}

		if !meta.IsPost() {
			s.logger.Log(context.Background(), logging.LevelTrace, "skipping page", "path", p.SourcePath(), "type", meta.Type())
			continue
		}

		date, err := meta.Date()
		if err != nil {
			return nil, errors.Wrapf(err, "%s", p.SourcePath())
		}

		meta[KeyURL] = p.URL()
		if !meta.HasTitle() {
			meta[KeyTitle] = titleFromPath(p.SourcePath())
		}

		s.logger.Debug("found post", "path", p.SourcePath(), "date", date.Format(time.DateOnly))
		selected = append(selected, dated{meta: meta, date: date})
	}

	slices.SortStableFunc(selected, func(a, b dated) int {
		return b.date.Compare(a.date)
	})

	n := len(selected)
	switch {
	case limit < 0:
		n = 0
	case limit > 0 && limit < n:
		n = limit
	}

	result := make([]Metadata, n)
	for i := range result {
		result[i] = selected[i].meta
	}

	s.logger.Info("selected recent posts", "pages", len(pages), "posts", len(selected), "returned", n)
	return result, nil
}

// readMetadata opens path, decodes its frontmatter header and closes it.
// Files without frontmatter yield empty metadata.
func readMetadata(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening page")
	}
	defer f.Close()

	meta := Metadata{}
	if err := frontmatter.ParseHeader(f, &meta); err != nil {
		return nil, errors.Wrapf(err, "parsing frontmatter of %s", path)
	}
	if meta == nil {
		meta = Metadata{}
	}
	return meta, nil
}

// titleFromPath turns "blog/posts/hello-world.md" into "Hello World".
func titleFromPath(path string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(page.Stem(path))
	return cases.Title(language.English).String(words)
}
