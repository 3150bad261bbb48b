package posts

import (
	"github.com/thoreinstein/folio/internal/errors"
	"github.com/thoreinstein/folio/internal/page"
	"github.com/thoreinstein/folio/internal/scaffold"
	"github.com/thoreinstein/folio/internal/validator"
)

// Lint inspects every page and reports problems with posts. Unlike Select
// it does not stop at the first bad page.
//
// Errors: unreadable frontmatter, a missing or unparseable date, two posts
// publishing to the same URL. Warnings: missing title or description, tags
// that are not a list of strings. Info: a file name that differs from the
// slug of the title.
func Lint(pages []page.Page) *validator.Result {
	result := &validator.Result{}
	urls := map[string]string{}

	for _, p := range pages {
		path := p.SourcePath()
		result.Checked++

		meta, err := readMetadata(path)
		if err != nil {
			result.AddError(path, "", errors.Wrap(err, "reading frontmatter").Error(), nil)
			continue
		}
		if !meta.IsPost() {
			continue
		}

		if _, err := meta.Date(); err != nil {
			if errors.Is(err, ErrMissingDate) {
				result.AddError(path, KeyDate, "is required", nil)
			} else {
				result.AddError(path, KeyDate, "is not a date, use YYYY-MM-DD", meta[KeyDate])
			}
		}

		if other, dup := urls[p.URL()]; dup {
			result.AddError(path, KeyURL, "is also published by "+other, p.URL())
		} else {
			urls[p.URL()] = path
		}

		title := meta.Title()
		if !meta.HasTitle() {
			result.AddWarning(path, KeyTitle, "is missing, the file name is used instead", nil)
		} else if title == "" {
			result.AddWarning(path, KeyTitle, "is not a string", meta[KeyTitle])
		} else if slug := scaffold.Slugify(title); slug != page.Stem(path) {
			result.AddInfo(path, KeyTitle, "does not match the file name, expected "+slug+".md", title)
		}

		if desc, _ := meta.String("description"); desc == "" {
			result.AddWarning(path, "description", "is missing", nil)
		}

		if v, ok := meta[KeyTags]; ok && v != nil && !stringList(v) {
			result.AddWarning(path, KeyTags, "should be a list of strings", v)
		}
	}

	return result
}

func stringList(v any) bool {
	switch l := v.(type) {
	case []string:
		return true
	case []any:
		for _, e := range l {
			if _, ok := e.(string); !ok {
				return false
			}
		}
		return true
	}
	return false
}
