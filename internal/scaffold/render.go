package scaffold

import (
	"strings"

	"github.com/thoreinstein/folio/internal/errors"
	"github.com/thoreinstein/folio/pkg/frontmatter"
)

// sections are the headings every new post starts with.
var sections = []string{"Introduction", "References", "Conclusion"}

// Body returns the markdown body of a new post: a heading carrying the title
// and long-form date, followed by empty sections.
func Body(p Post) string {
	var b strings.Builder
	b.WriteString("# " + p.Title + " <br><small>" + p.Date.Long() + "</small>\n")
	for i, s := range sections {
		b.WriteString("\n## " + s + "\n")
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Render returns the complete file content for p: frontmatter block, blank
// line, body. p should already be normalized.
func Render(p Post) ([]byte, error) {
	out, err := frontmatter.Format(p, Body(p))
	if err != nil {
		return nil, errors.Wrap(err, "rendering post")
	}
	return out, nil
}
