// Package render writes a post listing in one of several output formats.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"text/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/thoreinstein/folio/internal/errors"
	"github.com/thoreinstein/folio/internal/posts"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ErrUnknownFormat indicates an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the accepted format names.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatMarkdown), string(FormatHTML)}
}

// ParseFormat validates a format name. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatMarkdown, FormatHTML:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q (want one of %s)", s, strings.Join(Formats(), ", "))
}

// entry is the flattened view of a post used by the text and markdown
// formats.
type entry struct {
	Title    string
	URL      string
	Date     string
	LongDate string
}

func entries(list []posts.Metadata) ([]entry, error) {
	out := make([]entry, 0, len(list))
	for _, m := range list {
		d, err := m.Date()
		if err != nil {
			return nil, errors.Wrapf(err, "post %q", m.Title())
		}
		out = append(out, entry{
			Title:    m.Title(),
			URL:      m.URL(),
			Date:     d.Format(time.DateOnly),
			LongDate: d.Format("January 02, 2006"),
		})
	}
	return out, nil
}

// Write renders list to w in format f.
func Write(w io.Writer, list []posts.Metadata, f Format) error {
	switch f {
	case FormatText:
		return writeText(w, list)
	case FormatJSON:
		return writeJSON(w, list)
	case FormatMarkdown:
		return writeMarkdown(w, list)
	case FormatHTML:
		return writeHTML(w, list)
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", f)
}

func writeText(w io.Writer, list []posts.Metadata) error {
	items, err := entries(list)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No posts found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTITLE\tURL")
	for _, e := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Date, e.Title, e.URL)
	}
	return tw.Flush()
}

// writeJSON emits the full metadata of every post. Dates are normalized to
// YYYY-MM-DD so TOML and YAML sources look alike.
func writeJSON(w io.Writer, list []posts.Metadata) error {
	out := make([]posts.Metadata, 0, len(list))
	for _, m := range list {
		d, err := m.Date()
		if err != nil {
			return errors.Wrapf(err, "post %q", m.Title())
		}
		c := m.Clone()
		c[posts.KeyDate] = d.Format(time.DateOnly)
		out = append(out, c)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(out), "encoding JSON")
}

// mdText backslash-escapes the characters that would otherwise start
// emphasis, links, code, strikethrough, entities or raw HTML in link text.
var mdText = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`, `[`, `\[`, `]`, `\]`,
	`<`, `\<`, `>`, `\>`, `&`, `\&`, `~`, `\~`,
)

// mdDest keeps a link destination inside its parentheses.
var mdDest = strings.NewReplacer(" ", "%20", "(", "%28", ")", "%29", "<", "%3C", ">", "%3E")

var markdownTmpl = template.Must(template.New("recent").Funcs(template.FuncMap{
	"text": mdText.Replace,
	"dest": mdDest.Replace,
}).Parse(
	`{{range .}}- [{{text .Title}}]({{dest .URL}}) - {{.LongDate}}
{{end}}`))

func writeMarkdown(w io.Writer, list []posts.Metadata) error {
	items, err := entries(list)
	if err != nil {
		return err
	}
	return errors.Wrap(markdownTmpl.Execute(w, items), "rendering markdown")
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// writeHTML renders the markdown listing to an HTML fragment.
func writeHTML(w io.Writer, list []posts.Metadata) error {
	var src bytes.Buffer
	if err := writeMarkdown(&src, list); err != nil {
		return err
	}
	return errors.Wrap(md.Convert(src.Bytes(), w), "rendering HTML")
}
