package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/folio/internal/errors"
	"github.com/thoreinstein/folio/internal/posts"
)

func sample() []posts.Metadata {
	return []posts.Metadata{
		{"type": "post", "title": "Second", "date": "2023-06-01", "url": "blog/posts/second/", "tags": []any{"go"}},
		{"type": "post", "title": "First", "date": "2023-03-01", "url": "blog/posts/first/", "description": "hi"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" markdown ", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"html", FormatHTML, false},
		{"yaml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.True(t, errors.Is(err, ErrUnknownFormat), "ParseFormat(%q) error = %v", tt.in, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample(), FormatText))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"DATE", "TITLE", "URL"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"2023-06-01", "Second", "blog/posts/second/"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2023-03-01", "First", "blog/posts/first/"}, strings.Fields(lines[2]))
}

func TestWrite_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, FormatText))
	assert.Equal(t, "No posts found\n", buf.String())
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample(), FormatJSON))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Second", got[0]["title"])
	assert.Equal(t, "2023-06-01", got[0]["date"])
	assert.Equal(t, []any{"go"}, got[0]["tags"])
	assert.Equal(t, "hi", got[1]["description"])
}

func TestWrite_JSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWrite_JSONDoesNotMutateInput(t *testing.T) {
	list := []posts.Metadata{{"title": "T", "date": "2023-01-01T10:00:00", "url": "t/"}}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, list, FormatJSON))
	assert.Equal(t, "2023-01-01T10:00:00", list[0]["date"])
}

func TestWrite_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample(), FormatMarkdown))

	want := "- [Second](blog/posts/second/) - June 01, 2023\n" +
		"- [First](blog/posts/first/) - March 01, 2023\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_HTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample(), FormatHTML))

	out := buf.String()
	assert.Contains(t, out, "<ul>")
	assert.Contains(t, out, `<a href="blog/posts/second/">Second</a> - June 01, 2023`)
	assert.Contains(t, out, `<a href="blog/posts/first/">First</a>`)
}

func TestWrite_MarkdownEscapesTitles(t *testing.T) {
	list := []posts.Metadata{
		{"title": "*pointers* & [refs]", "date": "2023-02-01", "url": "blog/posts/pointers/"},
		{"title": "Using <br> tags", "date": "2023-01-01", "url": "blog/posts/a b (c)/"},
	}

	var md bytes.Buffer
	require.NoError(t, Write(&md, list, FormatMarkdown))
	want := `- [\*pointers\* \& \[refs\]](blog/posts/pointers/) - February 01, 2023` + "\n" +
		`- [Using \<br\> tags](blog/posts/a%20b%20%28c%29/) - January 01, 2023` + "\n"
	assert.Equal(t, want, md.String())

	var html bytes.Buffer
	require.NoError(t, Write(&html, list, FormatHTML))
	out := html.String()
	assert.Contains(t, out, `<a href="blog/posts/pointers/">*pointers* &amp; [refs]</a>`)
	assert.Contains(t, out, `<a href="blog/posts/a%20b%20%28c%29/">Using &lt;br&gt; tags</a>`)
	assert.NotContains(t, out, "<em>")
	assert.NotContains(t, out, "raw HTML omitted")
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, sample(), Format("xml"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestWrite_BadDate(t *testing.T) {
	list := []posts.Metadata{{"title": "Broken", "date": "soon"}}
	for _, f := range []Format{FormatText, FormatJSON, FormatMarkdown, FormatHTML} {
		err := Write(&bytes.Buffer{}, list, f)
		assert.True(t, errors.Is(err, posts.ErrInvalidDate), "%s: %v", f, err)
	}
}
