package posts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/folio/internal/errors"
	"github.com/thoreinstein/folio/internal/logging"
	"github.com/thoreinstein/folio/internal/page"
)

// writePage writes content under dir and returns a page handle for it with
// a directory-style URL.
func writePage(t *testing.T, dir, rel, content string) page.Page {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return &page.File{Path: p, Rel: rel, Dest: page.ResolveURL(rel, true, "")}
}

func post(date, title string) string {
	return "---\ntype: post\ndate: " + date + "\ntitle: " + title + "\n---\n\n# " + title + "\n"
}

func titles(posts []Metadata) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Title()
	}
	return out
}

func TestSelectRecent(t *testing.T) {
	dir := t.TempDir()
	pages := []page.Page{
		writePage(t, dir, "blog/posts/a.md", post("2023-01-01", "A")),
		writePage(t, dir, "blog/posts/b.md", post("2023-03-01", "B")),
		writePage(t, dir, "blog/posts/c.md", post("2023-02-01", "C")),
	}

	got, err := SelectRecent(pages, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"B", "C"}, titles(got))
	assert.Equal(t, "blog/posts/b/", got[0].URL())
	assert.Equal(t, "blog/posts/c/", got[1].URL())
}

func TestSelectRecent_FiltersNonPosts(t *testing.T) {
	dir := t.TempDir()
	pages := []page.Page{
		writePage(t, dir, "index.md", "---\ntitle: Home\n---\n"),
		writePage(t, dir, "about.md", "---\ntype: page\ndate: 2024-01-01\n---\n"),
		writePage(t, dir, "notes.md", "no frontmatter at all\n"),
		writePage(t, dir, "blog/posts/only.md", post("2022-06-30", "Only")),
	}

	got, err := SelectRecent(pages, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Only"}, titles(got))
}

func TestSelectRecent_Limit(t *testing.T) {
	dir := t.TempDir()
	pages := []page.Page{
		writePage(t, dir, "a.md", post("2021-01-01", "A")),
		writePage(t, dir, "b.md", post("2022-01-01", "B")),
		writePage(t, dir, "c.md", post("2023-01-01", "C")),
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"zero returns all", 0, []string{"C", "B", "A"}},
		{"limit above count", 10, []string{"C", "B", "A"}},
		{"exact", 3, []string{"C", "B", "A"}},
		{"one", 1, []string{"C"}},
		{"negative returns none", -1, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectRecent(pages, tt.limit)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestSelectRecent_Empty(t *testing.T) {
	got, err := SelectRecent(nil, 5)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSelectRecent_Idempotent(t *testing.T) {
	dir := t.TempDir()
	pages := []page.Page{
		writePage(t, dir, "a.md", post("2023-01-01", "A")),
		writePage(t, dir, "b.md", post("2023-03-01", "B")),
	}

	first, err := SelectRecent(pages, 0)
	require.NoError(t, err)
	second, err := SelectRecent(pages, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSelectRecent_StableTies(t *testing.T) {
	dir := t.TempDir()
	pages := []page.Page{
		writePage(t, dir, "x.md", post("2023-05-05", "X")),
		writePage(t, dir, "y.md", post("2023-05-05", "Y")),
		writePage(t, dir, "z.md", post("2023-05-05", "Z")),
	}

	got, err := SelectRecent(pages, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "Z"}, titles(got))
}

func TestSelectRecent_MixedDateForms(t *testing.T) {
	dir := t.TempDir()
	pages := []page.Page{
		writePage(t, dir, "a.md", post("2023-01-01", "Day")),
		writePage(t, dir, "b.md", post("2023-01-01T12:00:00Z", "Noon")),
		writePage(t, dir, "c.md", post("\"2023-01-02\"", "Quoted")),
	}

	got, err := SelectRecent(pages, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Quoted", "Noon", "Day"}, titles(got))
}

func TestSelectRecent_TOML(t *testing.T) {
	dir := t.TempDir()
	pages := []page.Page{
		writePage(t, dir, "old.md", post("2020-01-01", "Old")),
		writePage(t, dir, "new.md", "+++\ntype = \"post\"\ndate = 2024-02-29\ntitle = \"New\"\n+++\n\nbody\n"),
	}

	got, err := SelectRecent(pages, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"New", "Old"}, titles(got))
}

func TestSelectRecent_PreservesMetadata(t *testing.T) {
	dir := t.TempDir()
	p := writePage(t, dir, "blog/posts/tagged.md",
		"---\ntype: post\ndate: 2023-01-01\ntitle: Tagged\ntags: [go, cli]\nhide: [navigation]\nurl: /ignored\n---\n")

	got, err := SelectRecent([]page.Page{p}, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)

	m := got[0]
	assert.Equal(t, []string{"go", "cli"}, m.Tags())
	assert.Equal(t, []any{"navigation"}, m["hide"])
	assert.Equal(t, "blog/posts/tagged/", m.URL(), "url comes from the page handle")
}

func TestSelectRecent_TitleFromFileName(t *testing.T) {
	dir := t.TempDir()
	p := writePage(t, dir, "blog/posts/hello-big_world.md", "---\ntype: post\ndate: 2023-01-01\n---\n")

	got, err := SelectRecent([]page.Page{p}, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Hello Big World", got[0].Title())
}

func TestSelectRecent_KeepsNonStringTitle(t *testing.T) {
	dir := t.TempDir()
	p := writePage(t, dir, "blog/posts/year-review.md", "---\ntype: post\ndate: 2023-12-31\ntitle: 2023\n---\n")

	got, err := SelectRecent([]page.Page{p}, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2023, got[0][KeyTitle])
}

func TestSelectRecent_BlankTitleFilled(t *testing.T) {
	dir := t.TempDir()
	pages := []page.Page{
		writePage(t, dir, "blog/posts/empty-title.md", "---\ntype: post\ndate: 2023-01-02\ntitle: \"\"\n---\n"),
		writePage(t, dir, "blog/posts/null-title.md", "---\ntype: post\ndate: 2023-01-01\ntitle: ~\n---\n"),
	}

	got, err := SelectRecent(pages, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Empty Title", got[0].Title())
	assert.Equal(t, "Null Title", got[1].Title())
}

func TestSelectRecent_DotsClosedFrontmatter(t *testing.T) {
	dir := t.TempDir()
	p := writePage(t, dir, "blog/posts/dots.md", "---\ntype: post\ndate: 2023-01-01\ntitle: Dots\n...\nbody\n")

	got, err := SelectRecent([]page.Page{p}, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Dots", got[0].Title())
}

func TestSelectRecent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"missing date", "---\ntype: post\ntitle: Undated\n---\n", ErrMissingDate},
		{"invalid date", "---\ntype: post\ndate: someday\n---\n", ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			p := writePage(t, dir, "bad.md", tt.content)

			_, err := SelectRecent([]page.Page{p}, 0)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Contains(t, err.Error(), "bad.md")
		})
	}
}

func TestSelectRecent_UndatedNonPostIgnored(t *testing.T) {
	dir := t.TempDir()
	pages := []page.Page{
		writePage(t, dir, "about.md", "---\ntitle: About\n---\n"),
		writePage(t, dir, "a.md", post("2023-01-01", "A")),
	}

	got, err := SelectRecent(pages, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, titles(got))
}

func TestSelectRecent_UnreadablePage(t *testing.T) {
	missing := &page.File{Path: filepath.Join(t.TempDir(), "gone.md"), Rel: "gone.md"}

	_, err := SelectRecent([]page.Page{missing}, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestSelectRecent_UnterminatedFrontmatter(t *testing.T) {
	dir := t.TempDir()
	p := writePage(t, dir, "broken.md", "---\ntype: post\ndate: 2023-01-01\n")

	_, err := SelectRecent([]page.Page{p}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.md")
}

func TestSelector_WithLogger(t *testing.T) {
	dir := t.TempDir()
	pages := []page.Page{writePage(t, dir, "a.md", post("2023-01-01", "A"))}

	s := NewSelector(logging.ForTest(t))
	got, err := s.Select(pages, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      any
		want    string
		wantErr bool
	}{
		{"2023-01-01", "2023-01-01", false},
		{" 2023-01-01 ", "2023-01-01", false},
		{"2023-01-01T08:30:00", "2023-01-01", false},
		{"2023-01-01 08:30:00", "2023-01-01", false},
		{"2023-01-01T08:30:00+02:00", "2023-01-01", false},
		{"01/02/2023", "", true},
		{42, "", true},
		{[]any{"2023-01-01"}, "", true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("ParseDate(%v) error = %v, want ErrInvalidDate", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%v) unexpected error: %v", tt.in, err)
			continue
		}
		if s := got.Format("2006-01-02"); s != tt.want {
			t.Errorf("ParseDate(%v) = %s, want %s", tt.in, s, tt.want)
		}
	}
}

func TestMetadata_Tags(t *testing.T) {
	tests := []struct {
		name string
		m    Metadata
		want []string
	}{
		{"absent", Metadata{}, nil},
		{"string", Metadata{KeyTags: "go"}, []string{"go"}},
		{"list", Metadata{KeyTags: []any{"a", 1, "b"}}, []string{"a", "b"}},
		{"typed list", Metadata{KeyTags: []string{"x"}}, []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.Tags())
		})
	}
}
