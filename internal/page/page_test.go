package page

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		rel           string
		directoryURLs bool
		siteURL       string
		want          string
	}{
		{"blog/posts/hello-world.md", true, "", "blog/posts/hello-world/"},
		{"blog/index.md", true, "", "blog/"},
		{"index.md", true, "", ""},
		{"about/README.md", true, "", "about/"},
		{"blog/posts/hello-world.md", false, "", "blog/posts/hello-world.html"},
		{"blog/index.md", false, "", "blog/index.html"},
		{"index.md", false, "", "index.html"},
		{"blog/posts/hello.md", true, "https://example.com", "https://example.com/blog/posts/hello/"},
		{"blog/posts/hello.md", true, "https://example.com/docs/", "https://example.com/docs/blog/posts/hello/"},
		{"index.md", true, "https://example.com/", "https://example.com/"},
	}

	for _, tt := range tests {
		got := ResolveURL(tt.rel, tt.directoryURLs, tt.siteURL)
		if got != tt.want {
			t.Errorf("ResolveURL(%q, %v, %q) = %q, want %q", tt.rel, tt.directoryURLs, tt.siteURL, got, tt.want)
		}
	}
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"index.md":                  "home",
		"blog/posts/b-second.md":    "b",
		"blog/posts/a-first.md":     "a",
		"blog/drafts/wip.md":        "draft",
		"assets/logo.png":           "png",
		".cache/stale.md":           "hidden",
		"blog/posts/notes.markdown": "other extension",
	})

	pages, err := Collect(root, CollectOptions{
		Exclude:       []string{"blog/drafts/**"},
		DirectoryURLs: true,
	})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := []struct{ rel, url string }{
		{"blog/posts/a-first.md", "blog/posts/a-first/"},
		{"blog/posts/b-second.md", "blog/posts/b-second/"},
		{"index.md", ""},
	}
	if len(pages) != len(want) {
		t.Fatalf("Collect() returned %d pages, want %d: %v", len(pages), len(want), pages)
	}
	for i, w := range want {
		f, ok := pages[i].(*File)
		if !ok {
			t.Fatalf("pages[%d] is %T, want *File", i, pages[i])
		}
		if f.Rel != w.rel {
			t.Errorf("pages[%d].Rel = %q, want %q", i, f.Rel, w.rel)
		}
		if f.URL() != w.url {
			t.Errorf("pages[%d].URL() = %q, want %q", i, f.URL(), w.url)
		}
		if f.SourcePath() != filepath.Join(root, filepath.FromSlash(w.rel)) {
			t.Errorf("pages[%d].SourcePath() = %q", i, f.SourcePath())
		}
	}
}

func TestCollect_CustomInclude(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"blog/posts/a.md":       "a",
		"blog/posts/b.markdown": "b",
		"guide/setup.md":        "guide",
	})

	pages, err := Collect(root, CollectOptions{
		Include: []string{"blog/**/*.{md,markdown}"},
		SiteURL: "https://example.com",
	})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("Collect() returned %d pages, want 2", len(pages))
	}
	if pages[0].URL() != "https://example.com/blog/posts/a.html" {
		t.Errorf("URL = %q", pages[0].URL())
	}
}

func TestCollect_InvalidPattern(t *testing.T) {
	if _, err := Collect(t.TempDir(), CollectOptions{Exclude: []string{"[oops"}}); err == nil {
		t.Error("Collect() with an invalid pattern should error")
	}
}

func TestCollect_MissingDir(t *testing.T) {
	if _, err := Collect(filepath.Join(t.TempDir(), "missing"), CollectOptions{}); err == nil {
		t.Error("Collect() on a missing directory should error")
	}
}

func TestStem(t *testing.T) {
	tests := map[string]string{
		"blog/posts/hello-world.md": "hello-world",
		"notes.tar.gz":              "notes.tar",
		"README":                    "README",
	}
	for in, want := range tests {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}
