// Package page provides handles to content files and collects them from a
// documentation tree.
package page

import (
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/thoreinstein/folio/internal/errors"
)

// Page is a handle to a content file: where to read it and where it is
// published.
type Page interface {
	// SourcePath is the path of the file on disk.
	SourcePath() string
	// URL is the resolved output URL of the rendered page.
	URL() string
}

// File is a Page backed by a file under a docs directory.
type File struct {
	// Path is the file path on disk.
	Path string
	// Rel is the slash-separated path relative to the docs directory.
	Rel string
	// Dest is the resolved URL.
	Dest string
}

// SourcePath implements Page.
func (f *File) SourcePath() string { return f.Path }

// URL implements Page.
func (f *File) URL() string { return f.Dest }

// CollectOptions controls which files Collect returns and how URLs resolve.
type CollectOptions struct {
	// Include holds doublestar patterns relative to the docs directory.
	// Empty means "**/*.md".
	Include []string
	// Exclude holds doublestar patterns; a match drops the file.
	Exclude []string
	// DirectoryURLs maps a/b.md to a/b/ instead of a/b.html.
	DirectoryURLs bool
	// SiteURL, when set, prefixes every URL.
	SiteURL string
}

// DefaultInclude is used when CollectOptions.Include is empty.
var DefaultInclude = []string{"**/*.md"}

// Collect walks docsDir in lexical order and returns a handle for every
// regular file selected by opts. Hidden directories (".git", ".cache") are
// skipped.
func Collect(docsDir string, opts CollectOptions) ([]Page, error) {
	include := opts.Include
	if len(include) == 0 {
		include = DefaultInclude
	}
	for _, p := range slices.Concat(include, opts.Exclude) {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Newf("invalid pattern %q", p)
		}
	}

	var pages []Page
	err := filepath.WalkDir(docsDir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return errors.Wrapf(walkErr, "walking %s", p)
		}
		if d.IsDir() {
			if p != docsDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(docsDir, p)
		if err != nil {
			return errors.Wrapf(err, "resolving %s", p)
		}
		rel = filepath.ToSlash(rel)

		if !matchAny(include, rel) || matchAny(opts.Exclude, rel) {
			return nil
		}

		pages = append(pages, &File{
			Path: p,
			Rel:  rel,
			Dest: ResolveURL(rel, opts.DirectoryURLs, opts.SiteURL),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return pages, nil
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if doublestar.MatchUnvalidated(p, name) {
			return true
		}
	}
	return false
}

// ResolveURL maps a slash-separated source path to its published URL.
//
// With directory URLs, "blog/posts/hello.md" becomes "blog/posts/hello/" and
// index pages ("index.md", "README.md") become their directory
// ("blog/index.md" is "blog/", the root index is ""). Without them the
// extension is replaced by ".html". A non-empty siteURL is joined in front.
func ResolveURL(rel string, directoryURLs bool, siteURL string) string {
	dir, file := path.Split(rel)
	stem := strings.TrimSuffix(file, path.Ext(file))
	isIndex := strings.EqualFold(stem, "index") || strings.EqualFold(stem, "readme")

	var u string
	switch {
	case directoryURLs && isIndex:
		u = dir
	case directoryURLs:
		u = dir + stem + "/"
	case isIndex:
		u = dir + "index.html"
	default:
		u = dir + stem + ".html"
	}

	if siteURL == "" {
		return u
	}
	return strings.TrimSuffix(siteURL, "/") + "/" + u
}

// Stem returns the file name of p without directory or extension.
func Stem(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
