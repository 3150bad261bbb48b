package scaffold

import (
	"os"
	"path/filepath"

	"github.com/thoreinstein/folio/internal/errors"
	"github.com/thoreinstein/folio/internal/paths"
	"github.com/thoreinstein/folio/pkg/fileutil"
)

// FilePerm is the mode of created post files.
const FilePerm = 0o644

var (
	// ErrEmptySlug indicates the title has no letters or digits to build a
	// file name from.
	ErrEmptySlug = errors.New("title produces an empty slug")

	// ErrPostExists indicates the target file is already present.
	ErrPostExists = errors.New("post already exists")
)

// CreateOptions controls how Create writes the file.
type CreateOptions struct {
	// Force overwrites an existing post.
	Force bool
	// MkdirAll creates the target directory when it is missing.
	MkdirAll bool
}

// Path returns where p is written under dir.
func Path(dir string, p Post) (string, error) {
	slug := p.Slug()
	if slug == "" {
		return "", errors.Wrapf(ErrEmptySlug, "%q", p.Title)
	}
	return filepath.Join(dir, slug+".md"), nil
}

// Create renders p and writes it to dir/<slug>.md, returning the file path.
// The write is atomic. Without opts.Force an existing file yields
// ErrPostExists; without opts.MkdirAll a missing dir is an error.
func Create(dir string, p Post, opts CreateOptions) (string, error) {
	path, err := Path(dir, p)
	if err != nil {
		return "", err
	}

	content, err := Render(p)
	if err != nil {
		return "", err
	}

	if opts.MkdirAll {
		if err := paths.EnsureDir(dir, paths.DefaultDirPerm); err != nil {
			return "", err
		}
	} else if !paths.IsDir(dir) {
		return "", errors.Wrapf(os.ErrNotExist, "posts directory %s", dir)
	}

	if opts.Force {
		err = fileutil.AtomicWriteFile(path, content, FilePerm)
	} else {
		err = fileutil.AtomicCreateFile(path, content, FilePerm)
		if errors.Is(err, os.ErrExist) {
			return "", errors.Wrapf(ErrPostExists, "%s", path)
		}
	}
	if err != nil {
		return "", errors.Wrapf(err, "writing post %s", path)
	}
	return path, nil
}
