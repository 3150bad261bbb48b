// Package fileutil provides file system utilities including atomic write operations.
package fileutil

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/folio/internal/errors"
)

// writeTemp writes data to a new temp file next to path and returns its name.
// The temp file lives in the same directory so a rename or link stays on one
// filesystem.
func writeTemp(path string, data []byte, perm os.FileMode) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".folio-atomic-*.tmp")
	if err != nil {
		return "", errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", errors.Wrap(err, "closing temp file")
	}
	return tmpName, nil
}

// AtomicWriteFile writes data to a file atomically using a temp file + rename pattern.
// An interrupted write leaves any existing file intact.
//
// The caller is responsible for ensuring the parent directory exists.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmpName, err := writeTemp(path, data, perm)
	if err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "renaming temp file")
	}
	return nil
}

// AtomicCreateFile is like AtomicWriteFile but fails with an error matching
// os.ErrExist when path already exists. The file appears fully written or
// not at all.
func AtomicCreateFile(path string, data []byte, perm os.FileMode) error {
	tmpName, err := writeTemp(path, data, perm)
	if err != nil {
		return err
	}
	defer os.Remove(tmpName)

	// link(2) refuses to replace an existing path, unlike rename(2).
	if err := os.Link(tmpName, path); err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	return nil
}

// AtomicWriteYAML writes v as YAML to path atomically with 0644 permissions.
//
// The caller is responsible for ensuring the parent directory exists.
func AtomicWriteYAML(path string, v any) (err error) {
	// yaml.Marshal panics on unmarshalable types; recover and return error
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("marshaling YAML: %v", r)
		}
	}()

	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}

	return AtomicWriteFile(path, data, 0o644)
}
